package middleware

import (
	"mime"
	"net"
	"net/http"
	"slices"
	"strings"

	"mdworkspace/internal/httputil"
)

// LocalOnly rejects requests that did not come from the desktop webview or
// a local client:
//   - Host must name a loopback address, so rebound DNS names are refused.
//   - Origin, when present, must be one of allowedOrigins.
//   - Requests other than GET/HEAD/OPTIONS must be application/json, which
//     browsers cannot send cross-origin without a preflight.
func LocalOnly(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isLoopbackHost(r.Host) {
				httputil.RespondError(w, http.StatusForbidden, "host not allowed")
				return
			}

			if origin := r.Header.Get("Origin"); origin != "" && !originAllowed(allowedOrigins, origin) {
				httputil.RespondError(w, http.StatusForbidden, "origin not allowed")
				return
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
			default:
				mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
				if err != nil || mediaType != "application/json" {
					httputil.RespondError(w, http.StatusUnsupportedMediaType, "content type must be application/json")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	return slices.ContainsFunc(allowed, func(o string) bool {
		return strings.EqualFold(o, origin)
	})
}

// isLoopbackHost reports whether a Host header value (with or without a
// port) is localhost or a loopback IP
func isLoopbackHost(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
