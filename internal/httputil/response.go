package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code.
// It handles encoding errors safely by marshaling first, preventing
// partial responses if encoding fails after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondNoContent writes a 204 with no body
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ProblemDetail represents an RFC 7807 Problem Details response
type ProblemDetail struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Extra    map[string]interface{} `json:"-"`
}

// MarshalJSON implements custom JSON marshaling to include Extra fields at top level
func (p ProblemDetail) MarshalJSON() ([]byte, error) {
	typ := p.Type
	if typ == "" {
		typ = "about:blank"
	}
	m := map[string]interface{}{
		"type":   typ,
		"title":  p.Title,
		"status": p.Status,
	}

	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}

	for k, v := range p.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// RespondError writes an RFC 7807 Problem Details error response
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondErrorWithExtras(w, status, detail, nil)
}

// RespondErrorWithExtras writes an RFC 7807 error with additional
// top-level fields (for file errors: op and path)
func RespondErrorWithExtras(w http.ResponseWriter, status int, detail string, extras map[string]interface{}) {
	payload, err := json.Marshal(ProblemDetail{
		Type:   problemTypes[status],
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Extra:  extras,
	})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	w.Write(payload)
}

// problemTypes maps the statuses this server emits to their RFC type URI.
// Anything else serializes as "about:blank".
var problemTypes = map[int]string{
	http.StatusBadRequest:            "https://www.rfc-editor.org/rfc/rfc9110#name-400-bad-request",
	http.StatusForbidden:             "https://www.rfc-editor.org/rfc/rfc9110#name-403-forbidden",
	http.StatusNotFound:              "https://www.rfc-editor.org/rfc/rfc9110#name-404-not-found",
	http.StatusRequestEntityTooLarge: "https://www.rfc-editor.org/rfc/rfc9110#name-413-content-too-large",
	http.StatusUnsupportedMediaType:  "https://www.rfc-editor.org/rfc/rfc9110#name-415-unsupported-media-type",
	http.StatusUnprocessableEntity:   "https://www.rfc-editor.org/rfc/rfc9110#name-422-unprocessable-content",
	http.StatusInternalServerError:   "https://www.rfc-editor.org/rfc/rfc9110#name-500-internal-server-error",
}
