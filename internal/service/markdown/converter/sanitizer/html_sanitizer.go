package sanitizer

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes dangerous HTML elements and attributes.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer for HTML that is about to be turned
// into markdown (editor exports, pasted HTML). Uses the UGC policy, which
// strips scripts, event handlers and javascript: URLs. data-* attributes
// survive so preview images keep their original source.
func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataURIImages()
	policy.AllowDataAttributes()

	return &HTMLSanitizer{policy: policy}
}

// NewPreviewSanitizer creates a sanitizer for rendered markdown previews.
// On top of UGC it keeps task list checkboxes, class names from code
// highlighting and footnotes, and data-* attributes carrying the original
// image source.
func NewPreviewSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataURIImages()
	policy.AllowDataAttributes()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^[\w\- ]+$`)).Globally()
	policy.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	policy.AllowAttrs("checked", "disabled").OnElements("input")
	policy.AllowAttrs("role").Matching(regexp.MustCompile(`^doc-[a-z]+$`)).Globally()

	return &HTMLSanitizer{policy: policy}
}

// Sanitize removes dangerous HTML while preserving safe content.
func (s *HTMLSanitizer) Sanitize(html string) (string, error) {
	return s.policy.Sanitize(html), nil
}
