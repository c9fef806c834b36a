package sanitizer

import "github.com/microcosm-cc/bluemonday"

// HTMLSanitizer strips script content and unsafe attributes from article
// bodies while keeping the formatting tags the editor emits, images
// (data URIs included) and links.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataURIImages()
	policy.AllowAttrs("style").OnElements("span", "p", "div")
	return &HTMLSanitizer{policy: policy}
}

func (s *HTMLSanitizer) SanitizeHTML(raw string) string {
	return s.policy.Sanitize(raw)
}
