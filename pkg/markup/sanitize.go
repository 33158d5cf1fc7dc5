package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// ImageAttributes lists the host-supplied attributes carried onto the
// placeholder <img>. Anything else is dropped before rendering and again by
// the sanitizer.
var ImageAttributes = []string{"alt", "class", "height", "id", "title", "width"}

var (
	imagePolicyOnce sync.Once
	imagePolicy     *bluemonday.Policy
)

// Sanitize strips everything from raw except <img> elements carrying the
// deferred-loading data-src attribute and the ImageAttributes set.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(imageSanitizer().Sanitize(trimmed))
}

func imageSanitizer() *bluemonday.Policy {
	imagePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("img")
		policy.AllowAttrs("data-src").OnElements("img")
		policy.AllowAttrs(ImageAttributes...).OnElements("img")
		imagePolicy = policy
	})
	return imagePolicy
}

func allowedAttribute(name string) bool {
	for _, allowed := range ImageAttributes {
		if allowed == name {
			return true
		}
	}
	return false
}
