package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vango-dev/mirror/pkg/render"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

func defaultPolicy() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

// Sanitize returns a node that renders src cleaned of unsafe markup with
// bluemonday's user-generated-content policy. src is rendered and cleaned
// on every render.
func Sanitize(src render.Renderable) LazyText {
	return SanitizeWith(defaultPolicy(), src)
}

// SanitizeWith is Sanitize with a caller-supplied policy.
func SanitizeWith(policy *bluemonday.Policy, src render.Renderable) LazyText {
	return NewLazyText(func() string {
		return strings.TrimSpace(policy.Sanitize(src.Render()))
	})
}
