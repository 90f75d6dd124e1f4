package gate

import (
	"fmt"
	"regexp"
	"strings"
)

var staticPublicPatterns = []string{
	`^/_next/`,
	`^/static/`,
	`^/assets/`,
	`^/favicon`,
	`^/api/public(?:/|$)`,
}

// publicPages are reachable without a session, optionally under a locale
// prefix, sub-pages included.
var publicPages = []string{"softwall", "login", "signup"}

// PublicPaths is the allowlist checked before any session lookup.
type PublicPaths struct {
	patterns []*regexp.Regexp
}

func NewPublicPaths(locales []string, extra []string) (*PublicPaths, error) {
	quoted := make([]string, 0, len(locales))
	for _, l := range locales {
		quoted = append(quoted, regexp.QuoteMeta(l))
	}

	sources := append([]string{}, staticPublicPatterns...)
	pages := fmt.Sprintf(`^/(?:(?i:%s)/)?(?:%s)(?:/.*)?$`, strings.Join(quoted, "|"), strings.Join(publicPages, "|"))
	if len(quoted) == 0 {
		pages = fmt.Sprintf(`^/(?:%s)(?:/.*)?$`, strings.Join(publicPages, "|"))
	}
	sources = append(sources, pages)
	sources = append(sources, extra...)

	p := &PublicPaths{}
	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("public path pattern %q: %w", src, err)
		}
		p.patterns = append(p.patterns, re)
	}
	return p, nil
}

func (p *PublicPaths) Match(path string) bool {
	for _, re := range p.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

var pageMatcherExclusions = []string{"api", "static", "_next", "auth"}

// isPagePath reports whether locale handling applies to path. Framework
// assets, API routes, the WebSocket endpoint and anything that looks like a
// file are left alone.
func isPagePath(path string) bool {
	rest := strings.TrimPrefix(path, "/")
	if strings.Contains(rest, ".") {
		return false
	}
	if rest == "ws" || strings.HasPrefix(rest, "ws/") {
		return false
	}
	for _, prefix := range pageMatcherExclusions {
		if strings.HasPrefix(rest, prefix) {
			return false
		}
	}
	return true
}
