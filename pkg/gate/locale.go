package gate

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocaleRouter knows the supported locales and picks one per request.
type LocaleRouter struct {
	codes         []string
	defaultLocale string
	matcher       language.Matcher
}

// NewLocaleRouter builds a router over locales. defaultLocale must be one of
// them; it is also the matcher's fallback.
func NewLocaleRouter(locales []string, defaultLocale string) (*LocaleRouter, error) {
	if defaultLocale == "" {
		return nil, fmt.Errorf("default locale is required")
	}

	codes := []string{defaultLocale}
	for _, l := range locales {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && l != defaultLocale {
			codes = append(codes, l)
		}
	}

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", code, err)
		}
		tags = append(tags, tag)
	}

	return &LocaleRouter{
		codes:         codes,
		defaultLocale: defaultLocale,
		matcher:       language.NewMatcher(tags),
	}, nil
}

func (r *LocaleRouter) Default() string {
	return r.defaultLocale
}

func (r *LocaleRouter) Supported() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

func (r *LocaleRouter) IsSupported(code string) bool {
	for _, c := range r.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Split removes a leading supported locale segment, matched case-insensitively,
// and returns it lower-cased. It returns "" and the path unchanged when there
// is none. The remainder is never empty.
func (r *LocaleRouter) Split(path string) (locale, rest string) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, remainder, _ := strings.Cut(trimmed, "/")
	segment = strings.ToLower(segment)
	if !r.IsSupported(segment) {
		return "", path
	}
	return segment, "/" + remainder
}

// Detect chooses the locale for a request without an explicit prefix: a
// supported cookie value wins, then Accept-Language, then the default.
func (r *LocaleRouter) Detect(cookie, acceptLanguage string) string {
	if c := strings.ToLower(strings.TrimSpace(cookie)); r.IsSupported(c) {
		return c
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.defaultLocale
	}

	_, idx, confidence := r.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(r.codes) {
		return r.defaultLocale
	}
	return r.codes[idx]
}

// Prefix returns path under locale, or path itself for the default locale.
func (r *LocaleRouter) Prefix(locale, path string) string {
	if locale == "" || locale == r.defaultLocale {
		return path
	}
	if path == "/" {
		return "/" + locale
	}
	return "/" + locale + path
}
