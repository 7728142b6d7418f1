package client

import (
	"net/http"
	"regexp"
	"sort"
)

var (
	reBearer = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey = regexp.MustCompile(`(ptl[acr]_)([A-Za-z0-9]+)`)
)

// MaskToken replaces bearer tokens and panel API keys in s with "***".
func MaskToken(s string) string {
	out := reBearer.ReplaceAllString(s, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	return out
}

// MaskHeaders returns a loggable, sorted "Name: value" list of h.
func MaskHeaders(h http.Header) []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, k := range names {
		out = append(out, k+": "+MaskToken(h.Get(k)))
	}
	return out
}
