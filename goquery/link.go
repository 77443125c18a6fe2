package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link defaults.
const (
	DefaultHost = "https://www.google.com"
	SearchPath  = "/search"
)

// extractLink returns host joined with the href of the first anchor
// pointing at the search path, or "" if there is none.
func extractLink(s *goquery.Selection, host string) string {
	a := s.Find(`a[href^="` + SearchPath + `"]`).First()
	if a.Length() == 0 {
		return ""
	}
	return strings.TrimSuffix(host, "/") + a.AttrOr("href", "")
}
