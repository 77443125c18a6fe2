package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// maxSingleExtensionLen bounds extensions taken from a whole div's text, so
// captions and full names are not mistaken for tags.
const maxSingleExtensionLen = 20

// extractName returns the item's display name and the trailing year split
// off it, if any. Sources are tried in order: the first anchor's text, the
// first image's alt text, then the first descendant div whose text is at
// least three characters and not a bare year.
func extractName(s *goquery.Selection) (name, year string) {
	if a := s.Find("a").First(); a.Length() > 0 {
		if text := cleanText(a.Text()); text != "" {
			return splitYear(text)
		}
	}

	if img := s.Find("img").First(); img.Length() > 0 {
		if alt := cleanText(img.AttrOr("alt", "")); alt != "" {
			return splitYear(alt)
		}
	}

	s.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		text := cleanText(div.Text())
		if runeLen(text) < 3 || isYear(text) {
			return true
		}
		name, year = splitYear(text)
		return false
	})
	return name, year
}

// extractDate scans descendant divs for the first year-bearing text.
func extractDate(s *goquery.Selection) string {
	var year string
	s.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		year = findYear(cleanText(div.Text()))
		return year == ""
	})
	return year
}

// extractExtensions collects short metadata strings from descendant divs.
// A div with several child nodes contributes each of its own text nodes; a
// div with at most one child contributes its whole text when short. Values
// equal to name or to the separator are dropped, and the result keeps only
// the first occurrence of each value.
func extractExtensions(s *goquery.Selection, name string) []string {
	var candidates []string
	s.Find("div").Each(func(_ int, div *goquery.Selection) {
		contents := div.Contents()
		if contents.Length() > 1 {
			contents.Each(func(_ int, child *goquery.Selection) {
				if child.Get(0).Type != html.TextNode {
					return
				}
				candidates = append(candidates, splitSeparated(child.Text())...)
			})
			return
		}

		text := strings.TrimSpace(div.Text())
		if runeLen(text) < maxSingleExtensionLen {
			candidates = append(candidates, splitSeparated(text)...)
		}
	})

	extensions := []string{}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == "" || c == name {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		extensions = append(extensions, c)
	}
	return extensions
}

// splitSeparated splits text on the separator glyph and trims each part.
func splitSeparated(text string) []string {
	parts := strings.Split(text, Separator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
