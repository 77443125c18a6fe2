package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	dataImageRe = regexp.MustCompile(`data:image/[^'"\s\}\]]+`)
	hexEscapeRe = regexp.MustCompile(`\\x([0-9a-fA-F]{2})`)
)

// imageResolver resolves item images for one document. Deferred images are
// looked up in the document's inline scripts, which are joined once on
// first use.
type imageResolver struct {
	doc  *goquery.Selection
	host *url.URL

	corpus  string
	indexed bool
}

func newImageResolver(doc *goquery.Selection, host string) *imageResolver {
	r := &imageResolver{doc: doc}
	if u, err := url.Parse(host); err == nil && u.Scheme != "" {
		r.host = u
	}
	return r
}

// resolve returns the image source for an item container, or "".
func (r *imageResolver) resolve(s *goquery.Selection) string {
	img := findImage(s)
	if img.Length() == 0 {
		return ""
	}

	var src string
	if img.AttrOr("data-deferred", "") == "1" {
		src = r.deferred(img.AttrOr("id", ""))
	} else if v, ok := img.Attr("data-src"); ok {
		src = v
	} else {
		src = img.AttrOr("src", "")
	}
	return r.normalize(src)
}

// findImage prefers an image with a deferred source attribute.
func findImage(s *goquery.Selection) *goquery.Selection {
	if img := s.Find("img[data-src]").First(); img.Length() > 0 {
		return img
	}
	return s.Find("img:not([data-src])").First()
}

// deferred finds the smallest brace block in the script corpus mentioning
// id and returns the data URI embedded in it.
func (r *imageResolver) deferred(id string) string {
	if id == "" {
		return ""
	}
	block := regexp.MustCompile(`\{[^{}]*` + regexp.QuoteMeta(id) + `[^{}]*\}`).FindString(r.scripts())
	if block == "" {
		return ""
	}
	return unescapeHex(dataImageRe.FindString(block))
}

func (r *imageResolver) scripts() string {
	if !r.indexed {
		var parts []string
		r.doc.Find("script").Each(func(_ int, s *goquery.Selection) {
			parts = append(parts, s.Text())
		})
		r.corpus = strings.Join(parts, "\n")
		r.indexed = true
	}
	return r.corpus
}

func (r *imageResolver) normalize(src string) string {
	switch {
	case src == "":
		return ""
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/") && r.host != nil:
		ref, err := url.Parse(src)
		if err != nil {
			return src
		}
		return r.host.ResolveReference(ref).String()
	}
	return src
}

// unescapeHex decodes \xHH escapes that inline scripts use for characters
// such as '=' inside string literals.
func unescapeHex(s string) string {
	if !strings.Contains(s, `\x`) {
		return s
	}
	return hexEscapeRe.ReplaceAllStringFunc(s, func(m string) string {
		b, err := strconv.ParseUint(m[2:], 16, 8)
		if err != nil {
			return m
		}
		return string(rune(b))
	})
}
