package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kcparse"
)

var _ kcparse.Classifier = (*Classifier)(nil)

// Classifier identifies the carousel kind from the data-attrid marker of
// the first carousel root in a document.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify parses html and returns its carousel kind.
// Returns KindItems if the markup cannot be parsed or has no known marker.
func (c *Classifier) Classify(html string) kcparse.Kind {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return kcparse.KindItems
	}
	return c.ClassifyDocument(doc)
}

// ClassifyDocument returns the carousel kind of an already parsed document.
func (c *Classifier) ClassifyDocument(doc *goquery.Document) kcparse.Kind {
	marker, ok := doc.Find(kcparse.MarkerSelector).First().Attr(kcparse.MarkerAttr)
	if !ok {
		return kcparse.KindItems
	}
	return kcparse.Classify(marker)
}
