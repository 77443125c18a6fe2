// Package goquery implements carousel item extraction on top of the
// github.com/PuerkitoBio/goquery document model.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kcparse"
)

var _ kcparse.Extractor = (*Extractor)(nil)

// Extractor extracts carousel items from search result pages. It holds only
// configuration and is safe for concurrent use; every extraction owns its
// traversal state and script cache.
type Extractor struct {
	classifier *Classifier
	registry   *Registry
	mode       kcparse.Mode
	host       string
	kind       kcparse.Kind
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMode sets the name/date extraction mode. Defaults to kcparse.ModeName.
func WithMode(mode kcparse.Mode) Option {
	return func(e *Extractor) {
		e.mode = mode
	}
}

// WithHost sets the host prepended to relative search links.
// Defaults to DefaultHost.
func WithHost(host string) Option {
	return func(e *Extractor) {
		e.host = strings.TrimSuffix(host, "/")
	}
}

// WithKind forces a profile instead of classifying each document.
func WithKind(kind kcparse.Kind) Option {
	return func(e *Extractor) {
		e.kind = kind
	}
}

// WithRegistry sets the registry profiles are looked up in.
func WithRegistry(r *Registry) Option {
	return func(e *Extractor) {
		e.registry = r
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		classifier: NewClassifier(),
		registry:   NewRegistry(),
		mode:       kcparse.ModeName,
		host:       DefaultHost,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the items of its carousel.
// Returns EINVALID if html is empty.
func (e *Extractor) Extract(html string) (*kcparse.Result, error) {
	if html == "" {
		return nil, kcparse.Errorf(kcparse.EINVALID, "html content required")
	}
	return e.ExtractReader(strings.NewReader(html))
}

// ExtractReader parses markup from r and returns the items of its carousel.
func (e *Extractor) ExtractReader(r io.Reader) (*kcparse.Result, error) {
	if r == nil {
		return nil, kcparse.Errorf(kcparse.EINVALID, "html source required")
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, kcparse.Errorf(kcparse.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(doc), nil
}

// ExtractDocument returns the carousel items of a parsed document.
// It never fails: missing structure yields an empty result.
func (e *Extractor) ExtractDocument(doc *goquery.Document) *kcparse.Result {
	kind := e.kind
	if kind == "" {
		kind = e.classifier.ClassifyDocument(doc)
	}
	profile := e.registry.Get(kind)
	result := kcparse.NewResult(profile.Kind)

	root := FindRoot(doc, profile)
	if root.Length() == 0 {
		return result
	}

	images := newImageResolver(doc.Selection, e.host)
	for _, container := range FindContainers(root, profile.ContainerSelector) {
		result.Add(e.extractItem(container, images))
	}
	return result
}

func (e *Extractor) extractItem(s *goquery.Selection, images *imageResolver) *kcparse.Item {
	name, year := extractName(s)
	item := &kcparse.Item{
		Name:       name,
		Extensions: extractExtensions(s, name),
		Link:       extractLink(s, e.host),
		Img:        images.resolve(s),
	}
	if e.mode == kcparse.ModeNameDate {
		if year == "" {
			year = extractDate(s)
		}
		item.Date = year
	}
	return item
}
