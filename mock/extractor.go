package mock

import "github.com/fwojciec/kcparse"

var _ kcparse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kcparse.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*kcparse.Result, error)
}

func (e *Extractor) Extract(html string) (*kcparse.Result, error) {
	return e.ExtractFn(html)
}

var _ kcparse.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of kcparse.Classifier.
type Classifier struct {
	ClassifyFn func(html string) kcparse.Kind
}

func (c *Classifier) Classify(html string) kcparse.Kind {
	return c.ClassifyFn(html)
}
