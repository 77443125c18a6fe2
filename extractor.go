package kcparse

// Extractor extracts carousel items from rendered search result pages.
type Extractor interface {
	// Extract parses raw HTML and returns the items of its first carousel.
	// Only missing input is reported as an error; structural gaps yield an
	// empty Result or empty optional fields.
	Extract(html string) (*Result, error)
}

// Classifier identifies the carousel kind of a page.
type Classifier interface {
	// Classify returns the kind of the first carousel in html.
	// Returns KindItems if no carousel marker is recognized.
	Classify(html string) Kind
}
