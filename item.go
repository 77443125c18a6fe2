package kcparse

import "encoding/json"

// Item is a single entity extracted from a knowledge carousel.
type Item struct {
	Name       string   `json:"name" yaml:"name"`
	Date       string   `json:"date,omitempty" yaml:"date,omitempty"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Link       string   `json:"link,omitempty" yaml:"link,omitempty"`
	Img        string   `json:"img,omitempty" yaml:"img,omitempty"`
}

// Valid reports whether the item carries a name. Items without a name are
// never included in a Result.
func (i *Item) Valid() bool {
	return i != nil && i.Name != ""
}

// Result is the collection of items extracted from one document. It encodes
// as a mapping with exactly one key (the profile's Kind) to the item list.
type Result struct {
	Key   Kind
	Items []*Item
}

// NewResult returns an empty collection for the given key.
func NewResult(key Kind) *Result {
	return &Result{Key: key, Items: []*Item{}}
}

// Add appends item if it is valid and reports whether it was added.
func (r *Result) Add(item *Item) bool {
	if !item.Valid() {
		return false
	}
	if item.Extensions == nil {
		item.Extensions = []string{}
	}
	r.Items = append(r.Items, item)
	return true
}

// Len returns the number of items in the collection.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// Map returns the single-key mapping representation of the result.
func (r *Result) Map() map[string][]*Item {
	items := r.Items
	if items == nil {
		items = []*Item{}
	}
	return map[string][]*Item{string(r.Key): items}
}

// MarshalJSON encodes the result as {"<key>": [...]}.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// UnmarshalJSON decodes a single-key mapping produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var m map[string][]*Item
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return Errorf(EINVALID, "result must have exactly one key, got %d", len(m))
	}
	for k, items := range m {
		r.Key = Kind(k)
		r.Items = items
	}
	if r.Items == nil {
		r.Items = []*Item{}
	}
	return nil
}

// MarshalYAML encodes the result as a single-key mapping.
func (r *Result) MarshalYAML() (any, error) {
	return r.Map(), nil
}
