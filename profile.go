package kcparse

import "strings"

// Carousel marker attribute and the prefix every carousel root carries.
const (
	MarkerAttr   = "data-attrid"
	MarkerPrefix = "kc:"
)

// MarkerSelector matches any carousel root regardless of its type.
const MarkerSelector = `div[` + MarkerAttr + `^="` + MarkerPrefix + `"]`

// Kind identifies a carousel type and doubles as the result collection key.
type Kind string

// Supported carousel kinds.
const (
	KindArtworks Kind = "artworks"
	KindAlbums   Kind = "albums"
	KindBooks    Kind = "books"
	KindFilms    Kind = "films"
	KindItems    Kind = "items"
)

// Profile is the extraction configuration selected for a document.
type Profile struct {
	Kind Kind

	// RootSelector locates the carousel root for this kind.
	RootSelector string

	// ContainerSelector restricts which nodes may be item containers.
	ContainerSelector string
}

// kindMarkers is checked in order; the first sub-prefix contained in the
// marker value wins.
var kindMarkers = []struct {
	marker string
	kind   Kind
}{
	{"/visual_art/", KindArtworks},
	{"/music/", KindAlbums},
	{"/book/", KindBooks},
	{"/film/", KindFilms},
}

var profiles = map[Kind]Profile{
	KindArtworks: newProfile(KindArtworks, "/visual_art/"),
	KindAlbums:   newProfile(KindAlbums, "/music/"),
	KindBooks:    newProfile(KindBooks, "/book/"),
	KindFilms:    newProfile(KindFilms, "/film/"),
	KindItems:    {Kind: KindItems, RootSelector: MarkerSelector, ContainerSelector: "div"},
}

func newProfile(kind Kind, marker string) Profile {
	return Profile{
		Kind:              kind,
		RootSelector:      `div[` + MarkerAttr + `^="` + MarkerPrefix + marker + `"]`,
		ContainerSelector: "div",
	}
}

// Classify maps a carousel marker value (e.g. "kc:/music/artist:albums") to
// a Kind. Unknown or empty markers classify as KindItems.
func Classify(marker string) Kind {
	if !strings.HasPrefix(marker, MarkerPrefix) {
		return KindItems
	}
	for _, m := range kindMarkers {
		if strings.Contains(marker, m.marker) {
			return m.kind
		}
	}
	return KindItems
}

// ProfileFor returns the profile for kind, falling back to the default
// profile for unknown kinds.
func ProfileFor(kind Kind) Profile {
	if p, ok := profiles[kind]; ok {
		return p
	}
	return profiles[KindItems]
}

// Kinds returns all supported kinds in classification order, default last.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindMarkers)+1)
	for _, m := range kindMarkers {
		kinds = append(kinds, m.kind)
	}
	return append(kinds, KindItems)
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", Errorf(EINVALID, "unknown carousel kind %q", s)
}

// Mode selects how names and dates are extracted.
type Mode string

// Extraction modes.
const (
	// ModeName extracts the name only; a trailing year is stripped and dropped.
	ModeName Mode = "name"

	// ModeNameDate splits a trailing year off the name into Item.Date.
	ModeNameDate Mode = "name-date"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeName, ModeNameDate:
		return Mode(s), nil
	}
	return "", Errorf(EINVALID, "unknown extraction mode %q", s)
}
