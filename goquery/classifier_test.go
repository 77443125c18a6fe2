package goquery_test

import (
	"testing"

	"github.com/fwojciec/kcparse"
	"github.com/fwojciec/kcparse/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Classifier implements kcparse.Classifier at compile time.
var _ kcparse.Classifier = (*goquery.Classifier)(nil)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want kcparse.Kind
	}{
		{
			name: "visual art marker selects artworks",
			html: `<html><div data-attrid="kc:/visual_art/visual_artist:works">Test</div></html>`,
			want: kcparse.KindArtworks,
		},
		{
			name: "music marker selects albums",
			html: `<html><div data-attrid="kc:/music/artist:albums">Test</div></html>`,
			want: kcparse.KindAlbums,
		},
		{
			name: "book marker selects books",
			html: `<html><div data-attrid="kc:/book/author:books">Test</div></html>`,
			want: kcparse.KindBooks,
		},
		{
			name: "film marker selects films",
			html: `<html><div data-attrid="kc:/film/film_series:films">Test</div></html>`,
			want: kcparse.KindFilms,
		},
		{
			name: "unknown marker selects default",
			html: `<html><div data-attrid="kc:/unknown/type:items">Test</div></html>`,
			want: kcparse.KindItems,
		},
		{
			name: "missing marker selects default",
			html: `<html><div>No KC div</div></html>`,
			want: kcparse.KindItems,
		},
		{
			name: "only the first marker is inspected",
			html: `<html><div data-attrid="kc:/people/person:born"></div><div data-attrid="kc:/music/artist:albums"></div></html>`,
			want: kcparse.KindItems,
		},
		{
			name: "non-div marker is ignored",
			html: `<html><span data-attrid="kc:/music/artist:albums"></span></html>`,
			want: kcparse.KindItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := goquery.NewClassifier()

			assert.Equal(t, tt.want, c.Classify(tt.html))
		})
	}
}
