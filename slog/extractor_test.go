package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/kcparse"
	"github.com/fwojciec/kcparse/mock"
	kcslog "github.com/fwojciec/kcparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs key and item count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := kcparse.NewResult(kcparse.KindAlbums)
		want.Add(&kcparse.Item{Name: "Nevermind"})
		want.Add(&kcparse.Item{Name: "In Utero"})
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*kcparse.Result, error) {
				return want, nil
			},
		}

		e := kcslog.NewLoggingExtractor(inner, logger)
		result, err := e.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, want, result)
		output := buf.String()
		assert.Contains(t, output, "carousel extraction")
		assert.Contains(t, output, "key=albums")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error without result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*kcparse.Result, error) {
				return nil, kcparse.Errorf(kcparse.EINVALID, "html content required")
			},
		}

		e := kcslog.NewLoggingExtractor(inner, logger)
		_, err := e.Extract("")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "html content required")
	})
}

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.Classifier{
		ClassifyFn: func(html string) kcparse.Kind {
			return kcparse.KindFilms
		},
	}

	c := kcslog.NewLoggingClassifier(inner, logger)

	assert.Equal(t, kcparse.KindFilms, c.Classify("<html></html>"))
	output := buf.String()
	assert.Contains(t, output, "carousel classification")
	assert.Contains(t, output, "kind=films")
}
