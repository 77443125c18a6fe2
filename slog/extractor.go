package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/kcparse"
)

// Ensure LoggingExtractor implements kcparse.Extractor.
var _ kcparse.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   kcparse.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next kcparse.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(html string) (result *kcparse.Result, err error) {
	defer func(begin time.Time) {
		var key kcparse.Kind
		if result != nil {
			key = result.Key
		}
		e.logger.Info("carousel extraction",
			"key", string(key),
			"count", result.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

// Ensure LoggingClassifier implements kcparse.Classifier.
var _ kcparse.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   kcparse.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next kcparse.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the detected kind.
func (c *LoggingClassifier) Classify(html string) kcparse.Kind {
	begin := time.Now()
	kind := c.next.Classify(html)
	c.logger.Debug("carousel classification",
		"kind", string(kind),
		"duration", time.Since(begin),
	)
	return kind
}
