package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/esoxjem/luego"
)

// Ensure LoggingExtractor implements luego.Extractor.
var _ luego.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-operation logging.
type LoggingExtractor struct {
	next   luego.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next luego.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// FetchMetadata delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) FetchMetadata(ctx context.Context, url string) (*luego.ArticleMetadata, error) {
	begin := time.Now()
	meta, err := e.next.FetchMetadata(ctx, url)
	if err != nil {
		e.logger.Error("fetch metadata",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("fetch metadata",
		"url", url,
		"title", meta.Title,
		"duration", time.Since(begin),
	)
	return meta, nil
}

// FetchContent delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) FetchContent(ctx context.Context, url string) (*luego.ArticleContent, error) {
	begin := time.Now()
	content, err := e.next.FetchContent(ctx, url)
	if err != nil {
		e.logger.Error("fetch content",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("fetch content",
		"url", url,
		"title", content.Title,
		"chars", len(content.Content),
		"words", content.WordCount,
		"duration", time.Since(begin),
	)
	return content, nil
}
