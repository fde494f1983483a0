// Package batch orchestrates saving many articles at once: fan-out over a
// URL list with bounded concurrency, per-domain rate limiting, retry with
// backoff, and storage of the extracted articles.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/esoxjem/luego"
)

// Saver extracts and stores a batch of articles.
type Saver struct {
	Extractor   luego.Extractor
	Articles    luego.ArticleService
	RateLimiter luego.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Result holds the outcome of a batch save.
type Result struct {
	Saved  int
	Failed int
	Words  int
}

// ProgressEvent reports progress during a batch save.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// saveResult holds the outcome of processing a single URL.
type saveResult struct {
	position int
	url      string
	content  *luego.ArticleContent
	err      error
}

// SaveAll extracts every URL concurrently and stores the results. Extraction
// failures are counted, not fatal; storage runs after collection so the
// single-writer database sees no concurrent inserts. The progress callback,
// if provided, receives events as the batch proceeds.
func (s *Saver) SaveAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan saveResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				result := s.processURL(gctx, i, u)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order.
	results := make([]saveResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			if result.err != nil {
				failedCount++
			}
			continue
		}

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
		}
		if result.err != nil {
			failedCount++
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	var savedCount int
	var totalWords int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		article := &luego.Article{
			URL:          result.url,
			Title:        result.content.Title,
			Description:  result.content.Description,
			Author:       result.content.Author,
			ThumbnailURL: result.content.ThumbnailURL,
			PublishedAt:  result.content.PublishedAt,
			WordCount:    result.content.WordCount,
			Content:      result.content.Content,
		}

		if err := s.Articles.CreateArticle(ctx, article); err != nil {
			failedCount++
			continue
		}

		savedCount++
		totalWords += article.WordCount
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:  savedCount,
		Failed: failedCount,
		Words:  totalWords,
	}, nil
}

// processURL rate limits and extracts a single URL.
func (s *Saver) processURL(ctx context.Context, position int, rawURL string) saveResult {
	result := saveResult{
		position: position,
		url:      rawURL,
	}

	if s.RateLimiter != nil {
		pageURL, err := url.Parse(rawURL)
		if err != nil {
			result.err = luego.Errorf(luego.EINVALID, "invalid URL %q: %v", rawURL, err)
			return result
		}
		if err := s.RateLimiter.Wait(ctx, pageURL.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	content, err := ExtractWithRetryDelays(ctx, rawURL, s.Extractor.FetchContent, s.Logger, delays)
	if err != nil {
		result.err = err
		return result
	}

	result.content = content
	return result
}
