// Package save orchestrates saving pages and importing highlights: fetching
// with retry, tiered extraction, storage and archiving.
package save

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/bloom"
	"golang.org/x/sync/errgroup"
)

// Saver turns page requests into stored saves.
type Saver struct {
	Fetcher     stash.Fetcher
	Extractor   stash.Extractor
	Saves       stash.SaveService
	Archive     stash.SaveWriter
	RateLimiter stash.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration

	// MaxContentLength caps stored content in characters.
	// Zero uses the ExtractConfig default.
	MaxContentLength int

	// Logf, if set, receives retry messages.
	Logf LogFunc
}

// Request asks for a page to be saved.
type Request struct {
	UserID    string
	URL       string
	Highlight string
	Source    string

	// Prefetched, when set, is used instead of fetching the page.
	Prefetched *stash.Prefetched
}

// SavePage fetches, extracts and stores a single page. A highlight request
// stores the highlight text and no content.
func (s *Saver) SavePage(ctx context.Context, req Request) (*stash.Save, error) {
	if req.URL == "" || req.UserID == "" {
		return nil, stash.Errorf(stash.EINVALID, "url and user_id required")
	}

	article, err := s.article(ctx, req)
	if err != nil {
		return nil, err
	}

	save := s.newSave(req, article)
	if err := s.Saves.CreateSave(ctx, save); err != nil {
		return nil, err
	}
	if s.Archive != nil {
		if err := s.Archive.WriteSave(ctx, save); err != nil {
			return save, fmt.Errorf("archive save: %w", err)
		}
	}
	return save, nil
}

// article resolves the request's article from the prefetched payload or by
// fetching and extracting the page.
func (s *Saver) article(ctx context.Context, req Request) (*stash.Article, error) {
	if req.Prefetched != nil {
		return req.Prefetched.Article(req.URL), nil
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, NormalizeHost(req.URL)); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, req.URL, s.Fetcher.Fetch, s.Logf, delays)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errNoContent()
	}

	article, err := s.Extractor.Extract(html, req.URL)
	if err != nil {
		return nil, errNoContent()
	}
	return article, nil
}

func (s *Saver) newSave(req Request, article *stash.Article) *stash.Save {
	maxLen := s.MaxContentLength
	if maxLen <= 0 {
		maxLen = stash.DefaultExtractConfig().MaxContentLength
	}

	source := req.Source
	if source == "" {
		source = stash.SourceAPI
	}

	save := &stash.Save{
		UserID:      req.UserID,
		URL:         req.URL,
		Title:       article.Title,
		Excerpt:     article.Excerpt,
		Highlight:   req.Highlight,
		ImageURL:    article.ImageURL,
		SiteName:    article.SiteName,
		Author:      article.Author,
		PublishedAt: article.PublishedTime,
		Source:      source,
	}
	if req.Highlight == "" {
		save.Content = stash.Truncate(article.Content, maxLen)
	}
	return save
}

func errNoContent() error {
	return stash.Errorf(stash.ENOCONTENT, "Could not extract article content")
}

// Bloom filter sizing for in-run duplicate detection.
const (
	seenExpectedRequests   = 10000
	seenFalsePositiveRate  = 0.0001
	defaultSaveConcurrency = 4
)

// Result is the outcome of one request in SaveAll.
type Result struct {
	Request Request
	Save    *stash.Save
	Err     error

	// Skipped is set when the same request appeared earlier in the run.
	Skipped bool
}

// ProgressEvent reports progress during SaveAll.
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

// ProgressFunc is a callback for reporting SaveAll progress.
type ProgressFunc func(event ProgressEvent)

type indexedResult struct {
	position int
	result   Result
}

// SaveAll saves many pages concurrently. Results are returned in request
// order. A failing request never stops the others; repeated requests
// within the run are skipped.
func (s *Saver) SaveAll(ctx context.Context, reqs []Request, progress ProgressFunc) []Result {
	results := make([]Result, len(reqs))
	seen := bloom.NewFilter(seenExpectedRequests, seenFalsePositiveRate)

	var pending []int
	for i, req := range reqs {
		results[i].Request = req
		if seen.Seen(req.UserID + "\x00" + req.URL + "\x00" + req.Highlight) {
			results[i].Skipped = true
			continue
		}
		pending = append(pending, i)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultSaveConcurrency
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan indexedResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range pending {
			g.Go(func() error {
				save, err := s.SavePage(gctx, reqs[i])
				resultCh <- indexedResult{
					position: i,
					result:   Result{Request: reqs[i], Save: save, Err: err},
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	for r := range resultCh {
		results[r.position] = r.result
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			URL:       r.result.Request.URL,
		}
		if r.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results
}
