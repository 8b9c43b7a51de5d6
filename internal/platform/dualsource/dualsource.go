// Package dualsource reads a view from the database first and from markdown
// only when the database has nothing. Reads never fail the caller.
package dualsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/metrics"
)

type Source string

const (
	SourceDB               Source = "db"
	SourceMarkdown         Source = "markdown"
	SourceMarkdownFallback Source = "markdown-fallback"
	SourceEmpty            Source = "empty"
)

// Reader loads one side of a view.
type Reader[T any] func(ctx context.Context) ([]T, error)

type Request[T any] struct {
	Domain   string
	DB       Reader[T]
	Markdown Reader[T]
}

// Result.Items is never nil.
type Result[T any] struct {
	Items  []T
	Source Source
}

// Resolve calls the database reader once. A non-empty answer is returned as
// is and markdown is not read. Otherwise the markdown reader is called once.
// An erroring database is tagged markdown-fallback when markdown answers.
func Resolve[T any](ctx context.Context, log *logger.Logger, req Request[T]) Result[T] {
	if log == nil {
		log = logger.Nop()
	}
	dbFailed := false
	if req.DB != nil {
		items, err := SoftRead(ctx, log, req.Domain+".db", func(ctx context.Context) ([]T, error) {
			return req.DB(ctx)
		})
		if err != nil {
			dbFailed = true
		} else if len(items) > 0 {
			return finish(log, req.Domain, items, SourceDB)
		}
	}

	if req.Markdown != nil {
		items, _ := SoftRead(ctx, log, req.Domain+".markdown", func(ctx context.Context) ([]T, error) {
			return req.Markdown(ctx)
		})
		if len(items) > 0 {
			if dbFailed {
				return finish(log, req.Domain, items, SourceMarkdownFallback)
			}
			return finish(log, req.Domain, items, SourceMarkdown)
		}
	}
	return finish(log, req.Domain, []T{}, SourceEmpty)
}

func finish[T any](log *logger.Logger, domain string, items []T, source Source) Result[T] {
	metrics.SourceResolutions.WithLabelValues(domain, string(source)).Inc()
	log.Debug("dual-source read resolved", "domain", domain, "source", string(source), "items", len(items))
	return Result[T]{Items: items, Source: source}
}

// SoftRead runs fn and converts panics into errors. Failures are logged and
// counted; the zero value is returned with the error so callers can tell an
// empty answer from a failed one.
func SoftRead[T any](ctx context.Context, log *logger.Logger, name string, fn func(context.Context) (T, error)) (out T, err error) {
	if log == nil {
		log = logger.Nop()
	}
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = fmt.Errorf("%s: panic: %v", name, r)
		}
		if err != nil {
			metrics.SoftReadFailures.WithLabelValues(name).Inc()
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("soft read: source missing", "read", name, "error", err)
			} else {
				log.Warn("soft read failed", "read", name, "error", err)
			}
		}
	}()
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return fn(ctx)
}

// Backfill fills a field that is missing on some primary records from a
// secondary lookup keyed by key(item). The lookup runs at most once and only
// when an item needs it; a failed lookup leaves items unchanged.
func Backfill[T any, V any](
	ctx context.Context,
	log *logger.Logger,
	name string,
	items []T,
	needs func(T) bool,
	lookup func(context.Context) (map[string]V, error),
	key func(T) string,
	apply func(T, V) T,
) []T {
	pending := false
	for _, item := range items {
		if needs(item) {
			pending = true
			break
		}
	}
	if !pending {
		return items
	}
	values, err := SoftRead(ctx, log, name, lookup)
	if err != nil || len(values) == 0 {
		return items
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item
		if !needs(item) {
			continue
		}
		if v, ok := values[key(item)]; ok {
			out[i] = apply(item, v)
		}
	}
	return out
}
