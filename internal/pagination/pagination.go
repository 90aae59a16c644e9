// Package pagination splits ordered sequences into fixed-size numbered pages.
//
// Page numbers are 1-based. Requests for an absent, malformed or
// non-positive page resolve to page 1; requests past the end resolve to the
// last page. An empty sequence still has exactly one (empty) page.
package pagination

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPageSize is used when a caller passes a non-positive size.
const DefaultPageSize = 5

// Page is one window of an ordered sequence.
type Page[T any] struct {
	Items    []T `json:"items"`
	Number   int `json:"number"`
	NumPages int `json:"numPages"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// PreviousNumber returns Number-1, or 0 when there is no previous page.
func (p Page[T]) PreviousNumber() int {
	if !p.HasPrevious() {
		return 0
	}
	return p.Number - 1
}

// NextNumber returns Number+1, or 0 when there is no next page.
func (p Page[T]) NextNumber() int {
	if !p.HasNext() {
		return 0
	}
	return p.Number + 1
}

// ParseNumber interprets a raw page parameter. Anything that is not a
// positive integer yields 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NumPages returns ceil(total/size), never less than 1.
func NumPages(total, size int) int {
	size = normalizeSize(size)
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Clamp resolves a requested page number against a sequence of total items.
func Clamp(requested, total, size int) int {
	last := NumPages(total, size)
	switch {
	case requested < 1:
		return 1
	case requested > last:
		return last
	default:
		return requested
	}
}

// Offset returns the zero-based index of the first item on page number.
func Offset(number, size int) int {
	return (number - 1) * normalizeSize(size)
}

// PageOf returns the page holding the item at 1-based position.
func PageOf(position, size int) int {
	if position < 1 {
		return 1
	}
	return (position-1)/normalizeSize(size) + 1
}

// Paginate slices an in-memory sequence.
func Paginate[T any](items []T, raw string, size int) Page[T] {
	size = normalizeSize(size)
	total := len(items)
	number := Clamp(ParseNumber(raw), total, size)

	start := Offset(number, size)
	end := min(start+size, total)

	window := make([]T, 0, end-start)
	window = append(window, items[start:end]...)

	return Page[T]{Items: window, Number: number, NumPages: NumPages(total, size), PageSize: size, Total: total}
}

// Source is a lazily evaluated ordered sequence, typically backed by a query.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// Fetch counts src, resolves the requested page and loads only its window.
func Fetch[T any](ctx context.Context, src Source[T], raw string, size int) (Page[T], error) {
	size = normalizeSize(size)

	total, err := src.Count(ctx)
	if err != nil {
		return Page[T]{}, fmt.Errorf("count: %w", err)
	}

	number := Clamp(ParseNumber(raw), total, size)
	page := Page[T]{Items: []T{}, Number: number, NumPages: NumPages(total, size), PageSize: size, Total: total}
	if total == 0 {
		return page, nil
	}

	items, err := src.Slice(ctx, Offset(number, size), size)
	if err != nil {
		return Page[T]{}, fmt.Errorf("slice page %d: %w", number, err)
	}
	if items != nil {
		page.Items = items
	}
	return page, nil
}

// SourceFuncs adapts a pair of closures to Source.
type SourceFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int, error)
	SliceFunc func(ctx context.Context, offset, limit int) ([]T, error)
}

func (s SourceFuncs[T]) Count(ctx context.Context) (int, error) { return s.CountFunc(ctx) }

func (s SourceFuncs[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	return s.SliceFunc(ctx, offset, limit)
}

func normalizeSize(size int) int {
	if size < 1 {
		return DefaultPageSize
	}
	return size
}
