package domain

import (
	"cmp"
	"slices"
)

// FeedMode selects how a question feed is filtered and ordered.
type FeedMode int

const (
	// FeedNew orders by creation time, newest first.
	FeedNew FeedMode = iota
	// FeedHot orders by like count, then creation time, both descending.
	FeedHot
	// FeedTag filters by an exact tag name and orders like FeedNew.
	FeedTag
)

func (m FeedMode) String() string {
	switch m {
	case FeedNew:
		return "new"
	case FeedHot:
		return "hot"
	case FeedTag:
		return "tag"
	default:
		return "unknown"
	}
}

// FeedQuery describes one feed. Tag is only meaningful for FeedTag.
type FeedQuery struct {
	Mode FeedMode
	Tag  string
}

// TopTags ranks a snapshot of tag counts and returns at most limit entries,
// most used first; ties are broken by name so the result is deterministic.
// The snapshot is not modified.
func TopTags(snapshot []TagCount, limit int) []TagCount {
	if limit <= 0 || len(snapshot) == 0 {
		return []TagCount{}
	}

	ranked := slices.Clone(snapshot)
	slices.SortStableFunc(ranked, func(a, b TagCount) int {
		if c := cmp.Compare(b.Questions, a.Questions); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
