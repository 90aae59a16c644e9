package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTagsPerQuestion is the upper bound on tags attached to a question.
	MaxTagsPerQuestion = 5
	// MaxTagLength is measured in characters, not bytes.
	MaxTagLength = 32
)

// Tag is a uniquely named label attachable to questions.
// Names are stored and looked up exactly as submitted (case-sensitive).
type Tag struct {
	ID   int64
	Name string
}

// TagCount is a tag together with the number of questions carrying it.
type TagCount struct {
	Tag
	Questions int
}

// Letters (any script), digits, underscore, dot and dash.
var tagPattern = regexp.MustCompile(`^[\p{L}\p{N}_.\-]+$`)

// ValidTagName reports whether name satisfies the character set and length rule.
func ValidTagName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= MaxTagLength && tagPattern.MatchString(name)
}

// ParseTags splits a comma-separated tag list, trims each entry and drops
// empty ones. Duplicates are detected case-insensitively: the first spelling
// wins and any later duplicate is reported as an error rather than dropped.
//
// The returned names keep their original case, so "Go" and "go" submitted in
// different questions still become two distinct stored tags.
func ParseTags(raw string) ([]string, *ValidationError) {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, NewValidationError("tags", "add at least one tag")
	}
	if len(names) > MaxTagsPerQuestion {
		return nil, NewValidationError("tags", fmt.Sprintf("max %d tags", MaxTagsPerQuestion))
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !ValidTagName(name) {
			return nil, NewValidationError("tags",
				fmt.Sprintf("tag %q may contain letters, digits, '.', '_' and '-' (up to %d characters)", name, MaxTagLength))
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, NewValidationError("tags", fmt.Sprintf("duplicate tag: %s", name))
		}
		seen[key] = struct{}{}
	}

	return names, nil
}
