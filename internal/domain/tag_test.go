package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []string
		wantMsg string
	}{
		{name: "single", raw: "go", want: []string{"go"}},
		{name: "trims and drops empty", raw: " go ,, rust ,", want: []string{"go", "rust"}},
		{name: "keeps case", raw: "Go, PostgreSQL", want: []string{"Go", "PostgreSQL"}},
		{name: "dots and dashes", raw: "c++x, node.js", wantMsg: `tag "c++x"`},
		{name: "allowed punctuation", raw: "node.js, my_tag, a-b", want: []string{"node.js", "my_tag", "a-b"}},
		{name: "cyrillic", raw: "тактика.2, АПЛ", want: []string{"тактика.2", "АПЛ"}},
		{name: "empty", raw: "  , ,", wantMsg: "add at least one tag"},
		{name: "five is fine", raw: "a,b,c,d,e", want: []string{"a", "b", "c", "d", "e"}},
		{name: "six is too many", raw: "a,b,c,d,e,f", wantMsg: "max 5 tags"},
		{name: "case-insensitive duplicate", raw: "Java, java, Go", wantMsg: "duplicate tag: java"},
		{name: "space inside", raw: "ultimate team", wantMsg: `tag "ultimate team"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, verr := ParseTags(tt.raw)
			if tt.wantMsg != "" {
				if verr == nil {
					t.Fatalf("ParseTags(%q) = %v, want error containing %q", tt.raw, got, tt.wantMsg)
				}
				if !errors.Is(verr, ErrValidation) {
					t.Fatalf("error does not wrap ErrValidation: %v", verr)
				}
				if verr.Errors[0].Field != "tags" {
					t.Errorf("field: got %q, want tags", verr.Errors[0].Field)
				}
				if !strings.Contains(verr.Errors[0].Message, tt.wantMsg) {
					t.Errorf("message: got %q, want it to contain %q", verr.Errors[0].Message, tt.wantMsg)
				}
				return
			}
			if verr != nil {
				t.Fatalf("ParseTags(%q): unexpected error %v", tt.raw, verr)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidTagName_Length(t *testing.T) {
	t.Parallel()

	if !ValidTagName(strings.Repeat("я", MaxTagLength)) {
		t.Error("32 cyrillic characters should be valid")
	}
	if ValidTagName(strings.Repeat("a", MaxTagLength+1)) {
		t.Error("33 characters should be invalid")
	}
	if ValidTagName("") {
		t.Error("empty name should be invalid")
	}
}

func TestValidUsername(t *testing.T) {
	t.Parallel()

	valid := []string{"bob", "user_42", strings.Repeat("x", 30)}
	invalid := []string{"ab", "with space", "кириллица", strings.Repeat("x", 31), "dash-ed"}

	for _, s := range valid {
		if !ValidUsername(s) {
			t.Errorf("ValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidUsername(s) {
			t.Errorf("ValidUsername(%q) = true, want false", s)
		}
	}
}
