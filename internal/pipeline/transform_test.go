package pipeline

import (
	"regexp"
	"strings"
	"testing"
)

func TestCollapseBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "run of empty lines", in: "a\n\n\nb", want: "a\nb"},
		{name: "whitespace-only lines", in: "a\n \t\nb", want: "a\nb"},
		{name: "multiple runs", in: "a\n\nb\n\nc", want: "a\nb\nc"},
		{name: "no blank lines untouched", in: "a\nb", want: "a\nb"},
		{name: "single line untouched", in: "a", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := collapseBlankLines(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractSubstring(t *testing.T) {
	t.Parallel()

	t.Run("first capture group replaces the value", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`ticket (\d+)`)
		if got := extractSubstring(re, "please look at ticket 42 today"); got != "42" {
			t.Errorf("expected '42', got %q", got)
		}
	})

	t.Run("no match keeps the original text with a reason", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`(\d+)`)
		got := extractSubstring(re, "no digits here")
		if !strings.HasPrefix(got, "no digits here") {
			t.Errorf("expected original text retained, got %q", got)
		}
		if !strings.Contains(got, `(\d+)`) || !strings.Contains(got, "pattern did not match") {
			t.Errorf("expected pattern and reason in annotation, got %q", got)
		}
	})

	t.Run("pattern without capture group keeps the original text", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`\d+`)
		got := extractSubstring(re, "number 7")
		if !strings.HasPrefix(got, "number 7") {
			t.Errorf("expected original text retained, got %q", got)
		}
		if !strings.Contains(got, "no capture group") {
			t.Errorf("expected reason in annotation, got %q", got)
		}
	})
}
