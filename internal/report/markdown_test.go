package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smetj/ketchup/internal/model"
)

func TestMarkdownWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("renders heading and linked messages", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, WithMarkdownTypeColumn(true)).Write(testRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "# "+Title) {
			t.Error("expected H1 title in output")
		}
		if !strings.Contains(out, "[deploy broken?](https://example.slack.com/p1)") {
			t.Error("expected markdown link for the message")
		}
		if !strings.Contains(out, "urgent") {
			t.Error("expected type values in output")
		}
	})

	t.Run("newlines become line breaks inside cells", func(t *testing.T) {
		t.Parallel()
		rows := []model.Row{{
			Date: "2023-01-01", Channel: "general", User: "alice",
			Message: "line one?\nline two", Permalink: "https://example.slack.com/p1", Type: "urgent",
		}}

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(rows); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "line one?<br>line two") {
			t.Errorf("expected <br> in cell, got %s", buf.String())
		}
	})

	t.Run("repeated leading values render once", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(testRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(buf.String(), "alice"); got != 1 {
			t.Errorf("expected 'alice' once, got %d occurrences", got)
		}
	})
}
