package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("emits rows verbatim with metadata", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "v1.2.3")
		w.now = func() time.Time { return time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC) }

		n, err := w.Write(testRows())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		var doc struct {
			Version     string    `json:"version"`
			GeneratedAt time.Time `json:"generated_at"`
			Results     []struct {
				Date      string `json:"date"`
				Message   string `json:"message"`
				Permalink string `json:"permalink"`
				Type      string `json:"type"`
			} `json:"results"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if doc.Version != "v1.2.3" {
			t.Errorf("expected version 'v1.2.3', got %q", doc.Version)
		}
		if len(doc.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(doc.Results))
		}
		// No visual blanking in machine output.
		if doc.Results[1].Date != "2023-01-01" {
			t.Errorf("expected full date in second result, got %q", doc.Results[1].Date)
		}
		if doc.Results[0].Permalink == "" || doc.Results[0].Type != "urgent" {
			t.Errorf("unexpected result %+v", doc.Results[0])
		}
	})

	t.Run("no rows yields an empty array", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, "v1.2.3").Write(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"results": []`) {
			t.Errorf("expected empty results array, got %s", buf.String())
		}
	})
}
