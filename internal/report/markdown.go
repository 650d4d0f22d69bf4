package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/smetj/ketchup/internal/model"
)

// MarkdownWriter outputs rows as a Markdown table, for sharing or pasting
// into documentation. Permalinks become regular Markdown links.
type MarkdownWriter struct {
	baseWriter

	typeColumn bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTypeColumn toggles the Type column.
func WithMarkdownTypeColumn(enabled bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.typeColumn = enabled
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the sorted, deduplicated Markdown table.
func (w *MarkdownWriter) Write(rows []model.Row) (int, error) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		// Table cells cannot hold literal newlines in Markdown.
		message := strings.ReplaceAll(r.Message, "\n", "<br>")
		cell := []string{r.Date, r.Channel, r.User, fmt.Sprintf("[%s](%s)", message, r.Permalink)}
		if w.typeColumn {
			cell = append(cell, r.Type)
		}
		cells = append(cells, cell)
	}
	SortRows(cells, Level)
	RemoveLeadingDupes(cells, Level)

	header := []string{"Date", "Channel", "User", "Message"}
	if w.typeColumn {
		header = append(header, "Type")
	}

	md := markdown.NewMarkdown(w.output)
	md.H1(Title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: header,
		Rows:   cells,
	})

	return len(md.String()), md.Build()
}
