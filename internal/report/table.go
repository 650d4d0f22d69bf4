package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/smetj/ketchup/internal/model"
)

// Title is printed above the terminal table.
const Title = "Slack questions to catch up with."

// Hyperlink wraps text in an OSC 8 terminal escape sequence so terminals
// render it as a clickable link targeting url.
func Hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// TableWriter renders rows as a terminal table with clickable permalinks.
type TableWriter struct {
	baseWriter

	// typeColumn adds the Type column naming the search definition that
	// produced each row. Set when more than one definition feeds a run.
	typeColumn bool
}

// TableWriterOption configures a TableWriter.
type TableWriterOption func(*TableWriter)

// WithTypeColumn toggles the Type column.
func WithTypeColumn(enabled bool) TableWriterOption {
	return func(w *TableWriter) {
		w.typeColumn = enabled
	}
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer, opts ...TableWriterOption) *TableWriter {
	w := &TableWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the sorted, deduplicated table.
func (w *TableWriter) Write(rows []model.Row) (int, error) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cell := []string{r.Date, r.Channel, r.User, Hyperlink(r.Permalink, r.Message)}
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

	// Render into a buffer first so the byte count reflects what actually
	// reached the output writer.
	var buf bytes.Buffer
	fmt.Fprintln(&buf, Title)

	table := tablewriter.NewTable(&buf)
	table.Header(header)
	for _, cell := range cells {
		if err := table.Append(cell); err != nil {
			return 0, err
		}
	}
	if err := table.Render(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
