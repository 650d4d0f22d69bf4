package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/smetj/ketchup/internal/model"
)

// JSONWriter outputs rows as a JSON document for tool integration.
// Rows are emitted verbatim, without the visual leading-dupe blanking, so
// machine consumers see full values.
type JSONWriter struct {
	baseWriter

	version string
	now     func() time.Time
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// The version string is embedded in the document for provenance.
func NewJSONWriter(output io.Writer, version string) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
		version:    version,
		now:        time.Now,
	}
}

// jsonReport wraps the rows with run metadata.
type jsonReport struct {
	Version     string      `json:"version"`
	GeneratedAt time.Time   `json:"generated_at"`
	Results     []model.Row `json:"results"`
}

// Write marshals the rows with metadata and a trailing newline.
func (w *JSONWriter) Write(rows []model.Row) (int, error) {
	if rows == nil {
		rows = []model.Row{}
	}

	data, err := json.MarshalIndent(jsonReport{
		Version:     w.version,
		GeneratedAt: w.now().UTC(),
		Results:     rows,
	}, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')

	return w.output.Write(data)
}
