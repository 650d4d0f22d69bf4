package report

import (
	"io"

	"github.com/smetj/ketchup/internal/model"
)

// Writer outputs a set of result rows in one format.
// Implementations return the number of bytes written and any error.
type Writer interface {
	Write(rows []model.Row) (int, error)
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
