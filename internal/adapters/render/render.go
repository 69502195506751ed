// Package render writes reports for people and for other programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/opsboard/internal/domain/types"
)

// Format selects how a report is written.
type Format string

// Formats.
const (
	JSON  Format = "json"
	Table Format = "table"
)

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, Table:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Writer handles output of reports.
type Writer struct {
	file   *os.File
	writer io.Writer
}

// NewWriter creates a writer on path; "" and "-" mean stdout.
func NewWriter(path string) (*Writer, error) {
	if path == "" || path == "-" {
		return &Writer{writer: os.Stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{file: file, writer: file}, nil
}

// NewWriterTo wraps an existing io.Writer. Close is a no-op.
func NewWriterTo(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// Write renders r in format f. Numbers are rounded here and nowhere else.
func (w *Writer) Write(r *types.Report, f Format) error {
	if r == nil {
		return fmt.Errorf("render: nil report")
	}
	switch f {
	case JSON:
		return w.writeJSON(Rounded(r))
	case Table:
		return w.writeTable(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func (w *Writer) writeJSON(r *types.Report) error {
	enc := json.NewEncoder(w.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Close closes the output file if it was opened.
func (w *Writer) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
