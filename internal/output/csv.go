// Package output provides CSV output formatting for provctl.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter formats output as comma-separated values, suitable for
// piping into other tooling.
type CSVFormatter struct {
	writer *csv.Writer
}

// NewCSVFormatter creates a new CSV formatter writing to w.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: csv.NewWriter(w)}
}

// WriteHeader writes the CSV column headers.
func (c *CSVFormatter) WriteHeader(headers []string) error {
	return c.writer.Write(headers)
}

// WriteRow writes one CSV data row.
func (c *CSVFormatter) WriteRow(row []string) error {
	return c.writer.Write(row)
}

// Flush flushes buffered rows.
func (c *CSVFormatter) Flush() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// PrintCSV writes headers and rows as one CSV document.
func PrintCSV(w io.Writer, headers []string, rows [][]string) error {
	formatter := NewCSVFormatter(w)
	if err := formatter.WriteHeader(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := formatter.WriteRow(row); err != nil {
			return err
		}
	}
	return formatter.Flush()
}
