// Package output provides output formatting for provctl.
//
// Purpose:
//
//	Render command results as a human-readable table (default), CSV for
//	scripting, or JSON. Formatting is consistent across all commands.
//
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TableFormatter formats output as a human-readable table.
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
	}
}

// WriteHeader writes table headers.
func (t *TableFormatter) WriteHeader(headers ...string) error {
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, h)
	}
	fmt.Fprintln(t.writer)
	return nil
}

// WriteRow writes a table row.
func (t *TableFormatter) WriteRow(values ...string) error {
	for i, v := range values {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, v)
	}
	fmt.Fprintln(t.writer)
	return nil
}

// Flush flushes the table output.
func (t *TableFormatter) Flush() error {
	return t.writer.Flush()
}

// PrintTable writes headers and rows as one table.
func PrintTable(w io.Writer, headers []string, rows [][]string) error {
	formatter := NewTableFormatter(w)
	if err := formatter.WriteHeader(headers...); err != nil {
		return err
	}
	for _, row := range rows {
		if err := formatter.WriteRow(row...); err != nil {
			return err
		}
	}
	return formatter.Flush()
}
