// Package tsv writes tab-separated rows with a fixed, quote-free layout.
//
// Every row is written as its fields joined by a single tab and terminated by
// a single line feed. Fields are emitted byte for byte: nothing is quoted,
// escaped or reformatted. Fields that could only be represented with quoting
// are rejected instead of being silently altered.
package tsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Delimiter separates fields within a row.
	Delimiter = '\t'
	// Terminator ends every row, including the last one.
	Terminator = '\n'
)

// Errors returned by [Writer.Write].
var (
	ErrEmptyRow          = errors.New("row has no fields")
	ErrFieldNeedsQuoting = errors.New("field cannot be written without quoting")
)

// Row is an ordered list of fields. Rows in the same file may have
// different lengths.
type Row []string

// Writer writes rows to an underlying [io.Writer].
//
// Output is buffered; call [Writer.Flush] (or use [Writer.WriteAll]) to make
// sure all rows reach the underlying writer.
type Writer struct {
	csv  *csv.Writer
	rows int
}

// NewWriter returns a [Writer] that writes to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	cw.UseCRLF = false

	return &Writer{csv: cw}
}

// Write writes a single row. The row is validated before anything is
// written, so a rejected row leaves the output untouched.
func (w *Writer) Write(row Row) error {
	if err := validateRow(row); err != nil {
		return fmt.Errorf("row %d: %w", w.rows+1, err)
	}

	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("row %d: %w", w.rows+1, err)
	}

	w.rows++

	return nil
}

// WriteAll writes all rows and flushes.
func (w *Writer) WriteAll(rows []Row) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Flush writes any buffered data and reports any error that occurred during
// a previous Write or the flush itself.
func (w *Writer) Flush() error {
	w.csv.Flush()

	return w.csv.Error()
}

// Rows returns the number of rows accepted so far.
func (w *Writer) Rows() int {
	return w.rows
}

// Encode returns rows encoded in memory.
func Encode(rows []Row) ([]byte, error) {
	var buf bytes.Buffer

	if err := NewWriter(&buf).WriteAll(rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func validateRow(row Row) error {
	// A single empty field would encode as a blank line.
	if len(row) == 0 || (len(row) == 1 && row[0] == "") {
		return ErrEmptyRow
	}

	for i, field := range row {
		if needsQuoting(field) {
			return fmt.Errorf("%w: field %d %q", ErrFieldNeedsQuoting, i+1, field)
		}
	}

	return nil
}

// needsQuoting mirrors the cases in which encoding/csv would quote a field.
func needsQuoting(field string) bool {
	if field == "" {
		return false
	}

	if field == `\.` || strings.ContainsAny(field, "\t\"\r\n") {
		return true
	}

	r, _ := utf8.DecodeRuneInString(field)

	return unicode.IsSpace(r)
}
