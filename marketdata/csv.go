// SPDX-License-Identifier: MIT

// Package marketdata reads price series from external files.
//
// LoadCSV accepts the usual daily-quote export layout
// (Date,Open,High,Low,Close,Adj Close,Volume) and returns one column as
// float64 prices in file order. Cells are parsed as decimals so values such
// as "1,234.50" are rejected instead of being silently truncated.
package marketdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors.
var (
	// ErrNoColumn indicates the requested column is absent from the header.
	ErrNoColumn = errors.New("marketdata: column not found")

	// ErrBadCell indicates a cell that is not a decimal number.
	ErrBadCell = errors.New("marketdata: malformed cell")

	// ErrEmpty indicates a file with no header or no usable rows.
	ErrEmpty = errors.New("marketdata: no data")
)

// LoadCSV reads column from a CSV stream with a header row. The column name
// is matched case-insensitively after trimming. Empty cells and "null"
// cells (missing quotes) are skipped.
func LoadCSV(r io.Reader, column string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header: %w", ErrEmpty)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := -1
	want := strings.ToLower(strings.TrimSpace(column))
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%q in %v: %w", column, header, ErrNoColumn)
	}

	var prices []float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if idx >= len(rec) {
			continue
		}
		cell := strings.TrimSpace(rec[idx])
		if cell == "" || strings.EqualFold(cell, "null") {
			continue
		}
		d, err := decimal.NewFromString(cell)
		if err != nil {
			return nil, fmt.Errorf("line %d, %s=%q: %w", line, column, cell, ErrBadCell)
		}
		prices = append(prices, d.InexactFloat64())
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("column %q: %w", column, ErrEmpty)
	}
	return prices, nil
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path, column string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file '%s': %w", path, err)
	}
	defer f.Close()
	return LoadCSV(f, column)
}
