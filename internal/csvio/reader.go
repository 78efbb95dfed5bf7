// SPDX-License-Identifier: Apache-2.0

// Package csvio handles survey CSV input and versioned CSV output. The
// survey export comes from a forms tool: UTF-8 with an optional BOM
// signature, non-breaking spaces inside cells, and ragged rows.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read parses CSV content into rows. Every cell has non-breaking spaces
// replaced with regular spaces and is whitespace-trimmed. Rows may have
// varying field counts.
func Read(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing CSV: %w", err)
		}
		for i, cell := range record {
			cell = strings.ReplaceAll(cell, "\u00a0", " ")
			record[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// ReadFile reads and parses a survey CSV file.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}
	return rows, nil
}
