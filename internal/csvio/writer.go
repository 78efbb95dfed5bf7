// SPDX-License-Identifier: Apache-2.0

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillsproj/skills-reshape/internal/survey"
)

// maxVersions bounds the collision-avoidance suffix search: the base name
// plus suffixes _1 through _99.
const maxVersions = 100

// ErrNoAvailableName signals that every versioned candidate for an output
// filename already exists. Callers treat this as non-fatal and skip the file.
var ErrNoAvailableName = errors.New("no available output filename")

// OutputName builds the output filename for a process and team,
// e.g. "current_skills_Platform.csv".
func OutputName(process, teamName string) string {
	return process + "_" + teamName + ".csv"
}

// WriteVersioned writes a table as CSV to path, avoiding collisions with
// existing files: if path exists, version suffixes derived from the original
// base name (_1, _2, ...) are tried in order. Returns the name actually
// written, or ErrNoAvailableName if all candidates exist.
func WriteVersioned(path string, table survey.Table) (string, error) {
	target, err := versionedName(path)
	if err != nil {
		return "", err
	}
	if err := writeCSV(target, table); err != nil {
		return "", err
	}
	return target, nil
}

func versionedName(path string) (string, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	candidate := path
	for version := 1; version < maxVersions; version++ {
		if !fileExists(candidate) {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d%s", base, version, ext)
	}
	if !fileExists(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %s and %d versioned names all exist", ErrNoAvailableName, path, maxVersions-1)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeCSV(path string, table survey.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
