// SPDX-License-Identifier: Apache-2.0

package survey

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillsproj/skills-reshape/internal/mapping"
)

// Process names, as selected in the run configuration and used in output
// file naming.
const (
	ProcessMadLibs       = "mad_libs"
	ProcessCurrentSkills = "current_skills"
	ProcessFutureSkills  = "future_skills"
)

// AllProcesses lists every process in its canonical run order.
var AllProcesses = []string{ProcessMadLibs, ProcessCurrentSkills, ProcessFutureSkills}

// Reshaper turns respondent rows into one output dataset. BindHeader must
// be called with the header row before any Reshape call; the column tables
// it builds are read-only afterwards.
type Reshaper interface {
	Name() string
	BindHeader(header Row) error
	Reshape(row Row) error
	Output() Table
}

// NewReshaper constructs the named process's reshaper. The skills processes
// need the team mapping; mad_libs ignores it.
func NewReshaper(name string, tm mapping.TeamMapping) (Reshaper, error) {
	switch name {
	case ProcessMadLibs:
		return NewMadLibs(), nil
	case ProcessCurrentSkills:
		return NewCurrentSkills(tm), nil
	case ProcessFutureSkills:
		return NewFutureSkills(tm), nil
	}
	return nil, fmt.Errorf("unknown process %q", name)
}

// Pipeline streams survey rows through a set of reshapers in one pass.
type Pipeline struct {
	reshapers []Reshaper
	log       *slog.Logger
}

// NewPipeline creates a Pipeline over the provided reshapers.
func NewPipeline(reshapers ...Reshaper) *Pipeline {
	return &Pipeline{reshapers: reshapers, log: slog.Default()}
}

// Names returns the names of the registered reshapers.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.reshapers))
	for i, r := range p.reshapers {
		names[i] = r.Name()
	}
	return names
}

// RunResult is the output of a pipeline run.
type RunResult struct {
	// Outputs holds one rendered dataset per reshaper, keyed by process name.
	Outputs map[string]Table
	// RowCount is the number of data rows processed.
	RowCount int
}

// Run binds every reshaper against the header row, then feeds each data row
// to each reshaper once. Blank rows are skipped. Output row order follows
// input row order.
func (p *Pipeline) Run(rows []Row) (RunResult, error) {
	if len(rows) == 0 {
		return RunResult{}, errors.New("survey is empty: no header row")
	}

	for _, r := range p.reshapers {
		if err := r.BindHeader(rows[0]); err != nil {
			return RunResult{}, fmt.Errorf("binding header for %s: %w", r.Name(), err)
		}
	}

	processed := 0
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		for _, r := range p.reshapers {
			if err := r.Reshape(row); err != nil {
				return RunResult{}, fmt.Errorf("%s: %w", r.Name(), err)
			}
		}
		processed++
	}

	outputs := make(map[string]Table, len(p.reshapers))
	for _, r := range p.reshapers {
		outputs[r.Name()] = r.Output()
	}
	p.log.Info("survey processed", "rows", processed, "processes", len(p.reshapers))
	return RunResult{Outputs: outputs, RowCount: processed}, nil
}

func blank(row Row) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
