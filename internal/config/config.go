// SPDX-License-Identifier: Apache-2.0

// Package config loads the run configuration file that selects the survey
// input, the team mapping, and which reshape processes to run.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/skillsproj/skills-reshape/internal/survey"
)

// Input names the files and team a run operates on. All three fields are
// required.
type Input struct {
	CSVFile     string `yaml:"csv_file"`
	MappingFile string `yaml:"mapping_file"`
	TeamName    string `yaml:"team_name"`
}

// Config is the parsed run configuration.
type Config struct {
	Input     Input    `yaml:"input"`
	Processes []string `yaml:"processes"`
}

// NeedsMapping reports whether any selected process requires the team
// mapping file. The mad_libs process runs without one.
func (c *Config) NeedsMapping() bool {
	return slices.Contains(c.Processes, survey.ProcessCurrentSkills) ||
		slices.Contains(c.Processes, survey.ProcessFutureSkills)
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. An omitted or empty
// processes list selects every process.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	var missing []string
	if cfg.Input.CSVFile == "" {
		missing = append(missing, "input: csv_file")
	}
	if cfg.Input.MappingFile == "" {
		missing = append(missing, "input: mapping_file")
	}
	if cfg.Input.TeamName == "" {
		missing = append(missing, "input: team_name")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required elements: %s", strings.Join(missing, ", "))
	}

	if len(cfg.Processes) == 0 {
		cfg.Processes = slices.Clone(survey.AllProcesses)
	}
	for _, p := range cfg.Processes {
		if !slices.Contains(survey.AllProcesses, p) {
			return nil, fmt.Errorf("unknown process %q (choose from %s)",
				p, strings.Join(survey.AllProcesses, ", "))
		}
	}
	return &cfg, nil
}
