// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsproj/skills-reshape/internal/config"
)

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`{
    "input": {
      "csv_file": "survey.csv",
      "mapping_file": "mapping.json",
      "team_name": "Platform"
    },
    "processes": ["current_skills"]
  }`))
	require.NoError(t, err)

	assert.Equal(t, "survey.csv", cfg.Input.CSVFile)
	assert.Equal(t, "mapping.json", cfg.Input.MappingFile)
	assert.Equal(t, "Platform", cfg.Input.TeamName)
	assert.Equal(t, []string{"current_skills"}, cfg.Processes)
	assert.True(t, cfg.NeedsMapping())
}

func TestParse_DefaultsToAllProcesses(t *testing.T) {
	cfg, err := config.Parse([]byte(`{
    "input": {"csv_file": "a.csv", "mapping_file": "m.json", "team_name": "Platform"}
  }`))
	require.NoError(t, err)
	assert.Equal(t, []string{"mad_libs", "current_skills", "future_skills"}, cfg.Processes)
}

func TestParse_MissingRequiredElements(t *testing.T) {
	_, err := config.Parse([]byte(`{"input": {"csv_file": "a.csv"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input: mapping_file")
	assert.Contains(t, err.Error(), "input: team_name")
	assert.NotContains(t, err.Error(), "input: csv_file")
}

func TestParse_UnknownProcess(t *testing.T) {
	_, err := config.Parse([]byte(`{
    "input": {"csv_file": "a.csv", "mapping_file": "m.json", "team_name": "Platform"},
    "processes": ["word_count"]
  }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown process "word_count"`)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := config.Parse([]byte(`{"input": `))
	require.Error(t, err)
}

func TestNeedsMapping_MadLibsOnly(t *testing.T) {
	cfg, err := config.Parse([]byte(`{
    "input": {"csv_file": "a.csv", "mapping_file": "m.json", "team_name": "Platform"},
    "processes": ["mad_libs"]
  }`))
	require.NoError(t, err)
	assert.False(t, cfg.NeedsMapping())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
    "input": {"csv_file": "a.csv", "mapping_file": "m.json", "team_name": "Platform"}
  }`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Platform", cfg.Input.TeamName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
