// SPDX-License-Identifier: Apache-2.0

package survey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsproj/skills-reshape/internal/mapping"
	"github.com/skillsproj/skills-reshape/internal/survey"
)

func TestNewReshaper(t *testing.T) {
	tm := cloudMapping()

	for _, name := range survey.AllProcesses {
		r, err := survey.NewReshaper(name, tm)
		require.NoError(t, err)
		assert.Equal(t, name, r.Name())
	}

	_, err := survey.NewReshaper("word_count", tm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown process")
}

func TestPipeline_EmptySurvey(t *testing.T) {
	p := survey.NewPipeline(survey.NewMadLibs())
	_, err := p.Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestPipeline_Names(t *testing.T) {
	tm := cloudMapping()
	p := survey.NewPipeline(survey.NewCurrentSkills(tm), survey.NewFutureSkills(tm))
	assert.Equal(t, []string{"current_skills", "future_skills"}, p.Names())
}

func TestPipeline_Run(t *testing.T) {
	header := append(append([]string{}, identityHeader...),
		selfHeader("Cloud", "AWS"), teamHeader("Cloud", "AWS"),
		useHeader("Cloud"), learnHeader("Cloud"))
	rows := [][]string{
		header,
		{"Alice", "Senior", "Platform", "Expert", "Advanced", "AWS; Terraform", "Terraform"},
		{"", "", "", "", "", "", ""}, // blank row skipped
		{"Bob", "Junior", "Platform", "Novice", "", "", "Kubernetes"},
	}

	tm := mapping.TeamMapping{Categories: []mapping.Category{
		{Name: "Cloud", Subcategories: []string{"AWS"}},
	}}
	cur := survey.NewCurrentSkills(tm)
	fut := survey.NewFutureSkills(tm)
	result, err := survey.NewPipeline(cur, fut).Run(rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowCount)
	require.Contains(t, result.Outputs, "current_skills")
	require.Contains(t, result.Outputs, "future_skills")

	// One current-skills record per respondent per mapping pair, input order.
	curOut := result.Outputs["current_skills"]
	require.Equal(t, 2, curOut.Len())
	assert.Equal(t, "Alice", curOut.Rows[0][0])
	assert.Equal(t, "Bob", curOut.Rows[1][0])
	assert.Equal(t, "N/A", curOut.Rows[1][7], "empty team-need cell reads as N/A")

	futOut := result.Outputs["future_skills"]
	require.Equal(t, 3, futOut.Len())
	assert.Equal(t, []string{"Alice", "Senior", "Platform", "Cloud", "AWS", "1", "0"}, futOut.Rows[0])
	assert.Equal(t, []string{"Alice", "Senior", "Platform", "Cloud", "Terraform", "1", "1"}, futOut.Rows[1])
	assert.Equal(t, []string{"Bob", "Junior", "Platform", "Cloud", "Kubernetes", "0", "1"}, futOut.Rows[2])
}

func TestPipeline_FatalRowError(t *testing.T) {
	header := append(append([]string{}, identityHeader...),
		selfHeader("Cloud", "AWS"), teamHeader("Cloud", "AWS"))
	rows := [][]string{
		header,
		{"Alice", "Senior", "Platform", "Wizard", "Advanced"},
	}

	tm := mapping.TeamMapping{Categories: []mapping.Category{
		{Name: "Cloud", Subcategories: []string{"AWS"}},
	}}
	_, err := survey.NewPipeline(survey.NewCurrentSkills(tm)).Run(rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, survey.ErrUnknownSkillLevel)
}
