// SPDX-License-Identifier: Apache-2.0

package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsproj/skills-reshape/internal/tool"
)

const surveyCSV = `Name,Classification Level,What team are you on?,` +
	`"How would you describe your current experience or comfort level with Cloud?.AWS (examples: EC2, S3)",` +
	`"Based on what you know today, what level of Cloud skills do you think your team will need over the next 12 months?.AWS",` +
	`"Which Cloud skills would you like to use in your day-to-day work, or feel are underused?",` +
	"Are there Cloud skills you are interested in learning or continuing to develop?," +
	"Your Name,Adjective (how would you describe yourself?)," +
	"Role/Title (Your role or what best describes your work)," +
	"Tool/System/Approach (What do you love working with?)," +
	"Skill or Strength (What’s something you're great at?)," +
	"Biggest Challenge or Growth Area (What do you find tricky?)," +
	"Notable Experience or Achievement (Something cool you’ve done)," +
	`"Favorite Part of Work (What makes your job fun, meaningful, or energizing)"` + "\n" +
	"Alice Smith,Senior,Platform,Intermediate,Advanced,AWS (EC2); Terraform;,Terraform; Kubernetes," +
	"Alice,curious,developer,Terraform,automation,naming things,built a pipeline,shipping\n" +
	"Bob Jones,Junior,Platform,,Novice,,AWS," +
	"Bob,calm,operator,Linux,debugging,estimates,automated backups,quiet mornings\n"

const mappingJSON = `{"Platform": {"Cloud": ["AWS"]}}`

func TestReshapeSurvey_RequiresContent(t *testing.T) {
	_, _, err := tool.ReshapeSurvey(context.Background(), nil, tool.InputReshapeSurvey{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv_content is required")
}

func TestReshapeSurvey_SkillsProcessesRequireMapping(t *testing.T) {
	_, _, err := tool.ReshapeSurvey(context.Background(), nil, tool.InputReshapeSurvey{
		CSVContent: surveyCSV,
		Processes:  []string{"current_skills"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping_content and team_name are required")
}

func TestReshapeSurvey_UnknownTeam(t *testing.T) {
	_, _, err := tool.ReshapeSurvey(context.Background(), nil, tool.InputReshapeSurvey{
		CSVContent:     surveyCSV,
		MappingContent: mappingJSON,
		TeamName:       "Security",
		Processes:      []string{"current_skills"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in mapping file")
}

func TestReshapeSurvey_SkillsProcesses(t *testing.T) {
	_, out, err := tool.ReshapeSurvey(context.Background(), nil, tool.InputReshapeSurvey{
		CSVContent:     surveyCSV,
		MappingContent: mappingJSON,
		TeamName:       "Platform",
		Processes:      []string{"current_skills", "future_skills"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.RowCount)
	require.Contains(t, out.Outputs, "current_skills")
	require.Contains(t, out.Outputs, "future_skills")

	current := out.Outputs["current_skills"]
	require.Equal(t, 2, current.Count, "one record per respondent per mapping pair")
	assert.Equal(t, []string{
		"Alice Smith", "Senior", "Platform", "Cloud", "AWS", "2", "Intermediate", "3", "Advanced",
	}, current.Rows[0])
	assert.Equal(t, "N/A", current.Rows[1][5], "empty self-level cell surfaces as N/A")

	future := out.Outputs["future_skills"]
	require.Equal(t, 4, future.Count)
	assert.Equal(t, []string{"Alice Smith", "Senior", "Platform", "Cloud", "AWS", "1", "0"}, future.Rows[0])
	assert.Equal(t, []string{"Alice Smith", "Senior", "Platform", "Cloud", "Terraform", "1", "1"}, future.Rows[1])
	assert.Equal(t, []string{"Alice Smith", "Senior", "Platform", "Cloud", "Kubernetes", "0", "1"}, future.Rows[2])
	assert.Equal(t, []string{"Bob Jones", "Junior", "Platform", "Cloud", "AWS", "0", "1"}, future.Rows[3])
}

func TestReshapeSurvey_DefaultsToAllProcesses(t *testing.T) {
	_, out, err := tool.ReshapeSurvey(context.Background(), nil, tool.InputReshapeSurvey{
		CSVContent:     surveyCSV,
		MappingContent: mappingJSON,
		TeamName:       "Platform",
	})
	require.NoError(t, err)
	assert.Len(t, out.Outputs, 3)

	madLibs := out.Outputs["mad_libs"]
	require.Equal(t, 2, madLibs.Count)
	assert.Equal(t, "Alice Smith", madLibs.Rows[0][0])
	assert.Contains(t, madLibs.Rows[0][1], "Hi, my name is Alice,")
}

func TestReshapeSurvey_UnknownProcess(t *testing.T) {
	_, _, err := tool.ReshapeSurvey(context.Background(), nil, tool.InputReshapeSurvey{
		CSVContent: surveyCSV,
		Processes:  []string{"word_count"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown process")
}

func TestMetadataReshapeSurvey(t *testing.T) {
	assert.Equal(t, "reshape_survey", tool.MetadataReshapeSurvey.Name)
	assert.NotEmpty(t, tool.MetadataReshapeSurvey.Description)
}
