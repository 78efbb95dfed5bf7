// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillsproj/skills-reshape/internal/csvio"
	"github.com/skillsproj/skills-reshape/internal/mapping"
	"github.com/skillsproj/skills-reshape/internal/survey"
)

// MetadataReshapeSurvey describes the reshape_survey tool.
var MetadataReshapeSurvey = &mcp.Tool{
	Name: "reshape_survey",
	Description: "Reshape a wide skills-survey CSV export into normalized reporting datasets. " +
		"Available processes: mad_libs (templated bio per respondent), current_skills " +
		"(one record per person/category/subcategory with self level and team need), and " +
		"future_skills (use/learn intent per person/category/subcategory). The skills " +
		"processes locate survey columns by matching the category/subcategory names declared " +
		"in the team mapping against the free-text header row.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"csv_content"},
		"properties": map[string]interface{}{
			"csv_content": map[string]interface{}{
				"type":        "string",
				"description": "Raw content of the survey CSV export, header row first",
			},
			"mapping_content": map[string]interface{}{
				"type":        "string",
				"description": "Team mapping JSON: team name -> category -> subcategory list. Required for the skills processes.",
			},
			"team_name": map[string]interface{}{
				"type":        "string",
				"description": "Team to look up in the mapping. Required for the skills processes.",
			},
			"processes": map[string]interface{}{
				"type":        "array",
				"description": "Processes to run. If omitted, all three are run.",
				"items": map[string]interface{}{
					"type": "string",
					"enum": []string{"mad_libs", "current_skills", "future_skills"},
				},
			},
		},
	},
}

// InputReshapeSurvey is the input for the ReshapeSurvey tool.
type InputReshapeSurvey struct {
	CSVContent     string   `json:"csv_content"`
	MappingContent string   `json:"mapping_content"`
	TeamName       string   `json:"team_name"`
	Processes      []string `json:"processes"`
}

// ProcessOutput is one rendered dataset.
type ProcessOutput struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Count  int        `json:"count"`
}

// OutputReshapeSurvey is the output for the ReshapeSurvey tool.
type OutputReshapeSurvey struct {
	// Outputs holds one dataset per selected process, keyed by process name.
	Outputs map[string]ProcessOutput `json:"outputs"`
	// RowCount is the number of survey data rows processed.
	RowCount int `json:"row_count"`
}

// ReshapeSurvey runs the reshape pipeline over in-memory survey content and
// returns the rendered datasets.
func ReshapeSurvey(_ context.Context, _ *mcp.CallToolRequest, input InputReshapeSurvey) (*mcp.CallToolResult, OutputReshapeSurvey, error) {
	if input.CSVContent == "" {
		return nil, OutputReshapeSurvey{}, fmt.Errorf("csv_content is required")
	}

	processes := input.Processes
	if len(processes) == 0 {
		processes = survey.AllProcesses
	}

	var tm mapping.TeamMapping
	needsMapping := false
	for _, p := range processes {
		if p == survey.ProcessCurrentSkills || p == survey.ProcessFutureSkills {
			needsMapping = true
		}
	}
	if needsMapping {
		if input.MappingContent == "" || input.TeamName == "" {
			return nil, OutputReshapeSurvey{}, fmt.Errorf("mapping_content and team_name are required for the skills processes")
		}
		teams, err := mapping.Parse([]byte(input.MappingContent))
		if err != nil {
			return nil, OutputReshapeSurvey{}, err
		}
		tm, err = teams.Team(input.TeamName)
		if err != nil {
			return nil, OutputReshapeSurvey{}, err
		}
	}

	rows, err := csvio.Read(strings.NewReader(input.CSVContent))
	if err != nil {
		return nil, OutputReshapeSurvey{}, err
	}

	reshapers := make([]survey.Reshaper, 0, len(processes))
	for _, p := range processes {
		r, err := survey.NewReshaper(p, tm)
		if err != nil {
			return nil, OutputReshapeSurvey{}, err
		}
		reshapers = append(reshapers, r)
	}

	result, err := survey.NewPipeline(reshapers...).Run(rows)
	if err != nil {
		return nil, OutputReshapeSurvey{}, err
	}

	out := OutputReshapeSurvey{
		Outputs:  make(map[string]ProcessOutput, len(result.Outputs)),
		RowCount: result.RowCount,
	}
	for name, table := range result.Outputs {
		out.Outputs[name] = ProcessOutput{
			Header: table.Header,
			Rows:   table.Rows,
			Count:  table.Len(),
		}
	}
	return nil, out, nil
}
