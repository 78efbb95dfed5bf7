// SPDX-License-Identifier: Apache-2.0

package survey

import (
	"errors"
	"fmt"

	"github.com/skillsproj/skills-reshape/internal/mapping"
)

// skillLevels maps the survey's textual proficiency answers to their numeric
// reporting values. "N/A" stays literal.
var skillLevels = map[string]string{
	"None":         "0",
	"Novice":       "1",
	"Intermediate": "2",
	"Advanced":     "3",
	"Expert":       "4",
	"N/A":          "N/A",
}

// ErrUnknownSkillLevel signals a skill-level answer outside the fixed scale.
// Malformed survey data is never defaulted; the run stops.
var ErrUnknownSkillLevel = errors.New("unrecognized skill level")

func skillLevelValue(desc string) (string, error) {
	v, ok := skillLevels[desc]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSkillLevel, desc)
	}
	return v, nil
}

// CurrentSkills reshapes each respondent row into one record per
// (category, subcategory) pair declared in the team mapping, pairing the
// self-rated level with the rated team need.
type CurrentSkills struct {
	mapping mapping.TeamMapping
	idx     *currentIndex
	records []CurrentSkillRecord
}

// NewCurrentSkills creates a CurrentSkills reshaper for one team's mapping.
func NewCurrentSkills(tm mapping.TeamMapping) *CurrentSkills {
	return &CurrentSkills{mapping: tm}
}

func (c *CurrentSkills) Name() string {
	return ProcessCurrentSkills
}

// BindHeader locates the identity and skill-level columns in the header row.
// Must be called before Reshape.
func (c *CurrentSkills) BindHeader(header Row) error {
	c.idx = newCurrentIndex(c.mapping)
	c.idx.bind(header)
	return nil
}

func (c *CurrentSkills) Reshape(row Row) error {
	if c.idx == nil {
		return errors.New("header row not bound")
	}
	id := c.idx.identity.identity(row)

	for _, k := range c.idx.order {
		cols := c.idx.columns[k]

		selfDesc := cellAt(row, cols.self)
		if selfDesc == "" {
			selfDesc = "N/A"
		}
		selfValue, err := skillLevelValue(selfDesc)
		if err != nil {
			return fmt.Errorf("respondent %q, %s / %s: %w", id.Name, k.category, k.subcategory, err)
		}

		teamDesc := cellAt(row, cols.team)
		if teamDesc == "" {
			teamDesc = "N/A"
		}
		teamValue, err := skillLevelValue(teamDesc)
		if err != nil {
			return fmt.Errorf("respondent %q, %s / %s: %w", id.Name, k.category, k.subcategory, err)
		}

		c.records = append(c.records, CurrentSkillRecord{
			Name:            id.Name,
			Classification:  id.Classification,
			Team:            id.Team,
			Category:        k.category,
			SubCategory:     k.subcategory,
			SkillLevelValue: selfValue,
			SkillLevelDesc:  selfDesc,
			TeamNeedValue:   teamValue,
			TeamNeedDesc:    teamDesc,
		})
	}
	return nil
}

// Records returns the accumulated typed records in emission order.
func (c *CurrentSkills) Records() []CurrentSkillRecord {
	return c.records
}

func (c *CurrentSkills) Output() Table {
	rows := make([][]string, len(c.records))
	for i, r := range c.records {
		rows[i] = r.fields()
	}
	return Table{Header: currentSkillHeader, Rows: rows}
}
