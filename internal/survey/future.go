// SPDX-License-Identifier: Apache-2.0

package survey

import (
	"errors"
	"slices"

	"github.com/skillsproj/skills-reshape/internal/mapping"
)

// FutureSkills reshapes each respondent row into one record per unique
// subcategory mentioned in a category's use or learn free-text answer.
// Subcategory names come from the respondent, not the mapping.
type FutureSkills struct {
	mapping mapping.TeamMapping
	idx     *futureIndex
	records []FutureSkillRecord
}

// NewFutureSkills creates a FutureSkills reshaper for one team's mapping.
func NewFutureSkills(tm mapping.TeamMapping) *FutureSkills {
	return &FutureSkills{mapping: tm}
}

func (f *FutureSkills) Name() string {
	return ProcessFutureSkills
}

// BindHeader locates the identity and use/learn columns in the header row.
// Must be called before Reshape.
func (f *FutureSkills) BindHeader(header Row) error {
	f.idx = newFutureIndex(f.mapping)
	f.idx.bind(header)
	return nil
}

func (f *FutureSkills) Reshape(row Row) error {
	if f.idx == nil {
		return errors.New("header row not bound")
	}
	id := f.idx.identity.identity(row)

	for _, category := range f.idx.order {
		cols := f.idx.columns[category]
		useList := SplitSubcategories(cellAt(row, cols.use))
		learnList := SplitSubcategories(cellAt(row, cols.learn))

		// Union of both lists, first-seen order: the use list first, then
		// any learn-only subcategories.
		seen := make(map[string]bool)
		for _, sub := range useList {
			if seen[sub] {
				continue
			}
			seen[sub] = true
			rec := FutureSkillRecord{
				Name:           id.Name,
				Classification: id.Classification,
				Team:           id.Team,
				Category:       category,
				SubCategory:    sub,
				Use:            1,
			}
			if slices.Contains(learnList, sub) {
				rec.Learn = 1
			}
			f.records = append(f.records, rec)
		}
		for _, sub := range learnList {
			if seen[sub] {
				continue
			}
			seen[sub] = true
			rec := FutureSkillRecord{
				Name:           id.Name,
				Classification: id.Classification,
				Team:           id.Team,
				Category:       category,
				SubCategory:    sub,
				Learn:          1,
			}
			if slices.Contains(useList, sub) {
				rec.Use = 1
			}
			f.records = append(f.records, rec)
		}
	}
	return nil
}

// Records returns the accumulated typed records in emission order.
func (f *FutureSkills) Records() []FutureSkillRecord {
	return f.records
}

func (f *FutureSkills) Output() Table {
	rows := make([][]string, len(f.records))
	for i, r := range f.records {
		rows[i] = r.fields()
	}
	return Table{Header: futureSkillHeader, Rows: rows}
}
