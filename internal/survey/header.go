// SPDX-License-Identifier: Apache-2.0

package survey

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/skillsproj/skills-reshape/internal/mapping"
)

// The survey export names its skill columns with fixed sentence templates
// around a category (and, for current-skill questions, a subcategory).
// Matching is case-sensitive and anchored at both ends; no partial matches.
var (
	selfLevelPattern = regexp.MustCompile(
		`^How would you describe your current experience or comfort level with (?P<category>.*)\?\.(?P<subcategory>.*)$`)
	teamNeedPattern = regexp.MustCompile(
		`^Based on what you know today, what level of (?P<category>.*) skills do you think your team will need over the next 12 months\?\.(?P<subcategory>.*)$`)
	usePattern = regexp.MustCompile(
		`^Which (?P<category>.*) skills would you like to use in your day-to-day work, or feel are underused\?$`)
	learnPattern = regexp.MustCompile(
		`^Are there (?P<category>.*) skills you are interested in learning or continuing to develop\?$`)
)

// captures runs an anchored header pattern and returns its named groups.
func captures(re *regexp.Regexp, cell string) (category, subcategory string, ok bool) {
	m := re.FindStringSubmatch(cell)
	if m == nil {
		return "", "", false
	}
	for i, name := range re.SubexpNames() {
		switch name {
		case "category":
			category = m[i]
		case "subcategory":
			subcategory = m[i]
		}
	}
	return category, subcategory, true
}

type pairKey struct {
	category    string
	subcategory string
}

type currentColumns struct {
	self int
	team int
}

// currentIndex binds (category, subcategory) pairs to their self-level and
// team-need column positions. Seeded from the team mapping with every pair
// unset, so lookups never miss; a pair whose header is absent from the
// survey simply keeps the unset sentinel.
type currentIndex struct {
	identity identityIndex
	order    []pairKey
	columns  map[pairKey]currentColumns
}

func newCurrentIndex(tm mapping.TeamMapping) *currentIndex {
	ix := &currentIndex{
		identity: newIdentityIndex(),
		columns:  make(map[pairKey]currentColumns),
	}
	for _, cat := range tm.Categories {
		for _, sub := range cat.Subcategories {
			k := pairKey{category: cat.Name, subcategory: sub}
			ix.order = append(ix.order, k)
			ix.columns[k] = currentColumns{self: columnUnset, team: columnUnset}
		}
	}
	return ix
}

func (ix *currentIndex) bind(header Row) {
	for i, cell := range header {
		if ix.identity.claim(cell, i) {
			continue
		}
		if cat, sub, ok := captures(selfLevelPattern, cell); ok {
			ix.set(strings.TrimSpace(cat), CleanSubcategory(sub), i, true)
		}
		if cat, sub, ok := captures(teamNeedPattern, cell); ok {
			ix.set(strings.TrimSpace(cat), CleanSubcategory(sub), i, false)
		}
	}
}

func (ix *currentIndex) set(category, subcategory string, pos int, self bool) {
	k := pairKey{category: category, subcategory: subcategory}
	cols, ok := ix.columns[k]
	if !ok {
		// Header names a pair the team mapping does not declare, e.g. a
		// column belonging to another team's section of the survey.
		slog.Debug("skill column not declared in mapping",
			"category", category, "subcategory", subcategory)
		return
	}
	if self {
		cols.self = pos
	} else {
		cols.team = pos
	}
	ix.columns[k] = cols
}

type futureColumns struct {
	use   int
	learn int
}

// futureIndex binds each category to its use and learn free-text column
// positions, with the same unset-sentinel seeding as currentIndex.
type futureIndex struct {
	identity identityIndex
	order    []string
	columns  map[string]futureColumns
}

func newFutureIndex(tm mapping.TeamMapping) *futureIndex {
	ix := &futureIndex{
		identity: newIdentityIndex(),
		columns:  make(map[string]futureColumns),
	}
	for _, cat := range tm.Categories {
		ix.order = append(ix.order, cat.Name)
		ix.columns[cat.Name] = futureColumns{use: columnUnset, learn: columnUnset}
	}
	return ix
}

func (ix *futureIndex) bind(header Row) {
	for i, cell := range header {
		if ix.identity.claim(cell, i) {
			continue
		}
		if cat, _, ok := captures(usePattern, cell); ok {
			ix.set(strings.TrimSpace(cat), i, true)
		}
		if cat, _, ok := captures(learnPattern, cell); ok {
			ix.set(strings.TrimSpace(cat), i, false)
		}
	}
}

func (ix *futureIndex) set(category string, pos int, use bool) {
	cols, ok := ix.columns[category]
	if !ok {
		slog.Debug("future skill column not declared in mapping", "category", category)
		return
	}
	if use {
		cols.use = pos
	} else {
		cols.learn = pos
	}
	ix.columns[category] = cols
}

// cellAt reads a cell by bound position. Unset or out-of-range positions
// read as an empty cell, so never-matched mapping entries surface as "N/A"
// levels and empty use/learn lists rather than failing the run.
func cellAt(row Row, pos int) string {
	if pos == columnUnset || pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}
