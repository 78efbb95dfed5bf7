// SPDX-License-Identifier: Apache-2.0

// Package mapping loads the team category/subcategory mapping file. The file
// is a JSON object keyed team name -> category name -> array of subcategory
// strings. Key order in the file drives output record order, so the document
// is decoded into an ordered form rather than a Go map.
package mapping

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Category is one skill grouping and its ordered subcategories.
type Category struct {
	Name          string
	Subcategories []string
}

// Has reports whether sub is one of the category's declared subcategories.
func (c Category) Has(sub string) bool {
	for _, s := range c.Subcategories {
		if s == sub {
			return true
		}
	}
	return false
}

// TeamMapping is the ordered category list for a single team.
type TeamMapping struct {
	Categories []Category
}

// Category returns the named category, if declared.
func (m TeamMapping) Category(name string) (Category, bool) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Teams is the full mapping document, keyed by team name.
type Teams struct {
	teams []teamEntry
}

type teamEntry struct {
	name    string
	mapping TeamMapping
}

// Team returns the mapping for the named team.
func (t Teams) Team(name string) (TeamMapping, error) {
	for _, e := range t.teams {
		if e.name == name {
			return e.mapping, nil
		}
	}
	return TeamMapping{}, fmt.Errorf("team %q not found in mapping file", name)
}

// Names returns the declared team names in file order.
func (t Teams) Names() []string {
	names := make([]string, len(t.teams))
	for i, e := range t.teams {
		names[i] = e.name
	}
	return names
}

// Load reads and parses a mapping file.
func Load(path string) (Teams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Teams{}, fmt.Errorf("reading mapping file: %w", err)
	}
	teams, err := Parse(data)
	if err != nil {
		return Teams{}, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return teams, nil
}

// Parse decodes a mapping document. JSON is accepted as a YAML subset;
// UseOrderedMap keeps the file's key order.
func Parse(data []byte) (Teams, error) {
	var root interface{}
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return Teams{}, fmt.Errorf("decoding mapping: %w", err)
	}

	doc, ok := root.(yaml.MapSlice)
	if !ok {
		return Teams{}, fmt.Errorf("mapping document must be an object, got %T", root)
	}

	var teams Teams
	for _, teamItem := range doc {
		name := fmt.Sprintf("%v", teamItem.Key)
		categories, ok := teamItem.Value.(yaml.MapSlice)
		if !ok {
			return Teams{}, fmt.Errorf("team %q must map categories to subcategory lists, got %T", name, teamItem.Value)
		}

		var tm TeamMapping
		for _, catItem := range categories {
			cat := Category{Name: fmt.Sprintf("%v", catItem.Key)}
			subs, ok := catItem.Value.([]interface{})
			if !ok {
				return Teams{}, fmt.Errorf("category %q of team %q must be an array, got %T", cat.Name, name, catItem.Value)
			}
			for _, s := range subs {
				cat.Subcategories = append(cat.Subcategories, fmt.Sprintf("%v", s))
			}
			tm.Categories = append(tm.Categories, cat)
		}
		teams.teams = append(teams.teams, teamEntry{name: name, mapping: tm})
	}
	return teams, nil
}
