// SPDX-License-Identifier: Apache-2.0

package survey

import (
	"fmt"
	"log/slog"
	"strings"
)

// madLibColumns are the survey columns the bio template draws from, located
// in the header by exact text.
var madLibColumns = []string{
	"Name",
	"Your Name",
	"What team are you on?",
	"Adjective (how would you describe yourself?)",
	"Role/Title (Your role or what best describes your work)",
	"Tool/System/Approach (What do you love working with?)",
	"Skill or Strength (What’s something you're great at?)",
	"Biggest Challenge or Growth Area (What do you find tricky?)",
	"Notable Experience or Achievement (Something cool you’ve done)",
	"Favorite Part of Work (What makes your job fun, meaningful, or energizing)",
}

// madLibTemplate is the bio sentence. Placeholders are the raw column
// header text in braces.
const madLibTemplate = "Hi, my name is {Your Name}, and I am on the " +
	"{What team are you on?} Team. and I am a " +
	"{Adjective (how would you describe yourself?)} " +
	"{Role/Title (Your role or what best describes your work)} who loves working with " +
	"{Tool/System/Approach (What do you love working with?)}. My superpower is " +
	"{Skill or Strength (What’s something you're great at?)}, and my biggest challenge is " +
	"{Biggest Challenge or Growth Area (What do you find tricky?)}. In the past, I have " +
	"{Notable Experience or Achievement (Something cool you’ve done)}, and my favorite part of my " +
	"work is {Favorite Part of Work (What makes your job fun, meaningful, or energizing)}!"

// MadLibs composes one templated bio sentence per respondent row.
type MadLibs struct {
	columns map[int]string // column position -> expected column name
	records []MadLibRecord
}

// NewMadLibs creates a MadLibs composer.
func NewMadLibs() *MadLibs {
	return &MadLibs{}
}

func (m *MadLibs) Name() string {
	return ProcessMadLibs
}

// BindHeader locates each expected column by exact header text. A missing
// column is reported, not fatal; composing fails later only if the template
// actually needs it.
func (m *MadLibs) BindHeader(header Row) error {
	m.columns = make(map[int]string, len(madLibColumns))
	for _, col := range madLibColumns {
		found := false
		for i, cell := range header {
			if cell == col {
				m.columns[i] = col
				found = true
				break
			}
		}
		if !found {
			slog.Warn("expected survey column missing", "column", col)
		}
	}
	return nil
}

func (m *MadLibs) Reshape(row Row) error {
	if m.columns == nil {
		return fmt.Errorf("header row not bound")
	}
	values := make(map[string]string, len(m.columns))
	var fullName string
	for pos, col := range m.columns {
		v := ""
		if pos >= 0 && pos < len(row) {
			v = row[pos]
		}
		values[col] = v
		if col == colName {
			fullName = v
		}
	}

	sentence, err := fillTemplate(madLibTemplate, values)
	if err != nil {
		return fmt.Errorf("composing bio for %q: %w", fullName, err)
	}
	m.records = append(m.records, MadLibRecord{FullName: fullName, MadLibs: sentence})
	return nil
}

// Records returns the accumulated typed records in emission order.
func (m *MadLibs) Records() []MadLibRecord {
	return m.records
}

func (m *MadLibs) Output() Table {
	rows := make([][]string, len(m.records))
	for i, r := range m.records {
		rows[i] = r.fields()
	}
	return Table{Header: madLibHeader, Rows: rows}
}

// fillTemplate substitutes {placeholder} fields from values. A placeholder
// with no value is an error.
func fillTemplate(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	for {
		open := strings.Index(tmpl, "{")
		if open < 0 {
			b.WriteString(tmpl)
			return b.String(), nil
		}
		b.WriteString(tmpl[:open])
		end := strings.Index(tmpl[open:], "}")
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in template")
		}
		key := tmpl[open+1 : open+end]
		v, ok := values[key]
		if !ok {
			return "", fmt.Errorf("no value for template field %q", key)
		}
		b.WriteString(v)
		tmpl = tmpl[open+end+1:]
	}
}
