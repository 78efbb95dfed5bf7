// SPDX-License-Identifier: Apache-2.0

package survey

// Row is one CSV row, positionally aligned with the header row that was
// used to bind column indexes. An alias, so CSV-layer [][]string slices
// feed the pipeline directly.
type Row = []string

// Table is a rendered output dataset: a header row followed by data rows,
// ready for CSV writing.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// columnUnset marks a column position that was never found in the header row.
// Reads against an unset position behave like an empty cell.
const columnUnset = -1

// The three identity questions present in every survey export.
const (
	colName           = "Name"
	colClassification = "Classification Level"
	colTeam           = "What team are you on?"
)

var identityColumns = []string{colName, colClassification, colTeam}

// identityIndex holds the positions of the three identity columns.
// Populated once from the header row; first occurrence wins.
type identityIndex struct {
	positions map[string]int
}

func newIdentityIndex() identityIndex {
	return identityIndex{positions: make(map[string]int, len(identityColumns))}
}

// claim records the position of an identity header. Returns true if the cell
// text is one of the identity questions, whether or not it was already set.
func (ix identityIndex) claim(cell string, pos int) bool {
	for _, col := range identityColumns {
		if cell == col {
			if _, ok := ix.positions[col]; !ok {
				ix.positions[col] = pos
			}
			return true
		}
	}
	return false
}

func (ix identityIndex) cell(row Row, col string) string {
	pos, ok := ix.positions[col]
	if !ok || pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}

// Identity is the respondent identification shared by the skills records.
type Identity struct {
	Name           string
	Classification string
	Team           string
}

func (ix identityIndex) identity(row Row) Identity {
	return Identity{
		Name:           ix.cell(row, colName),
		Classification: ix.cell(row, colClassification),
		Team:           ix.cell(row, colTeam),
	}
}

// CurrentSkillRecord is one (respondent, category, subcategory) current
// skills observation: the self-rated level and the rated team need.
// Values are "0".."4" or the literal "N/A".
type CurrentSkillRecord struct {
	Name            string
	Classification  string
	Team            string
	Category        string
	SubCategory     string
	SkillLevelValue string
	SkillLevelDesc  string
	TeamNeedValue   string
	TeamNeedDesc    string
}

var currentSkillHeader = []string{
	"Name", "Classification", "Team", "Category", "SubCategory",
	"Skill Level Value", "Skill Level Desc", "Team Need Value", "Team Need Desc",
}

func (r CurrentSkillRecord) fields() []string {
	return []string{
		r.Name, r.Classification, r.Team, r.Category, r.SubCategory,
		r.SkillLevelValue, r.SkillLevelDesc, r.TeamNeedValue, r.TeamNeedDesc,
	}
}

// FutureSkillRecord marks whether a respondent wants to use and/or learn one
// subcategory of a category. SubCategory is free text from the survey answer
// and is not constrained to the team mapping.
type FutureSkillRecord struct {
	Name           string
	Classification string
	Team           string
	Category       string
	SubCategory    string
	Use            int
	Learn          int
}

var futureSkillHeader = []string{
	"Name", "Classification", "Team", "Category", "SubCategory", "Use", "Learn",
}

func (r FutureSkillRecord) fields() []string {
	return []string{
		r.Name, r.Classification, r.Team, r.Category, r.SubCategory,
		itoa01(r.Use), itoa01(r.Learn),
	}
}

func itoa01(v int) string {
	if v == 1 {
		return "1"
	}
	return "0"
}

// MadLibRecord is one respondent's composed bio sentence.
type MadLibRecord struct {
	FullName string
	MadLibs  string
}

var madLibHeader = []string{"FullName", "Mad Libs"}

func (r MadLibRecord) fields() []string {
	return []string{r.FullName, r.MadLibs}
}
