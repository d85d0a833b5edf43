package submission

import (
	"strings"
	"time"
	"unicode"
)

// CatalogSize is the number of projects a submission must rank for its
// preference list to count as complete.
const CatalogSize = 25

// TimestampLayout is the layout of the submission time column.
const TimestampLayout = "2006-01-02 15:04:05"

// Columns names the fields of a raw row the normalizer reads.
type Columns struct {
	Members   string
	Projects  string
	Timestamp string
}

// DefaultColumns returns the column names used by the registration form export.
func DefaultColumns() Columns {
	return Columns{
		Members:   "github-логины коллег по проекту через запятую",
		Projects:  "Я хочу работать над проектом...",
		Timestamp: "Время создания",
	}
}

// Row is one normalized form submission.
type Row struct {
	SubmittedAt       time.Time
	Members           []string
	Projects          []string
	AllProjectsListed bool
}

// NormalizeIdentifier trims s and collapses every internal whitespace run to a
// single space. Applying it twice is the same as applying it once.
func NormalizeIdentifier(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitMembers splits a comma-separated collaborator field into normalized
// participant identifiers, dropping empty pieces.
func SplitMembers(field string) []string {
	members := []string{}
	for _, piece := range strings.Split(field, ",") {
		if id := NormalizeIdentifier(piece); id != "" {
			members = append(members, id)
		}
	}
	return members
}

// SplitProjects splits a preference field on any run of commas and whitespace,
// keeping the declared order.
func SplitProjects(field string) []string {
	tokens := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	projects := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if p := NormalizeIdentifier(tok); p != "" {
			projects = append(projects, p)
		}
	}
	return projects
}

// ParseTimestamp parses a submission time. Unparseable input yields the zero
// time, which sorts before every real submission.
func ParseTimestamp(s string) time.Time {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Normalize turns one raw row into a Row. Missing columns behave like empty ones.
func Normalize(raw map[string]string, cols Columns) Row {
	projects := SplitProjects(raw[cols.Projects])
	return Row{
		SubmittedAt:       ParseTimestamp(raw[cols.Timestamp]),
		Members:           SplitMembers(raw[cols.Members]),
		Projects:          projects,
		AllProjectsListed: len(projects) >= CatalogSize,
	}
}

// NormalizeAll normalizes rows in order.
func NormalizeAll(raws []map[string]string, cols Columns) []Row {
	rows := make([]Row, 0, len(raws))
	for _, raw := range raws {
		rows = append(rows, Normalize(raw, cols))
	}
	return rows
}
