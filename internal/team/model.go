package team

import (
	"slices"
	"time"

	"github.com/teamform/teamform/internal/submission"
)

// Size is the exact number of members every finished team has.
const Size = 5

// NoProject marks a team that finished allocation without a project.
const NoProject = "random"

// Disposition classifies a team.
type Disposition string

const (
	// Valid teams are complete and ranked the whole catalog.
	Valid Disposition = "valid"
	// Invalid teams were submitted under-sized or with a partial ranking.
	Invalid Disposition = "invalid"
	// Other teams were synthesized from unassigned participants.
	Other Disposition = "other"
)

// Team is the working entity carried through classification, completion and
// allocation.
type Team struct {
	Disposition       Disposition
	Members           []string
	Projects          []string
	SubmittedAt       time.Time
	HasSubmission     bool // false for synthesized teams
	AllProjectsListed bool
	NeedsMoreStudents bool
	AssignedProject   string // empty until allocated
}

// FromRow builds a team from a normalized submission of at most Size members.
func FromRow(row submission.Row) Team {
	t := Team{
		Members:           slices.Clone(row.Members),
		Projects:          slices.Clone(row.Projects),
		SubmittedAt:       row.SubmittedAt,
		HasSubmission:     true,
		AllProjectsListed: row.AllProjectsListed,
	}
	switch {
	case len(t.Members) < Size:
		t.Disposition = Invalid
		t.NeedsMoreStudents = true
	case t.AllProjectsListed:
		t.Disposition = Valid
	default:
		t.Disposition = Invalid
	}
	return t
}

// Synthesized builds an Other team from participants with no preferences.
func Synthesized(members []string) Team {
	return Team{
		Disposition: Other,
		Members:     slices.Clone(members),
		Projects:    []string{},
	}
}

// Shortfall returns how many members the team lacks.
func (t Team) Shortfall() int {
	if n := Size - len(t.Members); n > 0 {
		return n
	}
	return 0
}

// Clone returns a deep copy of t.
func (t Team) Clone() Team {
	c := t
	c.Members = slices.Clone(t.Members)
	c.Projects = slices.Clone(t.Projects)
	return c
}
