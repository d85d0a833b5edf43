package formation

import (
	"github.com/teamform/teamform/internal/submission"
	"github.com/teamform/teamform/internal/team"
)

// SubmissionTimeLayout formats submission times in results.
const SubmissionTimeLayout = "02.01.2006 15:04:05"

// Entry is one team in the result.
type Entry struct {
	TeamMembers     []string `json:"team_members"`
	AssignedProject string   `json:"assigned_project"`
	SubmissionTime  string   `json:"submission_time,omitempty"`
}

// Result is the outcome of one batch.
type Result struct {
	ValidTeams         []Entry  `json:"valid_teams"`
	InvalidTeams       []Entry  `json:"invalid_teams"`
	OtherTeams         []Entry  `json:"other_teams"`
	UnassignedStudents []string `json:"unassigned_students"`
}

// Assemble shapes a fully allocated roster into a Result.
func Assemble(r Roster) Result {
	return Result{
		ValidTeams:         toEntries(r.Valid),
		InvalidTeams:       toEntries(r.Invalid),
		OtherTeams:         toEntries(r.Other),
		UnassignedStudents: r.Pool.Members(),
	}
}

func toEntries(teams []team.Team) []Entry {
	entries := make([]Entry, 0, len(teams))
	for _, t := range teams {
		e := Entry{
			TeamMembers:     append([]string{}, t.Members...),
			AssignedProject: t.AssignedProject,
		}
		if e.AssignedProject == "" {
			e.AssignedProject = team.NoProject
		}
		if t.HasSubmission {
			e.SubmissionTime = t.SubmittedAt.Format(SubmissionTimeLayout)
		}
		entries = append(entries, e)
	}
	return entries
}

// Summary reports aggregate figures for a Result.
type Summary struct {
	ParticipantsMentioned int  `json:"participants_mentioned"`
	ParticipantsPlaced    int  `json:"participants_placed"`
	ValidTeams            int  `json:"valid_teams"`
	InvalidTeams          int  `json:"invalid_teams"`
	OtherTeams            int  `json:"other_teams"`
	Unassigned            int  `json:"unassigned"`
	UniqueProjects        bool `json:"unique_projects"`
}

// Summarize computes a Summary. Participants placed in two teams are counted
// twice.
func Summarize(res Result, registry *submission.Registry) Summary {
	s := Summary{
		ParticipantsMentioned: registry.Len(),
		ValidTeams:            len(res.ValidTeams),
		InvalidTeams:          len(res.InvalidTeams),
		OtherTeams:            len(res.OtherTeams),
		Unassigned:            len(res.UnassignedStudents),
		UniqueProjects:        true,
	}
	seen := make(map[string]struct{})
	for _, bucket := range [][]Entry{res.ValidTeams, res.InvalidTeams, res.OtherTeams} {
		for _, e := range bucket {
			s.ParticipantsPlaced += len(e.TeamMembers)
			if e.AssignedProject == team.NoProject {
				continue
			}
			if _, dup := seen[e.AssignedProject]; dup {
				s.UniqueProjects = false
			}
			seen[e.AssignedProject] = struct{}{}
		}
	}
	return s
}
