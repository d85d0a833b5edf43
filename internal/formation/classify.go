package formation

import (
	"github.com/teamform/teamform/internal/submission"
	"github.com/teamform/teamform/internal/team"
)

// Classify sorts rows into valid and invalid teams. Rows with more than
// team.Size members are dissolved and their members pooled.
func Classify(rows []submission.Row) Roster {
	r := Roster{
		Valid:   []team.Team{},
		Invalid: []team.Team{},
		Other:   []team.Team{},
		Pool:    NewPool(),
	}
	for _, row := range rows {
		if len(row.Members) > team.Size {
			r.Pool.add(row.Members...)
			continue
		}
		t := team.FromRow(row)
		if t.Disposition == team.Valid {
			r.Valid = append(r.Valid, t)
		} else {
			r.Invalid = append(r.Invalid, t)
		}
	}
	return r
}
