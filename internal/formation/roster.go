package formation

import "github.com/teamform/teamform/internal/team"

// Pool is the set of participants not bound to a surviving team, kept in
// insertion order.
type Pool struct {
	members []string
	index   map[string]struct{}
}

// NewPool creates a pool holding ids, ignoring repeats.
func NewPool(ids ...string) Pool {
	p := Pool{index: make(map[string]struct{})}
	p.add(ids...)
	return p
}

func (p *Pool) add(ids ...string) {
	if p.index == nil {
		p.index = make(map[string]struct{})
	}
	for _, id := range ids {
		if _, ok := p.index[id]; ok {
			continue
		}
		p.index[id] = struct{}{}
		p.members = append(p.members, id)
	}
}

func (p *Pool) remove(ids ...string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
		delete(p.index, id)
	}
	kept := p.members[:0]
	for _, id := range p.members {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	p.members = kept
}

// Len returns the number of pooled participants.
func (p Pool) Len() int {
	return len(p.members)
}

// Members returns a copy of the pooled participants in insertion order.
func (p Pool) Members() []string {
	out := make([]string, len(p.members))
	copy(out, p.members)
	return out
}

// Has reports whether id is pooled.
func (p Pool) Has(id string) bool {
	_, ok := p.index[id]
	return ok
}

func (p Pool) clone() Pool {
	return NewPool(p.members...)
}

// Roster is the state handed from one pipeline stage to the next. Stages never
// modify the roster they receive.
type Roster struct {
	Valid   []team.Team
	Invalid []team.Team
	Other   []team.Team
	Pool    Pool
}

func (r Roster) clone() Roster {
	return Roster{
		Valid:   cloneTeams(r.Valid),
		Invalid: cloneTeams(r.Invalid),
		Other:   cloneTeams(r.Other),
		Pool:    r.Pool.clone(),
	}
}

func cloneTeams(teams []team.Team) []team.Team {
	out := make([]team.Team, len(teams))
	for i, t := range teams {
		out[i] = t.Clone()
	}
	return out
}

// Teams returns every team in valid, invalid, other order.
func (r Roster) Teams() []team.Team {
	all := make([]team.Team, 0, len(r.Valid)+len(r.Invalid)+len(r.Other))
	all = append(all, r.Valid...)
	all = append(all, r.Invalid...)
	return append(all, r.Other...)
}
