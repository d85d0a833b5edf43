package formation

import (
	"math/rand/v2"

	"github.com/teamform/teamform/internal/team"
)

// Repair tops up under-sized invalid teams with participants drawn uniformly
// at random from the pool. Teams are served in list order, so earlier teams
// draw from a larger pool.
func Repair(in Roster, rng *rand.Rand) Roster {
	r := in.clone()
	for i := range r.Invalid {
		t := &r.Invalid[i]
		if !t.NeedsMoreStudents {
			continue
		}
		needed := t.Shortfall()
		if needed == 0 || r.Pool.Len() == 0 {
			continue
		}
		picked := sample(r.Pool.Members(), min(needed, r.Pool.Len()), rng)
		t.Members = append(t.Members, picked...)
		r.Pool.remove(picked...)
		t.NeedsMoreStudents = len(t.Members) < team.Size
	}
	return r
}

// Settle groups pooled participants into new teams of team.Size in pool
// order, then hands each leftover to the first invalid team still short of
// members. Participants no team needs stay pooled.
func Settle(in Roster) Roster {
	r := in.clone()
	leftover := r.Pool.Members()
	for len(leftover) >= team.Size {
		r.Other = append(r.Other, team.Synthesized(leftover[:team.Size]))
		leftover = leftover[team.Size:]
	}

	remaining := NewPool()
	for _, id := range leftover {
		if !trickle(r.Invalid, id) {
			remaining.add(id)
		}
	}
	r.Pool = remaining
	return r
}

// Complete runs Repair followed by Settle.
func Complete(in Roster, rng *rand.Rand) Roster {
	return Settle(Repair(in, rng))
}

func trickle(invalid []team.Team, id string) bool {
	for i := range invalid {
		t := &invalid[i]
		if !t.NeedsMoreStudents {
			continue
		}
		t.Members = append(t.Members, id)
		if len(t.Members) >= team.Size {
			t.NeedsMoreStudents = false
		}
		return true
	}
	return false
}

// sample draws k distinct elements of ids without replacement. ids is
// reordered in place.
func sample(ids []string, k int, rng *rand.Rand) []string {
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return append([]string(nil), ids[:k]...)
}
