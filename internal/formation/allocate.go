package formation

import (
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/teamform/teamform/internal/submission"
	"github.com/teamform/teamform/internal/team"
)

// DefaultCatalog returns the project tokens "1" to "25", used when no team
// declared any preference.
func DefaultCatalog() []string {
	catalog := make([]string, 0, submission.CatalogSize)
	for i := 1; i <= submission.CatalogSize; i++ {
		catalog = append(catalog, strconv.Itoa(i))
	}
	return catalog
}

// Catalog returns the union of every team's preferences in first-seen order,
// or DefaultCatalog when that union is empty.
func Catalog(r Roster) []string {
	var catalog []string
	seen := make(map[string]struct{})
	for _, t := range r.Teams() {
		for _, p := range t.Projects {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			catalog = append(catalog, p)
		}
	}
	if len(catalog) == 0 {
		return DefaultCatalog()
	}
	return catalog
}

// Allocate binds a project to every team. Valid teams pick first, earliest
// submission first, from their own preferences. Invalid then other teams take
// the shuffled leftovers; once those run out each further team gets a random
// catalog entry, which may repeat one already taken.
func Allocate(in Roster, rng *rand.Rand) Roster {
	r := in.clone()
	catalog := Catalog(r)
	inCatalog := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		inCatalog[p] = struct{}{}
	}

	slices.SortStableFunc(r.Valid, func(a, b team.Team) int {
		return a.SubmittedAt.Compare(b.SubmittedAt)
	})

	assigned := make(map[string]struct{})
	for i := range r.Valid {
		for _, p := range r.Valid[i].Projects {
			_, known := inCatalog[p]
			_, taken := assigned[p]
			if known && !taken {
				r.Valid[i].AssignedProject = p
				assigned[p] = struct{}{}
				break
			}
		}
	}

	remaining := make([]string, 0, len(catalog))
	for _, p := range catalog {
		if _, taken := assigned[p]; !taken {
			remaining = append(remaining, p)
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	next := 0
	for _, bucket := range [][]team.Team{r.Invalid, r.Other} {
		for i := range bucket {
			if next < len(remaining) {
				bucket[i].AssignedProject = remaining[next]
			} else {
				bucket[i].AssignedProject = catalog[rng.IntN(len(catalog))]
			}
			next++
		}
	}
	return r
}
