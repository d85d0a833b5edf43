package formation_test

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/teamform/teamform/internal/submission"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// members returns n identifiers prefix-1 .. prefix-n.
func members(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i+1)
	}
	return out
}

// fullRanking returns "1" .. "25", optionally rotated so first comes first.
func fullRanking(first int) []string {
	out := make([]string, 0, submission.CatalogSize)
	for i := 0; i < submission.CatalogSize; i++ {
		out = append(out, strconv.Itoa((first-1+i)%submission.CatalogSize+1))
	}
	return out
}

func row(ids []string, projects []string, at time.Time) submission.Row {
	return submission.Row{
		SubmittedAt:       at,
		Members:           ids,
		Projects:          projects,
		AllProjectsListed: len(projects) >= submission.CatalogSize,
	}
}

func at(hour int) time.Time {
	return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
}
