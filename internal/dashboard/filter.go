// Package dashboard implements the filter and aggregation layer behind the
// interactive dashboard: pure functions over the normalized games table.
package dashboard

import (
	"math"

	"gamescope/backend/internal/dataset"
)

// Filter is the set of constraints a dashboard render applies to the table.
// A record must satisfy every constraint (logical AND). Empty Genres or
// GameTypes slices mean "no constraint", matching the original multiselects.
type Filter struct {
	Genres     []string
	GameTypes  []string
	PriceMin   float64
	PriceMax   float64
	ScoreMin   int
	ScoreMax   int
	OwnersMin  int64
	OwnersMax  int64
	MinReviews int
}

// Unconstrained returns a Filter whose ranges admit every record.
func Unconstrained() Filter {
	return Filter{
		PriceMax:  math.MaxFloat64,
		ScoreMax:  100,
		OwnersMax: math.MaxInt64,
	}
}

// Apply returns the subset of the table matching the filter. It is a pure
// function of (table, filter): no hidden state, no dependency on the order
// constraints were set.
func (f Filter) Apply(t *dataset.Table) []dataset.GameRecord {
	var out []dataset.GameRecord
	for _, r := range t.Records() {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record satisfies every constraint.
func (f Filter) Matches(r dataset.GameRecord) bool {
	if r.Price < f.PriceMin || r.Price > f.PriceMax {
		return false
	}
	if r.MetacriticScore < f.ScoreMin || r.MetacriticScore > f.ScoreMax {
		return false
	}
	if r.EstimatedOwnersLowerBound < f.OwnersMin || r.EstimatedOwnersLowerBound > f.OwnersMax {
		return false
	}
	if r.NumReviewsTotal < f.MinReviews {
		return false
	}
	if len(f.GameTypes) > 0 && !contains(f.GameTypes, r.GameType) {
		return false
	}
	if len(f.Genres) > 0 && !anyGenreMatches(f.Genres, r) {
		return false
	}
	return true
}

// anyGenreMatches reports whether the record carries at least one of the
// selected genres.
func anyGenreMatches(selected []string, r dataset.GameRecord) bool {
	for _, g := range selected {
		if r.HasGenre(g) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
