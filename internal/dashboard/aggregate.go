package dashboard

import (
	"sort"

	"gamescope/backend/internal/dataset"
)

// SortKey identifies a sortable column of the filtered table.
type SortKey string

const (
	SortByPctPosTotal     SortKey = "pct_pos_total"
	SortByMetacriticScore SortKey = "metacritic_score"
	SortByOwners          SortKey = "owners_lower_bound"
	SortByPrice           SortKey = "price"
	SortByNumReviews      SortKey = "num_reviews_total"
)

// ValidSortKey reports whether k names a sortable column.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByPctPosTotal, SortByMetacriticScore, SortByOwners, SortByPrice, SortByNumReviews:
		return true
	}
	return false
}

// Summary holds the headline metrics for a filtered subset.
type Summary struct {
	TotalGames            int
	AveragePrice          float64
	AverageMetacritic     float64
	TotalOwnersLowerBound int64
}

// Summarize computes the metric row for a subset. Average metacritic is
// taken over games with a score above 0, since 0 stands in for "no score".
// An empty subset yields zeros rather than a division error.
func Summarize(records []dataset.GameRecord) Summary {
	s := Summary{TotalGames: len(records)}
	if len(records) == 0 {
		return s
	}

	var priceSum float64
	var scoreSum, scored int
	for _, r := range records {
		priceSum += r.Price
		s.TotalOwnersLowerBound += r.EstimatedOwnersLowerBound
		if r.MetacriticScore > 0 {
			scoreSum += r.MetacriticScore
			scored++
		}
	}
	s.AveragePrice = priceSum / float64(len(records))
	if scored > 0 {
		s.AverageMetacritic = float64(scoreSum) / float64(scored)
	}
	return s
}

// sortValue extracts the sort column from a record.
func sortValue(r dataset.GameRecord, key SortKey) float64 {
	switch key {
	case SortByMetacriticScore:
		return float64(r.MetacriticScore)
	case SortByOwners:
		return float64(r.EstimatedOwnersLowerBound)
	case SortByPrice:
		return r.Price
	case SortByNumReviews:
		return float64(r.NumReviewsTotal)
	default:
		return r.PctPosTotal
	}
}

// Sort returns a copy of records ordered by the given key. The input slice
// is left untouched so filtering stays a pure computation.
func Sort(records []dataset.GameRecord, key SortKey, ascending bool) []dataset.GameRecord {
	out := make([]dataset.GameRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return sortValue(out[i], key) < sortValue(out[j], key)
		}
		return sortValue(out[i], key) > sortValue(out[j], key)
	})
	return out
}

// TopN returns the n records with the largest value for key, descending.
func TopN(records []dataset.GameRecord, key SortKey, n int) []dataset.GameRecord {
	sorted := Sort(records, key, false)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// BreakdownEntry is one slice of a categorical breakdown.
type BreakdownEntry struct {
	Label string
	Count int
}

// GenreBreakdown counts how many games in the subset carry each genre,
// sorted by count descending, ties broken by label.
func GenreBreakdown(records []dataset.GameRecord) []BreakdownEntry {
	counts := make(map[string]int)
	for _, r := range records {
		for _, g := range r.Genres {
			counts[g]++
		}
	}
	return sortedBreakdown(counts)
}

// GameTypeBreakdown counts games per game-type classification.
func GameTypeBreakdown(records []dataset.GameRecord) []BreakdownEntry {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.GameType]++
	}
	return sortedBreakdown(counts)
}

func sortedBreakdown(counts map[string]int) []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, BreakdownEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// PlatformSupport counts games supporting each platform. The platform flags
// are 0/1 ints precisely so they can be summed like this.
type PlatformSupport struct {
	Windows int
	Mac     int
	Linux   int
}

// SummarizePlatforms sums platform support across the subset.
func SummarizePlatforms(records []dataset.GameRecord) PlatformSupport {
	var p PlatformSupport
	for _, r := range records {
		p.Windows += r.Windows
		p.Mac += r.Mac
		p.Linux += r.Linux
	}
	return p
}
