package dashboard

import (
	"sort"

	"gamescope/backend/internal/dataset"
)

const freeToPlayGenre = "Free To Play"

// ScatterPoint is one point of an EDA scatter series.
type ScatterPoint struct {
	Name    string
	X       float64
	Y       float64
	Reviews int
}

// PriceReceptionPoints prepares the price vs. positive-review-percentage
// scatter. Free games and games with no reviews carry no signal for this
// question, so rows with price or pct at 0 are excluded.
func PriceReceptionPoints(records []dataset.GameRecord) []ScatterPoint {
	var points []ScatterPoint
	for _, r := range records {
		if r.Price <= 0 || r.PctPosTotal <= 0 {
			continue
		}
		points = append(points, ScatterPoint{
			Name:    r.Name,
			X:       r.Price,
			Y:       r.PctPosTotal,
			Reviews: r.NumReviewsTotal,
		})
	}
	return points
}

// AverageEntry is one bar of an averaged bar chart.
type AverageEntry struct {
	Label   string
	Average float64
}

// OwnersByGameType averages the estimated-owners lower bound per game-type
// classification, largest average first.
func OwnersByGameType(records []dataset.GameRecord) []AverageEntry {
	sums := make(map[string]int64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.GameType] += r.EstimatedOwnersLowerBound
		counts[r.GameType]++
	}

	entries := make([]AverageEntry, 0, len(sums))
	for label, sum := range sums {
		entries = append(entries, AverageEntry{
			Label:   label,
			Average: float64(sum) / float64(counts[label]),
		})
	}
	sortAverages(entries)
	return entries
}

// PlaytimePerDollarByGenre averages playtime-minutes-per-dollar per genre
// over paid games, largest average first. The "Free To Play" tag itself is
// skipped: a per-dollar figure only makes sense where the dollar is the
// point of the genre comparison.
func PlaytimePerDollarByGenre(records []dataset.GameRecord) []AverageEntry {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if r.Price <= 0 {
			continue
		}
		perDollar := r.AveragePlaytimeForever / r.Price
		for _, g := range r.Genres {
			if g == freeToPlayGenre {
				continue
			}
			sums[g] += perDollar
			counts[g]++
		}
	}

	entries := make([]AverageEntry, 0, len(sums))
	for label, sum := range sums {
		entries = append(entries, AverageEntry{
			Label:   label,
			Average: sum / float64(counts[label]),
		})
	}
	sortAverages(entries)
	return entries
}

func sortAverages(entries []AverageEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].Label < entries[j].Label
	})
}

// CriticsVsUsersPoints prepares the metacritic vs. user-review quadrant
// scatter, restricted to games with a critic score, a user score, and more
// than 100 reviews.
func CriticsVsUsersPoints(records []dataset.GameRecord) []ScatterPoint {
	var points []ScatterPoint
	for _, r := range records {
		if r.MetacriticScore <= 0 || r.PctPosTotal <= 0 || r.NumReviewsTotal <= 100 {
			continue
		}
		points = append(points, ScatterPoint{
			Name:    r.Name,
			X:       float64(r.MetacriticScore),
			Y:       r.PctPosTotal,
			Reviews: r.NumReviewsTotal,
		})
	}
	return points
}
