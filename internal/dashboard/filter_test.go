package dashboard

import (
	"testing"
	"time"

	"gamescope/backend/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *dataset.Table {
	return dataset.NewTable([]dataset.GameRecord{
		{
			Name: "Cheap Indie", Price: 4.99, MetacriticScore: 75, PctPosTotal: 92,
			NumReviewsTotal: 500, Genres: []string{"Indie", "Casual"},
			Windows: 1, Mac: 1, EstimatedOwnersLowerBound: 50000,
			GameType: dataset.GameTypeSingleOnly,
		},
		{
			Name: "Pricey Action", Price: 59.99, MetacriticScore: 88, PctPosTotal: 81,
			NumReviewsTotal: 120000, Genres: []string{"Action", "RPG"},
			Windows: 1, EstimatedOwnersLowerBound: 5000000,
			GameType: dataset.GameTypeSingleAndMulti,
		},
		{
			Name: "Free Shooter", Price: 0, MetacriticScore: 0, PctPosTotal: 70,
			NumReviewsTotal: 900000, Genres: []string{"Action", "Free To Play"},
			Windows: 1, Linux: 1, EstimatedOwnersLowerBound: 50000000,
			GameType: dataset.GameTypeMultiOnly,
		},
	}, time.Now())
}

func names(records []dataset.GameRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestUnconstrainedMatchesEverything(t *testing.T) {
	table := testTable()
	matched := Unconstrained().Apply(table)
	assert.Len(t, matched, table.Len())
}

func TestFilterAppliesAllConstraints(t *testing.T) {
	f := Unconstrained()
	f.Genres = []string{"Indie"}
	f.PriceMin = 0
	f.PriceMax = 10

	matched := f.Apply(testTable())
	assert.Equal(t, []string{"Cheap Indie"}, names(matched))
}

func TestGenreMatchesOnAnyIntersection(t *testing.T) {
	f := Unconstrained()
	f.Genres = []string{"RPG", "Casual"}

	matched := f.Apply(testTable())
	assert.Equal(t, []string{"Cheap Indie", "Pricey Action"}, names(matched))
}

func TestScoreRangeExcludesUnscored(t *testing.T) {
	f := Unconstrained()
	f.ScoreMin = 1

	matched := f.Apply(testTable())
	assert.NotContains(t, names(matched), "Free Shooter")
}

func TestMinReviewsConstraint(t *testing.T) {
	f := Unconstrained()
	f.MinReviews = 100000

	matched := f.Apply(testTable())
	assert.Equal(t, []string{"Pricey Action", "Free Shooter"}, names(matched))
}

func TestOwnersRangeConstraint(t *testing.T) {
	f := Unconstrained()
	f.OwnersMin = 1000000
	f.OwnersMax = 10000000

	matched := f.Apply(testTable())
	assert.Equal(t, []string{"Pricey Action"}, names(matched))
}

func TestGameTypeConstraint(t *testing.T) {
	f := Unconstrained()
	f.GameTypes = []string{dataset.GameTypeMultiOnly}

	matched := f.Apply(testTable())
	assert.Equal(t, []string{"Free Shooter"}, names(matched))
}

func TestFilterIsIdempotent(t *testing.T) {
	table := testTable()
	f := Unconstrained()
	f.Genres = []string{"Action"}
	f.PriceMax = 100

	first := f.Apply(table)
	second := f.Apply(table)
	assert.Equal(t, first, second)
}

func TestFilterIsCommutativeAcrossPredicateOrder(t *testing.T) {
	table := testTable()

	genreFilter := Unconstrained()
	genreFilter.Genres = []string{"Action"}
	priceFilter := Unconstrained()
	priceFilter.PriceMax = 10

	refine := func(records []dataset.GameRecord, f Filter) []dataset.GameRecord {
		var out []dataset.GameRecord
		for _, r := range records {
			if f.Matches(r) {
				out = append(out, r)
			}
		}
		return out
	}

	genreThenPrice := refine(genreFilter.Apply(table), priceFilter)
	priceThenGenre := refine(priceFilter.Apply(table), genreFilter)
	require.Equal(t, genreThenPrice, priceThenGenre)
	assert.Equal(t, []string{"Free Shooter"}, names(genreThenPrice))
}

func TestFilterMatchingNothingReturnsEmpty(t *testing.T) {
	f := Unconstrained()
	f.Genres = []string{"Horror"}

	matched := f.Apply(testTable())
	assert.Empty(t, matched)
}
