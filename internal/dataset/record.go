package dataset

// Game type classifications derived from a game's category tags.
const (
	GameTypeSingleAndMulti = "Single-player & Multi-player"
	GameTypeSingleOnly     = "Single-player Only"
	GameTypeMultiOnly      = "Multi-player Only"
	GameTypeOther          = "Other/Unknown"
)

// GameRecord is one normalized row of the games dataset. All numeric fields
// default to 0 when the source value is missing or malformed, so downstream
// aggregation never has to handle missing values.
type GameRecord struct {
	Name                      string
	Price                     float64
	MetacriticScore           int
	PctPosTotal               float64
	NumReviewsTotal           int
	AveragePlaytimeForever    float64
	Genres                    []string
	Categories                []string
	Windows                   int
	Mac                       int
	Linux                     int
	EstimatedOwnersLowerBound int64
	GameType                  string
}

// HasGenre reports whether the record carries the given genre tag.
func (r GameRecord) HasGenre(genre string) bool {
	for _, g := range r.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// classifyGameType buckets a game by its category tags.
func classifyGameType(categories []string) string {
	var single, multi bool
	for _, c := range categories {
		switch c {
		case "Single-player":
			single = true
		case "Multi-player":
			multi = true
		}
	}
	switch {
	case single && multi:
		return GameTypeSingleAndMulti
	case single:
		return GameTypeSingleOnly
	case multi:
		return GameTypeMultiOnly
	default:
		return GameTypeOther
	}
}
