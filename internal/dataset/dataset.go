// Package dataset loads the bundled Steam games CSV into an immutable
// in-memory table, normalizing the messy source fields into analyzable
// columns as it goes.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"
)

// Columns the loader requires. Extra columns in the file are ignored.
var requiredColumns = []string{
	"name",
	"price",
	"metacritic_score",
	"pct_pos_total",
	"num_reviews_total",
	"average_playtime_forever",
	"genres",
	"categories",
	"windows",
	"mac",
	"linux",
	"estimated_owners",
}

// Table holds the normalized dataset. It is created once at load time and
// read-only afterwards; filter-option domains are precomputed here so each
// render works from the same values the original sidebar was built from.
type Table struct {
	records     []GameRecord
	genres      []string
	gameTypes   []string
	maxPrice    float64
	maxReviews  int
	refreshedAt time.Time
}

// NewTable builds a Table from already-normalized records.
func NewTable(records []GameRecord, refreshedAt time.Time) *Table {
	t := &Table{records: records, refreshedAt: refreshedAt}

	genreSet := make(map[string]struct{})
	typeSet := make(map[string]struct{})
	for _, r := range records {
		for _, g := range r.Genres {
			genreSet[g] = struct{}{}
		}
		typeSet[r.GameType] = struct{}{}
		if r.Price > t.maxPrice {
			t.maxPrice = r.Price
		}
		if r.NumReviewsTotal > t.maxReviews {
			t.maxReviews = r.NumReviewsTotal
		}
	}
	for g := range genreSet {
		t.genres = append(t.genres, g)
	}
	sort.Strings(t.genres)
	for gt := range typeSet {
		t.gameTypes = append(t.gameTypes, gt)
	}
	sort.Strings(t.gameTypes)

	return t
}

// Records returns the normalized rows. Callers must not mutate them.
func (t *Table) Records() []GameRecord { return t.records }

// Len returns the number of rows in the table.
func (t *Table) Len() int { return len(t.records) }

// Genres returns the sorted set of genre tags present in the dataset.
func (t *Table) Genres() []string { return t.genres }

// GameTypes returns the sorted set of game-type classifications present.
func (t *Table) GameTypes() []string { return t.gameTypes }

// MaxPrice returns the highest price in the dataset.
func (t *Table) MaxPrice() float64 { return t.maxPrice }

// MaxReviews returns the highest total review count in the dataset.
func (t *Table) MaxReviews() int { return t.maxReviews }

// RefreshedAt returns the modification time of the source file.
func (t *Table) RefreshedAt() time.Time { return t.refreshedAt }

// Load reads and normalizes the games CSV at path. A missing file or a
// header without the required columns is an error; anything wrong with an
// individual row degrades to that field's default and never aborts the load.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset '%s': %w", path, err)
	}
	defer f.Close()

	refreshedAt := time.Now()
	if info, err := f.Stat(); err == nil {
		refreshedAt = info.ModTime()
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading dataset header from '%s': %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset '%s' is missing required column '%s'", path, name)
		}
	}

	var records []GameRecord
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Row-level malformation is never fatal.
			skipped++
			continue
		}

		field := func(name string) string {
			i := cols[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		categories := parseListField(field("categories"))
		records = append(records, GameRecord{
			Name:                      field("name"),
			Price:                     parseFloat(field("price")),
			MetacriticScore:           parseInt(field("metacritic_score")),
			PctPosTotal:               parseFloat(field("pct_pos_total")),
			NumReviewsTotal:           parseInt(field("num_reviews_total")),
			AveragePlaytimeForever:    parseFloat(field("average_playtime_forever")),
			Genres:                    parseListField(field("genres")),
			Categories:                categories,
			Windows:                   parseBoolFlag(field("windows")),
			Mac:                       parseBoolFlag(field("mac")),
			Linux:                     parseBoolFlag(field("linux")),
			EstimatedOwnersLowerBound: parseOwnersLowerBound(field("estimated_owners")),
			GameType:                  classifyGameType(categories),
		})
	}

	if skipped > 0 {
		log.Printf("dataset '%s': skipped %d unreadable rows", path, skipped)
	}
	log.Printf("dataset '%s': loaded %d games", path, len(records))

	return NewTable(records, refreshedAt), nil
}
