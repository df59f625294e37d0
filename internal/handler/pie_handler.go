package handler

import (
	"encoding/csv"
	"net/http"
	"os"
	"strconv"

	"gamescope/backend/internal/config"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// PieSliceResponse is one slice of the demo pie chart.
type PieSliceResponse struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Share    float64 `json:"share"`
}

// PieResponse is the demo pie chart data.
type PieResponse struct {
	Title  string             `json:"title"`
	Slices []PieSliceResponse `json:"slices"`
}

// endregion

// GetPieDemo godoc
// @Summary      Get the pie chart demo data
// @Description  Reads the demo CSV (Category,Value) and returns its rows with percentage shares.
// @Tags         demos
// @Produce      json
// @Success      200  {object}  PieResponse
// @Failure      404  {object}  ErrorResponse "Demo data file not found"
// @Failure      422  {object}  ErrorResponse "Demo data file has the wrong columns"
// @Router       /pie [get]
func GetPieDemo(c *gin.Context) {
	f, err := os.Open(config.AppConfig.PieDataPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Demo data file not found. Add a CSV with 'Category' and 'Value' columns at " + config.AppConfig.PieDataPath})
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil || len(rows) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Demo data file could not be parsed as CSV"})
		return
	}

	catIdx, valIdx := -1, -1
	for i, name := range rows[0] {
		switch name {
		case "Category":
			catIdx = i
		case "Value":
			valIdx = i
		}
	}
	if catIdx < 0 || valIdx < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "The CSV file must have 'Category' and 'Value' columns"})
		return
	}

	var slices []PieSliceResponse
	var total float64
	for _, row := range rows[1:] {
		if catIdx >= len(row) || valIdx >= len(row) {
			continue
		}
		value, err := strconv.ParseFloat(row[valIdx], 64)
		if err != nil {
			continue
		}
		slices = append(slices, PieSliceResponse{Category: row[catIdx], Value: value})
		total += value
	}
	if total > 0 {
		for i := range slices {
			slices[i].Share = slices[i].Value / total * 100
		}
	}

	c.JSON(http.StatusOK, PieResponse{
		Title:  "Distribution of Categories",
		Slices: slices,
	})
}
