package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BioResponse is the static profile content for the bio page.
type BioResponse struct {
	Name     string   `json:"name"`
	Program  string   `json:"program"`
	Intro    string   `json:"intro"`
	FunFacts []string `json:"fun_facts"`
	PhotoURL string   `json:"photo_url"`
}

// GetBio godoc
// @Summary      Get the profile bio
// @Description  Returns the static bio content for the portfolio's profile page.
// @Tags         bio
// @Produce      json
// @Success      200  {object}  BioResponse
// @Router       /bio [get]
func GetBio(c *gin.Context) {
	c.JSON(http.StatusOK, BioResponse{
		Name:    "Myke Walker",
		Program: "Computer Science Major",
		Intro: "I am a data nerd that is looking to analyze, access, and anonymize data structures. " +
			"I believe in data privacy and preservation so that we can be a more educated world",
		FunFacts: []string{
			"I love video games",
			"I'm learning to program better data structures",
			"I want to build a personalized large language model",
		},
		PhotoURL: "https://www.shutterstock.com/shutterstock/photos/98021261/display_1500/stock-vector-afro-smiley-face-98021261.jpg",
	})
}
