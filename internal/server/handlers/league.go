package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"league-platform/backend/internal/league"
	"league-platform/backend/internal/models"
	"league-platform/backend/internal/simulation"
	"league-platform/backend/internal/validation"
)

// LeagueHandler exposes the tournament operations over HTTP
type LeagueHandler struct {
	service *league.Service
}

// NewLeagueHandler creates the handler set around a league service
func NewLeagueHandler(service *league.Service) *LeagueHandler {
	return &LeagueHandler{service: service}
}

// RegisterRoutes attaches all league endpoints under /api
func (h *LeagueHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/groups", h.GetGroups)
		api.POST("/draw-groups", h.DrawGroups)
		api.POST("/fixtures", h.GenerateFixtures)
		api.GET("/fixtures", h.GetFixtures)
		api.GET("/fixtures/all", h.GetAllFixtures)
		api.POST("/play-next-match", h.PlayNextMatch)
		api.POST("/play-next-week", h.PlayNextWeek)
		api.POST("/play-all", h.PlayAll)
		api.PUT("/matches/:id", h.CorrectMatch)
		api.GET("/standings", h.GetStandings)
		api.GET("/predictions", h.GetPredictions)
		api.POST("/reset", h.Reset)
	}
}

// respondError maps service failures to status codes: precondition errors the
// caller can fix become 400, everything else a generic 500.
func respondError(c *gin.Context, err error) {
	if league.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	log.Printf("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Server error",
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
	})
}

// GetGroups returns every group with its table
func (h *LeagueHandler) GetGroups(c *gin.Context) {
	groups, err := h.service.GetGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// DrawGroups runs the draw and returns the fresh assignment
func (h *LeagueHandler) DrawGroups(c *gin.Context) {
	groups, err := h.service.DrawGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Groups drawn successfully",
		"groups":  groups,
	})
}

// GenerateFixtures builds the season schedule for the current draw
func (h *LeagueHandler) GenerateFixtures(c *gin.Context) {
	fixtures, err := h.service.GenerateFixtures(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Fixtures generated successfully",
		"fixtures": fixtures,
	})
}

// GetFixtures returns every fixture grouped by week
func (h *LeagueHandler) GetFixtures(c *gin.Context) {
	fixtures, err := h.service.GetFixtures(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": fixtures})
}

// GetAllFixtures returns fixtures keyed by group, then by week
func (h *LeagueHandler) GetAllFixtures(c *gin.Context) {
	fixtures, err := h.service.GetAllFixtures(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": fixtures})
}

// PlayNextMatch simulates the single next unplayed match
func (h *LeagueHandler) PlayNextMatch(c *gin.Context) {
	outcome, err := h.service.PlayNextMatch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":            "success",
		"match":             outcome.Match,
		"week":              outcome.Week,
		"remaining_matches": outcome.RemainingMatches,
		"is_last_match":     outcome.IsLastMatch,
	})
}

// PlayNextWeek simulates the next unplayed week as one batch
func (h *LeagueHandler) PlayNextWeek(c *gin.Context) {
	outcome, err := h.service.PlayNextWeek(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"week":    outcome.Week,
		"results": outcome.Results,
	})
}

// PlayAll simulates every remaining week
func (h *LeagueHandler) PlayAll(c *gin.Context) {
	outcomes, err := h.service.PlayAllWeeks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"weeks_played": len(outcomes),
		"weeks":        outcomes,
	})
}

// CorrectMatch overrides a played match's score
func (h *LeagueHandler) CorrectMatch(c *gin.Context) {
	matchID := c.Param("id")
	if err := validation.ValidateUUID(matchID); err != nil {
		badRequest(c, "Invalid match id")
		return
	}

	var req models.CorrectMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "home_goals and away_goals are required")
		return
	}
	if err := validation.ValidateScoreline(*req.HomeGoals, *req.AwayGoals, simulation.MaxGoals); err != nil {
		badRequest(c, err.Error())
		return
	}

	match, err := h.service.CorrectMatch(c.Request.Context(), matchID, *req.HomeGoals, *req.AwayGoals)
	if err != nil {
		if errors.Is(err, league.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Match not found",
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Match updated successfully",
		"match":   match,
	})
}

// GetStandings returns group tables keyed by group name
func (h *LeagueHandler) GetStandings(c *gin.Context) {
	standings, err := h.service.GetStandings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"standings": standings})
}

// GetPredictions returns the advisory winner probabilities per group
func (h *LeagueHandler) GetPredictions(c *gin.Context) {
	predictions, err := h.service.GetPredictions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}

// Reset clears all results and standings, keeping the draw and schedule
func (h *LeagueHandler) Reset(c *gin.Context) {
	if err := h.service.ResetLeague(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "League reset successfully",
	})
}
