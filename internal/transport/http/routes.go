// Package http wires the gin HTTP transport: a thin JSON boundary over
// the search/generate core. Grounded on the teacher's RegisterRoutes
// shape and gin.H response pattern; trimmed to the three endpoints
// SPEC_FULL.md's DOMAIN STACK names (health, solve, generate) since
// this system has no session/auth/daily-puzzle surface.
package http

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sudokucore/internal/generate"
	"sudokucore/internal/grid"
	"sudokucore/internal/parse"
	"sudokucore/internal/search"
	"sudokucore/pkg/config"
	"sudokucore/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes attaches the API's endpoints to a gin engine.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/generate", generateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// SolveRequest carries a textual puzzle and the search mode to run.
type SolveRequest struct {
	Grid string `json:"grid" binding:"required"`
	Mode string `json:"mode"` // "first" (default), "all", or "unique"
}

// SolveResponse reports the outcome of a solve attempt.
type SolveResponse struct {
	Status    string `json:"status"`
	Grid      string `json:"grid,omitempty"`
	Solutions int    `json:"solutions"`
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := parse.Grid(bytes.NewBufferString(req.Grid))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid grid: %v", err)})
		return
	}

	mode, err := parseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, count := search.Solve(g, mode, nil, rng, false)
	if result == nil {
		c.JSON(http.StatusOK, SolveResponse{Status: "not_consistent", Solutions: 0})
		return
	}
	c.JSON(http.StatusOK, SolveResponse{
		Status:    "solved",
		Grid:      result.String(),
		Solutions: count,
	})
}

// GenerateRequest configures a puzzle generation call.
type GenerateRequest struct {
	Size      int     `json:"size" binding:"required"`
	Mode      string  `json:"mode"`       // "first" (default) or "unique"
	EmptyRate float64 `json:"empty_rate"` // defaults to constants.EmptyRate
	Seed      int64   `json:"seed"`       // 0 means use current time
}

// GenerateResponse returns the carved puzzle text.
type GenerateResponse struct {
	Grid string `json:"grid"`
}

func generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !grid.CheckSize(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported grid size %d", req.Size)})
		return
	}

	mode := search.First
	if req.Mode == "unique" {
		mode = search.Unique
	}
	rate := req.EmptyRate
	if rate <= 0 {
		rate = constants.EmptyRate
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, ok := generate.Generate(req.Size, mode, rate, rand.New(rand.NewSource(seed)))
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{Grid: g.String()})
}

func parseMode(s string) (search.Mode, error) {
	switch s {
	case "", "first":
		return search.First, nil
	case "all":
		return search.All, nil
	case "unique":
		return search.Unique, nil
	default:
		return search.First, fmt.Errorf("unknown mode %q (want first, all, or unique)", s)
	}
}
