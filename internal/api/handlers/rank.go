package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealersim/internal/analysis"
	"dealersim/internal/api/models"
	"dealersim/internal/model"
)

const defaultRankLimit = 10

// RankHandler sweeps delay combinations and ranks them by stability.
type RankHandler struct{}

func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankParams handles GET /api/v1/rank.
func (h *RankHandler) RankParams(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if req.Demand == "" {
		req.Demand = "0,20,25,22"
	}
	if req.Limit == 0 {
		req.Limit = defaultRankLimit
	}

	schedule, err := model.ParseDemandSchedule(req.Demand)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}

	results, err := analysis.Sweep(analysis.SweepOptions{
		Schedule: schedule,
		Days:     req.Days,
		MinDelay: req.MinDelay,
		MaxDelay: req.MaxDelay,
	})
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	resp := models.RankResponse{Rankings: make([]models.Ranking, 0, len(results))}
	for i, r := range results {
		resp.Rankings = append(resp.Rankings, models.Ranking{
			Rank:            i + 1,
			PerceptionDelay: r.Params.PerceptionDelay,
			ResponseDelay:   r.Params.ResponseDelay,
			DeliveryDelay:   r.Params.DeliveryDelay,
			Amplitude:       r.Amplitude,
			MinInventory:    r.MinInventory,
			MaxInventory:    r.MaxInventory,
			StockoutDays:    r.StockoutDays,
			SettlingDay:     r.SettlingDay,
		})
	}
	c.JSON(http.StatusOK, resp)
}
