package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealersim/internal/api/models"
	"dealersim/internal/sim"
)

const defaultSimulateDays = 100

// SimulateHandler runs one-shot batch simulations.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulate handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	params, schedule, err := resolveConfig(req.Config)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}

	days := req.Options.Days
	if days == 0 {
		days = defaultSimulateDays
	}

	engine, err := sim.New(params, schedule)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}
	res, err := engine.Run(days)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	resp := models.SimulateResponse{
		Status: "completed",
		Summary: models.SimulateSummary{
			Days:           len(res.Ledger),
			FinalInventory: res.FinalInventory,
			MinInventory:   res.MinInventory,
			MaxInventory:   res.MaxInventory,
			TotalOrdered:   res.TotalOrdered,
			TotalDemand:    res.TotalDemand,
			StockoutDays:   res.StockoutDays,
		},
	}
	if req.Options.IncludeLedger {
		resp.Ledger = toLedgerRows(res.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}
