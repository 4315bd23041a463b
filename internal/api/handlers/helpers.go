package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealersim/internal/api/models"
	"dealersim/internal/model"
	"dealersim/internal/sim"
)

// resolveConfig applies wire defaults and validates the result. All
// configuration errors surface here, before any engine exists.
func resolveConfig(cfg models.SimulationConfig) (model.Params, model.DemandSchedule, error) {
	if cfg.PerceptionDelay == 0 {
		cfg.PerceptionDelay = 3
	}
	if cfg.ResponseDelay == 0 {
		cfg.ResponseDelay = 3
	}
	if cfg.DeliveryDelay == 0 {
		cfg.DeliveryDelay = 3
	}
	if cfg.Demand == "" {
		cfg.Demand = "0,20"
	}

	params := model.Params{
		PerceptionDelay: cfg.PerceptionDelay,
		ResponseDelay:   cfg.ResponseDelay,
		DeliveryDelay:   cfg.DeliveryDelay,
	}
	if err := params.Validate(); err != nil {
		return model.Params{}, nil, err
	}
	schedule, err := model.ParseDemandSchedule(cfg.Demand)
	if err != nil {
		return model.Params{}, nil, fmt.Errorf("demand invalid: %w", err)
	}
	return params, schedule, nil
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func toLedgerRows(ledger []sim.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, 0, len(ledger))
	for _, r := range ledger {
		out = append(out, models.LedgerRow{
			Day:              r.Day,
			Deliveries:       r.Deliveries,
			Demand:           r.Demand,
			PerceivedSales:   r.PerceivedSales,
			DesiredInventory: r.DesiredInventory,
			Discrepancy:      r.Discrepancy,
			Order:            r.Order,
			InventoryStart:   r.InventoryStart,
			InventoryEnd:     r.InventoryEnd,
			Trend:            string(r.Trend),
		})
	}
	return out
}
