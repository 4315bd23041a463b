package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dealersim/internal/api/models"
	"dealersim/internal/driver"
)

// RunHandler exposes the server's single live animation driver. Starting
// a run while one is in progress replaces it; there is never more than
// one engine advancing.
type RunHandler struct {
	drv *driver.Driver
}

func NewRunHandler(drv *driver.Driver) *RunHandler {
	if drv == nil {
		drv = driver.New()
	}
	return &RunHandler{drv: drv}
}

// StartRun handles POST /api/v1/runs.
func (h *RunHandler) StartRun(c *gin.Context) {
	var req models.StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	params, schedule, err := resolveConfig(req.Config)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}

	cfg := driver.Config{
		Params:       params,
		Schedule:     schedule,
		TickInterval: time.Duration(req.TickMillis) * time.Millisecond,
		Window:       req.Window,
	}
	if err := h.drv.Start(cfg); err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}
	c.JSON(http.StatusCreated, h.drv.Frame())
}

// GetRun handles GET /api/v1/runs/current. The frame is the full
// retained window, so a canvas client redraws from scratch every poll.
func (h *RunHandler) GetRun(c *gin.Context) {
	c.JSON(http.StatusOK, h.drv.Frame())
}

// StopRun handles DELETE /api/v1/runs/current. Stopping an already
// stopped run is a no-op.
func (h *RunHandler) StopRun(c *gin.Context) {
	h.drv.Stop()
	c.Status(http.StatusNoContent)
}
