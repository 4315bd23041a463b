package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealersim/internal/scenario"
)

// ScenarioHandler serves demand-schedule presets.
type ScenarioHandler struct {
	dir string
}

func NewScenarioHandler() *ScenarioHandler {
	dir := scenario.DefaultDir()
	log.Printf("ScenarioHandler: using scenario directory: %s", dir)
	return &ScenarioHandler{dir: dir}
}

// ScenarioDir returns the preset directory path (for debugging).
func (h *ScenarioHandler) ScenarioDir() string {
	return h.dir
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios, err := scenario.List(h.dir)
	if err != nil {
		log.Printf("ScenarioHandler: reading %s: %v", h.dir, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "SCENARIO_DIR_UNREADABLE",
				"message": err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
