package main

import (
	"fmt"
	"log"
	"os"

	"dealersim/internal/api/handlers"
	"dealersim/internal/api/middleware"
	"dealersim/internal/driver"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// One driver for the whole server: the live run is a singleton.
	drv := driver.New()

	simulateHandler := handlers.NewSimulateHandler()
	runHandler := handlers.NewRunHandler(drv)
	scenarioHandler := handlers.NewScenarioHandler()
	rankHandler := handlers.NewRankHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulate)

		api.POST("/runs", runHandler.StartRun)
		api.GET("/runs/current", runHandler.GetRun)
		api.DELETE("/runs/current", runHandler.StopRun)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/rank", rankHandler.RankParams)
	}

	// Serve the canvas front end if present.
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.StaticFile("/", staticDir+"/index.html")
		router.StaticFile("/index.html", staticDir+"/index.html")
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
