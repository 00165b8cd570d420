package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackify/internal/api"
	"trackify/internal/config"
	"trackify/internal/modules/alerts"
	"trackify/internal/modules/fleet"
	"trackify/internal/modules/history"
	"trackify/internal/modules/insights"
	"trackify/internal/modules/mapview"
	"trackify/internal/modules/simulation"
	"trackify/internal/modules/stream"
	"trackify/pkg/genai"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()
	e.HideBanner = true

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173", cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-API-Key"},
	}))

	// 3. --- Stores ---
	// Everything is in-memory and resets on restart.
	fleetStore := fleet.NewStore(fleet.Seed(time.Now()))
	alertLog := alerts.NewLog()
	speedHistory := history.NewLog()

	// 4. --- Dependency Injection (Wiring everything up) ---
	hub := stream.NewHub(fleetStore, alertLog)

	fleetService := fleet.NewService(fleetStore, alertLog, speedHistory, hub)
	fleetHandler := fleet.NewHandler(fleetService)

	alertHandler := alerts.NewHandler(alertLog)
	historyHandler := history.NewHandler(speedHistory)

	geminiClient := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	insightService := insights.NewService(fleetStore, alertLog, geminiClient)
	insightHandler := insights.NewHandler(insightService)

	mapView := mapview.NewView(fleetStore)
	mapHandler := mapview.NewHandler(mapView)

	// 5. --- Router ---
	api.SetupRoutes(e,
		fleetHandler,
		alertHandler,
		historyHandler,
		insightHandler,
		mapHandler,
		hub,
		cfg.APIKeyList(),
	)

	// 6. --- Background work ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.SimulationEnabled {
		driver := simulation.NewDriver(fleetStore, alertLog, speedHistory, hub, cfg.Interval())
		go driver.Run(ctx)
	}

	// One automatic insight fetch on startup; later refreshes are user-driven.
	go insightService.Refresh(ctx)

	// 7. --- Start server with graceful shutdown ---
	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server, an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
