package main

import (
	"fmt"
	"os"

	"github.com/nurpe/fleetflow/internal/auth"
	"github.com/nurpe/fleetflow/internal/config"
	"github.com/nurpe/fleetflow/internal/db"
	"github.com/nurpe/fleetflow/internal/excel"
	httphandler "github.com/nurpe/fleetflow/internal/http"
	"github.com/nurpe/fleetflow/internal/http/middleware"
	"github.com/nurpe/fleetflow/internal/logger"
	"github.com/nurpe/fleetflow/internal/pdf"
	"github.com/nurpe/fleetflow/internal/repository"
	"github.com/nurpe/fleetflow/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	store := repository.NewFleetRepository(database)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	fleetService := service.NewFleetService(store)
	dispatchService := service.NewDispatchService(store)
	maintenanceService := service.NewMaintenanceService(store)
	recommendService := service.NewRecommendService(store)
	rankingService := service.NewRankingService(store)
	analyticsService := service.NewAnalyticsService(store, excel.NewGenerator(), pdfGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		fleetService,
		dispatchService,
		maintenanceService,
		recommendService,
		rankingService,
		analyticsService,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
