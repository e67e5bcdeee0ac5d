package main

import (
	"context"
	"log"
	"time"

	"github.com/rahulphari/eye/internal/core/cache"
	"github.com/rahulphari/eye/internal/core/config"
	"github.com/rahulphari/eye/internal/core/logger"
	"github.com/rahulphari/eye/internal/core/server"
	alertadapter "github.com/rahulphari/eye/internal/features/alerts/adapters"
	alertservice "github.com/rahulphari/eye/internal/features/alerts/service"
	centeradapter "github.com/rahulphari/eye/internal/features/centers/adapters"
	centerhandler "github.com/rahulphari/eye/internal/features/centers/handler"
	centerservice "github.com/rahulphari/eye/internal/features/centers/service"
	forecastadapter "github.com/rahulphari/eye/internal/features/forecast/adapters"
	forecasthandler "github.com/rahulphari/eye/internal/features/forecast/handler"
	forecastservice "github.com/rahulphari/eye/internal/features/forecast/service"
	routingadapter "github.com/rahulphari/eye/internal/features/routing/adapters"
	routingports "github.com/rahulphari/eye/internal/features/routing/ports"

	"go.uber.org/zap"
)

// alertRetention bounds how long a fired alert marker is remembered.
// Matches the stale-GPS window upper bound so markers outlive any
// record that could re-trigger them.
const alertRetention = 24 * time.Hour

// @title Eye Inbound Forecast API
// @version 1.0
// @description Workload forecasting for warehouse inbound docks: shift bucketing, completion projection, and capacity stress over synced vehicle data.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis and run Health Check
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Center Service & Handler
	centerRepo := centeradapter.NewRedisCenterRepository(redisCache)
	centerSvc := centerservice.NewCenterService(centerRepo)
	centerHdl := centerhandler.NewCenterHandler(centerSvc)

	// Initialize live route estimation when a token is configured
	var routeProvider routingports.RouteProvider
	if cfg.Mapbox.AccessToken != "" {
		routeProvider = routingadapter.NewMapboxAdapter(cfg.Mapbox)
		l.Info("Live route estimation enabled")
	} else {
		l.Info("No Mapbox access token configured, live route estimation disabled")
	}

	// Initialize Alert Dispatcher
	alertLog := alertadapter.NewRedisAlertLog(redisCache)
	notifier := alertadapter.NewZapNotifier()
	dispatcher := alertservice.NewDispatcher(alertLog, notifier, alertRetention)

	// Initialize Forecast Service & Handler
	vehicleRepo := forecastadapter.NewRedisVehicleRepository(redisCache)
	staleAfter := time.Duration(cfg.GPSStaleAfterHours) * time.Hour
	forecastSvc := forecastservice.NewForecastService(vehicleRepo, centerRepo, routeProvider, dispatcher, staleAfter)
	forecastHdl := forecasthandler.NewForecastHandler(forecastSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/centers", centerHdl.ListCenters)
	srv.App.Put("/centers/:id", centerHdl.SaveCenter)
	srv.App.Get("/centers/:id", centerHdl.GetCenter)
	srv.App.Delete("/centers/:id", centerHdl.RemoveCenter)
	srv.App.Get("/centers/:id/forecast", forecastHdl.GetForecast)
	srv.App.Post("/centers/:id/vehicles", forecastHdl.SyncVehicles)
	srv.App.Delete("/centers/:id/vehicles/:vehicleID", forecastHdl.MarkComplete)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
