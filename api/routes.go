package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PONGPONGz/GearMate/internal/config"
	"github.com/PONGPONGz/GearMate/internal/db"
	"github.com/PONGPONGz/GearMate/internal/repository/sqlite"
	"github.com/PONGPONGz/GearMate/internal/service"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(TimeoutMiddleware(cfg.APITimeout))

	payloads, err := NewPayloadValidator()
	if err != nil {
		return nil, fmt.Errorf("load payload schemas: %w", err)
	}

	// Repository and services
	repo := sqlite.New(db, logger)
	registry := service.NewRegistry(repo, logger)
	scheduler := service.NewScheduler(repo, cfg.Location(), logger)
	catalog := service.NewGearCatalog(service.NewAggregator(repo, logger))

	// Create handlers
	systemHandler := &SystemHandler{}
	registryHandler := NewRegistryHandler(registry, payloads)
	gearsHandler := NewGearsHandler(registry, catalog, payloads)
	schedulesHandler := NewSchedulesHandler(scheduler, payloads)

	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	collection(r, "/departments", registryHandler.CreateDepartment, registryHandler.ListDepartments)
	collection(r, "/stations", registryHandler.CreateStation, registryHandler.ListStations)
	collection(r, "/firefighters", registryHandler.CreateFirefighter, registryHandler.ListFirefighters)
	collection(r, "/gears", gearsHandler.CreateGear, gearsHandler.ListGears)
	collection(r, "/inspections", registryHandler.CreateInspection, registryHandler.ListInspections)
	collection(r, "/damage-reports", registryHandler.CreateDamageReport, registryHandler.ListDamageReports)
	collection(r, "/schedules", schedulesHandler.CreateSchedule, schedulesHandler.ListSchedules)
	collection(r, "/reminders", registryHandler.CreateReminder, registryHandler.ListReminders)

	r.HandleFunc("/gears/{id:[0-9]+}", gearsHandler.GetGear).Methods("GET")

	return r, nil
}

// collection registers POST and GET for path, with and without a trailing slash.
func collection(r *mux.Router, path string, create, list http.HandlerFunc) {
	for _, p := range []string{path, path + "/"} {
		r.HandleFunc(p, create).Methods("POST")
		r.HandleFunc(p, list).Methods("GET")
	}
}
