package main

import (
	"fueltrack-backend/lib/sqliteutil"
	"fueltrack-backend/services/fuel"
	"fueltrack-backend/services/fuel/db"

	"github.com/gin-gonic/gin"
)

type FuelConfig struct {
	Database string `json:"database"`
}

func InitFuel(router gin.IRouter, cfg FuelConfig) (fuel.Service, error) {
	path := cfg.Database
	if path == "" {
		path = "fueltrack.db"
	}
	database, err := sqliteutil.OpenDB(db.Schema, path)
	if err != nil {
		return fuel.Service{}, err
	}

	service := fuel.NewService(database)
	fuel.RegisterRoutes(router, service)
	return service, nil
}
