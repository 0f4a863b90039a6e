package main

import (
	"context"

	"fueltrack-backend/services/fuel"
	"fueltrack-backend/services/report"

	"github.com/gin-gonic/gin"
)

type ReportConfig = report.Config

func InitReport(ctx context.Context, router gin.IRouter, cfg ReportConfig, fuelService fuel.Service) error {
	service := report.NewService(fuelService, cfg)
	report.RegisterRoutes(router, service)
	return service.StartAutoSendDaemon(ctx)
}
