package main

import (
	rcmservice "fueltrack-backend/services/rcm"

	"github.com/gin-gonic/gin"
)

type RcmConfig = rcmservice.Config

func InitRcm(router gin.IRouter, cfg RcmConfig) {
	rcmservice.RegisterRoutes(router, rcmservice.NewService(cfg))
}
