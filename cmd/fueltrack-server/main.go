package main

import (
	"flag"

	"fueltrack-backend/lib/configutil"
	"fueltrack-backend/lib/serviceutil"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Port     int          `json:"port"`
	Rcm      RcmConfig    `json:"rcm"`
	Fuel     FuelConfig   `json:"fuel"`
	Report   ReportConfig `json:"report"`
	CorsOrig []string     `json:"cors_origins"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	if !*verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsOrig) > 0 {
		corsConfig.AllowOrigins = cfg.CorsOrig
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	InitRcm(router, cfg.Rcm)
	fuelService, err := InitFuel(router, cfg.Fuel)
	if err != nil {
		serviceutil.Fatal("init fuel", err)
	}
	err = InitReport(ctx, router, cfg.Report, fuelService)
	if err != nil {
		serviceutil.Fatal("init report", err)
	}

	go serviceutil.StartHttpServer(cfg.Port, router)
	<-ctx.Done()
}
