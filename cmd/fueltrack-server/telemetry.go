package main

import (
	"context"
	"log/slog"
	"os"

	"fueltrack-backend/lib/serviceutil"
	"fueltrack-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "fueltrack-server")
	if os.IsNotExist(err) {
		// no telemetry.json5 anywhere up the tree; the otel api no-ops
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
}
