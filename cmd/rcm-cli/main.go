package main

import (
	"context"
	"os"

	"fueltrack-backend/cmd/rcm-cli/commands"
	"fueltrack-backend/lib/serviceutil"
	"fueltrack-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)

	ctx := context.Background()
	tel, err := telemetry.SetupFromEnv(ctx, "rcm-cli")
	if err == nil {
		defer tel.Shutdown(context.Background())
	} else if !os.IsNotExist(err) {
		// a missing telemetry.json5 just means no exporters; anything
		// else is a broken config
		serviceutil.Fatal("setup telemetry", err)
	}

	commands.ExecuteContext(ctx)
}
