package commands

import (
	"fmt"

	"fueltrack-backend/lib/configutil"
	"fueltrack-backend/lib/scrapers/rcm"
	"fueltrack-backend/lib/serviceutil"
	"fueltrack-backend/lib/timezone"

	"github.com/spf13/cobra"
)

var searchDate *string
var searchCookies *string

func init() {
	searchDate = searchCmd.Flags().String("date", "", "The reservation date as dd/MM/yyyy (defaults to today).")
	searchCookies = searchCmd.Flags().String("cookies", "", "An existing session cookie string; when empty a fresh login runs first.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <rego> [--date <dd/MM/yyyy>] [--cookies <cookie string>]",
	Short: "Searches confirmed reservations for a vehicle rego on one day.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		client := newClient(cfg)

		cookies := *searchCookies
		if cookies == "" {
			outcome, err := client.AcquireSession(cmd.Context(), rcm.Credentials{
				Username: cfg.Username,
				Password: cfg.Password,
			})
			if err != nil {
				serviceutil.Fatal("login handshake failed", err)
			}
			if !outcome.Success {
				serviceutil.Fatal("login rejected", fmt.Errorf("%s", outcome.Message))
			}
			cookies = outcome.Cookies
		}

		dateStr := *searchDate
		if dateStr == "" {
			dateStr = timezone.FormatRCMDate(timezone.Now())
		}

		results, err := client.SearchReservations(cmd.Context(), args[0], cookies, dateStr)
		if err != nil {
			serviceutil.Fatal("reservation search failed", err)
		}

		if len(results) == 0 {
			fmt.Println("no confirmed reservations found")
			return
		}
		for _, r := range results {
			fmt.Printf("%s\t%s\t%s\n", r.ReservationNumber, r.CustomerName, r.VehicleDescription)
		}
	},
}
