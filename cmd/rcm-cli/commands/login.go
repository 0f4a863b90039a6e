package commands

import (
	"fmt"

	"fueltrack-backend/lib/configutil"
	"fueltrack-backend/lib/scrapers/rcm"
	"fueltrack-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

type Config struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func newClient(cfg Config) *rcm.Client {
	return rcm.NewClient(rcm.ClientOptions{Host: cfg.Host})
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Runs the login handshake with the credentials in config.json5 and prints the outcome.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		client := newClient(cfg)
		outcome, err := client.AcquireSession(cmd.Context(), rcm.Credentials{
			Username: cfg.Username,
			Password: cfg.Password,
		})
		if err != nil {
			serviceutil.Fatal("login handshake failed", err)
		}

		fmt.Println("success: ", outcome.Success)
		fmt.Println("message: ", outcome.Message)
		fmt.Println("redirect:", outcome.RedirectLocation)
		fmt.Println("cookies: ", outcome.Cookies)
	},
}
