package cmd

import (
	"os"

	"github.com/kerbaras/librarian/pkg/app"
	"github.com/kerbaras/librarian/pkg/config"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "A small library catalog in your terminal",
	Long:  "Browse, filter, borrow and reserve books fetched from a demo catalog API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Env file to load (default: .env)")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the books API")
	rootCmd.PersistentFlags().IntP("quantity", "n", 0, "Number of books to fetch")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Reader name for reservations and loans")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(fineCmd)
}

// loadConfig reads env files and the environment, then applies any flags
// given on the command line.
func loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()

	var envFiles []string
	if f, _ := flags.GetString("env-file"); f != "" {
		envFiles = append(envFiles, f)
	}
	loaded, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	if flags.Changed("api-url") {
		loaded.APIURL, _ = flags.GetString("api-url")
	}
	if flags.Changed("quantity") {
		loaded.Quantity, _ = flags.GetInt("quantity")
	}
	if flags.Changed("user") {
		loaded.User, _ = flags.GetString("user")
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
