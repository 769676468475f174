package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host    string
	matchID string
	team    string
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "sideout-cli",
	Short: "A CLI to interact with the sideout server",
	Long: `A command-line interface for making requests to the various endpoints
of the sideout rotation tracker.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&matchID, "match", "", "The match session id")
	rootCmd.PersistentFlags().StringVar(&team, "team", "HOME", "The team side (HOME or AWAY)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Compute the result without persisting it")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
