package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	scoring   string
	direction string
	position  string
	formation string
)

func init() {
	lineupCmd.Flags().StringVar(&formation, "formation", "base", "Lineup formation (base or rally)")
	pointCmd.Flags().StringVar(&scoring, "scoring", "", "The team that won the point (HOME or AWAY)")
	rotateCmd.Flags().StringVar(&direction, "direction", "forward", "Rotation direction (forward or backward)")
	liberoInCmd.Flags().StringVar(&position, "position", "P5", "Back-row position for the libero (P1, P5 or P6)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(lineupCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(liberoInCmd)
	rootCmd.AddCommand(liberoOutCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(nextSetCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the tracked match sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches", nil)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the full state of a match session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches/state", matchParams())
	},
}

var lineupCmd = &cobra.Command{
	Use:   "lineup",
	Short: "Show a team's current lineup",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := matchParams()
		params.Set("formation", formation)
		return performGetRequest("/lineup", params)
	},
}

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Record a rally outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := matchParams()
		params.Set("scoring", scoring)
		return performPostRequest("/point", params)
	},
}

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Manually rotate a team forward or backward",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := matchParams()
		params.Set("direction", direction)
		return performPostRequest("/rotate", params)
	},
}

var liberoInCmd = &cobra.Command{
	Use:   "libero-in",
	Short: "Put the libero on court at a back-row position",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := matchParams()
		params.Set("position", position)
		return performPostRequest("/libero/in", params)
	},
}

var liberoOutCmd = &cobra.Command{
	Use:   "libero-out",
	Short: "Bench the libero and restore the replaced player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/libero/out", matchParams())
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Re-derive the current set's state from the point log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/restore", matchParams())
	},
}

var nextSetCmd = &cobra.Command{
	Use:   "next-set",
	Short: "Open the next set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/set/next", matchParams())
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the players in the roster store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/roster", nil)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the persistent application counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func matchParams() url.Values {
	params := url.Values{}
	params.Set("matchID", matchID)
	params.Set("team", team)
	if dryRun {
		params.Set("dry_run", "true")
	}
	return params
}

func buildURL(endpoint string, params url.Values) string {
	u := host + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func performGetRequest(endpoint string, params url.Values) error {
	url := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, params url.Values) error {
	url := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(""))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
	return nil
}
