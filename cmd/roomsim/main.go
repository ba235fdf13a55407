package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roomsim",
	Short: "Headless tools for the first-person room navigation core",
	Long: `roomsim drives the room's camera controller, collision resolver and scene
orchestrator without a window. It can soak-test a layout with many seeded
random sessions and validate layout files before they ship.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
