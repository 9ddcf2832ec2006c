package main

import (
	"fmt"
	"os"

	"github.com/milk9111/lanerunner/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "runsim",
	Short: "Headless lanerunner simulator",
	Long:  `runsim plays a course with the autopilot script at a fixed frame rate and reports how far the runner got.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		logger.Init(logger.Config{Level: level, Format: format, Output: os.Stderr})
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, text, json)")
}
