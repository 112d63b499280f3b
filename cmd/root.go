package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func Run() error {
	rootCmd := &cobra.Command{
		Use:   "scorecard",
		Short: "Compliance scorecard engine",
	}
	var logLevel string
	var logFormat string
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the YAML configuration file")
	err := rootCmd.MarkPersistentFlagRequired("config")
	if err != nil {
		return err
	}
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "info", "Logger log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Logger logs format (text, json)")

	logger := new(slog.Logger)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		*logger = *buildLogger(os.Stderr, logLevel, logFormat)
	}
	rootCmd.AddCommand(buildServerCmd(logger))
	rootCmd.AddCommand(buildReportCmd(logger))
	rootCmd.AddCommand(buildImportCmd(logger))
	return rootCmd.Execute()
}
