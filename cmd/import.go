package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/appclacks/scorecard/config"
	"github.com/appclacks/scorecard/internal/database"
	"github.com/appclacks/scorecard/internal/jsonfile"
	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/spf13/cobra"
)

func buildImportCmd(logger *slog.Logger) *cobra.Command {
	var directory string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Replaces the database records with the content of summary.json and detail.json",
		Run: func(cmd *cobra.Command, args []string) {
			err := runImport(logger, directory)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}
		},
	}
	importCmd.Flags().StringVar(&directory, "directory", "", "Directory containing the JSON record files")
	err := importCmd.MarkFlagRequired("directory")
	if err != nil {
		panic(err)
	}
	return importCmd
}

func runImport(logger *slog.Logger, directory string) error {
	config, err := config.Load(configFile)
	if err != nil {
		return err
	}
	source, err := jsonfile.New(logger, jsonfile.Configuration{Directory: directory})
	if err != nil {
		return err
	}
	ctx := context.Background()
	rawObservations, err := source.ListObservations(ctx)
	if err != nil {
		return err
	}
	rawEvidence, err := source.ListEvidence(ctx)
	if err != nil {
		return err
	}
	observations, droppedObservations := compliance.ParseObservations(rawObservations)
	evidence, droppedEvidence := compliance.ParseEvidence(rawEvidence)
	if droppedObservations > 0 || droppedEvidence > 0 {
		logger.Warn(fmt.Sprintf("%d summary records and %d detail records dropped", droppedObservations, droppedEvidence))
	}
	db, err := database.New(logger, config.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint
	err = db.ReplaceRecords(ctx, observations, evidence)
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("imported %d summary records and %d detail records", len(observations), len(evidence)))
	return nil
}
