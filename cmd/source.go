package cmd

import (
	"fmt"
	"log/slog"

	"github.com/appclacks/scorecard/config"
	"github.com/appclacks/scorecard/internal/database"
	"github.com/appclacks/scorecard/internal/jsonfile"
	"github.com/appclacks/scorecard/pkg/compliance"
)

// buildStore returns the configured record source and a function releasing it.
func buildStore(logger *slog.Logger, conf config.Configuration) (compliance.Store, func() error, error) {
	switch conf.Source.Type {
	case config.PostgresSource:
		db, err := database.New(logger, conf.Database)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case config.FileSource:
		source, err := jsonfile.New(logger, jsonfile.Configuration{Directory: conf.Source.Directory})
		if err != nil {
			return nil, nil, err
		}
		return source, func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown record source %s", conf.Source.Type)
}
