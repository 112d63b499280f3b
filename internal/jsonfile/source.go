package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/appclacks/scorecard/internal/validator"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

const (
	SummaryFile = "summary.json"
	DetailFile  = "detail.json"
)

type Configuration struct {
	Directory string `validate:"required"`
}

// Source reads the records from JSON arrays stored in a directory.
type Source struct {
	logger    *slog.Logger
	directory string
}

func New(logger *slog.Logger, config Configuration) (*Source, error) {
	err := validator.Validator.Struct(config)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(config.Directory)
	if err != nil {
		return nil, fmt.Errorf("fail to read records directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", config.Directory)
	}
	return &Source{
		logger:    logger,
		directory: config.Directory,
	}, nil
}

func readArray[T any](path string) ([]T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read %s: %w", path, err)
	}
	result := []T{}
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("fail to parse %s, a JSON array of records is expected: %w", path, err)
	}
	return result, nil
}

func (s *Source) ListObservations(ctx context.Context) ([]aggregates.RawObservation, error) {
	path := filepath.Join(s.directory, SummaryFile)
	s.logger.Debug(fmt.Sprintf("reading summary records from %s", path))
	return readArray[aggregates.RawObservation](path)
}

func (s *Source) ListEvidence(ctx context.Context) ([]aggregates.RawEvidence, error) {
	path := filepath.Join(s.directory, DetailFile)
	s.logger.Debug(fmt.Sprintf("reading detail records from %s", path))
	return readArray[aggregates.RawEvidence](path)
}
