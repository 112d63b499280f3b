package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appclacks/scorecard/config"
	"github.com/appclacks/scorecard/internal/http"
	"github.com/appclacks/scorecard/internal/http/handlers"
	"github.com/appclacks/scorecard/internal/tracing"
	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func buildServerCmd(logger *slog.Logger) *cobra.Command {
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Runs the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			err := runServer(logger)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}

		},
	}
	return serverCmd
}

func runServer(logger *slog.Logger) error {
	config, err := config.Load(configFile)
	if err != nil {
		return err
	}
	shutdownTracing, err := tracing.Setup(context.Background(), logger, config.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error(fmt.Sprintf("fail to stop the tracer provider: %s", err.Error()))
		}
	}()
	store, closeStore, err := buildStore(logger, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error(fmt.Sprintf("fail to close the record source: %s", err.Error()))
		}
	}()
	ttl, err := config.Cache.Duration()
	if err != nil {
		return err
	}
	registry := prometheus.DefaultRegisterer.(*prometheus.Registry)
	complianceService, err := compliance.New(logger, store, registry, ttl)
	if err != nil {
		return err
	}
	handlersBuilder := handlers.NewBuilder(complianceService)
	server, err := http.NewServer(logger, config.HTTP, registry, handlersBuilder)
	if err != nil {
		return err
	}
	signals := make(chan os.Signal, 1)
	errChan := make(chan error)

	signal.Notify(
		signals,
		syscall.SIGINT,
		syscall.SIGTERM)

	server.Start()
	go func() {
		for sig := range signals {
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Info(fmt.Sprintf("received signal %s, starting shutdown", sig))
				signal.Stop(signals)
				err := server.Stop()
				errChan <- err
			}

		}
	}()
	exitErr := <-errChan
	return exitErr
}
