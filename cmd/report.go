package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/appclacks/scorecard/config"
	"github.com/appclacks/scorecard/internal/plot"
	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	filters   aggregates.FilterSet
	sort      string
	direction string
	chart     string
}

func buildReportCmd(logger *slog.Logger) *cobra.Command {
	var options reportOptions
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Prints the compliance scorecard",
		Run: func(cmd *cobra.Command, args []string) {
			err := runReport(logger, cmd.OutOrStdout(), options)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}
		},
	}
	reportCmd.Flags().StringVar(&options.filters.BusinessUnit, "business-unit", "", "Business unit filter")
	reportCmd.Flags().StringVar(&options.filters.Team, "team", "", "Team filter")
	reportCmd.Flags().StringVar(&options.filters.Location, "location", "", "Location filter")
	reportCmd.Flags().StringVar(&options.sort, "sort", string(aggregates.SortByTitle), "Sort key (title, score)")
	reportCmd.Flags().StringVar(&options.direction, "direction", string(aggregates.Ascending), "Sort direction (asc, desc)")
	reportCmd.Flags().StringVar(&options.chart, "chart", "", "Path of a PNG file where the overall trend chart is written")
	return reportCmd
}

func runReport(logger *slog.Logger, out io.Writer, options reportOptions) error {
	config, err := config.Load(configFile)
	if err != nil {
		return err
	}
	store, closeStore, err := buildStore(logger, config)
	if err != nil {
		return err
	}
	defer closeStore() //nolint
	service, err := compliance.New(logger, store, prometheus.NewRegistry(), compliance.DefaultTTL)
	if err != nil {
		return err
	}
	ctx := context.Background()
	overview, err := service.LatestOverview(ctx, options.filters)
	if err != nil {
		return err
	}
	scorecard, err := service.Scorecard(ctx, options.filters, aggregates.ScorecardSortKey(options.sort), aggregates.SortDirection(options.direction))
	if err != nil {
		return err
	}
	err = writeReport(out, options.filters, overview, scorecard)
	if err != nil {
		return err
	}
	if options.chart != "" {
		return writeChart(ctx, service, options.filters, options.chart)
	}
	return nil
}

func writeChart(ctx context.Context, service *compliance.Service, filters aggregates.FilterSet, path string) error {
	trend, err := service.OverviewTrend(ctx, filters)
	if err != nil {
		return err
	}
	if trend.NoData {
		return fmt.Errorf("no data available to render the chart")
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fail to create the chart file: %w", err)
	}
	defer file.Close() //nolint
	title := fmt.Sprintf("Overall compliance (%s)", compliance.FilterSummary(filters))
	return plot.Render(file, title, trend.Points, plot.PNG)
}

func percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value*100)
}

func writeReport(out io.Writer, filters aggregates.FilterSet, overview aggregates.Overview, scorecard aggregates.Scorecard) error {
	fmt.Fprintf(out, "Filters: %s\n", compliance.FilterSummary(filters))
	if overview.NoData || scorecard.NoData {
		fmt.Fprintln(out, "No data available")
		return nil
	}
	fmt.Fprintf(out, "Overall score on %s: %s (SLO %s, minimum %s) %s\n\n",
		overview.Scores.Datestamp,
		percent(overview.Scores.OverallScore),
		percent(overview.Scores.AverageSLO),
		percent(overview.Scores.AverageSLOMin),
		overview.Status)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tTITLE\tSCORE\tSLO\tSLO MIN\tSTATUS\tTREND")
	for _, row := range scorecard.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.MetricID,
			row.Title,
			percent(row.CurrentScore),
			percent(row.SLO),
			percent(row.SLOMin),
			row.Status,
			row.Trend)
	}
	return w.Flush()
}
