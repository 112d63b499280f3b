package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/appclacks/scorecard/internal/plot"
	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/labstack/echo/v4"
	er "github.com/mcorbin/corbierror"
)

func renderTrend(ec echo.Context, title string, trend aggregates.Trend, format string) error {
	if trend.NoData {
		return er.New("no data available for the selected filters", er.NotFound, true)
	}
	if format == "" {
		format = plot.PNG
	}
	var buf bytes.Buffer
	err := plot.Render(&buf, title, trend.Points, format)
	if err != nil {
		return err
	}
	return ec.Blob(http.StatusOK, plot.ContentType(format), buf.Bytes())
}

func (b *Builder) OverviewTrendChart(ec echo.Context) error {
	var payload ChartInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	filters := payload.FilterSet()
	trend, err := b.compliance.OverviewTrend(ec.Request().Context(), filters)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Overall compliance (%s)", compliance.FilterSummary(filters))
	return renderTrend(ec, title, trend, payload.Format)
}

func (b *Builder) MetricHistoryChart(ec echo.Context) error {
	var payload MetricChartInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	trend, err := b.compliance.MetricHistory(ec.Request().Context(), payload.FilterSet(), payload.ID)
	if err != nil {
		return err
	}
	return renderTrend(ec, fmt.Sprintf("Compliance of %s", payload.ID), trend, payload.Format)
}
