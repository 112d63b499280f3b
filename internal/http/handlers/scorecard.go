package handlers

import (
	"net/http"

	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/labstack/echo/v4"
)

func (b *Builder) Scorecard(ec echo.Context) error {
	var payload ScorecardInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	key := aggregates.SortByTitle
	if payload.Sort != "" {
		key = aggregates.ScorecardSortKey(payload.Sort)
	}
	direction := aggregates.Ascending
	if payload.Direction != "" {
		direction = aggregates.SortDirection(payload.Direction)
	}
	filters := payload.FilterSet()
	scorecard, err := b.compliance.Scorecard(ec.Request().Context(), filters, key, direction)
	if err != nil {
		return err
	}
	result := ScorecardOutput{
		Rows:        make([]ScorecardRow, 0, len(scorecard.Rows)),
		LastUpdated: scorecard.LastUpdated,
		NoData:      scorecard.NoData,
		Filters:     compliance.FilterSummary(filters),
	}
	for _, row := range scorecard.Rows {
		result.Rows = append(result.Rows, toScorecardRow(row))
	}
	return ec.JSON(http.StatusOK, result)
}

func (b *Builder) GetMetric(ec echo.Context) error {
	var payload MetricInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	row, err := b.compliance.MetricDetail(ec.Request().Context(), payload.FilterSet(), payload.ID)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, toScorecardRow(*row))
}

func (b *Builder) MetricHistory(ec echo.Context) error {
	var payload MetricInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	filters := payload.FilterSet()
	trend, err := b.compliance.MetricHistory(ec.Request().Context(), filters, payload.ID)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, toTrend(trend, filters))
}
