package handlers

import (
	"net/http"

	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/labstack/echo/v4"
)

func (b *Builder) ListFilterChoices(ec echo.Context) error {
	choices, err := b.compliance.FilterChoices(ec.Request().Context())
	if err != nil {
		return err
	}
	result := FiltersOutput{
		BusinessUnits: choices[aggregates.BusinessUnit],
		Teams:         choices[aggregates.Team],
		Locations:     choices[aggregates.Location],
	}
	return ec.JSON(http.StatusOK, result)
}

func (b *Builder) OverviewTrend(ec echo.Context) error {
	var payload FilterQuery
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	filters := payload.FilterSet()
	trend, err := b.compliance.OverviewTrend(ec.Request().Context(), filters)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, toTrend(trend, filters))
}

func (b *Builder) LatestOverview(ec echo.Context) error {
	var payload FilterQuery
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	filters := payload.FilterSet()
	overview, err := b.compliance.LatestOverview(ec.Request().Context(), filters)
	if err != nil {
		return err
	}
	result := OverviewOutput{
		NoData:  overview.NoData,
		Filters: compliance.FilterSummary(filters),
	}
	if !overview.NoData {
		result.OverallScore = overview.Scores.OverallScore
		result.AverageSLO = overview.Scores.AverageSLO
		result.AverageSLOMin = overview.Scores.AverageSLOMin
		result.Datestamp = overview.Scores.Datestamp
		result.Status = string(overview.Status)
	}
	return ec.JSON(http.StatusOK, result)
}
