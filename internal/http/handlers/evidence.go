package handlers

import (
	"net/http"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/labstack/echo/v4"
)

func (b *Builder) ListEvidence(ec echo.Context) error {
	var payload EvidenceInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	query := aggregates.NewEvidenceQuery(payload.ID, payload.FilterSet())
	if payload.Sort != "" || payload.Direction != "" {
		key := query.SortKey
		if payload.Sort != "" {
			key = aggregates.EvidenceSortKey(payload.Sort)
		}
		direction := aggregates.Ascending
		if payload.Direction != "" {
			direction = aggregates.SortDirection(payload.Direction)
		}
		query = query.WithSort(key, direction)
	}
	if payload.PageSize != 0 {
		query = query.WithPageSize(payload.PageSize)
	}
	if payload.Page != 0 {
		query = query.WithPage(payload.Page)
	}
	page, err := b.compliance.EvidencePage(ec.Request().Context(), query)
	if err != nil {
		return err
	}
	result := EvidenceOutput{
		Rows:        make([]EvidenceRow, 0, len(page.Rows)),
		TotalCount:  page.TotalCount,
		PageNumber:  page.PageNumber,
		PageSize:    page.PageSize,
		TotalPages:  page.TotalPages,
		FirstRecord: page.FirstRecord,
		LastRecord:  page.LastRecord,
	}
	for _, row := range page.Rows {
		result.Rows = append(result.Rows, EvidenceRow{
			Resource:        row.Resource,
			ResourceType:    row.ResourceType,
			Detail:          row.Detail,
			Compliance:      row.Compliance,
			ComplianceLabel: row.ComplianceLabel,
		})
	}
	return ec.JSON(http.StatusOK, result)
}
