package handlers

import (
	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

type FilterQuery struct {
	BusinessUnit string `query:"business-unit"`
	Team         string `query:"team"`
	Location     string `query:"location"`
}

func (q FilterQuery) FilterSet() aggregates.FilterSet {
	return aggregates.FilterSet{
		BusinessUnit: q.BusinessUnit,
		Team:         q.Team,
		Location:     q.Location,
	}
}

type ScorecardInput struct {
	FilterQuery
	Sort      string `query:"sort" validate:"omitempty,oneof=title score"`
	Direction string `query:"direction" validate:"omitempty,oneof=asc desc"`
}

type MetricInput struct {
	FilterQuery
	ID string `param:"id" validate:"required"`
}

type EvidenceInput struct {
	FilterQuery
	ID        string `param:"id" validate:"required"`
	Sort      string `query:"sort" validate:"omitempty,oneof=resource detail compliance"`
	Direction string `query:"direction" validate:"omitempty,oneof=asc desc"`
	Page      int    `query:"page" validate:"omitempty,gte=1"`
	PageSize  int    `query:"page-size" validate:"omitempty,gte=1,lte=1000"`
}

type ChartInput struct {
	FilterQuery
	Format string `query:"format" validate:"omitempty,oneof=png svg"`
}

type MetricChartInput struct {
	FilterQuery
	ID     string `param:"id" validate:"required"`
	Format string `query:"format" validate:"omitempty,oneof=png svg"`
}

type Point struct {
	Key    string  `json:"key"`
	Score  float64 `json:"score"`
	SLO    float64 `json:"slo"`
	SLOMin float64 `json:"slo_min"`
}

type TrendStats struct {
	AverageScore  float64 `json:"average_score"`
	MinScore      float64 `json:"min_score"`
	MaxScore      float64 `json:"max_score"`
	AverageSLO    float64 `json:"average_slo"`
	AverageSLOMin float64 `json:"average_slo_min"`
	Points        int     `json:"points"`
}

type TrendOutput struct {
	Points  []Point     `json:"points"`
	Stats   *TrendStats `json:"stats,omitempty"`
	NoData  bool        `json:"no_data"`
	Filters string      `json:"filters"`
}

type OverviewOutput struct {
	OverallScore  float64 `json:"overall_score"`
	AverageSLO    float64 `json:"average_slo"`
	AverageSLOMin float64 `json:"average_slo_min"`
	Datestamp     string  `json:"datestamp"`
	Status        string  `json:"status"`
	NoData        bool    `json:"no_data"`
	Filters       string  `json:"filters"`
}

type ScorecardRow struct {
	MetricID     string  `json:"metric_id"`
	Title        string  `json:"title"`
	CurrentScore float64 `json:"current_score"`
	SLO          float64 `json:"slo"`
	SLOMin       float64 `json:"slo_min"`
	Status       string  `json:"status"`
	Trend        string  `json:"trend"`
	Series       []Point `json:"series,omitempty"`
}

type ScorecardOutput struct {
	Rows        []ScorecardRow `json:"rows"`
	LastUpdated string         `json:"last_updated"`
	NoData      bool           `json:"no_data"`
	Filters     string         `json:"filters"`
}

type EvidenceRow struct {
	Resource        string  `json:"resource"`
	ResourceType    string  `json:"resource_type"`
	Detail          string  `json:"detail"`
	Compliance      float64 `json:"compliance"`
	ComplianceLabel string  `json:"compliance_label"`
}

type EvidenceOutput struct {
	Rows        []EvidenceRow `json:"rows"`
	TotalCount  int           `json:"total_count"`
	PageNumber  int           `json:"page"`
	PageSize    int           `json:"page_size"`
	TotalPages  int           `json:"total_pages"`
	FirstRecord int           `json:"first_record"`
	LastRecord  int           `json:"last_record"`
}

type FiltersOutput struct {
	BusinessUnits []string `json:"business_units"`
	Teams         []string `json:"teams"`
	Locations     []string `json:"locations"`
}

type CacheEntry struct {
	Source    string  `json:"source"`
	Age       float64 `json:"age_seconds"`
	Remaining float64 `json:"remaining_seconds"`
	Expired   bool    `json:"expired"`
}

type CacheOutput struct {
	Entries []CacheEntry `json:"entries"`
}

func toPoints(points []aggregates.Point) []Point {
	result := make([]Point, 0, len(points))
	for _, point := range points {
		result = append(result, Point{
			Key:    point.Key,
			Score:  point.Score,
			SLO:    point.SLO,
			SLOMin: point.SLOMin,
		})
	}
	return result
}

func toTrend(trend aggregates.Trend, filters aggregates.FilterSet) TrendOutput {
	result := TrendOutput{
		Points:  toPoints(trend.Points),
		NoData:  trend.NoData,
		Filters: compliance.FilterSummary(filters),
	}
	if !trend.NoData {
		result.Stats = &TrendStats{
			AverageScore:  trend.Stats.AverageScore,
			MinScore:      trend.Stats.MinScore,
			MaxScore:      trend.Stats.MaxScore,
			AverageSLO:    trend.Stats.AverageSLO,
			AverageSLOMin: trend.Stats.AverageSLOMin,
			Points:        trend.Stats.Points,
		}
	}
	return result
}

func toScorecardRow(row aggregates.ScorecardRow) ScorecardRow {
	result := ScorecardRow{
		MetricID:     row.MetricID,
		Title:        row.Title,
		CurrentScore: row.CurrentScore,
		SLO:          row.SLO,
		SLOMin:       row.SLOMin,
		Status:       string(row.Status),
		Trend:        string(row.Trend),
	}
	if len(row.Series) > 0 {
		result.Series = toPoints(row.Series)
	}
	return result
}
