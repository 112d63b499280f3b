package aggregates

// Status is the classification of a score against its thresholds.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarn     Status = "warn"
	StatusCritical Status = "critical"
)

// TrendDirection summarizes how a series moved between its first and last point.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendFlat      TrendDirection = "flat"
	TrendNone      TrendDirection = "no-trend"
)

// Point is one computed value of a series, keyed by date or by metric.
type Point struct {
	Key    string
	Score  float64
	SLO    float64
	SLOMin float64
}

// OverallScores is the weighted score of the latest date of a record set.
type OverallScores struct {
	OverallScore  float64
	AverageSLO    float64
	AverageSLOMin float64
	Datestamp     string
}

// TrendStats describes a trend series.
type TrendStats struct {
	Points        int
	AverageScore  float64
	MinScore      float64
	MaxScore      float64
	AverageSLO    float64
	AverageSLOMin float64
}

// ScorecardRow is the current pooled score of one metric with its history.
type ScorecardRow struct {
	MetricID     string
	Title        string
	CurrentScore float64
	SLO          float64
	SLOMin       float64
	Status       Status
	Series       []Point
	Trend        TrendDirection
}

// Scorecard is the result of a scorecard query.
type Scorecard struct {
	Rows        []ScorecardRow
	LastUpdated string
	NoData      bool
}

// Trend is a series of points ordered by date.
type Trend struct {
	Points []Point
	Stats  TrendStats
	NoData bool
}

// Overview is the weighted score of the latest date with its status.
type Overview struct {
	Scores OverallScores
	Status Status
	NoData bool
}
