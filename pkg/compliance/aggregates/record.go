package aggregates

// ObservationRecord is one row of the summary source: the pass/total counts of
// a metric for an organizational slice at a given date.
type ObservationRecord struct {
	MetricID     string `validate:"required"`
	Title        string
	Category     string
	Datestamp    string `validate:"required,datetime=2006-01-02"`
	BusinessUnit string
	Team         string
	Location     string
	Weight       float64
	Total        int64
	TotalOK      int64
	SLO          float64
	SLOMin       float64
}

// EvidenceRecord is one row of the detail source: a single finding for a resource.
type EvidenceRecord struct {
	MetricID     string `validate:"required"`
	Datestamp    string `validate:"omitempty,datetime=2006-01-02"`
	Resource     string
	ResourceType string
	Detail       string
	Compliance   float64
	BusinessUnit string
	Team         string
	Location     string
}

// RawObservation is a summary row as delivered by a record source, before
// validation. Nil fields were absent or null in the source.
type RawObservation struct {
	MetricID     *string  `json:"metric_id" db:"metric_id"`
	Title        *string  `json:"title" db:"title"`
	Category     *string  `json:"category" db:"category"`
	Datestamp    *string  `json:"datestamp" db:"datestamp"`
	BusinessUnit *string  `json:"business_unit" db:"business_unit"`
	Team         *string  `json:"team" db:"team"`
	Location     *string  `json:"location" db:"location"`
	Weight       *float64 `json:"weight" db:"weight"`
	Total        *float64 `json:"total" db:"total"`
	TotalOK      *float64 `json:"totalok" db:"totalok"`
	SLO          *float64 `json:"slo" db:"slo"`
	SLOMin       *float64 `json:"slo_min" db:"slo_min"`
}

// RawEvidence is a detail row as delivered by a record source.
type RawEvidence struct {
	MetricID     *string  `json:"metric_id" db:"metric_id"`
	Datestamp    *string  `json:"datestamp" db:"datestamp"`
	Resource     *string  `json:"resource" db:"resource"`
	ResourceType *string  `json:"resource_type" db:"resource_type"`
	Detail       *string  `json:"detail" db:"detail"`
	Compliance   *float64 `json:"compliance" db:"compliance"`
	BusinessUnit *string  `json:"business_unit" db:"business_unit"`
	Team         *string  `json:"team" db:"team"`
	Location     *string  `json:"location" db:"location"`
}
