package compliance

import (
	"math"

	"github.com/appclacks/scorecard/internal/validator"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// floatValue returns 0 for absent or non finite values.
func floatValue(f *float64) float64 {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return 0
	}
	return *f
}

// MaxCount bounds the total and totalok of a record so pooled sums stay in
// the int64 range.
const MaxCount = 1 << 40

func count(value *float64) int64 {
	return int64(clamp(math.Round(floatValue(value)), 0, MaxCount))
}

func clamp(value float64, low float64, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}

// ToObservation maps a raw summary row to a typed record. Missing numeric
// fields contribute 0, the counts are made consistent (0 <= totalok <= total)
// and the thresholds are kept in [0,1]. The weight is kept as is: records
// without a positive weight are excluded by the weighted aggregation only.
func ToObservation(raw aggregates.RawObservation) (aggregates.ObservationRecord, error) {
	total := count(raw.Total)
	totalOK := count(raw.TotalOK)
	if totalOK > total {
		totalOK = total
	}
	record := aggregates.ObservationRecord{
		MetricID:     stringValue(raw.MetricID),
		Title:        stringValue(raw.Title),
		Category:     stringValue(raw.Category),
		Datestamp:    stringValue(raw.Datestamp),
		BusinessUnit: stringValue(raw.BusinessUnit),
		Team:         stringValue(raw.Team),
		Location:     stringValue(raw.Location),
		Weight:       floatValue(raw.Weight),
		Total:        total,
		TotalOK:      totalOK,
		SLO:          clamp(floatValue(raw.SLO), 0, 1),
		SLOMin:       clamp(floatValue(raw.SLOMin), 0, 1),
	}
	if record.Title == "" {
		record.Title = record.MetricID
	}
	if err := validator.Validator.Struct(record); err != nil {
		return aggregates.ObservationRecord{}, err
	}
	return record, nil
}

func ToEvidence(raw aggregates.RawEvidence) (aggregates.EvidenceRecord, error) {
	record := aggregates.EvidenceRecord{
		MetricID:     stringValue(raw.MetricID),
		Datestamp:    stringValue(raw.Datestamp),
		Resource:     stringValue(raw.Resource),
		ResourceType: stringValue(raw.ResourceType),
		Detail:       stringValue(raw.Detail),
		Compliance:   clamp(floatValue(raw.Compliance), 0, 1),
		BusinessUnit: stringValue(raw.BusinessUnit),
		Team:         stringValue(raw.Team),
		Location:     stringValue(raw.Location),
	}
	if err := validator.Validator.Struct(record); err != nil {
		return aggregates.EvidenceRecord{}, err
	}
	return record, nil
}

// ParseObservations converts raw rows, dropping the ones that cannot be
// attributed to a metric and a date. It returns the number of dropped rows.
func ParseObservations(raw []aggregates.RawObservation) ([]aggregates.ObservationRecord, int) {
	result := make([]aggregates.ObservationRecord, 0, len(raw))
	dropped := 0
	for i := range raw {
		record, err := ToObservation(raw[i])
		if err != nil {
			dropped++
			continue
		}
		result = append(result, record)
	}
	return result, dropped
}

func ParseEvidence(raw []aggregates.RawEvidence) ([]aggregates.EvidenceRecord, int) {
	result := make([]aggregates.EvidenceRecord, 0, len(raw))
	dropped := 0
	for i := range raw {
		record, err := ToEvidence(raw[i])
		if err != nil {
			dropped++
			continue
		}
		result = append(result, record)
	}
	return result, dropped
}
