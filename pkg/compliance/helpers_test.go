package compliance_test

import "github.com/appclacks/scorecard/pkg/compliance/aggregates"

func observation(metricID string, datestamp string, weight float64, total int64, totalOK int64) aggregates.ObservationRecord {
	return aggregates.ObservationRecord{
		MetricID:     metricID,
		Title:        metricID,
		Datestamp:    datestamp,
		BusinessUnit: "retail",
		Team:         "sre",
		Location:     "paris",
		Weight:       weight,
		Total:        total,
		TotalOK:      totalOK,
		SLO:          0.9,
		SLOMin:       0.7,
	}
}

func located(record aggregates.ObservationRecord, businessUnit string, team string, location string) aggregates.ObservationRecord {
	record.BusinessUnit = businessUnit
	record.Team = team
	record.Location = location
	return record
}
