package compliance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

// Match returns true if the record matches every non wildcard dimension of the filter set.
func Match[T aggregates.Dimensional](record T, filters aggregates.FilterSet) bool {
	for _, dimension := range aggregates.Dimensions {
		expected := filters.Value(dimension)
		if expected != "" && record.DimensionValue(dimension) != expected {
			return false
		}
	}
	return true
}

// Apply keeps the records matching the filter set, preserving their order.
func Apply[T aggregates.Dimensional](records []T, filters aggregates.FilterSet) []T {
	if filters.IsEmpty() {
		return records
	}
	result := []T{}
	for i := range records {
		if Match(records[i], filters) {
			result = append(result, records[i])
		}
	}
	return result
}

// UniqueValues returns the sorted distinct non empty values of a dimension.
func UniqueValues[T aggregates.Dimensional](records []T, dimension aggregates.Dimension) []string {
	seen := make(map[string]bool)
	result := []string{}
	for i := range records {
		value := records[i].DimensionValue(dimension)
		if value != "" && !seen[value] {
			seen[value] = true
			result = append(result, value)
		}
	}
	sort.Strings(result)
	return result
}

// LatestDatestamp returns the lexically greatest datestamp, or an empty string
// if no record has one.
func LatestDatestamp[T aggregates.Dimensional](records []T) string {
	latest := ""
	for i := range records {
		if date := records[i].Date(); date > latest {
			latest = date
		}
	}
	return latest
}

// LatestSlice keeps the records of the latest datestamp.
func LatestSlice[T aggregates.Dimensional](records []T) []T {
	latest := LatestDatestamp(records)
	if latest == "" {
		return []T{}
	}
	result := []T{}
	for i := range records {
		if records[i].Date() == latest {
			result = append(result, records[i])
		}
	}
	return result
}

// FilterChoices returns the values available for each dimension, computed on
// the latest slice of the records.
func FilterChoices(records []aggregates.ObservationRecord) map[aggregates.Dimension][]string {
	latest := LatestSlice(records)
	result := make(map[aggregates.Dimension][]string)
	for _, dimension := range aggregates.Dimensions {
		result[dimension] = UniqueValues(latest, dimension)
	}
	return result
}

func FilterSummary(filters aggregates.FilterSet) string {
	parts := []string{}
	if filters.BusinessUnit != "" {
		parts = append(parts, fmt.Sprintf("Business Unit: %s", filters.BusinessUnit))
	}
	if filters.Team != "" {
		parts = append(parts, fmt.Sprintf("Team: %s", filters.Team))
	}
	if filters.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", filters.Location))
	}
	if len(parts) == 0 {
		return "No filters applied"
	}
	return strings.Join(parts, " | ")
}
