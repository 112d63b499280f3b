package compliance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	er "github.com/mcorbin/corbierror"
)

func ComplianceLabel(compliance float64) string {
	switch compliance {
	case 1:
		return "Compliant"
	case 0:
		return "Non-Compliant"
	}
	return fmt.Sprintf("Partial (%.1f%%)", compliance*100)
}

func evidenceComparator(key aggregates.EvidenceSortKey) (func(a, b aggregates.EvidenceRecord) int, error) {
	switch key {
	case aggregates.SortByResource:
		return func(a, b aggregates.EvidenceRecord) int {
			return strings.Compare(strings.ToLower(a.Resource), strings.ToLower(b.Resource))
		}, nil
	case aggregates.SortByDetail:
		return func(a, b aggregates.EvidenceRecord) int {
			return strings.Compare(strings.ToLower(a.Detail), strings.ToLower(b.Detail))
		}, nil
	case aggregates.SortByCompliance:
		return func(a, b aggregates.EvidenceRecord) int {
			return compareFloat(a.Compliance, b.Compliance)
		}, nil
	}
	return nil, er.Newf("invalid evidence sort key %s", er.BadRequest, true, key)
}

// SelectEvidence returns the evidence of a metric matching the query filters,
// sorted according to the query. Pagination is not applied.
func SelectEvidence(records []aggregates.EvidenceRecord, query aggregates.EvidenceQuery) ([]aggregates.EvidenceRecord, error) {
	compare, err := evidenceComparator(query.SortKey)
	if err != nil {
		return nil, err
	}
	if err := checkDirection(query.Direction); err != nil {
		return nil, err
	}
	selected := []aggregates.EvidenceRecord{}
	for i := range records {
		if records[i].MetricID == query.MetricID && Match(records[i], query.Filters) {
			selected = append(selected, records[i])
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return compareDirection(compare(selected[i], selected[j]), query.Direction) < 0
	})
	return selected, nil
}

func pageCount(total int, size int) int {
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// QueryEvidence filters and sorts the whole evidence of a metric before
// returning the requested page. A page after the last one is empty.
func QueryEvidence(records []aggregates.EvidenceRecord, query aggregates.EvidenceQuery) (aggregates.EvidencePage, error) {
	if query.PageSize <= 0 {
		return aggregates.EvidencePage{}, er.New("the page size should be greater than 0", er.BadRequest, true)
	}
	if query.PageNumber <= 0 {
		return aggregates.EvidencePage{}, er.New("the page number should be greater than 0", er.BadRequest, true)
	}
	selected, err := SelectEvidence(records, query)
	if err != nil {
		return aggregates.EvidencePage{}, err
	}
	total := len(selected)
	page := aggregates.EvidencePage{
		Rows:       []aggregates.EvidenceRow{},
		TotalCount: total,
		PageNumber: query.PageNumber,
		PageSize:   query.PageSize,
		TotalPages: pageCount(total, query.PageSize),
	}
	// compared in pages so large page numbers cannot overflow
	if query.PageNumber > page.TotalPages {
		return page, nil
	}
	start := (query.PageNumber - 1) * query.PageSize
	end := start + min(query.PageSize, total-start)
	for _, record := range selected[start:end] {
		page.Rows = append(page.Rows, aggregates.EvidenceRow{
			Resource:        record.Resource,
			ResourceType:    record.ResourceType,
			Detail:          record.Detail,
			Compliance:      record.Compliance,
			ComplianceLabel: ComplianceLabel(record.Compliance),
		})
	}
	page.FirstRecord = start + 1
	page.LastRecord = end
	return page, nil
}
