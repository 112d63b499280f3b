package aggregates

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

type ScorecardSortKey string

const (
	SortByTitle ScorecardSortKey = "title"
	SortByScore ScorecardSortKey = "score"
)

type EvidenceSortKey string

const (
	SortByResource   EvidenceSortKey = "resource"
	SortByDetail     EvidenceSortKey = "detail"
	SortByCompliance EvidenceSortKey = "compliance"
)

const DefaultPageSize = 25

// EvidenceQuery selects one page of the evidence of a metric.
type EvidenceQuery struct {
	MetricID   string
	Filters    FilterSet
	SortKey    EvidenceSortKey
	Direction  SortDirection
	PageSize   int
	PageNumber int
}

// NewEvidenceQuery returns the query of the first page of a metric evidence,
// sorted by ascending compliance.
func NewEvidenceQuery(metricID string, filters FilterSet) EvidenceQuery {
	return EvidenceQuery{
		MetricID:   metricID,
		Filters:    filters,
		SortKey:    SortByCompliance,
		Direction:  Ascending,
		PageSize:   DefaultPageSize,
		PageNumber: 1,
	}
}

// WithPageSize changes the page size and goes back to the first page.
func (q EvidenceQuery) WithPageSize(size int) EvidenceQuery {
	q.PageSize = size
	q.PageNumber = 1
	return q
}

func (q EvidenceQuery) WithPage(number int) EvidenceQuery {
	q.PageNumber = number
	return q
}

// WithSort changes the sort order and goes back to the first page.
func (q EvidenceQuery) WithSort(key EvidenceSortKey, direction SortDirection) EvidenceQuery {
	q.SortKey = key
	q.Direction = direction
	q.PageNumber = 1
	return q
}

// EvidenceRow is a rendered evidence record.
type EvidenceRow struct {
	Resource        string
	ResourceType    string
	Detail          string
	Compliance      float64
	ComplianceLabel string
}

// EvidencePage is one page of evidence rows.
type EvidencePage struct {
	Rows        []EvidenceRow
	TotalCount  int
	PageNumber  int
	PageSize    int
	TotalPages  int
	FirstRecord int
	LastRecord  int
}
