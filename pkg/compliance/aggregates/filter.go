package aggregates

// Dimension is an organizational dimension records can be filtered on.
type Dimension string

const (
	BusinessUnit Dimension = "business_unit"
	Team         Dimension = "team"
	Location     Dimension = "location"
)

var Dimensions = []Dimension{BusinessUnit, Team, Location}

// FilterSet restricts records on organizational dimensions. An empty value
// matches everything.
type FilterSet struct {
	BusinessUnit string
	Team         string
	Location     string
}

func (f FilterSet) IsEmpty() bool {
	return f.BusinessUnit == "" && f.Team == "" && f.Location == ""
}

// Value returns the filter value of a dimension.
func (f FilterSet) Value(dimension Dimension) string {
	switch dimension {
	case BusinessUnit:
		return f.BusinessUnit
	case Team:
		return f.Team
	case Location:
		return f.Location
	}
	return ""
}

// Dimensional is implemented by every record carrying organizational dimensions.
type Dimensional interface {
	DimensionValue(dimension Dimension) string
	Date() string
}

func (r ObservationRecord) DimensionValue(dimension Dimension) string {
	switch dimension {
	case BusinessUnit:
		return r.BusinessUnit
	case Team:
		return r.Team
	case Location:
		return r.Location
	}
	return ""
}

func (r ObservationRecord) Date() string {
	return r.Datestamp
}

func (r EvidenceRecord) DimensionValue(dimension Dimension) string {
	switch dimension {
	case BusinessUnit:
		return r.BusinessUnit
	case Team:
		return r.Team
	case Location:
		return r.Location
	}
	return ""
}

func (r EvidenceRecord) Date() string {
	return r.Datestamp
}
