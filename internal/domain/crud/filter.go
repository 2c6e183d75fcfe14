package crud

import "strings"

// Matcher is the comparison requested by a property filter.
type Matcher string

const (
	MatcherContains    Matcher = "contains"
	MatcherEquals      Matcher = "eq"
	MatcherGreaterThan Matcher = "gt"
	MatcherLessThan    Matcher = "lt"
)

// ParseMatcher normalizes a wire matcher. Unknown values are returned as-is
// so the translator can reject them only where the property cares.
func ParseMatcher(s string) Matcher {
	m := strings.ToLower(strings.TrimSpace(s))
	switch m {
	case "contains":
		return MatcherContains
	case "eq", "equals":
		return MatcherEquals
	case "gt", "greater_than":
		return MatcherGreaterThan
	case "lt", "less_than":
		return MatcherLessThan
	default:
		return Matcher(m)
	}
}

// Filter is a node of a client supplied filter tree. The set of node kinds
// is closed: AndFilter, OrFilter and PropertyStringFilter.
type Filter interface {
	filterNode()
}

type AndFilter struct {
	Children []Filter
}

type OrFilter struct {
	Children []Filter
}

type PropertyStringFilter struct {
	PropertyID  string
	Matcher     Matcher
	FilterValue string
}

func (AndFilter) filterNode()            {}
func (OrFilter) filterNode()             {}
func (PropertyStringFilter) filterNode() {}
