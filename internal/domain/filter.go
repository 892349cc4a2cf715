package domain

import "time"

// AllAgents is the agent selector value meaning "no agent restriction".
const AllAgents = "Tous"

// DefaultThreshold is the pre-filled minimum-count threshold of the agent tab.
const DefaultThreshold = 10

// FilterCriteria is built fresh for every interaction and never stored.
// Date1 bounds the start date and Date2 bounds the end date; both are
// inclusive calendar dates.
type FilterCriteria struct {
	Date1     time.Time
	Date2     time.Time
	Agent     string
	Threshold int
}

// DefaultFilter returns the criteria a tab shows before any user input.
func DefaultFilter(now time.Time) FilterCriteria {
	return FilterCriteria{
		Date1:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Date2:     Day(now),
		Agent:     AllAgents,
		Threshold: DefaultThreshold,
	}
}

// AllAgentsSelected reports whether the agent selector is unset.
func (f FilterCriteria) AllAgentsSelected() bool {
	return f.Agent == "" || f.Agent == AllAgents
}

// InDateRange applies the collection date filter: the record must start on
// or after Date1 and end on or before Date2. The two bounds deliberately
// test different columns; a record missing either date never matches.
func (f FilterCriteria) InDateRange(r CollectionRecord) bool {
	if r.StartDate == nil || r.EndDate == nil {
		return false
	}
	if Day(*r.StartDate).Before(Day(f.Date1)) {
		return false
	}
	if Day(*r.EndDate).After(Day(f.Date2)) {
		return false
	}
	return true
}
