package web

import (
	"collection-dashboard/internal/domain"
	"time"
)

// Page carries what the shared layout needs.
type Page struct {
	Title         string
	Active        string
	Authenticated bool
	LoadError     string
	Notice        string
	LoadedAt      time.Time
}

// FilterForm echoes the submitted filter values back into the forms.
type FilterForm struct {
	Date1     string
	Date2     string
	Agent     string
	Threshold int
}

func NewFilterForm(f domain.FilterCriteria) FilterForm {
	return FilterForm{
		Date1:     f.Date1.Format(domain.DateLayout),
		Date2:     f.Date2.Format(domain.DateLayout),
		Agent:     f.Agent,
		Threshold: f.Threshold,
	}
}

type LoginPage struct {
	Page
	Error string
}

type StatsPage struct {
	Page
	Stats     domain.GlobalStatistics
	Histogram []domain.HistogramBucket
	MaxCount  int
}

type MapPage struct {
	Page
	Filter     FilterForm
	AgentNames []string
	Points     []domain.Coordinates
}

type AgentsPage struct {
	Page
	Filter    FilterForm
	Summaries []domain.AgentSummary
}

type ChatPage struct {
	Page
	Configured bool
	Question   string
	Reply      string
	Error      string
}
