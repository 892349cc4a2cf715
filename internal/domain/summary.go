package domain

import "time"

// GlobalStatistics are computed over the whole dataset, without filters.
type GlobalStatistics struct {
	Zones int
	Ilots int
	Total int
}

// HistogramBucket counts the records that started on one calendar date.
type HistogramBucket struct {
	Date  time.Time
	Count int
}

// AgentSummary aggregates the matching records of one agent.
// Mean and median durations are nil when no matching record has a duration.
type AgentSummary struct {
	AgentName          string
	MeanDurationDays   *float64
	MedianDurationDays *float64
	Total              int
}
