package dto

import "time"

type StatsResponse struct {
	Zones     int        `json:"zones"`
	Ilots     int        `json:"ilots"`
	Total     int        `json:"total"`
	LoadedAt  *time.Time `json:"loaded_at"`
	LoadError string     `json:"load_error,omitempty"`
}

type HistogramBucketResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type HistogramResponse struct {
	Buckets   []HistogramBucketResponse `json:"buckets"`
	LoadError string                    `json:"load_error,omitempty"`
}

type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type GeoResponse struct {
	Date1     string             `json:"date1"`
	Date2     string             `json:"date2"`
	Agent     string             `json:"agent"`
	Points    []GeoPointResponse `json:"points"`
	LoadError string             `json:"load_error,omitempty"`
}

type AgentSummaryResponse struct {
	Agent              string   `json:"agent"`
	MeanDurationDays   *float64 `json:"mean_duration_days"`
	MedianDurationDays *float64 `json:"median_duration_days"`
	Total              int      `json:"total"`
}

type AgentsResponse struct {
	Date1     string                 `json:"date1"`
	Date2     string                 `json:"date2"`
	Threshold int                    `json:"seuil"`
	Agents    []AgentSummaryResponse `json:"agents"`
	LoadError string                 `json:"load_error,omitempty"`
}

type AgentNamesResponse struct {
	Names []string `json:"names"`
}
