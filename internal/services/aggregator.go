package services

import (
	"collection-dashboard/internal/domain"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GlobalStatistics counts distinct zones, distinct ilots and rows over the
// whole dataset; filters never apply here.
func GlobalStatistics(ds *domain.Dataset) domain.GlobalStatistics {
	if ds.Len() == 0 {
		return domain.GlobalStatistics{}
	}

	zones := make(map[string]struct{})
	ilots := make(map[string]struct{})
	for _, r := range ds.Records {
		if r.ZoneCode != "" {
			zones[r.ZoneCode] = struct{}{}
		}
		if r.IlotNumber != "" {
			ilots[r.IlotNumber] = struct{}{}
		}
	}

	return domain.GlobalStatistics{
		Zones: len(zones),
		Ilots: len(ilots),
		Total: len(ds.Records),
	}
}

// TemporalHistogram groups records by the calendar day they started on,
// ascending. Records without a start date are skipped.
func TemporalHistogram(ds *domain.Dataset) []domain.HistogramBucket {
	buckets := []domain.HistogramBucket{}
	if ds.Len() == 0 {
		return buckets
	}

	counts := make(map[int64]int)
	for _, r := range ds.Records {
		if r.StartDate == nil {
			continue
		}
		counts[domain.Day(*r.StartDate).Unix()]++
	}

	for _, d := range sortedKeys(counts) {
		buckets = append(buckets, domain.HistogramBucket{
			Date:  time.Unix(d, 0).UTC(),
			Count: counts[d],
		})
	}
	return buckets
}

// GeoPoints returns the coordinates of the records matching the date range
// and agent, in dataset order. Rows with a missing or non-numeric coordinate
// are dropped.
func GeoPoints(ds *domain.Dataset, f domain.FilterCriteria) []domain.Coordinates {
	points := []domain.Coordinates{}
	if ds.Len() == 0 {
		return points
	}

	for _, r := range ds.Records {
		if !f.InDateRange(r) {
			continue
		}
		if !f.AllAgentsSelected() && r.AgentName != f.Agent {
			continue
		}
		c, ok := r.Coordinates()
		if !ok {
			continue
		}
		points = append(points, c)
	}
	return points
}

// AgentProductivity summarises the records of each agent within the date
// range and keeps the agents with at most f.Threshold records, i.e. the
// low-activity ones.
func AgentProductivity(ds *domain.Dataset, f domain.FilterCriteria) []domain.AgentSummary {
	out := []domain.AgentSummary{}
	if ds.Len() == 0 {
		return out
	}

	type group struct {
		total     int
		durations stats.Float64Data
	}
	groups := make(map[string]*group)

	for _, r := range ds.Records {
		if r.AgentName == "" || !f.InDateRange(r) {
			continue
		}
		g, ok := groups[r.AgentName]
		if !ok {
			g = &group{}
			groups[r.AgentName] = g
		}
		g.total++
		if r.DurationDays != nil {
			g.durations = append(g.durations, float64(*r.DurationDays))
		}
	}

	names := make([]string, 0, len(groups))
	for name, g := range groups {
		if g.total <= f.Threshold {
			names = append(names, name)
		}
	}
	sortNames(names)

	for _, name := range names {
		g := groups[name]
		s := domain.AgentSummary{AgentName: name, Total: g.total}
		if len(g.durations) > 0 {
			if mean, err := stats.Mean(g.durations); err == nil {
				s.MeanDurationDays = &mean
			}
			if median, err := stats.Median(g.durations); err == nil {
				s.MedianDurationDays = &median
			}
		}
		out = append(out, s)
	}
	return out
}

// AgentNames lists the distinct non-empty agent names in French order.
func AgentNames(ds *domain.Dataset) []string {
	names := []string{}
	if ds.Len() == 0 {
		return names
	}

	seen := make(map[string]struct{})
	for _, r := range ds.Records {
		if r.AgentName == "" {
			continue
		}
		if _, ok := seen[r.AgentName]; ok {
			continue
		}
		seen[r.AgentName] = struct{}{}
		names = append(names, r.AgentName)
	}
	sortNames(names)
	return names
}

// Collators are not safe for concurrent use, so each sort builds its own.
func sortNames(names []string) {
	collate.New(language.French, collate.IgnoreCase).SortStrings(names)
}

func sortedKeys(m map[int64]int) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
