package services

import (
	"collection-dashboard/internal/domain"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGlobalStatistics(t *testing.T) {
	zones := []string{"Z01", "Z02", "Z03"}
	var rows [][]string
	for i := 0; i < 10; i++ {
		rows = append(rows, row(zones[i%3], fmt.Sprint(i%4), "Agent", "2025-03-01", "2025-03-02", "", ""))
	}
	ds := mustDataset(t, rows...)

	got := GlobalStatistics(ds)
	want := domain.GlobalStatistics{Zones: 3, Ilots: 4, Total: 10}
	if got != want {
		t.Fatalf("GlobalStatistics = %+v, want %+v", got, want)
	}
}

func TestGlobalStatisticsEmptyCells(t *testing.T) {
	ds := mustDataset(t,
		row("Z01", "1", "Awa", "2025-03-01", "2025-03-02", "", ""),
		[]string{"", "", "", "", "", "", "", ""},
		row("Z01", "2", "Awa", "2025-03-01", "", "", ""),
	)

	got := GlobalStatistics(ds)
	want := domain.GlobalStatistics{Zones: 1, Ilots: 2, Total: 3}
	if got != want {
		t.Fatalf("GlobalStatistics = %+v, want %+v", got, want)
	}
	if names := AgentNames(ds); len(names) != 1 || names[0] != "Awa" {
		t.Fatalf("AgentNames = %v, want [Awa]", names)
	}
}

func TestAggregatorEmptyDataset(t *testing.T) {
	f := domain.DefaultFilter(march(31))

	for _, ds := range []*domain.Dataset{nil, domain.EmptyDataset()} {
		if got := GlobalStatistics(ds); got != (domain.GlobalStatistics{}) {
			t.Errorf("GlobalStatistics = %+v, want zero", got)
		}
		if got := TemporalHistogram(ds); got == nil || len(got) != 0 {
			t.Errorf("TemporalHistogram = %v, want empty", got)
		}
		if got := GeoPoints(ds, f); got == nil || len(got) != 0 {
			t.Errorf("GeoPoints = %v, want empty", got)
		}
		if got := AgentProductivity(ds, f); got == nil || len(got) != 0 {
			t.Errorf("AgentProductivity = %v, want empty", got)
		}
		if got := AgentNames(ds); got == nil || len(got) != 0 {
			t.Errorf("AgentNames = %v, want empty", got)
		}
	}
}

func TestTemporalHistogram(t *testing.T) {
	ds := mustDataset(t,
		row("Z01", "1", "A", "2025-03-02 16:00:00", "", "", ""),
		row("Z01", "2", "A", "2025-03-01", "", "", ""),
		row("Z01", "3", "B", "2025-03-02", "", "", ""),
		row("Z01", "4", "B", "", "", "", ""),
		row("Z01", "5", "B", "bientot", "", "", ""),
	)

	got := TemporalHistogram(ds)
	want := []domain.HistogramBucket{
		{Date: march(1), Count: 1},
		{Date: march(2), Count: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("histogram mismatch (-want +got):\n%s", diff)
	}

	sum := 0
	for _, b := range got {
		sum += b.Count
	}
	withStart := 0
	for _, r := range ds.Records {
		if r.StartDate != nil {
			withStart++
		}
	}
	if sum != withStart {
		t.Fatalf("histogram sums to %d, want %d rows with a start date", sum, withStart)
	}
}

func TestGeoPoints(t *testing.T) {
	ds := mustDataset(t,
		row("Z01", "1", "Awa", "2025-03-02", "2025-03-05", "5.35", "-4.01"),
		row("Z01", "2", "Awa", "2025-03-02", "2025-03-05", "abc", "-4.02"),
		row("Z01", "3", "Awa", "2025-03-02", "2025-03-05", "5.36", ""),
		row("Z01", "4", "Ali", "2025-03-03", "2025-03-06", " 5.40 ", "-4.10"),
		row("Z01", "5", "Ali", "2025-03-03", "2025-04-02", "5.50", "-4.20"),
		row("Z01", "6", "Ali", "2025-02-27", "2025-03-06", "5.60", "-4.30"),
	)

	f := domain.FilterCriteria{Date1: march(1), Date2: march(31), Agent: domain.AllAgents}
	got := GeoPoints(ds, f)
	want := []domain.Coordinates{{Lat: 5.35, Lon: -4.01}, {Lat: 5.40, Lon: -4.10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("all agents (-want +got):\n%s", diff)
	}

	f.Agent = "Ali"
	got = GeoPoints(ds, f)
	want = []domain.Coordinates{{Lat: 5.40, Lon: -4.10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("single agent (-want +got):\n%s", diff)
	}
}

func TestAgentProductivityThreshold(t *testing.T) {
	var rows [][]string
	for i := 0; i < 10; i++ {
		rows = append(rows, row("Z01", fmt.Sprint(i), "Dix", "2025-03-02", "2025-03-03", "", ""))
	}
	for i := 0; i < 11; i++ {
		rows = append(rows, row("Z01", fmt.Sprint(i), "Onze", "2025-03-02", "2025-03-03", "", ""))
	}
	ds := mustDataset(t, rows...)

	f := domain.FilterCriteria{Date1: march(1), Date2: march(31), Threshold: 10}
	got := AgentProductivity(ds, f)
	if len(got) != 1 || got[0].AgentName != "Dix" || got[0].Total != 10 {
		t.Fatalf("AgentProductivity = %+v, want only Dix with 10 records", got)
	}
}

func TestAgentProductivityMeanSkipsMissing(t *testing.T) {
	start, end := march(2), march(5)
	days := func(n int) *int { return &n }
	ds := &domain.Dataset{Records: []domain.CollectionRecord{
		{AgentName: "Awa", StartDate: &start, EndDate: &end, DurationDays: days(2)},
		{AgentName: "Awa", StartDate: &start, EndDate: &end, DurationDays: days(4)},
		{AgentName: "Awa", StartDate: &start, EndDate: &end},
	}}

	f := domain.FilterCriteria{Date1: march(1), Date2: march(31), Threshold: 10}
	got := AgentProductivity(ds, f)
	if len(got) != 1 || got[0].Total != 3 {
		t.Fatalf("AgentProductivity = %+v, want Awa with 3 records", got)
	}
	if got[0].MeanDurationDays == nil || *got[0].MeanDurationDays != 3 {
		t.Fatalf("mean = %v, want 3", got[0].MeanDurationDays)
	}
	if got[0].MedianDurationDays == nil || *got[0].MedianDurationDays != 3 {
		t.Fatalf("median = %v, want 3", got[0].MedianDurationDays)
	}
}

func TestAgentProductivityNoDurations(t *testing.T) {
	start, end := march(2), march(5)
	ds := &domain.Dataset{Records: []domain.CollectionRecord{
		{AgentName: "Awa", StartDate: &start, EndDate: &end},
	}}

	got := AgentProductivity(ds, domain.FilterCriteria{Date1: march(1), Date2: march(31), Threshold: 1})
	if len(got) != 1 || got[0].MeanDurationDays != nil || got[0].MedianDurationDays != nil {
		t.Fatalf("AgentProductivity = %+v, want nil mean and median", got)
	}
}

func TestAgentProductivityAsymmetricBounds(t *testing.T) {
	ds := mustDataset(t,
		row("Z01", "1", "Awa", "2025-03-20", "2025-04-02", "", ""),
		row("Z01", "2", "Ali", "2025-03-01", "2025-03-31", "", ""),
		row("", "3", "", "2025-03-05", "2025-03-06", "", ""),
	)

	f := domain.FilterCriteria{Date1: march(1), Date2: march(31), Threshold: 10}
	got := AgentProductivity(ds, f)
	if len(got) != 1 || got[0].AgentName != "Ali" {
		t.Fatalf("AgentProductivity = %+v, want only Ali", got)
	}
}

func TestAgentNames(t *testing.T) {
	ds := mustDataset(t,
		row("Z01", "1", "Zoé", "", "", "", ""),
		row("Z01", "2", "éric", "", "", "", ""),
		row("Z01", "3", "Ange", "", "", "", ""),
		row("Z01", "4", "Émile", "", "", "", ""),
		row("Z01", "5", "Ange", "", "", "", ""),
		row("Z01", "6", "", "", "", "", ""),
	)

	got := AgentNames(ds)
	want := []string{"Ange", "Émile", "éric", "Zoé"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AgentNames (-want +got):\n%s", diff)
	}
}
