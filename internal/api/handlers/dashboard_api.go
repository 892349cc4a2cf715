package handlers

import (
	"collection-dashboard/internal/api/dto"
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/services"
	"net/http"
)

func (h *DashboardHandler) APIStats(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	res := h.Data.Get(r.Context())
	stats := services.GlobalStatistics(res.Dataset)

	out := dto.StatsResponse{
		Zones:     stats.Zones,
		Ilots:     stats.Ilots,
		Total:     stats.Total,
		LoadError: res.Err,
	}
	if at, ok := h.Data.LoadedAt(); ok {
		out.LoadedAt = &at
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *DashboardHandler) APIHistogram(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	res := h.Data.Get(r.Context())
	hist := services.TemporalHistogram(res.Dataset)

	out := dto.HistogramResponse{
		Buckets:   make([]dto.HistogramBucketResponse, 0, len(hist)),
		LoadError: res.Err,
	}
	for _, b := range hist {
		out.Buckets = append(out.Buckets, dto.HistogramBucketResponse{
			Date:  b.Date.Format(domain.DateLayout),
			Count: b.Count,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *DashboardHandler) APIGeo(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	f, err := parseFilter(r, h.Now())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := h.Data.Get(r.Context())
	points := services.GeoPoints(res.Dataset, f)

	out := dto.GeoResponse{
		Date1:     f.Date1.Format(domain.DateLayout),
		Date2:     f.Date2.Format(domain.DateLayout),
		Agent:     f.Agent,
		Points:    make([]dto.GeoPointResponse, 0, len(points)),
		LoadError: res.Err,
	}
	for _, p := range points {
		out.Points = append(out.Points, dto.GeoPointResponse{Lat: p.Lat, Lon: p.Lon})
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *DashboardHandler) APIAgents(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	f, err := parseFilter(r, h.Now())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := h.Data.Get(r.Context())
	summaries := services.AgentProductivity(res.Dataset, f)

	out := dto.AgentsResponse{
		Date1:     f.Date1.Format(domain.DateLayout),
		Date2:     f.Date2.Format(domain.DateLayout),
		Threshold: f.Threshold,
		Agents:    make([]dto.AgentSummaryResponse, 0, len(summaries)),
		LoadError: res.Err,
	}
	for _, s := range summaries {
		out.Agents = append(out.Agents, dto.AgentSummaryResponse{
			Agent:              s.AgentName,
			MeanDurationDays:   s.MeanDurationDays,
			MedianDurationDays: s.MedianDurationDays,
			Total:              s.Total,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *DashboardHandler) APIAgentNames(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	res := h.Data.Get(r.Context())
	writeJSON(w, r, http.StatusOK, dto.AgentNamesResponse{Names: services.AgentNames(res.Dataset)})
}
