package handlers

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/services"
	"collection-dashboard/internal/web"
	"context"
	"net/http"
	"time"
)

// DatasetProvider serves the current dataset; it is the TTL cache in
// production.
type DatasetProvider interface {
	Get(ctx context.Context) services.LoadResult
	Invalidate()
	LoadedAt() (time.Time, bool)
}

// Refresh only redirects to one of these.
var tabPaths = map[string]bool{
	"/" + web.PageStats:  true,
	"/" + web.PageMap:    true,
	"/" + web.PageAgents: true,
	"/" + web.PageChat:   true,
}

// DashboardHandler renders the data tabs. Every request recomputes its view
// from the cached dataset.
type DashboardHandler struct {
	Data DatasetProvider
	Now  func() time.Time
}

func (h *DashboardHandler) load(r *http.Request, s *domain.Session, active, title string) (services.LoadResult, web.Page) {
	res := h.Data.Get(r.Context())
	loadedAt, _ := h.Data.LoadedAt()
	return res, web.Page{
		Title:         title,
		Active:        active,
		Authenticated: s.Authenticated,
		LoadError:     res.Err,
		LoadedAt:      loadedAt,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	res, page := h.load(r, s, web.PageStats, "Statistiques")

	hist := services.TemporalHistogram(res.Dataset)
	maxCount := 0
	for _, b := range hist {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	render(w, r, http.StatusOK, web.PageStats, web.StatsPage{
		Page:      page,
		Stats:     services.GlobalStatistics(res.Dataset),
		Histogram: hist,
		MaxCount:  maxCount,
	})
}

func (h *DashboardHandler) Map(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	res, page := h.load(r, s, web.PageMap, "Carte")

	f, err := parseFilter(r, h.Now())
	if err != nil {
		page.Notice = err.Error()
	}

	render(w, r, http.StatusOK, web.PageMap, web.MapPage{
		Page:       page,
		Filter:     web.NewFilterForm(f),
		AgentNames: services.AgentNames(res.Dataset),
		Points:     services.GeoPoints(res.Dataset, f),
	})
}

func (h *DashboardHandler) Agents(w http.ResponseWriter, r *http.Request, s *domain.Session) {
	res, page := h.load(r, s, web.PageAgents, "Suivi des agents")

	f, err := parseFilter(r, h.Now())
	if err != nil {
		page.Notice = err.Error()
	}

	render(w, r, http.StatusOK, web.PageAgents, web.AgentsPage{
		Page:      page,
		Filter:    web.NewFilterForm(f),
		Summaries: services.AgentProductivity(res.Dataset, f),
	})
}

// Refresh drops the cached dataset and sends the user back to their tab.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	h.Data.Invalidate()
	requestLog(r).Info("dataset cache invalidated")

	next := r.PostFormValue("next")
	if !tabPaths[next] {
		next = "/stats"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}
