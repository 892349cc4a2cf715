package api

import (
	"collection-dashboard/internal/api/handlers"
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/obs"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	Data     handlers.DatasetProvider
	Relay    handlers.ChatAsker
	Sessions *SessionStore
	Password string
	Metrics  *obs.Metrics

	// MetricsHandler serves /metrics; nil disables the route.
	MetricsHandler http.Handler
	Now            func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	if d.Sessions == nil {
		d.Sessions = NewSessionStore()
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	router := newInstrumentedRouter(d.Metrics)

	auth := &handlers.AuthHandler{Password: d.Password, Sessions: d.Sessions}
	dash := &handlers.DashboardHandler{Data: d.Data, Now: d.Now}
	chat := &handlers.ChatHandler{Relay: d.Relay, Data: d.Data}

	router.GET("/health", handlers.Health)
	if d.MetricsHandler != nil {
		router.GET("/metrics", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			d.MetricsHandler.ServeHTTP(w, r)
		})
	}

	router.GET("/login", withSession(d.Sessions, auth.LoginPage))
	router.POST("/login", withSession(d.Sessions, auth.Login))
	router.POST("/logout", withSession(d.Sessions, auth.Logout))

	protected := func(h sessionHandle) httprouter.Handle { return requireAuth(d.Sessions, h) }

	router.GET("/", protected(func(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
		http.Redirect(w, r, "/stats", http.StatusFound)
	}))
	router.GET("/stats", protected(dash.Stats))
	router.GET("/map", protected(dash.Map))
	router.GET("/agents", protected(dash.Agents))
	router.POST("/refresh", protected(dash.Refresh))
	router.GET("/chat", protected(chat.Page))
	router.POST("/chat", protected(chat.Ask))

	router.GET("/api/stats", protected(dash.APIStats))
	router.GET("/api/histogram", protected(dash.APIHistogram))
	router.GET("/api/geo", protected(dash.APIGeo))
	router.GET("/api/agents", protected(dash.APIAgents))
	router.GET("/api/agents/names", protected(dash.APIAgentNames))
	router.POST("/api/chat", protected(chat.APIAsk))

	return router
}
