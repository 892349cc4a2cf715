package api

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/obs"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// instrumentedRouter registers every route behind the request logger and
// the Prometheus observer, labelled with the route pattern.
type instrumentedRouter struct {
	*httprouter.Router
	metrics *obs.Metrics
}

func newInstrumentedRouter(metrics *obs.Metrics) *instrumentedRouter {
	return &instrumentedRouter{Router: httprouter.New(), metrics: metrics}
}

func (ir *instrumentedRouter) GET(path string, handle httprouter.Handle) {
	ir.Router.GET(path, ir.wrap(path, handle))
}

func (ir *instrumentedRouter) POST(path string, handle httprouter.Handle) {
	ir.Router.POST(path, ir.wrap(path, handle))
}

// wrap tags the request with an id, then logs and observes the response.
func (ir *instrumentedRouter) wrap(route string, handle httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		start := time.Now()

		reqID := uuid.NewV1().String()
		w.Header().Set("X-Request-ID", reqID)
		r = r.WithContext(obs.WithRequestID(r.Context(), reqID))

		sw := &obs.StatusWriter{ResponseWriter: w}
		handle(sw, r, p)

		latency := time.Since(start)
		status := sw.Status()
		ir.metrics.ObserveRequest(route, status, sw.Bytes, latency)

		l := logrus.WithFields(logrus.Fields{
			"req_id": reqID,
			"method": r.Method,
			"path":   r.URL.RequestURI(),
			"status": status,
			"bytes":  sw.Bytes,
			"dur_ms": latency.Milliseconds(),
		})
		logFunc := l.Info
		if status > 499 {
			logFunc = l.Error
		}
		logFunc("responded")
	}
}

// sessionHandle is a handler that needs the caller's session.
type sessionHandle func(w http.ResponseWriter, r *http.Request, s *domain.Session)

func withSession(store *SessionStore, upstream sessionHandle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		upstream(w, r, store.Resolve(r))
	}
}

// requireAuth hands authenticated sessions to upstream. Everyone else is sent
// to the login page, or gets a 401 on the JSON API.
func requireAuth(store *SessionStore, upstream sessionHandle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if s := store.Resolve(r); s.Authenticated {
			upstream(w, r, s)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}` + "\n"))
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
