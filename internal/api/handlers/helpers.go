package handlers

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/obs"
	"collection-dashboard/internal/web"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		requestLog(r).WithError(err).Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := web.Render(w, status, page, data); err != nil {
		requestLog(r).WithError(err).Error("render failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func requestLog(r *http.Request) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"req_id": obs.RequestID(r.Context()),
		"method": r.Method,
		"path":   r.URL.Path,
	})
}

// parseFilter reads date1, date2, agent and seuil from the query string.
// Absent values fall back to the tab defaults; on error the defaults are
// returned together with the error.
func parseFilter(r *http.Request, now time.Time) (domain.FilterCriteria, error) {
	def := domain.DefaultFilter(now)
	f := def
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("date1")); v != "" {
		d, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			return def, fmt.Errorf("date1 invalide : %q", v)
		}
		f.Date1 = d
	}

	if v := strings.TrimSpace(q.Get("date2")); v != "" {
		d, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			return def, fmt.Errorf("date2 invalide : %q", v)
		}
		f.Date2 = d
	}

	if v := strings.TrimSpace(q.Get("agent")); v != "" {
		f.Agent = v
	}

	if v := strings.TrimSpace(q.Get("seuil")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return def, fmt.Errorf("seuil invalide : %q (entier supérieur ou égal à 1 attendu)", v)
		}
		f.Threshold = n
	}

	return f, nil
}
