package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

// Page names accepted by Render.
const (
	PageLogin  = "login"
	PageStats  = "stats"
	PageMap    = "map"
	PageAgents = "agents"
	PageChat   = "chat"
)

var funcMap = template.FuncMap{
	"fmtDate": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("02/01/2006")
	},
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Local().Format("02/01/2006 15:04:05")
	},
	"fmtDays": func(v *float64) string {
		if v == nil {
			return "—"
		}
		return fmt.Sprintf("%.1f", *v)
	},
	// barWidth scales count against max into a CSS percentage.
	"barWidth": func(count, max int) int {
		if max <= 0 || count <= 0 {
			return 0
		}
		w := count * 100 / max
		if w < 1 {
			return 1
		}
		return w
	},
}

var pages = map[string]*template.Template{
	PageLogin:  mustPage(tmplLogin),
	PageStats:  mustPage(tmplStats),
	PageMap:    mustPage(tmplMap),
	PageAgents: mustPage(tmplAgents),
	PageChat:   mustPage(tmplChat),
}

func mustPage(tmplStr string) *template.Template {
	return template.Must(template.New("page").Funcs(funcMap).Parse(tmplBase + tmplStr))
}

// Render executes a page into a buffer first so a template failure never
// leaves a half-written response behind.
func Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := pages[name]
	if !ok {
		return fmt.Errorf("render: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
