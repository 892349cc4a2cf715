package sheet

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPCSVSource implements TableSource by downloading a spreadsheet CSV export.
// A single GET is issued per fetch; failures are returned to the caller
// without retrying.
type HTTPCSVSource struct {
	client *http.Client
	url    string
}

func NewHTTPCSVSource(url string, timeout time.Duration) (*HTTPCSVSource, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("sheet source: url is empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPCSVSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}, nil
}

// URL returns the export address the source downloads from.
func (s *HTTPCSVSource) URL() string { return s.url }

func (s *HTTPCSVSource) FetchTable(ctx context.Context) (_ *domain.RawTable, err error) {
	defer obs.Time(ctx, "sheet.FetchTable")(&err)

	req, err := s.newRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	table, err := ReadTable(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}

	return table, nil
}
