package services

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/obs"
	"collection-dashboard/internal/ports"
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoadFailurePrefix starts every user-visible load error.
const LoadFailurePrefix = "Erreur lors du chargement des données : "

// LoadResult is what a refresh cycle produces. Dataset is never nil;
// Err is empty on success and carries the user-facing message otherwise.
type LoadResult struct {
	Dataset *domain.Dataset
	Err     string
}

func (r LoadResult) Failed() bool { return r.Err != "" }

// Represents the data refresh cycle over a table source.
type Loader struct {
	source  ports.TableSource
	metrics *obs.Metrics
	now     func() time.Time

	mu          sync.Mutex
	fingerprint uint64
}

func NewLoader(source ports.TableSource, metrics *obs.Metrics) *Loader {
	return &Loader{source: source, metrics: metrics, now: time.Now}
}

// Load fetches, parses and derives a fresh Dataset. It never returns an
// error: failures come back as an empty Dataset with a message.
func (l *Loader) Load(ctx context.Context) LoadResult {
	start := time.Now()
	ds, err := l.load(ctx)
	fields := log.Fields{
		"req_id": obs.RequestID(ctx),
		"dur_ms": time.Since(start).Milliseconds(),
	}

	if err != nil {
		log.WithFields(fields).WithError(err).Warn("dataset load failed")
		l.metrics.RecordLoad("failure", 0)
		return LoadResult{
			Dataset: domain.EmptyDataset(),
			Err:     LoadFailurePrefix + err.Error(),
		}
	}

	fields["rows"] = ds.Len()
	log.WithFields(fields).Info("dataset loaded")
	l.metrics.RecordLoad("success", ds.Len())
	l.trackChange(ds, fields)

	return LoadResult{Dataset: ds}
}

func (l *Loader) load(ctx context.Context) (*domain.Dataset, error) {
	if l.source == nil {
		return nil, fmt.Errorf("no table source configured")
	}

	table, err := l.source.FetchTable(ctx)
	if err != nil {
		return nil, err
	}

	return BuildDataset(table, l.now())
}

func (l *Loader) trackChange(ds *domain.Dataset, fields log.Fields) {
	l.mu.Lock()
	prev := l.fingerprint
	l.fingerprint = ds.Fingerprint
	l.mu.Unlock()

	if prev != 0 && prev != ds.Fingerprint {
		log.WithFields(fields).WithField("fingerprint", fmt.Sprintf("%016x", ds.Fingerprint)).Info("dataset changed")
	}
}
