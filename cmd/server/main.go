package main

import (
	"collection-dashboard/internal/adapters/chat"
	"collection-dashboard/internal/adapters/repositories"
	"collection-dashboard/internal/adapters/sheet"
	"collection-dashboard/internal/api"
	"collection-dashboard/internal/config"
	"collection-dashboard/internal/platform/db"
	"collection-dashboard/internal/platform/obs"
	"collection-dashboard/internal/ports"
	"collection-dashboard/internal/services"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires the configured table source and chat client behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()
	if err := obs.ConfigureLogging(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.WithError(err).Fatal("invalid logging configuration")
	}

	metrics := obs.NewMetrics(prometheus.DefaultRegisterer)

	source, closeSource, err := newTableSource(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("table source setup failed")
	}
	defer closeSource()

	cache := services.NewDatasetCache(services.NewLoader(source, metrics), cfg.CacheTTL)

	// A missing key only disables the chat tab.
	var completer ports.ChatCompleter
	if cfg.ChatAPIKey == "" {
		logrus.Warn("OPENAI_API_KEY is not set, chat relay disabled")
	} else {
		client, err := chat.NewOpenAIClient(cfg.ChatAPIKey, cfg.ChatBaseURL, cfg.ChatModel, cfg.ChatTimeout)
		if err != nil {
			logrus.WithError(err).Fatal("chat client setup failed")
		}
		completer = client
	}

	router := api.NewRouter(api.Deps{
		Data:           cache,
		Relay:          services.NewChatRelay(completer, metrics),
		Sessions:       api.NewSessionStore(),
		Password:       cfg.Password,
		Metrics:        metrics,
		MetricsHandler: promhttp.Handler(),
	})

	// Timeouts leave room for a cold dataset fetch and a slow chat completion.
	logrus.WithFields(logrus.Fields{
		"addr":   ":" + cfg.Port,
		"source": cfg.SourceKind,
		"ttl":    cfg.CacheTTL.String(),
	}).Info("Server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.FetchTimeout + cfg.ChatTimeout,
		IdleTimeout:       60 * time.Second,
	}
	logrus.Fatal(srv.ListenAndServe())
}

// newTableSource builds the source selected by SOURCE_KIND. The returned
// func releases whatever the source holds open.
func newTableSource(cfg *config.Config) (ports.TableSource, func(), error) {
	noop := func() {}

	switch cfg.SourceKind {
	case config.SourceSheet:
		src, err := sheet.NewHTTPCSVSource(cfg.SheetURL, cfg.FetchTimeout)
		if err != nil {
			return nil, noop, err
		}
		logrus.WithField("url", src.URL()).Info("Using sheet export source")
		return src, noop, nil

	case config.SourcePostgres, config.SourceSQLite:
		driver, dsn := db.DriverPostgres, cfg.DatabaseURL
		if cfg.SourceKind == config.SourceSQLite {
			driver, dsn = db.DriverSQLite, cfg.DBPath
		}

		conn, err := db.Open(driver, dsn)
		if err != nil {
			return nil, noop, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repositories.InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, noop, err
		}

		return repositories.NewSQLRecordSource(conn), func() { conn.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown SOURCE_KIND %q (want %s, %s or %s)",
			cfg.SourceKind, config.SourceSheet, config.SourcePostgres, config.SourceSQLite)
	}
}
