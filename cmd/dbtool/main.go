package main

import (
	"collection-dashboard/internal/config"
	"collection-dashboard/internal/platform/obs"
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	if err := obs.ConfigureLogging(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.WithError(err).Fatal("invalid logging configuration")
	}

	log := logrus.WithField("component", "dbtool")
	if err := newRootCommand(context.Background(), log, cfg).Execute(); err != nil {
		log.WithError(err).Error("dbtool failed")
		os.Exit(1)
	}
}
