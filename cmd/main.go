// Package main implements a cross-platform GUI application for browsing icon
// collections and copying their identifiers using the Fyne framework.
package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/Akaiko1/icon-browser/internal/config"
	"github.com/Akaiko1/icon-browser/internal/logging"
	"github.com/Akaiko1/icon-browser/internal/ui"
)

const appID = "io.github.akaiko1.iconbrowser"

func main() {
	cfg, err := config.Load("")
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		logger.Warn("config not fully loaded, continuing with defaults", "path", cfg.Path, "err", err)
	}
	logger.Info("starting IconBrowser", "config", cfg.Path, "columns", cfg.Columns, "style", cfg.Style)

	if err := ui.Launch(app.NewWithID(appID), cfg, logger); err != nil {
		logger.Fatal("failed to start browser", "err", err)
	}
}
