package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/Akaiko1/icon-browser/internal/config"
)

var logLevelOptions = []string{"debug", "info", "warn", "error"}

// settingsForm holds the widgets of the configuration dialog.
type settingsForm struct {
	searchDelay *widget.Entry
	columns     *widget.Select
	style       *widget.Select
	logLevel    *widget.Select
	remember    *widget.Check
}

func newSettingsForm(cfg *config.Config) *settingsForm {
	f := &settingsForm{
		searchDelay: widget.NewEntry(),
		columns:     widget.NewSelect(nil, nil),
		style:       widget.NewSelect(config.Styles, nil),
		logLevel:    widget.NewSelect(logLevelOptions, nil),
		remember:    widget.NewCheck("", nil),
	}

	f.searchDelay.SetText(strconv.FormatInt(cfg.SearchDelay.Milliseconds(), 10))
	f.searchDelay.Validator = func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("search delay must be a number of milliseconds")
		}
		return nil
	}

	for _, n := range config.ColumnOptions {
		f.columns.Options = append(f.columns.Options, strconv.Itoa(n))
	}
	f.columns.SetSelected(strconv.Itoa(cfg.Columns))
	f.style.SetSelected(cfg.Style)
	f.logLevel.SetSelected(cfg.LogLevel)
	f.remember.SetChecked(cfg.RememberChoices)
	return f
}

func (f *settingsForm) items() []*widget.FormItem {
	delay := widget.NewFormItem("Search delay (ms)", f.searchDelay)
	delay.HintText = "Pause after typing before the grid is filtered"
	return []*widget.FormItem{
		delay,
		widget.NewFormItem("Default columns", f.columns),
		widget.NewFormItem("Style", f.style),
		widget.NewFormItem("Log level", f.logLevel),
		widget.NewFormItem("Remember choices", f.remember),
	}
}

// apply copies the form values onto a clone of cfg and validates it.
func (f *settingsForm) apply(cfg *config.Config) *config.Config {
	next := cfg.Clone()
	if ms, err := strconv.Atoi(f.searchDelay.Text); err == nil {
		next.SearchDelay = time.Duration(ms) * time.Millisecond
	}
	if n, err := strconv.Atoi(f.columns.Selected); err == nil {
		next.Columns = n
	}
	next.Style = f.style.Selected
	next.LogLevel = f.logLevel.Selected
	next.RememberChoices = f.remember.Checked
	next.Validate()
	return next
}

// showConfig opens the configuration dialog and saves accepted changes.
func (app *IconBrowserApp) showConfig() {
	form := newSettingsForm(app.config)
	dialog.ShowForm("Configuration", "Save", "Cancel", form.items(), func(ok bool) {
		if !ok {
			return
		}
		app.applyConfig(form.apply(app.config))
	}, app.window)
}

// applyConfig makes next the active configuration and writes it to disk.
func (app *IconBrowserApp) applyConfig(next *config.Config) {
	app.config = next
	app.search.SetDelay(next.SearchDelay)
	if level, err := log.ParseLevel(next.LogLevel); err == nil {
		app.logger.SetLevel(level)
	}

	// Selects fire OnChanged only when the value differs.
	app.columnsSelect.SetSelected(strconv.Itoa(next.Columns))
	app.styleSelect.SetSelected(next.Style)

	if err := config.Save(next); err != nil {
		app.showError("Config Error", err)
		return
	}
	app.logger.Info("configuration saved", "path", next.Path)
	app.statusLabel.SetText("Configuration saved to " + next.Path)
}
