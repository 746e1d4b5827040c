package ui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/Akaiko1/icon-browser/internal/catalog"
	"github.com/Akaiko1/icon-browser/internal/clipboard"
	"github.com/Akaiko1/icon-browser/internal/config"
	"github.com/Akaiko1/icon-browser/internal/debounce"
	"github.com/Akaiko1/icon-browser/internal/filter"
	"github.com/Akaiko1/icon-browser/internal/iconfont"
	"github.com/Akaiko1/icon-browser/internal/renderer"
)

const (
	// UI Constants
	appTitle       = "IconBrowser"
	nameFieldWidth = 400

	catalogTimeout = 10 * time.Second

	// Icons used by the browser itself
	programIcon  = "material:apps"
	copyNameIcon = "fyne:contentCopy"
	copyCodeIcon = "fyne:documentCreate"
	configIcon   = "fyne:settings"

	// Preference keys
	prefColumns    = "columns"
	prefStyle      = "style"
	prefCollection = "collection"

	// Messages
	msgNamePlaceholder = "(Full identifier of the currently selected icon)"
	msgSearchHint      = "Search icons"
	msgCopiedName      = "Copied %s to clipboard"
	msgCopiedCode      = "Copied code for %s to clipboard"
	msgStatus          = "Showing %d of %d icons"
	msgLiteralSearch   = " (search is not a valid expression, matching literally)"

	// Loading stages
	msgLoadingCollections = "Loading icon collections..."
	msgBuildingCatalog    = "Building icon catalog..."
	msgCreatingWindow     = "Creating window..."
)

var focusSearchShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyF, Modifier: fyne.KeyModifierShortcutDefault}

// IconBrowserApp represents the main GUI application for browsing icon collections.
type IconBrowserApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config
	logger *log.Logger

	// Services
	registry *iconfont.Registry
	catalog  *catalog.Catalog
	model    *filter.Model
	copier   *clipboard.IconCopier
	search   *debounce.Debouncer

	// UI components
	collectionSelect *widget.Select
	searchEntry      *widget.Entry
	nameField        *widget.Label
	copyNameButton   *widget.Button
	copyCodeButton   *widget.Button
	columnsSelect    *widget.Select
	styleSelect      *widget.Select
	configButton     *widget.Button
	grid             *iconGrid
	statusLabel      *widget.Label
	sizer            *tileSizer

	// State - UI thread only, no synchronization needed
	selected string
}

// loadedCatalog is what the browser needs before it can build its window.
type loadedCatalog struct {
	registry *iconfont.Registry
	catalog  *catalog.Catalog
}

// loadCatalog registers the bundled collections and enumerates their glyphs.
// step, when set, is told about each loading stage.
func loadCatalog(logger *log.Logger, step func(string)) (*loadedCatalog, error) {
	report := func(msg string) {
		logger.Debug(msg)
		if step != nil {
			step(msg)
		}
	}

	report(msgLoadingCollections)
	registry := iconfont.Default()

	report(msgBuildingCatalog)
	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	cat, err := catalog.Build(ctx, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to build icon catalog: %w", err)
	}
	logger.Info("icon catalog built", "icons", cat.Len(), "collections", len(cat.Counts))

	return &loadedCatalog{registry: registry, catalog: cat}, nil
}

// NewIconBrowserApp loads the catalog and builds the browser window on top of fyneApp.
func NewIconBrowserApp(fyneApp fyne.App, cfg *config.Config, logger *log.Logger) (*IconBrowserApp, error) {
	loaded, err := loadCatalog(logger, nil)
	if err != nil {
		return nil, err
	}
	return newIconBrowserApp(fyneApp, cfg, logger, loaded)
}

// newIconBrowserApp builds the window from an already loaded catalog. UI thread only.
func newIconBrowserApp(fyneApp fyne.App, cfg *config.Config, logger *log.Logger, loaded *loadedCatalog) (*IconBrowserApp, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	model, err := filter.NewModel(loaded.catalog.Entries)
	if err != nil {
		return nil, err
	}

	registry := loaded.registry
	browser := &IconBrowserApp{
		app:      fyneApp,
		config:   cfg,
		logger:   logger,
		registry: registry,
		catalog:  loaded.catalog,
		model:    model,
	}

	browser.loadPreferences()
	fyneApp.Settings().SetTheme(themeForStyle(cfg.Style))

	browser.copier = clipboard.NewIconCopier(
		clipboard.NewFyneClipboardManager(fyneApp.Clipboard()),
		renderer.NewGoSnippetRenderer(registry),
		logger,
	)
	browser.search = debounce.New(cfg.SearchDelay, browser.applyFilter)

	browser.window = fyneApp.NewWindow(appTitle)
	browser.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	if res, err := registry.Resource(programIcon); err == nil {
		fyneApp.SetIcon(res)
		browser.window.SetIcon(res)
	}

	browser.window.SetContent(browser.createMainContent())
	browser.setupShortcuts()
	browser.applyFilter()
	browser.window.Canvas().Focus(browser.searchEntry)
	browser.window.CenterOnScreen()

	return browser, nil
}

// Run shows the window and enters the event loop. In unit-test mode it returns immediately.
func (app *IconBrowserApp) Run() {
	if app.config.UnitTest {
		app.logger.Info("unit test mode, not entering the event loop")
		return
	}
	app.window.ShowAndRun()
}

// Window returns the main window.
func (app *IconBrowserApp) Window() fyne.Window {
	return app.window
}

// createMainContent creates the main UI content.
func (app *IconBrowserApp) createMainContent() fyne.CanvasObject {
	filterBar := app.createFilterBar()
	nameBar := app.createNameBar()

	app.grid = app.createGrid()
	gridArea := container.New(&gridLayout{sizer: app.sizer, changed: app.grid.Refresh}, app.grid)

	app.statusLabel = widget.NewLabel("")

	header := container.NewVBox(filterBar, nameBar, widget.NewSeparator())
	footer := container.NewVBox(widget.NewSeparator(), app.statusLabel)
	return container.NewBorder(header, footer, nil, nil, gridArea)
}

// createFilterBar creates the collection selector and the search entry.
func (app *IconBrowserApp) createFilterBar() fyne.CanvasObject {
	options := append([]string{config.AllCollections}, app.catalog.CollectionNames()...)
	app.collectionSelect = widget.NewSelect(options, nil)
	if slices.Contains(options, app.config.Collection) {
		app.collectionSelect.SetSelected(app.config.Collection)
	} else {
		app.collectionSelect.SetSelected(config.AllCollections)
	}
	app.collectionSelect.OnChanged = func(collection string) {
		app.savePreference(prefCollection, collection)
		app.applyFilterNow()
	}

	app.searchEntry = widget.NewEntry()
	app.searchEntry.SetPlaceHolder(msgSearchHint)
	app.searchEntry.OnChanged = func(string) {
		app.logger.Debug("search changed, restarting timer")
		app.search.Trigger()
	}
	app.searchEntry.OnSubmitted = func(string) {
		app.applyFilterNow()
	}
	app.searchEntry.ActionItem = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		app.searchEntry.SetText("")
		app.applyFilterNow()
	})

	return container.NewBorder(nil, nil, app.collectionSelect, nil, app.searchEntry)
}

// createNameBar creates the selected-name field, copy actions and view controls.
func (app *IconBrowserApp) createNameBar() fyne.CanvasObject {
	app.nameField = widget.NewLabelWithStyle(msgNamePlaceholder, fyne.TextAlignCenter,
		fyne.TextStyle{Monospace: true, Bold: true})
	nameBox := container.NewGridWrap(
		fyne.NewSize(nameFieldWidth, app.nameField.MinSize().Height), app.nameField)

	app.copyNameButton = widget.NewButtonWithIcon("Copy Name", app.icon(copyNameIcon), app.copyName)
	app.copyCodeButton = widget.NewButtonWithIcon("Copy Code", app.icon(copyCodeIcon), app.copyCode)
	app.copyNameButton.Disable()
	app.copyCodeButton.Disable()

	columnOptions := make([]string, 0, len(config.ColumnOptions))
	for _, n := range config.ColumnOptions {
		columnOptions = append(columnOptions, strconv.Itoa(n))
	}
	app.columnsSelect = widget.NewSelect(columnOptions, nil)
	app.columnsSelect.SetSelected(strconv.Itoa(app.config.Columns))
	app.columnsSelect.OnChanged = func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		app.setColumns(n)
	}

	app.styleSelect = widget.NewSelect(config.Styles, nil)
	app.styleSelect.SetSelected(app.config.Style)
	app.styleSelect.OnChanged = app.setStyle

	app.configButton = widget.NewButtonWithIcon("Config", app.icon(configIcon), app.showConfig)
	app.configButton.Importance = widget.LowImportance

	return container.NewHBox(
		nameBox,
		widget.NewSeparator(),
		app.copyNameButton,
		app.copyCodeButton,
		layout.NewSpacer(),
		app.columnsSelect,
		app.styleSelect,
		app.configButton,
	)
}

// createGrid creates the icon grid bound to the visible entries of the model.
func (app *IconBrowserApp) createGrid() *iconGrid {
	app.sizer = newTileSizer(app.config.Columns)

	grid := newIconGrid(
		app.model.Visible(),
		app.createTile,
		app.updateTile,
		app.copyName,
	)
	grid.OnSelected = app.onSelected
	grid.OnUnselected = func(widget.GridWrapItemID) {
		app.clearSelection()
	}
	return grid
}

func (app *IconBrowserApp) createTile() fyne.CanvasObject {
	return newIconTile(app.sizer, app.onTileTapped, app.onDoubleTapped)
}

func (app *IconBrowserApp) updateTile(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	tile, ok := obj.(*iconTile)
	if !ok {
		return
	}

	iconString, ok := app.model.At(id)
	if !ok {
		return
	}

	res, err := app.registry.Resource(iconString)
	if err != nil {
		app.logger.Debug("icon unavailable", "icon", iconString, "err", err)
		res = theme.BrokenImageIcon()
	}
	tile.set(id, res)
}

// applyFilterNow skips the search delay.
func (app *IconBrowserApp) applyFilterNow() {
	app.search.Flush()
}

// applyFilter re-filters the catalog from the current collection and search term.
func (app *IconBrowserApp) applyFilter() {
	collection := app.collectionSelect.Selected
	term := app.searchEntry.Text

	visible, err := app.model.Apply(collection, term)
	if err != nil {
		app.showError("Filter Error", err)
		return
	}
	app.logger.Debug("filter applied", "collection", collection, "term", term, "visible", visible)

	// The grid redraws through the model binding.
	app.grid.UnselectAll()
	app.clearSelection()
	app.grid.ScrollToTop()

	status := fmt.Sprintf(msgStatus, visible, app.model.Total())
	if app.model.Matcher().Literal() {
		status += msgLiteralSearch
	}
	app.statusLabel.SetText(status)
}

func (app *IconBrowserApp) onSelected(id widget.GridWrapItemID) {
	iconString, ok := app.model.At(id)
	if !ok {
		app.clearSelection()
		return
	}

	app.selected = iconString
	app.nameField.SetText(iconString)
	app.copyNameButton.Enable()
	app.copyCodeButton.Enable()
}

// onTileTapped moves focus to the grid so Return copies the tapped icon
// instead of resubmitting the search.
func (app *IconBrowserApp) onTileTapped(id widget.GridWrapItemID) {
	app.window.Canvas().Focus(app.grid)
	app.grid.Select(id)
}

func (app *IconBrowserApp) onDoubleTapped(id widget.GridWrapItemID) {
	app.onTileTapped(id)
	app.copyCode()
}

// clearSelection empties the name field and disables the copy actions.
func (app *IconBrowserApp) clearSelection() {
	app.selected = ""
	app.nameField.SetText(msgNamePlaceholder)
	app.copyNameButton.Disable()
	app.copyCodeButton.Disable()
}

// copyName copies the identifier of the selected icon to the clipboard.
func (app *IconBrowserApp) copyName() {
	if app.selected == "" {
		return
	}
	if err := app.copier.CopyName(app.selected); err != nil {
		app.showError("Clipboard Error", err)
		return
	}
	app.statusLabel.SetText(fmt.Sprintf(msgCopiedName, app.selected))
}

// copyCode copies a Go snippet for the selected icon to the clipboard.
func (app *IconBrowserApp) copyCode() {
	if app.selected == "" {
		return
	}
	if err := app.copier.CopySnippet(app.selected); err != nil {
		app.showError("Clipboard Error", err)
		return
	}
	app.statusLabel.SetText(fmt.Sprintf(msgCopiedCode, app.selected))
}

func (app *IconBrowserApp) setColumns(columns int) {
	app.config.Columns = columns
	app.savePreference(prefColumns, columns)
	if app.sizer.setColumns(columns) {
		app.grid.Refresh()
	}
	app.logger.Debug("columns changed", "columns", columns)
}

func (app *IconBrowserApp) setStyle(style string) {
	app.config.Style = style
	app.savePreference(prefStyle, style)
	app.app.Settings().SetTheme(themeForStyle(style))
	// Material glyphs are rasterized in the foreground colour, so redraw them.
	app.grid.Refresh()
	app.logger.Info("style changed", "style", style)
}

// setupShortcuts registers Ctrl+F to focus the search field and Enter to copy the name.
// The grid handles Enter itself while it has focus.
func (app *IconBrowserApp) setupShortcuts() {
	canvas := app.window.Canvas()

	canvas.AddShortcut(focusSearchShortcut, func(fyne.Shortcut) {
		canvas.Focus(app.searchEntry)
	})

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
			app.copyName()
		}
	})
}

// icon resolves an icon string for the browser's own buttons.
func (app *IconBrowserApp) icon(iconString string) fyne.Resource {
	res, err := app.registry.Resource(iconString)
	if err != nil {
		app.logger.Error("missing UI icon", "icon", iconString, "err", err)
		return theme.BrokenImageIcon()
	}
	return res
}

func (app *IconBrowserApp) loadPreferences() {
	if !app.config.RememberChoices {
		return
	}
	prefs := app.app.Preferences()

	if n := prefs.IntWithFallback(prefColumns, app.config.Columns); slices.Contains(config.ColumnOptions, n) {
		app.config.Columns = n
	}
	if s := prefs.StringWithFallback(prefStyle, app.config.Style); slices.Contains(config.Styles, s) {
		app.config.Style = s
	}
	app.config.Collection = prefs.StringWithFallback(prefCollection, app.config.Collection)
}

func (app *IconBrowserApp) savePreference(key string, value any) {
	if !app.config.RememberChoices {
		return
	}
	prefs := app.app.Preferences()
	switch v := value.(type) {
	case int:
		prefs.SetInt(key, v)
	case string:
		prefs.SetString(key, v)
	}
}

// showError shows an error dialog.
func (app *IconBrowserApp) showError(title string, err error) {
	app.logger.Error(title, "err", err)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), app.window)
}
