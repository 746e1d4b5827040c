package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/icon-browser/internal/config"
	"github.com/Akaiko1/icon-browser/internal/logging"
)

func newTestBrowser(t *testing.T) (*IconBrowserApp, fyne.App) {
	t.Helper()

	a := test.NewTempApp(t)
	cfg := config.DefaultConfig()
	cfg.UnitTest = true
	cfg.Path = filepath.Join(t.TempDir(), "config.yaml")

	b, err := NewIconBrowserApp(a, cfg, logging.Discard())
	require.NoError(t, err)
	b.Run()
	return b, a
}

// pressKey delivers a key the way the desktop driver does: to the focused
// widget when there is one, otherwise to the canvas handler.
func pressKey(c fyne.Canvas, name fyne.KeyName) {
	ev := &fyne.KeyEvent{Name: name}
	if f := c.Focused(); f != nil {
		f.TypedKey(ev)
		return
	}
	if onKey := c.OnTypedKey(); onKey != nil {
		onKey(ev)
	}
}

func setSearch(b *IconBrowserApp, term string) {
	b.searchEntry.SetText(term)
	b.applyFilterNow()
}

func TestNewIconBrowserApp(t *testing.T) {
	b, _ := newTestBrowser(t)

	total := b.catalog.Len()
	require.Greater(t, total, 0)

	assert.Equal(t, appTitle, b.Window().Title())
	assert.Equal(t, config.AllCollections, b.collectionSelect.Selected)
	assert.Equal(t, total, b.model.Len())
	assert.Equal(t, fmt.Sprintf(msgStatus, total, total), b.statusLabel.Text)

	assert.Equal(t, msgNamePlaceholder, b.nameField.Text)
	assert.True(t, b.copyNameButton.Disabled())
	assert.True(t, b.copyCodeButton.Disabled())

	assert.Equal(t, b.searchEntry, b.Window().Canvas().Focused())
}

func TestCollectionOptions(t *testing.T) {
	b, _ := newTestBrowser(t)

	assert.Equal(t, []string{config.AllCollections, "fyne", "material"}, b.collectionSelect.Options)
}

func TestSelectEnablesCopy(t *testing.T) {
	b, a := newTestBrowser(t)

	b.grid.Select(0)
	want, ok := b.model.At(0)
	require.True(t, ok)

	assert.Equal(t, want, b.selected)
	assert.Equal(t, want, b.nameField.Text)
	assert.False(t, b.copyNameButton.Disabled())
	assert.False(t, b.copyCodeButton.Disabled())

	test.Tap(b.copyNameButton)
	assert.Equal(t, want, a.Clipboard().Content())
	assert.Equal(t, fmt.Sprintf(msgCopiedName, want), b.statusLabel.Text)

	b.grid.UnselectAll()
	assert.Empty(t, b.selected)
	assert.Equal(t, msgNamePlaceholder, b.nameField.Text)
	assert.True(t, b.copyNameButton.Disabled())
}

func TestCopyCode(t *testing.T) {
	b, a := newTestBrowser(t)

	setSearch(b, "^search$")
	b.collectionSelect.SetSelected("fyne")
	require.Equal(t, 1, b.model.Len())

	b.grid.Select(0)
	test.Tap(b.copyCodeButton)

	code := a.Clipboard().Content()
	assert.Contains(t, code, `import "fyne.io/fyne/v2/theme"`)
	assert.Contains(t, code, "theme.Icon(theme.IconNameSearch)")
}

func TestDoubleTapCopiesCode(t *testing.T) {
	b, a := newTestBrowser(t)

	b.onDoubleTapped(0)

	want, _ := b.model.At(0)
	assert.Equal(t, want, b.selected)
	assert.Contains(t, a.Clipboard().Content(), "import ")
}

func TestEnterCopiesName(t *testing.T) {
	b, a := newTestBrowser(t)
	a.Clipboard().SetContent("")

	onKey := b.Window().Canvas().OnTypedKey()
	require.NotNil(t, onKey)

	// Nothing selected, nothing copied.
	onKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Empty(t, a.Clipboard().Content())

	b.grid.Select(1)
	onKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, b.selected, a.Clipboard().Content())
}

func TestSearchFilters(t *testing.T) {
	b, _ := newTestBrowser(t)
	total := b.model.Total()

	setSearch(b, "ZOOM")

	n := b.model.Len()
	require.Greater(t, n, 0)
	assert.Less(t, n, total)
	for i := 0; i < n; i++ {
		icon, _ := b.model.At(i)
		_, glyph, _ := strings.Cut(icon, ":")
		assert.Contains(t, strings.ToLower(glyph), "zoom")
	}
	assert.Equal(t, fmt.Sprintf(msgStatus, n, total), b.statusLabel.Text)
}

func TestSearchDoesNotMatchCollectionName(t *testing.T) {
	b, _ := newTestBrowser(t)

	setSearch(b, "^material")
	assert.Equal(t, 0, b.model.Len())
}

func TestInvalidExpressionMatchesLiterally(t *testing.T) {
	b, _ := newTestBrowser(t)

	setSearch(b, "(")

	assert.Equal(t, 0, b.model.Len())
	assert.True(t, strings.HasSuffix(b.statusLabel.Text, msgLiteralSearch))
}

func TestSubmitAppliesImmediately(t *testing.T) {
	b, _ := newTestBrowser(t)
	b.search.SetDelay(time.Hour)

	b.searchEntry.SetText("home")
	assert.True(t, b.search.Pending())
	assert.Equal(t, b.model.Total(), b.model.Len())

	b.searchEntry.OnSubmitted(b.searchEntry.Text)
	assert.False(t, b.search.Pending())
	assert.Less(t, b.model.Len(), b.model.Total())
}

func TestCollectionFilter(t *testing.T) {
	b, _ := newTestBrowser(t)

	b.collectionSelect.SetSelected("fyne")
	n := b.model.Len()
	require.Greater(t, n, 0)
	for i := 0; i < n; i++ {
		icon, _ := b.model.At(i)
		assert.True(t, strings.HasPrefix(icon, "fyne:"), icon)
	}

	b.collectionSelect.SetSelected(config.AllCollections)
	assert.Equal(t, b.model.Total(), b.model.Len())
}

func TestFilterClearsSelection(t *testing.T) {
	b, _ := newTestBrowser(t)

	b.grid.Select(0)
	require.NotEmpty(t, b.selected)

	setSearch(b, "arrow")
	assert.Empty(t, b.selected)
	assert.True(t, b.copyCodeButton.Disabled())
}

func TestColumnsChange(t *testing.T) {
	b, a := newTestBrowser(t)

	b.columnsSelect.SetSelected("5")

	assert.Equal(t, 5, b.config.Columns)
	assert.Equal(t, 5, b.sizer.columns)
	assert.Equal(t, 5, a.Preferences().Int(prefColumns))
}

func TestPreferencesRestoreChoices(t *testing.T) {
	a := test.NewTempApp(t)
	a.Preferences().SetInt(prefColumns, 25)
	a.Preferences().SetString(prefStyle, config.StyleDark)
	a.Preferences().SetString(prefCollection, "material")

	cfg := config.DefaultConfig()
	cfg.UnitTest = true
	b, err := NewIconBrowserApp(a, cfg, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "25", b.columnsSelect.Selected)
	assert.Equal(t, config.StyleDark, b.styleSelect.Selected)
	assert.Equal(t, "material", b.collectionSelect.Selected)
}

func TestUnknownCollectionFallsBackToAll(t *testing.T) {
	a := test.NewTempApp(t)

	cfg := config.DefaultConfig()
	cfg.UnitTest = true
	cfg.RememberChoices = false
	cfg.Collection = "emoji"
	b, err := NewIconBrowserApp(a, cfg, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, config.AllCollections, b.collectionSelect.Selected)
}

func TestStyleChange(t *testing.T) {
	b, a := newTestBrowser(t)

	b.styleSelect.SetSelected(config.StyleDark)

	th, ok := a.Settings().Theme().(*variantTheme)
	require.True(t, ok)
	assert.Equal(t, theme.VariantDark, th.variant)
	assert.Equal(t, config.StyleDark, b.config.Style)
}

func TestApplyConfigSaves(t *testing.T) {
	b, _ := newTestBrowser(t)

	next := b.config.Clone()
	next.SearchDelay = 150 * time.Millisecond
	next.Columns = 20
	b.applyConfig(next)

	assert.Equal(t, 150*time.Millisecond, b.search.Delay())
	assert.Equal(t, "20", b.columnsSelect.Selected)
	assert.Equal(t, 20, b.sizer.columns)

	_, err := os.Stat(next.Path)
	require.NoError(t, err)

	loaded, err := config.Load(next.Path)
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.Columns)
	assert.Equal(t, 150*time.Millisecond, loaded.SearchDelay)
}

func TestTapThenEnterCopiesName(t *testing.T) {
	b, a := newTestBrowser(t)
	c := b.Window().Canvas()
	require.Equal(t, b.searchEntry, c.Focused())

	tile, ok := b.createTile().(*iconTile)
	require.True(t, ok)
	b.updateTile(3, tile)
	tile.Tapped(&fyne.PointEvent{})

	want, _ := b.model.At(3)
	require.Equal(t, want, b.selected)
	assert.Equal(t, b.grid, c.Focused())

	pressKey(c, fyne.KeyReturn)
	assert.Equal(t, want, b.selected)
	assert.Equal(t, want, a.Clipboard().Content())
	assert.False(t, b.copyNameButton.Disabled())
}

func TestEnterOnFocusedGridCopiesName(t *testing.T) {
	b, a := newTestBrowser(t)
	c := b.Window().Canvas()

	c.Focus(b.grid)
	b.grid.Select(2)
	pressKey(c, fyne.KeyEnter)

	want, _ := b.model.At(2)
	assert.Equal(t, want, a.Clipboard().Content())
}

func TestEnterInSearchAppliesFilter(t *testing.T) {
	b, _ := newTestBrowser(t)
	b.search.SetDelay(time.Hour)
	c := b.Window().Canvas()

	b.searchEntry.SetText("home")
	pressKey(c, fyne.KeyReturn)

	assert.False(t, b.search.Pending())
	assert.Less(t, b.model.Len(), b.model.Total())
}

func TestShortcutFocusesSearch(t *testing.T) {
	b, _ := newTestBrowser(t)
	c := b.Window().Canvas()

	c.Focus(b.grid)
	require.Equal(t, b.grid, c.Focused())

	handler, ok := c.(fyne.Shortcutable)
	require.True(t, ok)
	handler.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyF, Modifier: fyne.KeyModifierShortcutDefault})

	assert.Equal(t, b.searchEntry, c.Focused())
}
