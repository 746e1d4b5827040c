package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/icon-browser/internal/config"
	"github.com/Akaiko1/icon-browser/internal/logging"
)

func TestSplashScreenStatus(t *testing.T) {
	a := test.NewTempApp(t)

	s := newSplashScreen(a.NewWindow(""))
	require.NotNil(t, s.window.Content())
	assert.Empty(t, s.status.Text)

	s.setStatus(msgBuildingCatalog)
	assert.Eventually(t, func() bool { return s.status.Text == msgBuildingCatalog },
		time.Second, 10*time.Millisecond)
}

func TestLoadCatalogReportsSteps(t *testing.T) {
	var steps []string
	loaded, err := loadCatalog(logging.Discard(), func(msg string) { steps = append(steps, msg) })
	require.NoError(t, err)

	assert.Equal(t, []string{msgLoadingCollections, msgBuildingCatalog}, steps)
	assert.Equal(t, loaded.catalog.Len(), len(loaded.catalog.Entries))
	assert.Greater(t, loaded.catalog.Len(), 0)
}

func TestLaunchUnitTestMode(t *testing.T) {
	a := test.NewTempApp(t)

	cfg := config.DefaultConfig()
	cfg.UnitTest = true
	cfg.RememberChoices = false

	assert.NoError(t, Launch(a, cfg, logging.Discard()))
}
