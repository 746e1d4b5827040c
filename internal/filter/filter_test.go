package filter

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/icon-browser/internal/config"
)

var entries = []string{
	"fyne:contentCopy",
	"fyne:contentPaste",
	"fyne:search",
	"material:content_copy",
	"material:play_arrow",
	"material:search",
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		term       string
		entry      string
		want       bool
	}{
		{"all empty", config.AllCollections, "", "material:search", true},
		{"empty collection", "", "", "fyne:search", true},
		{"collection match", "fyne", "", "fyne:search", true},
		{"collection mismatch", "fyne", "", "material:search", false},
		{"collection case", "FYNE", "", "fyne:search", true},
		{"collection is not substring", "fy", "", "fyne:search", false},
		{"term substring", config.AllCollections, "copy", "fyne:contentCopy", true},
		{"term case insensitive", config.AllCollections, "COPY", "material:content_copy", true},
		{"term regex", config.AllCollections, "^play", "material:play_arrow", true},
		{"term anchored to glyph", config.AllCollections, "^content", "material:content_copy", true},
		{"term ignores collection", config.AllCollections, "material", "material:search", false},
		{"term miss", config.AllCollections, "zzz", "fyne:search", false},
		{"both", "material", "copy", "material:content_copy", true},
		{"both miss collection", "material", "copy", "fyne:contentCopy", false},
		{"no separator", config.AllCollections, "", "broken", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.collection, tt.term)
			assert.Equal(t, tt.want, m.Match(tt.entry))
		})
	}
}

func TestMatcherInvalidRegexIsLiteral(t *testing.T) {
	m := NewMatcher(config.AllCollections, "copy(")
	assert.True(t, m.Literal())
	assert.True(t, m.Match("fyne:copy(me"))
	assert.False(t, m.Match("fyne:contentCopy"))

	assert.False(t, NewMatcher(config.AllCollections, "copy").Literal())
}

func TestModelApply(t *testing.T) {
	test.NewApp()

	m, err := NewModel(entries)
	require.NoError(t, err)
	assert.Equal(t, len(entries), m.Len())
	assert.Equal(t, len(entries), m.Total())

	assertApply(t, m, 2, config.AllCollections, "copy")
	first, ok := m.At(0)
	require.True(t, ok)
	assert.Equal(t, "fyne:contentCopy", first)

	assertApply(t, m, 1, "material", "copy")
	got, err := m.Visible().Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"material:content_copy"}, got)

	assertApply(t, m, 3, "fyne", "")
	assertApply(t, m, 0, "fyne", "arrow")
	_, ok = m.At(0)
	assert.False(t, ok)

	assertApply(t, m, len(entries), config.AllCollections, "")
}

func TestModelCopiesSource(t *testing.T) {
	test.NewApp()

	src := []string{"fyne:search"}
	m, err := NewModel(src)
	require.NoError(t, err)
	src[0] = "fyne:changed"

	v, ok := m.At(0)
	require.True(t, ok)
	assert.Equal(t, "fyne:search", v)
}

func assertApply(t *testing.T, m *Model, want int, collection, term string) {
	t.Helper()
	n, err := m.Apply(collection, term)
	require.NoError(t, err)
	assert.Equal(t, want, n)
}

func TestModelNotifiesListeners(t *testing.T) {
	test.NewTempApp(t)

	m, err := NewModel(entries)
	require.NoError(t, err)

	var calls atomic.Int32
	m.Visible().AddListener(binding.NewDataListener(func() { calls.Add(1) }))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, 10*time.Millisecond)

	before := calls.Load()
	assertApply(t, m, 1, "material", "copy")
	assert.Eventually(t, func() bool { return calls.Load() > before }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, m.Visible().Length())
}
