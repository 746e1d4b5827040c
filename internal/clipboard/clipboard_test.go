package clipboard

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/icon-browser/internal/iconfont"
	"github.com/Akaiko1/icon-browser/internal/logging"
	"github.com/Akaiko1/icon-browser/internal/renderer"
)

type recorder struct {
	content string
	err     error
}

func (r *recorder) SetContent(content string) error {
	if r.err != nil {
		return r.err
	}
	r.content = content
	return nil
}

func newCopier(cb ClipboardManager) *IconCopier {
	return NewIconCopier(cb, renderer.NewGoSnippetRenderer(iconfont.Default()), logging.Discard())
}

func TestFyneClipboardManager(t *testing.T) {
	a := test.NewApp()

	m := NewFyneClipboardManager(a.Clipboard())
	require.NoError(t, m.SetContent("fyne:search"))
	assert.Equal(t, "fyne:search", a.Clipboard().Content())

	assert.Error(t, NewFyneClipboardManager(nil).SetContent("x"))
}

func TestCopyName(t *testing.T) {
	rec := &recorder{}
	c := newCopier(rec)

	require.NoError(t, c.CopyName("material:content_copy"))
	assert.Equal(t, "material:content_copy", rec.content)

	assert.ErrorIs(t, c.CopyName("content_copy"), iconfont.ErrInvalidIconString)
}

func TestCopySnippet(t *testing.T) {
	rec := &recorder{}
	c := newCopier(rec)

	require.NoError(t, c.CopySnippet("fyne:search"))
	assert.Contains(t, rec.content, `import "fyne.io/fyne/v2/theme"`)
	assert.Contains(t, rec.content, "searchIcon := theme.Icon(theme.IconNameSearch)")

	assert.ErrorIs(t, c.CopySnippet("fyne:nope"), iconfont.ErrUnknownGlyph)
}

func TestCopyPropagatesClipboardError(t *testing.T) {
	boom := errors.New("boom")
	c := newCopier(&recorder{err: boom})

	assert.ErrorIs(t, c.CopyName("fyne:search"), boom)
	assert.ErrorIs(t, c.CopySnippet("fyne:search"), boom)
}
