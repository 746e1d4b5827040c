package clipboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"

	"github.com/Akaiko1/icon-browser/internal/iconfont"
	"github.com/Akaiko1/icon-browser/internal/renderer"
)

// ClipboardManager defines the interface for clipboard operations.
type ClipboardManager interface {
	SetContent(content string) error
}

// FyneClipboardManager implements ClipboardManager using Fyne's clipboard.
type FyneClipboardManager struct {
	clipboard fyne.Clipboard
}

// NewFyneClipboardManager creates a new FyneClipboardManager.
func NewFyneClipboardManager(clipboard fyne.Clipboard) *FyneClipboardManager {
	return &FyneClipboardManager{clipboard: clipboard}
}

// SetContent sets the clipboard content.
func (c *FyneClipboardManager) SetContent(content string) error {
	if c.clipboard == nil {
		return fmt.Errorf("clipboard is not available")
	}
	c.clipboard.SetContent(content)
	return nil
}

// IconCopier copies icon identifiers or usage snippets to the clipboard.
type IconCopier struct {
	clipboard ClipboardManager
	snippets  renderer.SnippetRenderer
	logger    *log.Logger
}

// NewIconCopier creates an IconCopier.
func NewIconCopier(cb ClipboardManager, snippets renderer.SnippetRenderer, logger *log.Logger) *IconCopier {
	return &IconCopier{clipboard: cb, snippets: snippets, logger: logger}
}

// CopyName copies the full "collection:glyph" identifier.
func (c *IconCopier) CopyName(iconString string) error {
	if _, _, err := iconfont.ParseIconString(iconString); err != nil {
		return err
	}
	if err := c.clipboard.SetContent(iconString); err != nil {
		return err
	}
	c.logger.Info("copied icon name", "icon", iconString)
	return nil
}

// CopySnippet copies Go code that instantiates the icon.
func (c *IconCopier) CopySnippet(iconString string) error {
	code, err := c.snippets.RenderSnippet(iconString)
	if err != nil {
		return err
	}
	if err := c.clipboard.SetContent(code); err != nil {
		return err
	}
	c.logger.Info("copied icon code", "icon", iconString)
	return nil
}
