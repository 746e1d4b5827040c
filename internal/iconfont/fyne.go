package iconfont

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FyneCollectionName is the name of the Fyne theme icon collection.
const FyneCollectionName = "fyne"

type fyneIcon struct {
	name  fyne.ThemeIconName
	ident string
}

var fyneIcons = []fyneIcon{
	{theme.IconNameAccount, "IconNameAccount"},
	{theme.IconNameArrowDropDown, "IconNameArrowDropDown"},
	{theme.IconNameArrowDropUp, "IconNameArrowDropUp"},
	{theme.IconNameBrokenImage, "IconNameBrokenImage"},
	{theme.IconNameCancel, "IconNameCancel"},
	{theme.IconNameCheckButton, "IconNameCheckButton"},
	{theme.IconNameCheckButtonChecked, "IconNameCheckButtonChecked"},
	{theme.IconNameColorAchromatic, "IconNameColorAchromatic"},
	{theme.IconNameColorChromatic, "IconNameColorChromatic"},
	{theme.IconNameColorPalette, "IconNameColorPalette"},
	{theme.IconNameComputer, "IconNameComputer"},
	{theme.IconNameConfirm, "IconNameConfirm"},
	{theme.IconNameContentAdd, "IconNameContentAdd"},
	{theme.IconNameContentClear, "IconNameContentClear"},
	{theme.IconNameContentCopy, "IconNameContentCopy"},
	{theme.IconNameContentCut, "IconNameContentCut"},
	{theme.IconNameContentPaste, "IconNameContentPaste"},
	{theme.IconNameContentRedo, "IconNameContentRedo"},
	{theme.IconNameContentRemove, "IconNameContentRemove"},
	{theme.IconNameContentUndo, "IconNameContentUndo"},
	{theme.IconNameDelete, "IconNameDelete"},
	{theme.IconNameDesktop, "IconNameDesktop"},
	{theme.IconNameDocument, "IconNameDocument"},
	{theme.IconNameDocumentCreate, "IconNameDocumentCreate"},
	{theme.IconNameDocumentPrint, "IconNameDocumentPrint"},
	{theme.IconNameDocumentSave, "IconNameDocumentSave"},
	{theme.IconNameDownload, "IconNameDownload"},
	{theme.IconNameDragCornerIndicator, "IconNameDragCornerIndicator"},
	{theme.IconNameError, "IconNameError"},
	{theme.IconNameFile, "IconNameFile"},
	{theme.IconNameFileApplication, "IconNameFileApplication"},
	{theme.IconNameFileAudio, "IconNameFileAudio"},
	{theme.IconNameFileImage, "IconNameFileImage"},
	{theme.IconNameFileText, "IconNameFileText"},
	{theme.IconNameFileVideo, "IconNameFileVideo"},
	{theme.IconNameFolder, "IconNameFolder"},
	{theme.IconNameFolderNew, "IconNameFolderNew"},
	{theme.IconNameFolderOpen, "IconNameFolderOpen"},
	{theme.IconNameGrid, "IconNameGrid"},
	{theme.IconNameHelp, "IconNameHelp"},
	{theme.IconNameHistory, "IconNameHistory"},
	{theme.IconNameHome, "IconNameHome"},
	{theme.IconNameInfo, "IconNameInfo"},
	{theme.IconNameList, "IconNameList"},
	{theme.IconNameMailAttachment, "IconNameMailAttachment"},
	{theme.IconNameMailCompose, "IconNameMailCompose"},
	{theme.IconNameMailForward, "IconNameMailForward"},
	{theme.IconNameMailReply, "IconNameMailReply"},
	{theme.IconNameMailReplyAll, "IconNameMailReplyAll"},
	{theme.IconNameMailSend, "IconNameMailSend"},
	{theme.IconNameMediaFastForward, "IconNameMediaFastForward"},
	{theme.IconNameMediaFastRewind, "IconNameMediaFastRewind"},
	{theme.IconNameMediaMusic, "IconNameMediaMusic"},
	{theme.IconNameMediaPause, "IconNameMediaPause"},
	{theme.IconNameMediaPhoto, "IconNameMediaPhoto"},
	{theme.IconNameMediaPlay, "IconNameMediaPlay"},
	{theme.IconNameMediaRecord, "IconNameMediaRecord"},
	{theme.IconNameMediaReplay, "IconNameMediaReplay"},
	{theme.IconNameMediaSkipNext, "IconNameMediaSkipNext"},
	{theme.IconNameMediaSkipPrevious, "IconNameMediaSkipPrevious"},
	{theme.IconNameMediaStop, "IconNameMediaStop"},
	{theme.IconNameMediaVideo, "IconNameMediaVideo"},
	{theme.IconNameMenu, "IconNameMenu"},
	{theme.IconNameMenuExpand, "IconNameMenuExpand"},
	{theme.IconNameMoveDown, "IconNameMoveDown"},
	{theme.IconNameMoveUp, "IconNameMoveUp"},
	{theme.IconNameNavigateBack, "IconNameNavigateBack"},
	{theme.IconNameNavigateNext, "IconNameNavigateNext"},
	{theme.IconNameQuestion, "IconNameQuestion"},
	{theme.IconNameRadioButton, "IconNameRadioButton"},
	{theme.IconNameRadioButtonChecked, "IconNameRadioButtonChecked"},
	{theme.IconNameSearch, "IconNameSearch"},
	{theme.IconNameSearchReplace, "IconNameSearchReplace"},
	{theme.IconNameSettings, "IconNameSettings"},
	{theme.IconNameStorage, "IconNameStorage"},
	{theme.IconNameUpload, "IconNameUpload"},
	{theme.IconNameViewFullScreen, "IconNameViewFullScreen"},
	{theme.IconNameViewRefresh, "IconNameViewRefresh"},
	{theme.IconNameViewRestore, "IconNameViewRestore"},
	{theme.IconNameViewZoomFit, "IconNameViewZoomFit"},
	{theme.IconNameViewZoomIn, "IconNameViewZoomIn"},
	{theme.IconNameViewZoomOut, "IconNameViewZoomOut"},
	{theme.IconNameVisibility, "IconNameVisibility"},
	{theme.IconNameVisibilityOff, "IconNameVisibilityOff"},
	{theme.IconNameVolumeDown, "IconNameVolumeDown"},
	{theme.IconNameVolumeMute, "IconNameVolumeMute"},
	{theme.IconNameVolumeUp, "IconNameVolumeUp"},
	{theme.IconNameWarning, "IconNameWarning"},
}

// FyneCollection exposes the icons of the current Fyne theme.
type FyneCollection struct {
	glyphIndex
}

// NewFyneCollection creates the Fyne theme icon collection.
func NewFyneCollection() *FyneCollection {
	glyphs := make([]Glyph, 0, len(fyneIcons))
	for _, icon := range fyneIcons {
		glyphs = append(glyphs, Glyph{Name: string(icon.name), Ident: icon.ident})
	}
	return &FyneCollection{glyphIndex: newGlyphIndex(glyphs)}
}

func (c *FyneCollection) Name() string { return FyneCollectionName }

func (c *FyneCollection) Imports() []string { return []string{"fyne.io/fyne/v2/theme"} }

// Code assigns the themed fyne.Resource of g to name.
func (c *FyneCollection) Code(g Glyph, name string) string {
	return fmt.Sprintf("%s := theme.Icon(theme.%s)\n", name, g.Ident)
}

// Resource returns the icon from the current theme, so it follows the active variant.
func (c *FyneCollection) Resource(name string) (fyne.Resource, error) {
	if _, ok := c.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownGlyph, name, FyneCollectionName)
	}
	res := theme.Current().Icon(fyne.ThemeIconName(name))
	if res == nil {
		return nil, fmt.Errorf("theme has no icon %q", name)
	}
	return res, nil
}
