package iconfont

import "golang.org/x/exp/shiny/materialdesign/icons"

type materialIcon struct {
	ident string
	data  []byte
}

var materialIcons = []materialIcon{
	{"ActionAccessibility", icons.ActionAccessibility},
	{"ActionAccountBalance", icons.ActionAccountBalance},
	{"ActionAccountBox", icons.ActionAccountBox},
	{"ActionAccountCircle", icons.ActionAccountCircle},
	{"ActionAlarm", icons.ActionAlarm},
	{"ActionAndroid", icons.ActionAndroid},
	{"ActionAutorenew", icons.ActionAutorenew},
	{"ActionBookmark", icons.ActionBookmark},
	{"ActionBookmarkBorder", icons.ActionBookmarkBorder},
	{"ActionBugReport", icons.ActionBugReport},
	{"ActionBuild", icons.ActionBuild},
	{"ActionCached", icons.ActionCached},
	{"ActionCode", icons.ActionCode},
	{"ActionDashboard", icons.ActionDashboard},
	{"ActionDelete", icons.ActionDelete},
	{"ActionDescription", icons.ActionDescription},
	{"ActionDone", icons.ActionDone},
	{"ActionDoneAll", icons.ActionDoneAll},
	{"ActionEvent", icons.ActionEvent},
	{"ActionExitToApp", icons.ActionExitToApp},
	{"ActionExtension", icons.ActionExtension},
	{"ActionFace", icons.ActionFace},
	{"ActionFavorite", icons.ActionFavorite},
	{"ActionFavoriteBorder", icons.ActionFavoriteBorder},
	{"ActionFeedback", icons.ActionFeedback},
	{"ActionFingerprint", icons.ActionFingerprint},
	{"ActionGrade", icons.ActionGrade},
	{"ActionHelp", icons.ActionHelp},
	{"ActionHistory", icons.ActionHistory},
	{"ActionHome", icons.ActionHome},
	{"ActionInfo", icons.ActionInfo},
	{"ActionInfoOutline", icons.ActionInfoOutline},
	{"ActionLabel", icons.ActionLabel},
	{"ActionLanguage", icons.ActionLanguage},
	{"ActionLaunch", icons.ActionLaunch},
	{"ActionList", icons.ActionList},
	{"ActionLock", icons.ActionLock},
	{"ActionLockOpen", icons.ActionLockOpen},
	{"ActionOpenInNew", icons.ActionOpenInNew},
	{"ActionPowerSettingsNew", icons.ActionPowerSettingsNew},
	{"ActionPrint", icons.ActionPrint},
	{"ActionSchedule", icons.ActionSchedule},
	{"ActionSearch", icons.ActionSearch},
	{"ActionSettings", icons.ActionSettings},
	{"ActionShoppingCart", icons.ActionShoppingCart},
	{"ActionThumbDown", icons.ActionThumbDown},
	{"ActionThumbUp", icons.ActionThumbUp},
	{"ActionTouchApp", icons.ActionTouchApp},
	{"ActionTrendingUp", icons.ActionTrendingUp},
	{"ActionVisibility", icons.ActionVisibility},
	{"ActionVisibilityOff", icons.ActionVisibilityOff},
	{"ActionZoomIn", icons.ActionZoomIn},
	{"ActionZoomOut", icons.ActionZoomOut},
	{"AlertError", icons.AlertError},
	{"AlertErrorOutline", icons.AlertErrorOutline},
	{"AlertWarning", icons.AlertWarning},
	{"AVMic", icons.AVMic},
	{"AVPause", icons.AVPause},
	{"AVPlayArrow", icons.AVPlayArrow},
	{"AVRepeat", icons.AVRepeat},
	{"AVShuffle", icons.AVShuffle},
	{"AVSkipNext", icons.AVSkipNext},
	{"AVSkipPrevious", icons.AVSkipPrevious},
	{"AVStop", icons.AVStop},
	{"AVVolumeOff", icons.AVVolumeOff},
	{"AVVolumeUp", icons.AVVolumeUp},
	{"CommunicationCall", icons.CommunicationCall},
	{"CommunicationChat", icons.CommunicationChat},
	{"CommunicationEmail", icons.CommunicationEmail},
	{"CommunicationMessage", icons.CommunicationMessage},
	{"ContentAdd", icons.ContentAdd},
	{"ContentAddBox", icons.ContentAddBox},
	{"ContentAddCircle", icons.ContentAddCircle},
	{"ContentArchive", icons.ContentArchive},
	{"ContentBlock", icons.ContentBlock},
	{"ContentClear", icons.ContentClear},
	{"ContentContentCopy", icons.ContentContentCopy},
	{"ContentContentCut", icons.ContentContentCut},
	{"ContentContentPaste", icons.ContentContentPaste},
	{"ContentCreate", icons.ContentCreate},
	{"ContentDrafts", icons.ContentDrafts},
	{"ContentFilterList", icons.ContentFilterList},
	{"ContentFlag", icons.ContentFlag},
	{"ContentInbox", icons.ContentInbox},
	{"ContentLink", icons.ContentLink},
	{"ContentMail", icons.ContentMail},
	{"ContentRedo", icons.ContentRedo},
	{"ContentRemove", icons.ContentRemove},
	{"ContentReply", icons.ContentReply},
	{"ContentSave", icons.ContentSave},
	{"ContentSend", icons.ContentSend},
	{"ContentSort", icons.ContentSort},
	{"ContentUndo", icons.ContentUndo},
	{"DeviceBatteryFull", icons.DeviceBatteryFull},
	{"DeviceBluetooth", icons.DeviceBluetooth},
	{"DeviceBrightnessHigh", icons.DeviceBrightnessHigh},
	{"DeviceStorage", icons.DeviceStorage},
	{"EditorAttachFile", icons.EditorAttachFile},
	{"EditorFormatBold", icons.EditorFormatBold},
	{"EditorFormatItalic", icons.EditorFormatItalic},
	{"EditorFormatListBulleted", icons.EditorFormatListBulleted},
	{"EditorFormatQuote", icons.EditorFormatQuote},
	{"EditorFunctions", icons.EditorFunctions},
	{"EditorInsertDriveFile", icons.EditorInsertDriveFile},
	{"EditorInsertPhoto", icons.EditorInsertPhoto},
	{"EditorModeEdit", icons.EditorModeEdit},
	{"FileAttachment", icons.FileAttachment},
	{"FileCloud", icons.FileCloud},
	{"FileCloudDownload", icons.FileCloudDownload},
	{"FileCloudUpload", icons.FileCloudUpload},
	{"FileCreateNewFolder", icons.FileCreateNewFolder},
	{"FileFileDownload", icons.FileFileDownload},
	{"FileFileUpload", icons.FileFileUpload},
	{"FileFolder", icons.FileFolder},
	{"FileFolderOpen", icons.FileFolderOpen},
	{"HardwareComputer", icons.HardwareComputer},
	{"HardwareKeyboard", icons.HardwareKeyboard},
	{"HardwareMemory", icons.HardwareMemory},
	{"HardwareMouse", icons.HardwareMouse},
	{"HardwarePhoneAndroid", icons.HardwarePhoneAndroid},
	{"ImageBrush", icons.ImageBrush},
	{"ImageCameraAlt", icons.ImageCameraAlt},
	{"ImageCrop", icons.ImageCrop},
	{"ImageEdit", icons.ImageEdit},
	{"ImageImage", icons.ImageImage},
	{"ImagePalette", icons.ImagePalette},
	{"ImagePhoto", icons.ImagePhoto},
	{"ImageRotateRight", icons.ImageRotateRight},
	{"ImageTune", icons.ImageTune},
	{"MapsDirectionsCar", icons.MapsDirectionsCar},
	{"MapsLayers", icons.MapsLayers},
	{"MapsMap", icons.MapsMap},
	{"MapsMyLocation", icons.MapsMyLocation},
	{"MapsPlace", icons.MapsPlace},
	{"NavigationApps", icons.NavigationApps},
	{"NavigationArrowBack", icons.NavigationArrowBack},
	{"NavigationArrowDownward", icons.NavigationArrowDownward},
	{"NavigationArrowDropDown", icons.NavigationArrowDropDown},
	{"NavigationArrowForward", icons.NavigationArrowForward},
	{"NavigationArrowUpward", icons.NavigationArrowUpward},
	{"NavigationCancel", icons.NavigationCancel},
	{"NavigationCheck", icons.NavigationCheck},
	{"NavigationChevronLeft", icons.NavigationChevronLeft},
	{"NavigationChevronRight", icons.NavigationChevronRight},
	{"NavigationClose", icons.NavigationClose},
	{"NavigationExpandLess", icons.NavigationExpandLess},
	{"NavigationExpandMore", icons.NavigationExpandMore},
	{"NavigationFullscreen", icons.NavigationFullscreen},
	{"NavigationMenu", icons.NavigationMenu},
	{"NavigationMoreHoriz", icons.NavigationMoreHoriz},
	{"NavigationMoreVert", icons.NavigationMoreVert},
	{"NavigationRefresh", icons.NavigationRefresh},
	{"NotificationSync", icons.NotificationSync},
	{"SocialGroup", icons.SocialGroup},
	{"SocialNotifications", icons.SocialNotifications},
	{"SocialPerson", icons.SocialPerson},
	{"SocialPublic", icons.SocialPublic},
	{"SocialSchool", icons.SocialSchool},
	{"SocialShare", icons.SocialShare},
	{"ToggleCheckBox", icons.ToggleCheckBox},
	{"ToggleCheckBoxOutlineBlank", icons.ToggleCheckBoxOutlineBlank},
	{"ToggleRadioButtonChecked", icons.ToggleRadioButtonChecked},
	{"ToggleRadioButtonUnchecked", icons.ToggleRadioButtonUnchecked},
	{"ToggleStar", icons.ToggleStar},
	{"ToggleStarBorder", icons.ToggleStarBorder},
	{"ToggleStarHalf", icons.ToggleStarHalf},
}
