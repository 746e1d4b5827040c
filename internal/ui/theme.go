package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/Akaiko1/icon-browser/internal/config"
)

// variantTheme forces the light or dark variant of the wrapped theme.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// themeForStyle maps a style name to a theme. Unknown styles follow the system.
func themeForStyle(style string) fyne.Theme {
	switch style {
	case config.StyleLight:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight}
	case config.StyleDark:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark}
	default:
		return theme.DefaultTheme()
	}
}
