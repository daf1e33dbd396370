package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/chordsense/chord-trainer/internal/config"
)

// Palette
var (
	ColorPrimary        = color.NRGBA{R: 0, G: 123, B: 255, A: 255}
	ColorPrimaryMuted   = color.NRGBA{R: 124, G: 181, B: 242, A: 255}
	ColorCorrect        = color.NRGBA{R: 40, G: 167, B: 69, A: 255}
	ColorWrong          = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	ColorOptionLight    = color.NRGBA{R: 221, G: 221, B: 221, A: 255}
	ColorOptionDark     = color.NRGBA{R: 68, G: 68, B: 68, A: 255}
	ColorBackgroundDark = color.NRGBA{R: 34, G: 34, B: 34, A: 255}
	ColorTextDark       = color.NRGBA{R: 221, G: 221, B: 221, A: 255}
	ColorTextLight      = color.NRGBA{R: 51, G: 51, B: 51, A: 255}
)

// ChordTheme renders the app in a fixed light or dark variant chosen by the
// user, ignoring the variant Fyne asks for
type ChordTheme struct {
	name    config.ThemeName
	variant fyne.ThemeVariant
}

// NewChordTheme creates the theme for a saved theme name
func NewChordTheme(name config.ThemeName) *ChordTheme {
	variant := theme.VariantLight
	if name == config.ThemeDark {
		variant = theme.VariantDark
	}
	return &ChordTheme{name: name, variant: variant}
}

// Name returns the theme name this theme was built for
func (t *ChordTheme) Name() config.ThemeName {
	return t.name
}

// IsDark reports whether the dark variant is in use
func (t *ChordTheme) IsDark() bool {
	return t.variant == theme.VariantDark
}

// Color returns theme colors
func (t *ChordTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorCorrect
	case theme.ColorNameError:
		return ColorWrong
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameDisabledButton:
		return ColorPrimaryMuted
	case theme.ColorNameButton:
		if t.IsDark() {
			return ColorOptionDark
		}
		return ColorOptionLight
	case theme.ColorNameBackground:
		if t.IsDark() {
			return ColorBackgroundDark
		}
		return color.White
	case theme.ColorNameForeground:
		if t.IsDark() {
			return ColorTextDark
		}
		return ColorTextLight
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *ChordTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ChordTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with larger text for touch screens
func (t *ChordTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16 // Up from default 14
	case theme.SizeNameHeadingText:
		return 22 // Down from default 24
	case theme.SizeNameInputRadius:
		return 8 // Rounded option buttons
	case theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
