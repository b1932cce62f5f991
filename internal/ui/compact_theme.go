package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is the set of colors shared by widgets and rendered charts
type Palette struct {
	Background color.RGBA
	Button     color.RGBA
	Foreground color.RGBA
	Grid       color.RGBA
}

var (
	// LightPalette: snow2 background, grey80 buttons, black text
	LightPalette = Palette{
		Background: color.RGBA{R: 238, G: 233, B: 233, A: 255},
		Button:     color.RGBA{R: 204, G: 204, B: 204, A: 255},
		Foreground: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Grid:       color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}

	// DarkPalette: gray20 background, grey30 buttons, khaki1 text
	DarkPalette = Palette{
		Background: color.RGBA{R: 51, G: 51, B: 51, A: 255},
		Button:     color.RGBA{R: 77, G: 77, B: 77, A: 255},
		Foreground: color.RGBA{R: 255, G: 246, B: 143, A: 255},
		Grid:       color.RGBA{R: 110, G: 110, B: 110, A: 255},
	}
)

// PaletteFor returns the dark or light palette
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// CompactTheme defines a compact theme with reduced padding and font sizes.
// Colors follow the dark mode toggle rather than the system variant.
type CompactTheme struct {
	dark bool
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme(dark bool) fyne.Theme {
	return &CompactTheme{dark: dark}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	p := PaletteFor(t.dark)
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return p.Background
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameHeaderBackground:
		return p.Button
	case theme.ColorNameForeground:
		return p.Foreground
	case theme.ColorNameSeparator:
		return p.Grid
	}

	// Use default colors for everything else
	v := theme.VariantLight
	if t.dark {
		v = theme.VariantDark
	}
	return theme.DefaultTheme().Color(name, v)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
