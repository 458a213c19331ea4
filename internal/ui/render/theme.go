package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderFg    tcell.Color
	DimFg       tcell.Color
	HighlightFg tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	CreateFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderFg:    tcell.ColorYellow,
		DimFg:       tcell.ColorLightSlateGray,
		HighlightFg: tcell.ColorYellow,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		CreateFg:    tcell.Color33,
	}
}
