package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color is one of the three colors a round can resolve to
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "RED"
	ColorGreen  Color = "GREEN"
	ColorViolet Color = "VIOLET"
)

// Colors lists the drawable colors in draw order
var Colors = []Color{ColorRed, ColorGreen, ColorViolet}

var titleCaser = cases.Title(language.English)

// ParseColor returns the color for s, or ErrInvalidColor
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.Valid() {
		return ColorNone, ErrInvalidColor
	}
	return c, nil
}

// Valid reports whether c is one of the drawable colors
func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorGreen, ColorViolet:
		return true
	}
	return false
}

// IsSet reports whether a color has been chosen
func (c Color) IsSet() bool {
	return c != ColorNone
}

// DisplayName returns the human readable name ("Red", "Green", "Violet")
func (c Color) DisplayName() string {
	if !c.IsSet() {
		return "-"
	}
	return titleCaser.String(string(c))
}

func (c Color) String() string {
	return string(c)
}
