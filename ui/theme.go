package ui

import "github.com/gdamore/tcell/v2"

// Colors - night sky palette
var (
	ColorBg        = tcell.NewRGBColor(16, 12, 48)    // Deep night blue
	ColorPanel     = tcell.NewRGBColor(28, 22, 64)    // Panel background
	ColorFg        = tcell.NewRGBColor(208, 208, 224) // Soft gray text
	ColorBorder    = tcell.NewRGBColor(138, 106, 216) // Violet borders
	ColorTitle     = tcell.NewRGBColor(255, 255, 255) // White titles
	ColorHighlight = tcell.NewRGBColor(255, 215, 0)   // Gold highlight
	ColorButton    = tcell.NewRGBColor(88, 66, 160)   // Button background
	ColorUser      = tcell.NewRGBColor(255, 255, 255) // Outgoing messages
	ColorOracle    = tcell.NewRGBColor(189, 147, 249) // AI messages
)
