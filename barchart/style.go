package barchart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ansiColors maps color names to ANSI palette indices.
var ansiColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// defaultPalette is the fixed color cycle used when no styles are
// configured.
var defaultPalette = [...]string{
	"blue",
	"green",
	"yellow",
	"magenta",
	"cyan",
	"red",
	"bright_blue",
	"bright_green",
}

// paletteStyle returns the default style for the bar at index i.
func paletteStyle(i int) lipgloss.Style {
	return ParseStyle(defaultPalette[i%len(defaultPalette)])
}

// ParseStyle resolves a style token to a lipgloss style. Tokens are
// space-separated words: the modifiers "bold", "italic" and
// "underline", color names from the ANSI palette, or anything
// lipgloss.Color accepts directly ("105", "#ff79c6"). An empty token
// resolves to the zero style, which renders text unchanged.
func ParseStyle(token string) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, word := range strings.Fields(token) {
		switch word {
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		default:
			color := word
			if code, ok := ansiColors[word]; ok {
				color = code
			}
			style = style.Foreground(lipgloss.Color(color))
		}
	}
	return style
}
