package theme

import "github.com/charmbracelet/lipgloss"

// palette is the fixed, ordered set of colors the settings screen steps
// through. Cycling wraps at both ends.
var palette = []string{
	"white",
	"cyan",
	"red",
	"green",
	"blue",
	"yellow",
	"gray",
	"darkgray",
	"black",
}

// ansi terminal color for each palette entry
var ansiCodes = map[string]lipgloss.Color{
	"white":    lipgloss.Color("15"),
	"cyan":     lipgloss.Color("6"),
	"red":      lipgloss.Color("1"),
	"green":    lipgloss.Color("2"),
	"blue":     lipgloss.Color("4"),
	"yellow":   lipgloss.Color("3"),
	"gray":     lipgloss.Color("7"),
	"darkgray": lipgloss.Color("8"),
	"black":    lipgloss.Color("0"),
}

var displayNames = map[string]string{
	"white":    "White",
	"cyan":     "Cyan",
	"red":      "Red",
	"green":    "Green",
	"blue":     "Blue",
	"yellow":   "Yellow",
	"gray":     "Gray",
	"darkgray": "Dark gray",
	"black":    "Black",
}

func paletteIndex(name string) int {
	for i, c := range palette {
		if c == name {
			return i
		}
	}
	return -1
}

// NextColor steps forward through the palette, wrapping at the end.
// Unknown names reset to the first palette entry.
func NextColor(name string) string {
	idx := paletteIndex(name)
	if idx < 0 {
		return palette[0]
	}
	return palette[(idx+1)%len(palette)]
}

// PrevColor steps backward through the palette, wrapping at the start.
func PrevColor(name string) string {
	idx := paletteIndex(name)
	if idx < 0 {
		return palette[0]
	}
	return palette[(idx+len(palette)-1)%len(palette)]
}

// DisplayName returns the label shown on the settings screen.
func DisplayName(name string) string {
	if label, ok := displayNames[name]; ok {
		return label
	}
	return "Unknown"
}

// Color resolves a palette name to its terminal color.
func Color(name string) lipgloss.Color {
	if c, ok := ansiCodes[name]; ok {
		return c
	}
	return ansiCodes["white"]
}
