package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants.
const (
	inputChromeWidth = 8  // border, padding, prompt around the text input
	seqColumnWidth   = 12 // glyph + canonical alias column
)

// Colors adapt to light/dark terminals. One color per shortcut kind:
// app red, dir green, file yellow, url blue.
var (
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5f5f"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#5fff5f"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff5f"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
)

var (
	styleInputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	styleAppGlyph  = lipgloss.NewStyle().Foreground(colorRed)
	styleAppSeq    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleDirGlyph  = lipgloss.NewStyle().Foreground(colorGreen)
	styleDirSeq    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleFileGlyph = lipgloss.NewStyle().Foreground(colorYellow)
	styleFileSeq   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleUrlGlyph  = lipgloss.NewStyle().Foreground(colorBlue)
	styleUrlSeq    = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	stylePrefix = lipgloss.NewStyle().Underline(true)
	styleDetail = lipgloss.NewStyle()
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
	styleStatus = lipgloss.NewStyle().Foreground(colorGray)
	styleHelp   = lipgloss.NewStyle().Foreground(colorGray)
)
