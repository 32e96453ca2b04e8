package ui

import (
	lipgloss "github.com/charmbracelet/lipgloss"
)

// Lipgloss Color Names - Tokyo Night Theme Hex Values
const (
	LipglossRed     = "#f7768e"
	LipglossGreen   = "#9ece6a"
	LipglossBlue    = "#7aa2f7"
	LipglossMagenta = "#bb9af7"
	LipglossWhite   = "#a9b1d6"
	LipglossGray    = "#565f89"
	LipglossAmber   = "#e0af68"
)

// Predefined colors for consistent terminal output
var (
	HeaderColor  = lipgloss.Color(LipglossBlue)
	TextColor    = lipgloss.Color(LipglossWhite)
	SuccessColor = lipgloss.Color(LipglossGreen)
	WarningColor = lipgloss.Color(LipglossAmber)
	ErrorColor   = lipgloss.Color(LipglossRed)
	DimColor     = lipgloss.Color(LipglossGray)
	AccentColor  = lipgloss.Color(LipglossMagenta)
)

// Level classifies a report line
type Level int

const (
	LevelOK Level = iota
	LevelWarn
	LevelError
	LevelInfo
)

// Styles contains the lipgloss styles used by command output
type Styles struct {
	Header lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Dim    lipgloss.Style
	OK     lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
	Info   lipgloss.Style
}

// NewStyles creates the command output styles
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(HeaderColor).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(TextColor).
			Width(14),
		Value: lipgloss.NewStyle().
			Foreground(TextColor),
		Dim: lipgloss.NewStyle().
			Foreground(DimColor),
		OK: lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Warn: lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(AccentColor),
	}
}

// Mark returns the status glyph for a level
func (s *Styles) Mark(level Level) string {
	switch level {
	case LevelOK:
		return s.OK.Render("✓")
	case LevelWarn:
		return s.Warn.Render("!")
	case LevelError:
		return s.Error.Render("✗")
	default:
		return s.Info.Render("•")
	}
}

// Line renders "<mark> <key> <value>" with an optional dimmed detail
func (s *Styles) Line(level Level, key, value, detail string) string {
	line := s.Mark(level) + " " + s.Key.Render(key) + s.Value.Render(value)
	if detail != "" {
		line += " " + s.Dim.Render("("+detail+")")
	}
	return line
}
