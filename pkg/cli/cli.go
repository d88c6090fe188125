// Package cli provides terminal presentation helpers for the karaoke
// command-line tools: a lipgloss color theme, score rendering, and
// structured output in YAML or JSON.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Dim     lipgloss.Color // Dimmed/help text color
	Warn    lipgloss.Color // Low-score highlight color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	Warn:    lipgloss.Color("#f85149"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Help  lipgloss.Style
	Warn  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Bold(true),
		Value: lipgloss.NewStyle().Foreground(t.Primary),
		Help:  lipgloss.NewStyle().Foreground(t.Dim),
		Warn:  lipgloss.NewStyle().Bold(true).Foreground(t.Warn),
	}
}

// scoreBarWidth is the character width of the score gauge.
const scoreBarWidth = 40

// RenderScore renders a score out of maxScore as a styled gauge line.
func (s Styles) RenderScore(score, maxScore int) string {
	if maxScore <= 0 {
		maxScore = 1
	}
	filled := score * scoreBarWidth / maxScore
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)

	style := s.Value
	if score*2 < maxScore {
		style = s.Warn
	}
	return fmt.Sprintf("%s %s / %d",
		style.Render(bar),
		style.Render(fmt.Sprintf("%d", score)),
		maxScore)
}

// RenderKV renders an aligned label/value listing.
func (s Styles) RenderKV(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%s  %s\n",
			s.Label.Render(fmt.Sprintf("%-*s", width, p[0])),
			p[1])
	}
	return b.String()
}

// PrintSuccess prints a success message with checkmark.
func PrintSuccess(format string, args ...any) {
	fmt.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
