package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board colours.
const (
	boardBG   = lipgloss.Color("#333333")
	snakeFG   = lipgloss.Color("#CCCCCC")
	headFG    = lipgloss.Color("#FFFFFF")
	foodFG    = lipgloss.Color("#FFB3B3")
	borderFG  = lipgloss.Color("240")
	hudFG     = lipgloss.Color("229")
	overlayBG = lipgloss.Color("236")
)

// Palette maps cell roles to terminal styles.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette returns the standard board colours.
func DefaultPalette() Palette {
	return Palette{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorBoard:     lipgloss.NewStyle().Background(boardBG),
		core.ColorBorder:    lipgloss.NewStyle().Foreground(borderFG),
		core.ColorSnake:     lipgloss.NewStyle().Foreground(snakeFG).Background(boardBG),
		core.ColorSnakeHead: lipgloss.NewStyle().Foreground(headFG).Background(boardBG),
		core.ColorFood:      lipgloss.NewStyle().Foreground(foodFG).Background(boardBG),
		core.ColorHUD:       lipgloss.NewStyle().Foreground(hudFG).Bold(true),
		core.ColorOverlay:   lipgloss.NewStyle().Foreground(hudFG).Background(overlayBG).Bold(true),
	}
}

// style returns the style for c, falling back to the default style.
func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// Render converts a screen buffer to a styled string.
// Adjacent cells sharing a role are styled as one span to keep escape codes down.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			role := s.GetCell(x, y).Color
			span.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				span.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(role).Render(span.String()))
		}
	}
	return sb.String()
}
