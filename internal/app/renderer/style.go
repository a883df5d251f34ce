package renderer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	halfBlock = "▀"
	blank     = " "
)

// Console text colors
var (
	FgConsole = lipgloss.Color("252") // Light gray - console rows
	BgConsole = lipgloss.Color("0")   // Black - console background
)

// ConsoleStyle renders console rows over the frame
var ConsoleStyle = lipgloss.NewStyle().
	Foreground(FgConsole).
	Background(BgConsole)

// rgb is a packed 24-bit color
type rgb uint32

func (c rgb) color() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", uint32(c)))
}

// maxCachedCells bounds the rendered cell cache
const maxCachedCells = 4096

// cellCache memoizes rendered half-block cells by their two colors
type cellCache map[[2]rgb]string

func (c cellCache) cell(top, bottom rgb) string {
	key := [2]rgb{top, bottom}
	if s, ok := c[key]; ok {
		return s
	}

	if len(c) >= maxCachedCells {
		clear(c)
	}

	s := lipgloss.NewStyle().
		Foreground(top.color()).
		Background(bottom.color()).
		Render(halfBlock)
	c[key] = s

	return s
}
