package renderer

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"bootsplash/internal/app/console"
	"bootsplash/internal/app/decoder"
	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
)

// Fallback grid when the output is not a terminal and no display size is configured
const (
	defaultCols = 48
	defaultRows = 44
)

const (
	cursorHome = "\x1b[H"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearAll   = "\x1b[0m\x1b[2J\x1b[H"
)

// terminal renders frames as half-block cells, one cell per glyph
type terminal struct {
	out    io.Writer
	cols   int
	rows   int
	glyphW int
	glyphH int
	cells  [][]string
	text   []string
	cache  cellCache
	opened bool
}

// NewTerminal creates a renderer on stdout sized from the display config or the terminal
func NewTerminal(cfg *config.Config) Renderer {
	cols, rows := gridSize(cfg, os.Stdout)

	return newTerminal(os.Stdout, cols, rows, cfg.Console.GlyphWidth, cfg.Console.GlyphHeight)
}

func gridSize(cfg *config.Config, out *os.File) (int, int) {
	gw, gh := cfg.Console.GlyphWidth, cfg.Console.GlyphHeight

	if cfg.Display.Width > 0 && cfg.Display.Height > 0 {
		return cfg.Display.Width / gw, cfg.Display.Height / gh
	}

	cols, rows, err := term.GetSize(out.Fd())
	if err != nil || cols <= 0 || rows <= 1 {
		return defaultCols, defaultRows
	}

	// Keep the last line free so presenting never scrolls
	return cols, rows - 1
}

func newTerminal(out io.Writer, cols, rows, glyphW, glyphH int) *terminal {
	t := &terminal{
		out:    out,
		cols:   cols,
		rows:   rows,
		glyphW: glyphW,
		glyphH: glyphH,
		cells:  make([][]string, rows),
		text:   make([]string, rows),
		cache:  make(cellCache),
	}

	for i := range t.cells {
		t.cells[i] = make([]string, cols)
	}

	t.reset()

	return t
}

// Size returns the viewport in pixels
func (t *terminal) Size() (int, int) {
	return t.cols * t.glyphW, t.rows * t.glyphH
}

// Clear blanks the back buffer
func (t *terminal) Clear() error {
	t.reset()
	return nil
}

func (t *terminal) reset() {
	for _, row := range t.cells {
		for i := range row {
			row[i] = blank
		}
	}

	clear(t.text)
}

// DrawImage samples the image once per half cell and clips it to the viewport
func (t *terminal) DrawImage(img *decoder.Image, x, y int) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}

	bpp := decoder.BytesPerPixel(img.Format)
	if len(img.Pix) < img.Width*img.Height*bpp {
		return fmt.Errorf("%w: %dx%d image has %d bytes", errors.ErrDecodeFailed, img.Width, img.Height, len(img.Pix))
	}

	for cy := 0; cy < t.rows; cy++ {
		py := cy*t.glyphH - y
		if py+t.glyphH <= 0 || py >= img.Height {
			continue
		}

		for cx := 0; cx < t.cols; cx++ {
			px := cx*t.glyphW - x + t.glyphW/2
			if px < 0 || px >= img.Width {
				continue
			}

			top, topOK := sample(img, px, py+t.glyphH/4)
			bottom, bottomOK := sample(img, px, py+3*t.glyphH/4)

			if !topOK && !bottomOK {
				continue
			}

			t.cells[cy][cx] = t.cache.cell(top, bottom)
		}
	}

	return nil
}

// DrawConsole overlays console rows from the top of the viewport
func (t *terminal) DrawConsole(rows iter.Seq[string]) error {
	i := 0

	for row := range rows {
		if i >= t.rows {
			break
		}

		line := console.Trim(row)
		if len(line) > t.cols {
			line = line[:t.cols]
		}

		t.text[i] = line
		i++
	}

	return nil
}

// Present writes the back buffer over the previous frame
func (t *terminal) Present() error {
	var b strings.Builder

	if !t.opened {
		b.WriteString(hideCursor)
		b.WriteString(clearAll)
		t.opened = true
	}

	b.WriteString(cursorHome)

	for i, row := range t.cells {
		start := 0

		if text := t.text[i]; text != "" {
			b.WriteString(ConsoleStyle.Render(text))
			start = len(text)
		}

		for _, cell := range row[start:] {
			b.WriteString(cell)
		}

		if i < len(t.cells)-1 {
			b.WriteString("\r\n")
		}
	}

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPresentFailed, err)
	}

	return nil
}

// Close restores the terminal
func (t *terminal) Close() error {
	if !t.opened {
		return nil
	}

	t.opened = false

	_, err := io.WriteString(t.out, clearAll+showCursor)

	return err
}

// sample returns the pixel color at (x, y); transparent or out-of-range pixels report false
func sample(img *decoder.Image, x, y int) (rgb, bool) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0, false
	}

	switch img.Format {
	case decoder.FormatRGB565:
		i := (y*img.Width + x) * 2
		v := uint32(img.Pix[i]) | uint32(img.Pix[i+1])<<8
		r := (v >> 11 & 0x1f) << 3
		g := (v >> 5 & 0x3f) << 2
		b := (v & 0x1f) << 3

		return rgb(r<<16 | g<<8 | b), true
	default:
		i := (y*img.Width + x) * 4
		if img.Pix[i+3] == 0 {
			return 0, false
		}

		return rgb(uint32(img.Pix[i])<<16 | uint32(img.Pix[i+1])<<8 | uint32(img.Pix[i+2])), true
	}
}
