package console

import (
	"iter"
	"strings"
)

// Console is a fixed-size ring of text rows backed by one flat buffer.
// Rows are exactly cols bytes, NUL-padded. It is not safe for concurrent use.
type Console struct {
	rows     int
	cols     int
	buf      []byte
	writePos int
}

// New creates a console with the given dimensions; non-positive dimensions yield an inert console
func New(rows, cols int) *Console {
	if rows <= 0 || cols <= 0 {
		return &Console{}
	}

	return &Console{
		rows: rows,
		cols: cols,
		buf:  make([]byte, rows*cols),
	}
}

// NewForViewport sizes a console to fill a viewport with fixed glyph cells
func NewForViewport(width, height, glyphWidth, glyphHeight int) *Console {
	if glyphWidth <= 0 || glyphHeight <= 0 {
		return New(0, 0)
	}

	return New(height/glyphHeight, width/glyphWidth)
}

// Rows returns the number of rows
func (c *Console) Rows() int {
	return c.rows
}

// Cols returns the row width in bytes
func (c *Console) Cols() int {
	return c.cols
}

// AppendLine writes text into the next row, truncating to cols, and advances the cursor
func (c *Console) AppendLine(text string) {
	if c.rows == 0 {
		return
	}

	c.writeRow(c.writePos, text)
	c.writePos = (c.writePos + 1) % c.rows
}

// ReplaceLastLine overwrites the most recently written row without advancing the cursor
func (c *Console) ReplaceLastLine(text string) {
	if c.rows == 0 {
		return
	}

	c.writeRow((c.writePos-1+c.rows)%c.rows, text)
}

// Snapshot yields every row oldest first
func (c *Console) Snapshot() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < c.rows; i++ {
			row := (c.writePos + i) % c.rows
			if !yield(string(c.buf[row*c.cols : (row+1)*c.cols])) {
				return
			}
		}
	}
}

// Reset clears all rows and rewinds the cursor
func (c *Console) Reset() {
	clear(c.buf)
	c.writePos = 0
}

func (c *Console) writeRow(row int, text string) {
	dst := c.buf[row*c.cols : (row+1)*c.cols]
	n := copy(dst, text)
	clear(dst[n:])
}

// Trim returns the printable part of a row, up to the first NUL
func Trim(row string) string {
	if i := strings.IndexByte(row, 0); i >= 0 {
		return row[:i]
	}

	return row
}
