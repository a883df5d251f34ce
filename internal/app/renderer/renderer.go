package renderer

//go:generate mockgen -source=renderer.go -destination=renderer_mock.go -package=renderer

import (
	"iter"

	"bootsplash/internal/app/decoder"
)

// Renderer draws into a back buffer and presents it
type Renderer interface {
	// Size returns the viewport in pixels
	Size() (width, height int)
	Clear() error
	DrawImage(img *decoder.Image, x, y int) error
	// DrawConsole draws console rows top to bottom, one glyph row each
	DrawConsole(rows iter.Seq[string]) error
	Present() error
	Close() error
}
