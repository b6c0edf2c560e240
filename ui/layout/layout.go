// Package layout maps board cells onto a pixel canvas. The canvas is split
// evenly into width x height tiles and every sprite is centered in its tile.
// Board Y grows upwards while screen Y grows downwards, so rows are flipped.
package layout

import (
	"errors"
	"fmt"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// ErrNoCanvas means there is no drawable surface to lay out on this frame.
var ErrNoCanvas = errors.New("no canvas")

type Layout struct {
	CanvasWidth  float32
	CanvasHeight float32
	TileWidth    float32
	TileHeight   float32
}

// Rect is a screen rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, Width, Height float32
}

// New computes the tile size for grid on a canvasW x canvasH surface.
func New(canvasW, canvasH int, grid types.Grid) (Layout, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return Layout{}, fmt.Errorf("%w: canvas %dx%d", ErrNoCanvas, canvasW, canvasH)
	}
	if grid.Width <= 0 || grid.Height <= 0 {
		return Layout{}, fmt.Errorf("layout: empty board %dx%d", grid.Width, grid.Height)
	}
	return Layout{
		CanvasWidth:  float32(canvasW),
		CanvasHeight: float32(canvasH),
		TileWidth:    float32(canvasW) / float32(grid.Width),
		TileHeight:   float32(canvasH) / float32(grid.Height),
	}, nil
}

// Center returns the pixel center of cell p.
func (l Layout) Center(p types.Point) (x, y float32) {
	x = (float32(p.X) + 0.5) * l.TileWidth
	y = l.CanvasHeight - (float32(p.Y)+0.5)*l.TileHeight
	return x, y
}

// Scale converts a footprint in tiles to pixels.
func (l Layout) Scale(s entity.Size) (w, h float32) {
	return s.Width * l.TileWidth, s.Height * l.TileHeight
}

// Place returns the rectangle of a sprite of size s centered on cell p.
func (l Layout) Place(p types.Point, s entity.Size) Rect {
	cx, cy := l.Center(p)
	w, h := l.Scale(s)
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
