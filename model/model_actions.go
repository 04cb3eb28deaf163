package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedTunnel is returned when a snake or ladder start has no end
	// with the same identifier.
	ErrUnmatchedTunnel = errors.New("tunnel start has no matching end")
	// ErrDuplicateTunnelEnd is returned when two ends share kind and identifier.
	ErrDuplicateTunnelEnd = errors.New("tunnel end declared twice")
)

// NewBoard copies the layout into runtime coordinates and indexes the tunnel
// ends. The layout is rejected when a start has no unique end.
func NewBoard(l Layout) (*Board, error) {
	b := &Board{ends: make(map[Descriptor]Point)}
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			row, col := BoardToLayout(x, y)
			d := l[row][col]
			b.cells[x][y] = d
			switch d.Kind() {
			case SnakeEnd, LadderEnd:
				if prev, found := b.ends[d]; found {
					return nil, fmt.Errorf("%s at (%d,%d) and (%d,%d): %w",
						d, prev.X, prev.Y, x, y, ErrDuplicateTunnelEnd)
				}
				b.ends[d] = Point{X: x, Y: y}
			}
		}
	}
	// connect
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			d := b.cells[x][y]
			end, ok := d.Kind().EndOf()
			if !ok {
				continue
			}
			if _, found := b.ends[end.With(d.Id())]; !found {
				return nil, fmt.Errorf("%s at (%d,%d): %w", d, x, y, ErrUnmatchedTunnel)
			}
		}
	}
	return b, nil
}

// Get returns the static descriptor at (x, y). Anything outside the grid is
// Empty.
func (b *Board) Get(x, y int) Descriptor {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty.Descriptor()
	}
	return b.cells[x][y]
}

// TunnelEnd returns the end cell linked to a snake or ladder start.
func (b *Board) TunnelEnd(start Descriptor) (Point, bool) {
	end, ok := start.Kind().EndOf()
	if !ok {
		return Point{}, false
	}
	p, found := b.ends[end.With(start.Id())]
	return p, found
}

// Find returns the first cell, scanning columns bottom up, holding kind k.
func (b *Board) Find(k Kind) (Point, bool) {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b.cells[x][y].Kind() == k {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}
