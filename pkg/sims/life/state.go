package life

import (
	"image/color"

	"life3d/pkg/linalg"
)

// State is the value of a single cell.
type State uint8

const (
	// Dead cells are empty.
	Dead State = iota
	// Alive cells are populated.
	Alive
	// Boundary is returned for lookups outside the field. It is never
	// stored and behaves as a permanently fixed, non-living cell.
	Boundary
)

var (
	deadColor     = linalg.V3(0, 0, 0)
	aliveColor    = linalg.V3(0.2, 1.0, 0.2)
	boundaryColor = linalg.V3(1.0, 0.2, 0.2)
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Boundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Color returns the display colour as an RGB triple in [0, 1].
func (s State) Color() linalg.Vector3 {
	switch s {
	case Dead:
		return deadColor
	case Alive:
		return aliveColor
	default:
		return boundaryColor
	}
}

// RGBA converts Color to an opaque 8-bit colour.
func (s State) RGBA() color.RGBA {
	c := s.Color()
	return color.RGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: 255,
	}
}
