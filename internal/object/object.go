// Package object holds the snake's game entities: positions, the segmented
// body and the food spawner.
package object

import "github.com/tomz197/snake/internal/physics"

// Position is a point on the board in board units (not cell indices).
type Position struct {
	X, Y int
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	return physics.Distance(float64(p.X), float64(p.Y), float64(q.X), float64(q.Y))
}

// Within reports whether q is strictly closer to p than radius.
func (p Position) Within(q Position, radius float64) bool {
	return physics.Within(float64(p.X), float64(p.Y), float64(q.X), float64(q.Y), radius)
}

// Heading is the snake's direction of travel.
type Heading int

const (
	HeadingDown Heading = iota // Initial heading
	HeadingUp
	HeadingLeft
	HeadingRight
)

// Headings lists every heading, for iteration.
var Headings = []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// String returns the lowercase heading name.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset for the heading; y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Rect is an inclusive rectangle on the board.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}
