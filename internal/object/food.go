package object

import "math/rand/v2"

// FoodSpawner owns the single food position and re-randomizes it on demand.
type FoodSpawner struct {
	pos    Position
	bounds Rect
	rng    *rand.Rand
}

// NewFoodSpawner creates a spawner placing food uniformly within bounds
// (inclusive) and performs the first placement.
func NewFoodSpawner(bounds Rect, rng *rand.Rand) *FoodSpawner {
	s := &FoodSpawner{
		bounds: bounds,
		rng:    rng,
	}
	s.Respawn()
	return s
}

// Respawn draws a new food position. The snake's cells are not excluded.
func (s *FoodSpawner) Respawn() {
	s.pos = Position{
		X: s.bounds.MinX + s.rng.IntN(s.bounds.MaxX-s.bounds.MinX+1),
		Y: s.bounds.MinY + s.rng.IntN(s.bounds.MaxY-s.bounds.MinY+1),
	}
}

// Position returns the current food position.
func (s *FoodSpawner) Position() Position {
	return s.pos
}

// Place puts the food at an explicit position.
func (s *FoodSpawner) Place(p Position) {
	s.pos = p
}
