package loop

import (
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
)

// FoodCaptured reports whether the head is within one cell of the food.
// Exactly one cell away does not count.
func FoodCaptured(head, food object.Position) bool {
	return head.Within(food, config.CellSize)
}

// SelfCollision reports whether the head overlaps a body segment.
// Callers must only pass segments from config.SelfCollisionFrom onwards.
func SelfCollision(head, segment object.Position) bool {
	return head.Within(segment, config.CellSize)
}

// checkSelfCollision tests the head against every eligible segment.
// Returns the colliding index, or -1.
func checkSelfCollision(body *object.Body) int {
	head := body.Head()
	for i := config.SelfCollisionFrom; i < body.Len(); i++ {
		if SelfCollision(head, body.Segment(i)) {
			return i
		}
	}
	return -1
}
