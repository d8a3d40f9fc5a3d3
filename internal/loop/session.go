package loop

import (
	"math/rand/v2"

	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
)

// Outcome classifies the result of one session tick.
type Outcome int

const (
	OutcomeContinues  Outcome = iota // Nothing eaten, still alive
	OutcomeScored                    // Food eaten this tick
	OutcomeTerminated                // Head hit the body; the session is over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinues:
		return "continues"
	case OutcomeScored:
		return "scored"
	case OutcomeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// FoodBounds is the inclusive area food spawns in.
var FoodBounds = object.Rect{
	MinX: config.FoodMinX,
	MinY: config.FoodMinY,
	MaxX: config.FoodMaxX,
	MaxY: config.FoodMaxY,
}

// Session is one round of play: a body, its food and the score.
// A new Session is created for every start or replay.
type Session struct {
	Body       *object.Body
	Food       *object.FoodSpawner
	Score      int
	terminated bool
}

// NewSession creates a fresh session with a body of initialLength at the
// start cell and freshly placed food.
func NewSession(initialLength int, rng *rand.Rand) *Session {
	if initialLength < config.MinLength {
		initialLength = config.MinLength
	}
	start := object.Position{X: config.StartX, Y: config.StartY}
	return &Session{
		Body: object.NewBody(initialLength, start, config.CellSize),
		Food: object.NewFoodSpawner(FoodBounds, rng),
	}
}

// Tick advances the session by one step and reports what happened.
// Once terminated, further ticks change nothing.
func (s *Session) Tick() Outcome {
	if s.terminated {
		return OutcomeTerminated
	}

	s.Body.Advance()

	outcome := OutcomeContinues
	if FoodCaptured(s.Body.Head(), s.Food.Position()) {
		s.Food.Respawn()
		s.Body.Grow()
		s.Score++
		outcome = OutcomeScored
	}

	if checkSelfCollision(s.Body) >= 0 {
		s.terminated = true
		return OutcomeTerminated
	}

	return outcome
}

// Terminated reports whether the session has ended.
func (s *Session) Terminated() bool {
	return s.terminated
}
