package loop

import (
	"testing"

	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
)

func newTestController() *Controller {
	s := config.Default()
	s.Seed = 7
	return NewController(s, nil)
}

var (
	confirm = input.Event{Type: input.EventConfirm}
	cancel  = input.Event{Type: input.EventCancel}
	quit    = input.Event{Type: input.EventQuit}
)

// collidingBody turns into a self-collision on the next downward advance.
func collidingBody() *object.Body {
	return object.NewBodyFrom([]object.Position{
		{X: 30, Y: 30}, {X: 60, Y: 30}, {X: 60, Y: 60}, {X: 30, Y: 60}, {X: 0, Y: 60}, {X: 0, Y: 30},
	}, object.HeadingDown, config.CellSize)
}

func TestControllerStartsOnIntro(t *testing.T) {
	c := newTestController()

	if c.Mode() != ModeIntro {
		t.Errorf("Expected intro, got %v", c.Mode())
	}
	if !c.Running() {
		t.Error("Expected controller to be running")
	}
	if c.Session() != nil {
		t.Error("Expected no session before start")
	}
	if _, ok := c.Tick(); ok {
		t.Error("Tick must be ignored on the intro screen")
	}
}

func TestIntroConfirmStartsGame(t *testing.T) {
	c := newTestController()
	c.Handle(input.Move(object.HeadingLeft)) // ignored on intro
	c.Handle(confirm)

	if c.Mode() != ModePlaying {
		t.Fatalf("Expected playing, got %v", c.Mode())
	}
	if c.Session() == nil {
		t.Fatal("Expected a session after confirm")
	}
	if c.Session().Body.Heading() != object.HeadingDown {
		t.Errorf("Intro input must not leak into the session, heading %v", c.Session().Body.Heading())
	}
}

func TestPlayingMoveSetsHeading(t *testing.T) {
	c := newTestController()
	c.Handle(confirm)

	for _, h := range object.Headings {
		c.Handle(input.Move(h))
		if c.Session().Body.Heading() != h {
			t.Errorf("Expected heading %v, got %v", h, c.Session().Body.Heading())
		}
	}
}

func TestTerminationMovesToGameOver(t *testing.T) {
	c := newTestController()
	c.Handle(confirm)
	c.Session().Body = collidingBody()
	c.Session().Food.Place(object.Position{X: 700, Y: 500})

	outcome, ok := c.Tick()
	if !ok || outcome != OutcomeTerminated {
		t.Fatalf("Expected terminated tick, got %v (ok=%v)", outcome, ok)
	}
	if c.Mode() != ModeGameOver {
		t.Errorf("Expected game over, got %v", c.Mode())
	}

	// Ticks and moves are ignored until replay
	head := c.Session().Body.Head()
	if _, ok := c.Tick(); ok {
		t.Error("Tick must be ignored on game over")
	}
	c.Handle(input.Move(object.HeadingLeft))
	if c.Session().Body.Head() != head || c.Session().Body.Heading() != object.HeadingDown {
		t.Error("Game over must not change the finished session")
	}
}

func TestReplayCreatesFreshSession(t *testing.T) {
	c := newTestController()
	c.Handle(confirm)
	old := c.Session()
	old.Score = 5
	old.Body = collidingBody()
	old.Food.Place(object.Position{X: 700, Y: 500})
	c.Tick()

	c.Handle(confirm)

	if c.Mode() != ModePlaying {
		t.Fatalf("Expected playing after replay, got %v", c.Mode())
	}
	s := c.Session()
	if s == old {
		t.Fatal("Expected a new session instance")
	}
	if s.Score != 0 {
		t.Errorf("Expected score 0, got %d", s.Score)
	}
	if s.Body.Len() != config.InitialLength {
		t.Errorf("Expected length %d, got %d", config.InitialLength, s.Body.Len())
	}
	if s.Body.Head() != (object.Position{X: config.StartX, Y: config.StartY}) {
		t.Errorf("Expected head at start cell, got %v", s.Body.Head())
	}
	if !FoodBounds.Contains(s.Food.Position()) {
		t.Errorf("Expected food respawned in bounds, got %v", s.Food.Position())
	}
}

func TestConfirmWhilePlayingReturnsToIntro(t *testing.T) {
	c := newTestController()
	c.Handle(confirm)
	old := c.Session()
	old.Score = 3

	c.Handle(confirm)

	if c.Mode() != ModeIntro {
		t.Fatalf("Expected intro, got %v", c.Mode())
	}
	if c.Session() != nil {
		t.Error("Expected the abandoned session to be dropped")
	}
	if f := c.Frame(); f.Body != nil || f.Score != 0 {
		t.Errorf("Expected empty intro frame, got %+v", f)
	}
	if !c.Running() {
		t.Error("Expected controller to keep running")
	}

	c.Handle(confirm)
	if c.Mode() != ModePlaying {
		t.Fatalf("Expected playing, got %v", c.Mode())
	}
	if c.Session() == old || c.Session().Score != 0 {
		t.Error("Expected a fresh session after confirming again")
	}
}

func TestExitEvents(t *testing.T) {
	tests := []struct {
		name  string
		setup []input.Event
		event input.Event
	}{
		{"Quit on intro", nil, quit},
		{"Quit while playing", []input.Event{confirm}, quit},
		{"Cancel on intro", nil, cancel},
		{"Cancel while playing", []input.Event{confirm}, cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()
			for _, ev := range tt.setup {
				c.Handle(ev)
			}
			c.Handle(tt.event)
			if c.Running() {
				t.Error("Expected controller to stop")
			}
		})
	}
}

func TestExitFromGameOver(t *testing.T) {
	for _, ev := range []input.Event{quit, cancel} {
		c := newTestController()
		c.Handle(confirm)
		c.Session().Body = collidingBody()
		c.Session().Food.Place(object.Position{X: 700, Y: 500})
		c.Tick()
		if c.Mode() != ModeGameOver {
			t.Fatalf("Expected game over, got %v", c.Mode())
		}

		c.Handle(ev)
		if c.Running() {
			t.Errorf("Expected event %v to stop from game over", ev.Type)
		}
	}
}

func TestFrameSnapshot(t *testing.T) {
	c := newTestController()
	if f := c.Frame(); f.Mode != ModeIntro || f.Body != nil {
		t.Errorf("Expected empty intro frame, got %+v", f)
	}

	c.Handle(confirm)
	c.Session().Score = 4
	f := c.Frame()

	if f.Mode != ModePlaying || f.Score != 4 || len(f.Body) != 2 {
		t.Errorf("Unexpected frame %+v", f)
	}
	if f.Food != c.Session().Food.Position() {
		t.Errorf("Expected food %v, got %v", c.Session().Food.Position(), f.Food)
	}

	f.Body[0] = object.Position{X: -1, Y: -1}
	if c.Session().Body.Head() == f.Body[0] {
		t.Error("Frame body must be a copy")
	}
}
