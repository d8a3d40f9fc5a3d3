package loop

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
)

// Mode is the top-level screen the application is on.
type Mode int

const (
	ModeIntro    Mode = iota // Title screen
	ModePlaying              // Active gameplay
	ModeGameOver             // Snake bit itself, waiting for replay or exit
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Controller owns the application mode and the active session.
// It is driven from a single goroutine and is not safe for concurrent use.
type Controller struct {
	mode     Mode
	session  *Session
	settings config.Settings
	rng      *rand.Rand
	logger   *log.Logger
	running  bool
}

// NewController creates a controller on the intro screen.
// A nil logger discards log output.
func NewController(settings config.Settings, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	settings = settings.Normalize()

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Controller{
		mode:     ModeIntro,
		settings: settings,
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		logger:   logger,
		running:  true,
	}
}

// Handle applies one input event.
func (c *Controller) Handle(ev input.Event) {
	if ev.Type == input.EventQuit {
		c.stop("quit")
		return
	}

	switch c.mode {
	case ModeIntro:
		switch ev.Type {
		case input.EventConfirm:
			c.startSession()
		case input.EventCancel:
			c.stop("cancel")
		}

	case ModePlaying:
		switch ev.Type {
		case input.EventMove:
			c.session.Body.SetHeading(ev.Heading)
		case input.EventConfirm:
			// Abandon the round and go back to the title screen
			c.logger.Debug("restart requested mid-game", "score", c.session.Score)
			c.session = nil
			c.setMode(ModeIntro)
		case input.EventCancel:
			c.stop("cancel")
		}

	case ModeGameOver:
		switch ev.Type {
		case input.EventConfirm:
			c.startSession()
		case input.EventCancel:
			c.stop("cancel")
		}
	}
}

// Tick runs one session step. It only has an effect while playing;
// ok is false otherwise.
func (c *Controller) Tick() (outcome Outcome, ok bool) {
	if c.mode != ModePlaying {
		return OutcomeContinues, false
	}

	outcome = c.session.Tick()
	switch outcome {
	case OutcomeScored:
		c.logger.Debug("food eaten", "score", c.session.Score, "length", c.session.Body.Len())
	case OutcomeTerminated:
		c.logger.Info("game over", "score", c.session.Score, "length", c.session.Body.Len())
		c.setMode(ModeGameOver)
	}
	return outcome, true
}

// startSession replaces any previous session with a fresh one and enters play.
func (c *Controller) startSession() {
	c.session = NewSession(c.settings.InitialLength, c.rng)
	c.setMode(ModePlaying)
}

func (c *Controller) setMode(m Mode) {
	if c.mode != m {
		c.logger.Debug("mode change", "from", c.mode, "to", m)
	}
	c.mode = m
}

func (c *Controller) stop(reason string) {
	c.logger.Debug("stopping", "reason", reason, "mode", c.mode)
	c.running = false
}

// Running reports whether the application should keep going.
func (c *Controller) Running() bool {
	return c.running
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Session returns the active session, nil before the first start.
func (c *Controller) Session() *Session {
	return c.session
}

// Settings returns the normalized settings in use.
func (c *Controller) Settings() config.Settings {
	return c.settings
}

// Frame captures what a renderer needs to draw the current state.
func (c *Controller) Frame() Frame {
	f := Frame{Mode: c.mode}
	if c.session != nil {
		f.Body = c.session.Body.Segments()
		f.Food = c.session.Food.Position()
		f.Score = c.session.Score
	}
	return f
}

// Frame is a read-only snapshot of the game for rendering.
type Frame struct {
	Mode  Mode
	Body  []object.Position // Head first
	Food  object.Position
	Score int
}
