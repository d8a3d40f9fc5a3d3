// Package tcellui is the local display/input surface built on tcell: it
// implements both loop.InputSource and loop.Renderer.
package tcellui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop"
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
)

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	snakeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Screen wraps a tcell.Screen. Events are read by a background goroutine and
// handed out by Poll.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
}

// New initializes the terminal for full-screen use.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and starts reading its events.
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()

	ui := &Screen{
		screen: s,
		events: make(chan tcell.Event, 100),
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				// Screen finalized
				close(ui.events)
				return
			}
			ui.events <- ev
		}
	}()
	return ui, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Poll drains pending tcell events into game events (non-blocking).
func (s *Screen) Poll() []input.Event {
	var events []input.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(events, input.Event{Type: input.EventQuit})
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				s.screen.Sync()
				continue
			}
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

// translate maps a key event to a game event.
func translate(ev tcell.Event) (input.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return input.Move(object.HeadingUp), true
	case tcell.KeyDown:
		return input.Move(object.HeadingDown), true
	case tcell.KeyLeft:
		return input.Move(object.HeadingLeft), true
	case tcell.KeyRight:
		return input.Move(object.HeadingRight), true
	case tcell.KeyEnter:
		return input.Event{Type: input.EventConfirm}, true
	case tcell.KeyEscape:
		return input.Event{Type: input.EventCancel}, true
	case tcell.KeyCtrlC:
		return input.Event{Type: input.EventQuit}, true
	case tcell.KeyRune:
		// Letter keys share the byte mapping of the raw terminal backend
		if events := input.Parse([]byte(string(key.Rune()))); len(events) == 1 {
			return events[0], true
		}
	}
	return input.Event{}, false
}

// Render draws one frame. Row 0 holds the HUD; the board fills the rest.
func (s *Screen) Render(f loop.Frame) error {
	s.screen.Clear()
	width, height := s.screen.Size()

	switch f.Mode {
	case loop.ModePlaying:
		board := boardArea{width: width, height: height - 1, top: 1}
		for _, seg := range f.Body {
			board.fill(s.screen, seg, '█', snakeStyle)
		}
		board.fill(s.screen, f.Food, '●', foodStyle)
		s.putCentered(0, width, loop.ScoreText(f.Score))
	default:
		lines := loop.ScreenLines(f)
		top := (height - len(lines)) / 2
		for i, line := range lines {
			s.putCentered(top+i, width, line)
		}
	}

	s.screen.Show()
	return nil
}

func (s *Screen) putCentered(row, width int, text string) {
	runes := []rune(text)
	col := (width - len(runes)) / 2
	if col < 0 {
		col = 0
	}
	for i, r := range runes {
		s.screen.SetContent(col+i, row, r, nil, textStyle)
	}
}

// boardArea maps board units onto a block of terminal cells.
type boardArea struct {
	width, height int
	top           int // First terminal row of the board
}

// span converts [v, v+CellSize) along an axis of the given board size to a
// cell range covering at least one cell.
func span(v, boardSize, cells int) (from, to int) {
	from = v * cells / boardSize
	to = (v+config.CellSize)*cells/boardSize - 1
	if to < from {
		to = from
	}
	return from, to
}

func (b boardArea) fill(screen tcell.Screen, p object.Position, ch rune, style tcell.Style) {
	if b.width <= 0 || b.height <= 0 {
		return
	}
	x1, x2 := span(p.X, config.BoardWidth, b.width)
	y1, y2 := span(p.Y, config.BoardHeight, b.height)
	for y := y1; y <= y2; y++ {
		if y < 0 || y >= b.height {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x < 0 || x >= b.width {
				continue
			}
			screen.SetContent(x, b.top+y, ch, nil, style)
		}
	}
}
