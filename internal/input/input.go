// Package input turns raw terminal bytes into discrete game events.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/snake/internal/object"
)

// EventType identifies a discrete input event.
type EventType int

const (
	EventQuit    EventType = iota // Leave the game from any screen
	EventConfirm                  // Enter: start or replay
	EventCancel                   // Escape
	EventMove                     // Change heading
)

// Event is a single discrete input event. Heading is only meaningful for EventMove.
type Event struct {
	Type    EventType
	Heading object.Heading
}

// Move returns a move event for h.
func Move(h object.Heading) Event {
	return Event{Type: EventMove, Heading: h}
}

// EscapeTimeout is how long a trailing ESC (or unfinished escape sequence)
// waits for the rest of its bytes before it is resolved on its own.
const EscapeTimeout = 50 * time.Millisecond

// Stream delivers input bytes via a channel.
//
// Escape sequences may arrive split across polls (one byte at a time from the
// reader goroutine, or across SSH packets), so an unfinished sequence is
// carried over to the next Poll instead of being parsed early.
type Stream struct {
	ch chan byte

	carry      []byte    // Unfinished escape sequence from the previous poll
	carriedAt  time.Time // When carry last received bytes
	escTimeout time.Duration
	now        func() time.Time
}

func newStream() *Stream {
	return &Stream{
		ch:         make(chan byte, 128),
		escTimeout: EscapeTimeout,
		now:        time.Now,
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream (non-blocking) and parses
// them into events. A closed stream yields a quit event.
func (s *Stream) Poll() []Event {
	buf, closed := s.drain()

	if len(buf) == 0 && !closed {
		if len(s.carry) == 0 || s.now().Sub(s.carriedAt) < s.escTimeout {
			return nil
		}
		// Nothing followed the escape in time
		events := resolveIncomplete(s.carry)
		s.carry = nil
		return events
	}

	if len(s.carry) > 0 {
		buf = append(s.carry, buf...)
		s.carry = nil
	}
	events, rest := parse(buf)

	if closed {
		events = append(events, resolveIncomplete(rest)...)
		return append(events, Event{Type: EventQuit})
	}
	if len(rest) > 0 {
		s.carry = append([]byte(nil), rest...)
		s.carriedAt = s.now()
	}
	return events
}

// drain reads every byte currently buffered in the channel.
func (s *Stream) drain() (buf []byte, closed bool) {
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf, true
			}
			buf = append(buf, b)
		default:
			return buf, false
		}
	}
}

// Parse converts a complete chunk of terminal bytes into events, in order.
// Arrow keys arrive as CSI (ESC [ A..D, with optional modifier parameters)
// or SS3 (ESC O A..D) sequences; a bare ESC is a cancel.
func Parse(buf []byte) []Event {
	events, rest := parse(buf)
	return append(events, resolveIncomplete(rest)...)
}

// parse converts buf into events. An escape sequence cut off at the end of
// buf is not parsed; it is returned as rest.
func parse(buf []byte) (events []Event, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			if ev, ok := byteEvent(b); ok {
				events = append(events, ev)
			}
			continue
		}

		if i+1 == len(buf) {
			return events, buf[i:]
		}
		switch buf[i+1] {
		case '[':
			n, final := csiLength(buf[i+2:])
			if n < 0 {
				return events, buf[i:]
			}
			if ev, ok := arrowEvent(final); ok {
				events = append(events, ev)
			}
			i += 1 + n
		case 'O':
			if i+2 == len(buf) {
				return events, buf[i:]
			}
			if ev, ok := arrowEvent(buf[i+2]); ok {
				events = append(events, ev)
			}
			i += 2
		default:
			// ESC followed by an ordinary key
			events = append(events, Event{Type: EventCancel})
		}
	}
	return events, nil
}

// csiLength returns how many bytes after "ESC [" belong to the sequence and
// its final byte, or -1 if the sequence is unfinished. A byte that cannot
// appear in a CSI sequence ends it without a final byte.
func csiLength(p []byte) (n int, final byte) {
	for j, b := range p {
		switch {
		case b >= 0x40 && b <= 0x7e:
			return j + 1, b
		case b >= 0x20 && b <= 0x3f:
			// Parameter or intermediate byte
		default:
			return j, 0
		}
	}
	return -1, 0
}

// resolveIncomplete decides what an unfinished sequence means once no more
// bytes will follow: a lone ESC is the Escape key, anything longer is dropped.
func resolveIncomplete(rest []byte) []Event {
	if len(rest) == 1 && rest[0] == '\x1b' {
		return []Event{{Type: EventCancel}}
	}
	return nil
}

func arrowEvent(final byte) (Event, bool) {
	switch final {
	case 'A':
		return Move(object.HeadingUp), true
	case 'B':
		return Move(object.HeadingDown), true
	case 'C':
		return Move(object.HeadingRight), true
	case 'D':
		return Move(object.HeadingLeft), true
	}
	return Event{}, false
}

// byteEvent maps a single byte to its event, if any.
func byteEvent(b byte) (Event, bool) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl+C
		return Event{Type: EventQuit}, true
	case '\n', '\r':
		return Event{Type: EventConfirm}, true
	case 'w', 'W', 'k', 'K':
		return Move(object.HeadingUp), true
	case 's', 'S', 'j', 'J':
		return Move(object.HeadingDown), true
	case 'a', 'A', 'h', 'H':
		return Move(object.HeadingLeft), true
	case 'd', 'D', 'l', 'L':
		return Move(object.HeadingRight), true
	}
	return Event{}, false
}
