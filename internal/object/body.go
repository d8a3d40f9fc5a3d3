package object

// Body is the snake: an ordered chain of segment positions, head first.
//
// Each Advance shifts every segment into its predecessor's previous cell and
// moves the head one step along the heading. There is no bounds check and no
// guard against reversing onto the neck.
type Body struct {
	segments []Position
	heading  Heading
	step     int // Distance the head travels per advance
}

// NewBody creates a body of length segments, all stacked on start, heading down.
// Lengths below 1 are raised to 1.
func NewBody(length int, start Position, step int) *Body {
	if length < 1 {
		length = 1
	}
	segments := make([]Position, length)
	for i := range segments {
		segments[i] = start
	}
	return &Body{
		segments: segments,
		heading:  HeadingDown,
		step:     step,
	}
}

// NewBodyFrom creates a body from explicit segment positions, head first.
// The slice is copied.
func NewBodyFrom(segments []Position, heading Heading, step int) *Body {
	return &Body{
		segments: append([]Position(nil), segments...),
		heading:  heading,
		step:     step,
	}
}

// SetHeading changes the direction of travel. Any heading is accepted.
func (b *Body) SetHeading(h Heading) {
	b.heading = h
}

// Heading returns the current direction of travel.
func (b *Body) Heading() Heading {
	return b.heading
}

// Advance moves the chain one step.
func (b *Body) Advance() {
	for i := len(b.segments) - 1; i > 0; i-- {
		b.segments[i] = b.segments[i-1]
	}
	dx, dy := b.heading.Delta()
	b.segments[0].X += dx * b.step
	b.segments[0].Y += dy * b.step
}

// Grow appends a copy of the tail. The next Advance moves it into place.
func (b *Body) Grow() {
	b.segments = append(b.segments, b.segments[len(b.segments)-1])
}

// Head returns the head position.
func (b *Body) Head() Position {
	return b.segments[0]
}

// Segment returns the position of segment i.
func (b *Body) Segment(i int) Position {
	return b.segments[i]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of all segment positions, head first.
func (b *Body) Segments() []Position {
	return append([]Position(nil), b.segments...)
}
