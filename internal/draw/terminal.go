package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// ChunkWriter collects one frame of board and HUD output and sends it with a
// single Flush, so an SSH client never sees half a frame.
// Cursor positions are 1-based and shifted by the board offset.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	digits [20]byte // Scratch space for cursor coordinates
	col0   int
	row0   int
}

// NewChunkWriter returns a writer for w whose cursor moves are shifted by
// (offsetCol, offsetRow).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:  bufio.NewWriterSize(w, 8192),
		col0: offsetCol,
		row0: offsetRow,
	}
}

// SetOffset moves the board origin, e.g. when a resize re-centers it.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.col0, cw.row0 = offsetCol, offsetRow
}

// MoveCursor queues a cursor move to board cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.frame.WriteString("\033[")
	cw.frame.Write(strconv.AppendInt(cw.digits[:0], int64(row+cw.row0), 10))
	cw.frame.WriteByte(';')
	cw.frame.Write(strconv.AppendInt(cw.digits[:0], int64(col+cw.col0), 10))
	cw.frame.WriteByte('H')
}

// Write queues p. Canvas.Render writes the board through it.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.frame.Write(p)
}

// WriteString queues s at the current cursor position.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame.WriteString(s)
}

// WriteAt queues s at board cell (col, row). Text starting left of or above
// the board is dropped.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	if col < 1 || row < 1 {
		return
	}
	cw.MoveCursor(col, row)
	cw.frame.WriteString(s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame in pieces of at most maxChunkSize bytes and
// starts a new one.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame.String()
	cw.frame.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the terminal behind os.Stdout for its size.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FixedTermSize always reports width x height.
func FixedTermSize(width, height int) TermSizeFunc {
	return func() (int, int, error) {
		return width, height, nil
	}
}

// ClearScreen blanks the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// HideCursor hides the cursor while the game owns the terminal.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor restores the cursor on exit.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}
