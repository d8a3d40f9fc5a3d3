package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/loop/config"
)

// Static screen text.
var (
	IntroLines = []string{
		"S N A K E !",
		"",
		"Use Arrow Keys To Move",
		"Press Enter To Continue",
	}
	GameOverTitle  = "GAME OVER!"
	GameOverPrompt = "Play Again: Enter / Quit: Escape"
)

// ScoreText is the HUD line shown while playing.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// ScreenLines returns the centered text block for f's mode.
// Playing has no centered text; its HUD is drawn separately.
func ScreenLines(f Frame) []string {
	switch f.Mode {
	case ModeIntro:
		return IntroLines
	case ModeGameOver:
		return []string{GameOverTitle, "", ScoreText(f.Score), "", GameOverPrompt}
	default:
		return nil
	}
}

// TerminalRenderer draws frames to an ANSI terminal through a scaled canvas.
// The board keeps its aspect ratio and is centered in the terminal.
type TerminalRenderer struct {
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	termSizeFunc draw.TermSizeFunc
}

// NewTerminalRenderer creates a renderer writing to w. A nil sizeFunc reads
// the size of os.Stdout.
func NewTerminalRenderer(w io.Writer, sizeFunc draw.TermSizeFunc) *TerminalRenderer {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	return &TerminalRenderer{
		canvas:       draw.NewScaledCanvas(0, 0, config.BoardWidth, config.BoardHeight),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		termSizeFunc: sizeFunc,
	}
}

// Start hides the cursor and clears the terminal.
func (r *TerminalRenderer) Start() error {
	draw.HideCursor(r.chunkWriter)
	draw.ClearScreen(r.chunkWriter)
	return r.chunkWriter.Flush()
}

// Stop clears the terminal and restores the cursor.
func (r *TerminalRenderer) Stop() error {
	draw.ClearScreen(r.chunkWriter)
	draw.ShowCursor(r.chunkWriter)
	return r.chunkWriter.Flush()
}

// Render draws one frame.
func (r *TerminalRenderer) Render(f Frame) error {
	if err := r.updateScreen(); err != nil {
		return err
	}

	draw.ClearScreen(r.chunkWriter)
	r.canvas.Clear()

	if f.Mode == ModePlaying {
		for _, seg := range f.Body {
			r.canvas.FillRect(float64(seg.X), float64(seg.Y), config.CellSize, config.CellSize)
		}
		if err := r.canvas.Render(r.chunkWriter); err != nil {
			return err
		}
		r.drawFood(f)
		r.chunkWriter.WriteAt(draw.CenterCol(r.canvas.TerminalWidth(), ScoreText(f.Score)), 1, ScoreText(f.Score))
	} else {
		r.drawCentered(ScreenLines(f))
	}

	if err := r.canvas.RenderBorder(r.chunkWriter); err != nil {
		return err
	}
	return r.chunkWriter.Flush()
}

// updateScreen fits the canvas to the current terminal size, centered.
func (r *TerminalRenderer) updateScreen() error {
	termWidth, termHeight, err := r.termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	// Leave a one-cell margin for the border
	cols, rows := draw.FitAspect(termWidth-2, termHeight-2, config.BoardWidth, config.BoardHeight)
	offsetCol := (termWidth - cols) / 2
	offsetRow := (termHeight - rows) / 2

	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.chunkWriter.SetOffset(offsetCol, offsetRow)
	return nil
}

// drawFood places the food marker over the canvas.
func (r *TerminalRenderer) drawFood(f Frame) {
	half := float64(config.CellSize) / 2
	col, row := r.canvas.LogicalToTerminal(float64(f.Food.X)+half, float64(f.Food.Y)+half)
	if col > r.canvas.TerminalWidth() || row > r.canvas.TerminalHeight() {
		return
	}
	r.chunkWriter.WriteAt(col, row, "●")
}

// drawCentered writes lines centered on the canvas.
func (r *TerminalRenderer) drawCentered(lines []string) {
	width := r.canvas.TerminalWidth()
	startRow := (r.canvas.TerminalHeight()-len(lines))/2 + 1
	for i, line := range lines {
		if line == "" {
			continue
		}
		r.chunkWriter.WriteAt(draw.CenterCol(width, line), startRow+i, line)
	}
}
