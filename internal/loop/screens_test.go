package loop

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/object"
)

func TestScreenLines(t *testing.T) {
	if got := ScreenLines(Frame{Mode: ModeIntro}); len(got) == 0 || got[0] != IntroLines[0] {
		t.Errorf("Expected intro lines, got %v", got)
	}
	if got := ScreenLines(Frame{Mode: ModePlaying}); got != nil {
		t.Errorf("Expected no centered text while playing, got %v", got)
	}

	over := strings.Join(ScreenLines(Frame{Mode: ModeGameOver, Score: 12}), "\n")
	for _, want := range []string{GameOverTitle, "Score: 12", GameOverPrompt} {
		if !strings.Contains(over, want) {
			t.Errorf("Expected game over text to contain %q, got %q", want, over)
		}
	}
}

func TestTerminalRendererScreens(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  []string
	}{
		{
			name:  "Intro",
			frame: Frame{Mode: ModeIntro},
			want:  []string{"S N A K E !", "Use Arrow Keys To Move", "Press Enter To Continue"},
		},
		{
			name:  "Game over",
			frame: Frame{Mode: ModeGameOver, Score: 3},
			want:  []string{"GAME OVER!", "Score: 3", "Play Again: Enter / Quit: Escape"},
		},
		{
			name: "Playing",
			frame: Frame{
				Mode:  ModePlaying,
				Body:  []object.Position{{X: 60, Y: 30}, {X: 30, Y: 30}},
				Food:  object.Position{X: 300, Y: 300},
				Score: 1,
			},
			want: []string{"Score: 1", string(draw.BlockFull), "●"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewTerminalRenderer(&buf, draw.FixedTermSize(82, 32))

			if err := r.Render(tt.frame); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Expected output to contain %q", want)
				}
			}
		})
	}
}

func TestTerminalRendererStartStop(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, draw.FixedTermSize(82, 32))

	if err := r.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[?25l") {
		t.Error("Expected Start to hide the cursor")
	}

	buf.Reset()
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[?25h") {
		t.Error("Expected Stop to show the cursor")
	}
}

func TestTerminalRendererSizeError(t *testing.T) {
	sizeErr := errors.New("no tty")
	r := NewTerminalRenderer(&bytes.Buffer{}, func() (int, int, error) {
		return 0, 0, sizeErr
	})

	if err := r.Render(Frame{Mode: ModeIntro}); !errors.Is(err, sizeErr) {
		t.Errorf("Expected size error, got %v", err)
	}
}
