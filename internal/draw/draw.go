// Package draw renders to ANSI terminals: a scaled half-block canvas plus
// cursor-addressed text, batched for slow links such as SSH.
package draw

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// CenterCol returns the 1-based column at which s starts when centered in width.
func CenterCol(width int, s string) int {
	col := (width-len([]rune(s)))/2 + 1
	if col < 1 {
		col = 1
	}
	return col
}
