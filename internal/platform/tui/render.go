package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	TrailChar  = '·'
	NetChar    = '│'
)

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 30
	MinScreenH = 10
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// HUD is the text drawn around the field.
type HUD struct {
	Left  string // Player 1 name
	Right string // Player 2 or AI name
	Hint  string // Controls legend on the bottom row
}

// fieldRect returns the inner play area for a screen: row 0 is the score
// line, the field has a one-cell border and the last row holds the hint.
func fieldRect(w, h int) core.Rect {
	return core.NewRect(1, 2, w-2, h-4)
}

// scaleX maps an arena x coordinate to a column inside field.
func scaleX(x float64, field core.Rect) int {
	col := int(math.Floor(x / pong.ArenaWidth * float64(field.W)))
	return field.X + core.Clamp(col, 0, field.W-1)
}

// scaleY maps an arena y coordinate to a row inside field.
func scaleY(y float64, field core.Rect) int {
	row := int(math.Floor(y / pong.ArenaHeight * float64(field.H)))
	return field.Y + core.Clamp(row, 0, field.H-1)
}

// DrawMatch draws a render snapshot into dst, scaled to the screen size.
func DrawMatch(dst *core.Screen, st pong.RenderState, hud HUD) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	field := fieldRect(w, h)
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2))

	// Net
	netX := field.X + field.W/2
	for y := field.Y; y < field.Bottom(); y += 2 {
		dst.SetColor(netX, y, NetChar, core.ColorGray)
	}

	// Paddles
	top1 := scaleY(st.Paddle1Y, field)
	bottom1 := scaleY(st.Paddle1Y+pong.PaddleHeight-1e-9, field)
	dst.DrawRect(core.NewRect(field.X, top1, 1, bottom1-top1+1), PaddleChar, core.ColorBrightBlue)

	top2 := scaleY(st.Paddle2Y, field)
	bottom2 := scaleY(st.Paddle2Y+pong.PaddleHeight-1e-9, field)
	dst.DrawRect(core.NewRect(field.Right()-1, top2, 1, bottom2-top2+1), PaddleChar, core.ColorBrightGreen)

	// Ball trail on empty cells only, then the ball on top of it
	tx, ty := scaleX(st.BallX-2*st.BallVX, field), scaleY(st.BallY-2*st.BallVY, field)
	bx, by := scaleX(st.BallX, field), scaleY(st.BallY, field)
	if (tx != bx || ty != by) && dst.Get(tx, ty) == ' ' {
		dst.SetColor(tx, ty, TrailChar, core.ColorGray)
	}
	dst.SetColor(bx, by, BallChar, core.ColorBrightWhite)

	// Score line
	score := fmt.Sprintf("%d  :  %d", st.Score1, st.Score2)
	dst.DrawTextColor((w-len([]rune(score)))/2, 0, score, core.ColorBrightYellow)
	dst.DrawTextColor(1, 0, hud.Left, core.ColorBrightBlue)
	dst.DrawTextColor(w-1-len([]rune(hud.Right)), 0, hud.Right, core.ColorBrightGreen)

	// Hint
	dst.DrawTextColor(1, h-1, hud.Hint, core.ColorGray)
}

// DrawMessage draws a boxed two-line message in the centre of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
