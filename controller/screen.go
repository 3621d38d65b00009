package controller

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/toroid-life/model"
)

// cellColumns is how many terminal columns one board cell occupies
const cellColumns = 2

// agePalette shades living cells from newborn to old
var agePalette = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorRed,
	tcell.ColorPurple,
	tcell.ColorBlue,
}

// AgeStyle returns the style for a living cell of the given age
func AgeStyle(age uint64) tcell.Style {
	idx := min(age, uint64(len(agePalette)-1))
	return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(agePalette[idx])
}

// Screen draws boards onto a tcell screen
type Screen struct {
	screen tcell.Screen

	mu            sync.Mutex
	width, height uint32
}

// NewScreen wraps an initialized tcell screen
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// Draw renders the board with a status line below it
func (s *Screen) Draw(b *model.Board, sum model.Summary) {
	s.mu.Lock()
	s.width, s.height = b.Width(), b.Height()
	s.mu.Unlock()

	s.screen.Clear()
	dead := tcell.StyleDefault
	for y := range b.Height() {
		for x := range b.Width() {
			style := dead
			if c, ok := b.Cell(model.Position{X: x, Y: y}); ok {
				style = AgeStyle(b.Age(c))
			}
			col := int(x) * cellColumns
			for i := range cellColumns {
				s.screen.SetContent(col+i, int(y), ' ', nil, style)
			}
		}
	}

	s.drawText(0, int(b.Height()), statusLine(sum))
	s.drawText(0, int(b.Height())+1, "space pause  n step  r reset  click toggle  q quit")
	s.screen.Show()
}

// drawText writes text from column x, cut at the screen edge
func (s *Screen) drawText(x, y int, text string) {
	cols, _ := s.screen.Size()
	for i, r := range []rune(text) {
		if x+i >= cols {
			return
		}
		s.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// statusLine leads with the stability so it survives narrow terminals
func statusLine(sum model.Summary) string {
	return fmt.Sprintf("%s | step %d | alive %d | ever born %d",
		sum.Stability, sum.Step, sum.Alive, sum.EverBorn)
}

// CellAt maps terminal coordinates to a board position from the last Draw
func (s *Screen) CellAt(col, row int) (model.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if col < 0 || row < 0 {
		return model.Position{}, false
	}
	x, y := uint32(col/cellColumns), uint32(row)
	if x >= s.width || y >= s.height {
		return model.Position{}, false
	}
	return model.Position{X: x, Y: y}, true
}
