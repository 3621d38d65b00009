package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	gridPosHash = "#"
	gridPosDot  = "."
)

// Glyphs are the strings drawn for living and dead positions
type Glyphs struct {
	Alive string
	Dead  string
}

var (
	// ASCIIGlyphs draws '#' for living and '.' for dead positions
	ASCIIGlyphs = Glyphs{Alive: gridPosHash, Dead: gridPosDot}
	// BlockGlyphs draws two-column blocks, which look square in most terminals
	BlockGlyphs = Glyphs{Alive: gridPosBlock, Dead: gridPosEmpty}
)

// TextRenderer writes boards as plain text
type TextRenderer struct {
	Glyphs Glyphs
}

// NewTextRenderer returns a renderer using ASCII glyphs
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Glyphs: ASCIIGlyphs}
}

// Render writes a "World: <step>" header followed by one line per row
func (r *TextRenderer) Render(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "World: %d\n", b.Step())
	for y := range b.Height() {
		for x := range b.Width() {
			if b.Alive(Position{X: x, Y: y}) {
				bw.WriteString(r.Glyphs.Alive)
			} else {
				bw.WriteString(r.Glyphs.Dead)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return errors.Wrap(bw.Flush(), "[Render] failed to write board")
}

// RenderHistory replays every board in order
func (r *TextRenderer) RenderHistory(w io.Writer, boards []*Board) error {
	for _, b := range boards {
		if err := r.Render(w, b); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary writes the oldest and youngest living cells
func (r *TextRenderer) RenderSummary(w io.Writer, s Summary) error {
	oldest, youngest := "none", "none"
	if s.HasCells {
		oldest, youngest = s.Oldest.String(), s.Youngest.String()
	}
	_, err := fmt.Fprintf(w, "Oldest: %s\nYoungest: %s\n", oldest, youngest)
	return errors.Wrap(err, "[RenderSummary] failed to write summary")
}
