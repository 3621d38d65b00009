package model

import (
	"bytes"
	"testing"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	b := boardWith(t, 3, 2, Pos(0, 0), Pos(2, 1))
	if err := NewTextRenderer().Render(&buf, b); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "World: 0\n#..\n..#\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderBlocks(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{Glyphs: BlockGlyphs}
	if err := r.Render(&buf, boardWith(t, 2, 1, Pos(1, 0))); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "World: 0\n  ██\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderHistory(t *testing.T) {
	sim := newTestSimulation(t, boardWith(t, 2, 2))
	sim.Advance()

	var buf bytes.Buffer
	if err := NewTextRenderer().RenderHistory(&buf, sim.History()); err != nil {
		t.Fatalf("RenderHistory: %v", err)
	}

	want := "World: 0\n..\n..\n\nWorld: 1\n..\n..\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("RenderHistory() = %q, want %q", got, want)
	}
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name string
		sum  Summary
		want string
	}{
		{
			name: "empty board",
			sum:  Summary{},
			want: "Oldest: none\nYoungest: none\n",
		},
		{
			name: "living cells",
			sum: Summary{
				HasCells: true,
				Oldest:   Cell{ID: 2, Generation: 0, Pos: Pos(1, 1)},
				Youngest: Cell{ID: 7, Generation: 4, Pos: Pos(0, 3)},
			},
			want: "Oldest: Cell{id: 2, generation: 0, pos: (1,1)}\n" +
				"Youngest: Cell{id: 7, generation: 4, pos: (0,3)}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextRenderer().RenderSummary(&buf, tt.sum); err != nil {
				t.Fatalf("RenderSummary: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("RenderSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
