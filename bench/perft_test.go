package bench

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/daystram/chess/board"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	tests := map[string][]struct {
		depth int
		want  Counters
	}{
		board.DefaultLayout: {
			{depth: 0, want: Counters{Nodes: 1}},
			{depth: 1, want: Counters{Nodes: 20}},
			{depth: 2, want: Counters{Nodes: 400}},
			{depth: 3, want: Counters{Nodes: 8_902, Captures: 34, Checks: 12}},
		},
		// only the rook lift to h0 gives check
		"4k3/8/8/8/8/8/8/4K2R": {
			{depth: 1, want: Counters{Nodes: 15, Castles: 1, Checks: 1}},
		},
		// queen and rook promotions on a0 check the king on e0
		"4k3/P7/8/8/8/8/8/K7": {
			{depth: 1, want: Counters{Nodes: 7, Promotions: 4, Checks: 2}},
		},
	}

	for layout, constraints := range tests {
		layout := layout
		for _, tt := range constraints {
			tt := tt
			for _, parallel := range []bool{false, true} {
				parallel := parallel
				t.Run(fmt.Sprintf("perft(%d) parallel=%v: %s", tt.depth, parallel, layout), func(t *testing.T) {
					t.Parallel()
					got, err := Perft(context.Background(), tt.depth, layout, parallel, false, nil)
					if err != nil {
						t.Fatal("unexpected error:", err)
					}
					if got != tt.want {
						t.Errorf("unexpected counters: got=%+v want=%+v", got, tt.want)
					}
				})
			}
		}
	}
}

func TestPerftVerbose(t *testing.T) {
	t.Parallel()
	out := make(chan string, 32)
	if _, err := Perft(context.Background(), 1, board.DefaultLayout, false, true, out); err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)
	var lines int
	for range out {
		lines++
	}
	// one line per root move plus the summary
	if lines != 21 {
		t.Errorf("unexpected output lines: got=%d want=21", lines)
	}
}

func TestPerftCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Perft(ctx, 3, board.DefaultLayout, false, false, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
	if _, err := Perft(context.Background(), 1, "bad", false, false, nil); !errors.Is(err, board.ErrInvalidLayout) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidLayout)
	}
}
