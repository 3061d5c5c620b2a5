package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/daystram/chess/board"
	"github.com/daystram/chess/position"
)

func quiet(...any) {}

func TestPick(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		layout  string
		moves   [][2]string
		player  board.Player
		careful bool
		want    string
		avoid   string
	}{
		{
			name:   "takes the hanging queen",
			layout: "4k3/8/8/q7/8/8/8/R6K",
			player: board.Player1,
			want:   "a7a3",
		},
		{
			name:   "mates in one",
			moves:  [][2]string{{"f6", "f5"}, {"e1", "e3"}, {"g6", "g4"}},
			player: board.Player2,
			want:   "d0h4",
		},
		{
			name:   "greedy takes a defended pawn",
			layout: "4k3/8/1p6/p7/8/8/8/R6K",
			player: board.Player1,
			want:   "a7a3",
		},
		{
			name:    "careful leaves a defended pawn",
			layout:  "4k3/8/1p6/p7/8/8/8/R6K",
			player:  board.Player1,
			careful: true,
			avoid:   "a7a3",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			layout := tt.layout
			if layout == "" {
				layout = board.DefaultLayout
			}
			b, err := board.NewBoard(board.WithLayout(layout))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, mv := range tt.moves {
				b.ForceMove(position.MustParse(mv[0]), position.MustParse(mv[1]))
			}
			before := b.Clone()

			e := NewEngine(&EngineConfig{Seed: 7, Careful: tt.careful, Debug: true, Logger: quiet})
			mv, err := e.Pick(context.Background(), b, tt.player)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if tt.want != "" && mv.Notation() != tt.want {
				t.Errorf("unexpected move: got=%s want=%s", mv.Notation(), tt.want)
			}
			if tt.avoid != "" && mv.Notation() == tt.avoid {
				t.Errorf("unexpected move: got=%s", mv.Notation())
			}
			if mv.Player != tt.player || !b.IsSafe(mv.From, mv.To) {
				t.Errorf("unexpected unsafe move: %s", mv.Notation())
			}
			if !b.Equal(before) {
				t.Errorf("board modified by Pick:\n%s", b.Dump())
			}
			if e.Nodes() == 0 {
				t.Errorf("expected nodes to be counted")
			}
		})
	}
}

func TestPickDeterministic(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	e1 := NewEngine(&EngineConfig{Seed: 99, Logger: quiet})
	e2 := NewEngine(&EngineConfig{Seed: 99, Logger: quiet})
	for i := 0; i < 5; i++ {
		mv1, err := e1.Pick(context.Background(), b, board.Player1)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		mv2, err := e2.Pick(context.Background(), b, board.Player1)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if mv1 != mv2 {
			t.Errorf("unexpected divergence: got=%s want=%s", mv2.Notation(), mv1.Notation())
		}
	}
}

func TestPickNoMoves(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for _, mv := range [][2]string{{"f6", "f5"}, {"e1", "e3"}, {"g6", "g4"}, {"d0", "h4"}} {
		b.ForceMove(position.MustParse(mv[0]), position.MustParse(mv[1]))
	}
	e := NewEngine(&EngineConfig{Logger: quiet})
	if _, err := e.Pick(context.Background(), b, board.Player1); !errors.Is(err, ErrNoMoves) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoMoves)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Pick(ctx, b, board.Player2); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := Evaluate(b, board.Player1); got != 0 {
		t.Errorf("unexpected score for symmetric position: got=%d want=0", got)
	}
	b.ForceMove(position.MustParse("d7"), position.MustParse("d0"))
	if got := Evaluate(b, board.Player1); got <= 0 {
		t.Errorf("expected positive score after winning the queen: got=%d", got)
	}
	if Evaluate(b, board.Player1) != -Evaluate(b, board.Player2) {
		t.Errorf("expected evaluation to be antisymmetric")
	}
}
