package board

import (
	"testing"

	"github.com/daystram/chess/position"
)

func TestIsCheck(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		moves  [][2]string
		layout string
		want   [2 + 1]bool
	}{
		{
			name: "new game",
			want: [2 + 1]bool{Player1: false, Player2: false},
		},
		{
			name: "king walked into knight",
			moves: append(append([][2]string{}, openingSetup...),
				[2]string{"e7", "d3"}, [2]string{"g1", "g4"}, [2]string{"d0", "d7"}),
			want: [2 + 1]bool{Player1: true, Player2: false},
		},
		{
			name:   "lone kings",
			layout: "4k3/8/8/8/8/8/8/4K3",
			want:   [2 + 1]bool{Player1: false, Player2: false},
		},
		{
			name:   "no king is never in check",
			layout: "8/8/8/8/8/8/8/q7",
			want:   [2 + 1]bool{Player1: false, Player2: false},
		},
		{
			name:   "rook on open file",
			layout: "4k3/8/8/8/8/8/8/4R2K",
			want:   [2 + 1]bool{Player1: false, Player2: true},
		},
		{
			name:   "pawn attacks diagonally",
			layout: "8/8/8/3k4/4P3/8/8/7K",
			want:   [2 + 1]bool{Player1: false, Player2: true},
		},
		{
			name:   "pawn does not attack forward",
			layout: "8/8/8/4k3/4P3/8/8/7K",
			want:   [2 + 1]bool{Player1: false, Player2: false},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newLayoutBoard(t, tt.layout, tt.moves)

			for _, s := range Players {
				before := b.Clone()
				if got := b.IsCheck(s); got != tt.want[s] {
					t.Errorf("unexpected check for %s: got=%v want=%v", s, got, tt.want[s])
				}
				if got := b.IsCheck(s); got != tt.want[s] {
					t.Errorf("unexpected repeated check for %s: got=%v want=%v", s, got, tt.want[s])
				}
				if !b.Equal(before) {
					t.Errorf("board modified by IsCheck")
				}
			}
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		moves [][2]string
		mated Player
	}{
		{
			name: "queen and rook corner",
			moves: append(append([][2]string{}, openingSetup...),
				[2]string{"d7", "d3"}, [2]string{"g1", "g4"}, [2]string{"d0", "c7"},
				[2]string{"c7", "a7"}, [2]string{"c5", "a4"}, [2]string{"e7", "c7"}),
			mated: Player1,
		},
		{
			name:  "fool's mate",
			moves: [][2]string{{"f6", "f5"}, {"e1", "e3"}, {"g6", "g4"}, {"d0", "h4"}},
			mated: Player1,
		},
		{
			name:  "reversed fool's mate",
			moves: [][2]string{{"e6", "e4"}, {"f1", "f2"}, {"d6", "d4"}, {"g1", "g3"}, {"d7", "h3"}},
			mated: Player2,
		},
		{
			name:  "grob's attack",
			moves: [][2]string{{"g6", "g4"}, {"e1", "e3"}, {"f6", "f4"}, {"d0", "h4"}},
			mated: Player1,
		},
		{
			name: "dutch defense",
			moves: [][2]string{
				{"d6", "d4"}, {"f1", "f3"}, {"c7", "g3"}, {"h1", "h2"}, {"g3", "h4"},
				{"g1", "g3"}, {"e6", "e4"}, {"g3", "h4"}, {"d7", "h3"},
			},
			mated: Player2,
		},
		{
			name: "bird's opening",
			moves: [][2]string{
				{"f6", "f4"}, {"e1", "e3"}, {"f4", "e3"}, {"d1", "d2"}, {"e3", "d2"}, {"f0", "d2"},
				{"b7", "c5"}, {"d0", "h4"}, {"g6", "g5"}, {"h4", "g5"}, {"h6", "g5"}, {"d2", "g5"},
			},
			mated: Player1,
		},
		{
			name: "caro-kann smothered mate",
			moves: [][2]string{
				{"e6", "e4"}, {"c1", "c2"}, {"d6", "d4"}, {"d1", "d3"}, {"b7", "c5"}, {"d3", "e4"},
				{"c5", "e4"}, {"b0", "d1"}, {"d7", "e6"}, {"g0", "f2"}, {"e4", "d2"},
			},
			mated: Player2,
		},
		{
			name: "italian game smothered mate",
			moves: [][2]string{
				{"e6", "e4"}, {"e1", "e3"}, {"g7", "f5"}, {"b0", "c2"}, {"f7", "c4"}, {"c2", "d4"},
				{"f5", "e3"}, {"d0", "g3"}, {"e3", "f1"}, {"g3", "g6"}, {"h7", "f7"}, {"g6", "e4"},
				{"c4", "e6"}, {"d4", "f5"},
			},
			mated: Player1,
		},
		{
			name: "owen's defense",
			moves: [][2]string{
				{"e6", "e4"}, {"b1", "b2"}, {"d6", "d4"}, {"c0", "b1"}, {"f7", "d5"}, {"f1", "f3"},
				{"e4", "f3"}, {"b1", "g6"}, {"d7", "h3"}, {"g1", "g2"}, {"f3", "g2"}, {"g0", "f2"},
				{"g2", "h1"}, {"f2", "h3"}, {"d5", "g2"},
			},
			mated: Player2,
		},
		{
			name: "englund gambit",
			moves: [][2]string{
				{"d6", "d4"}, {"e1", "e3"}, {"d4", "e3"}, {"d0", "e1"}, {"g7", "f5"}, {"b0", "c2"},
				{"c7", "f4"}, {"e1", "b4"}, {"f4", "d6"}, {"b4", "b6"}, {"d6", "c5"}, {"f0", "b4"},
				{"d7", "d6"}, {"b4", "c5"}, {"d6", "c5"}, {"b6", "c7"},
			},
			mated: Player1,
		},
		{
			name: "budapest defense smothered mate",
			moves: [][2]string{
				{"d6", "d4"}, {"g0", "f2"}, {"c6", "c4"}, {"e1", "e3"}, {"d4", "e3"}, {"f2", "g4"},
				{"g7", "f5"}, {"b0", "c2"}, {"c7", "f4"}, {"f0", "b4"}, {"b7", "d6"}, {"d0", "e1"},
				{"a6", "a5"}, {"g4", "e3"}, {"a5", "b4"}, {"e3", "d5"},
			},
			mated: Player1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBoard(t, tt.moves)
			before := b.Clone()

			if !b.IsCheckmate(tt.mated) {
				t.Errorf("expected %s checkmated\n%s", tt.mated, b.Dump())
			}
			if b.IsCheckmate(tt.mated.Opposite()) {
				t.Errorf("unexpected checkmate for %s\n%s", tt.mated.Opposite(), b.Dump())
			}
			if b.IsStalemate(tt.mated) {
				t.Errorf("unexpected stalemate for %s", tt.mated)
			}
			if got := b.State(tt.mated); got != StateCheckmate {
				t.Errorf("unexpected state: got=%s want=%s", got, StateCheckmate)
			}
			if mvs := b.GenerateMoves(tt.mated); len(mvs) != 0 {
				t.Errorf("unexpected moves for checkmated player: got=%v", mvs)
			}
			if !b.Equal(before) {
				t.Errorf("board modified by checkmate detection")
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		layout string
		player Player
		want   State
	}{
		{name: "new game", layout: DefaultLayout, player: Player1, want: StateRunning},
		{name: "cornered king", layout: "k7/2Q5/1K6/8/8/8/8/8", player: Player2, want: StateStalemate},
		{name: "cornered king other side to move", layout: "k7/2Q5/1K6/8/8/8/8/8", player: Player1, want: StateRunning},
		{name: "queen guards the flight squares", layout: "k7/8/1Q6/8/8/8/8/7K", player: Player2, want: StateStalemate},
		{name: "queen checks", layout: "k7/8/2Q5/8/8/8/8/7K", player: Player2, want: StateCheck},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newLayoutBoard(t, tt.layout, nil)

			if got := b.State(tt.player); got != tt.want {
				t.Errorf("unexpected state: got=%s want=%s", got, tt.want)
			}
			if got := b.IsStalemate(tt.player); got != (tt.want == StateStalemate) {
				t.Errorf("unexpected stalemate: got=%v", got)
			}
			if b.IsStalemate(tt.player) && b.IsCheckmate(tt.player) {
				t.Errorf("stalemate and checkmate at once")
			}
		})
	}
}

func TestIsSafe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		moves    [][2]string
		from, to string
		want     bool
	}{
		{
			name: "knight leaves the king exposed",
			moves: append(append([][2]string{}, openingSetup...),
				[2]string{"d7", "d3"}, [2]string{"g1", "g4"}, [2]string{"d0", "d7"},
				[2]string{"d7", "c7"}, [2]string{"c7", "a7"}, [2]string{"c5", "b7"}, [2]string{"e7", "c7"}),
			from: "b7",
			to:   "a5",
			want: false,
		},
		{
			name: "opening push",
			from: "e6",
			to:   "e4",
			want: true,
		},
		{
			name: "empty source",
			from: "e4",
			to:   "e3",
			want: false,
		},
		{
			name:  "king captures its attacker",
			moves: [][2]string{{"d0", "d6"}},
			from:  "e7",
			to:    "d6",
			want:  true,
		},
		{
			name:  "king stays in check",
			moves: [][2]string{{"d0", "d6"}},
			from:  "a6",
			to:    "a5",
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBoard(t, tt.moves)
			before := b.Clone()
			handles := map[position.Pos]*Piece{}
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				handles[pos] = b.At(pos)
			}

			if got := b.IsSafe(position.MustParse(tt.from), position.MustParse(tt.to)); got != tt.want {
				t.Errorf("unexpected safe: got=%v want=%v", got, tt.want)
			}
			if !b.Equal(before) {
				t.Errorf("board not restored after IsSafe:\n%s", b.Dump())
			}
			for pos, p := range handles {
				if b.At(pos) != p {
					t.Errorf("piece handle changed at %s", pos)
				}
			}
		})
	}
}

func TestLegalMoves(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, [][2]string{{"d0", "d6"}})
	king, _ := b.PieceAt("e7")
	got := Notations(b.LegalMoves(king))
	if len(got) != 1 || got[0] != "d6" {
		t.Errorf("unexpected legal moves: got=%v want=[d6]", got)
	}
	pawn, _ := b.PieceAt("a6")
	if got := b.LegalMoves(pawn); len(got) != 0 {
		t.Errorf("unexpected legal moves while in check: got=%v", got)
	}
}

func newLayoutBoard(t *testing.T, layout string, moves [][2]string) *Board {
	t.Helper()
	if layout == "" {
		layout = DefaultLayout
	}
	b, err := NewBoard(WithLayout(layout))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for _, mv := range moves {
		b.ForceMove(position.MustParse(mv[0]), position.MustParse(mv[1]))
	}
	return b
}

func TestIsSafeRestoresEveryMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		layout string
		moves  [][2]string
	}{
		{name: "start"},
		{name: "opening", moves: openingSetup},
		{name: "fool's mate", moves: [][2]string{{"f6", "f5"}, {"e1", "e3"}, {"g6", "g4"}, {"d0", "h4"}}},
		{name: "promotion and castle", layout: "r3k2r/P6p/8/3q4/4Q3/8/p6P/R3K2R"},
		{name: "captures everywhere", layout: "4k3/3p1p2/2N1B3/1r1Q1b2/2P1n3/3R4/8/4K3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newLayoutBoard(t, tt.layout, tt.moves)
			before := b.Clone()
			handles := map[position.Pos]*Piece{}
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				handles[pos] = b.At(pos)
			}

			for _, s := range Players {
				for _, p := range b.Pieces(s) {
					from := p.Pos
					for _, to := range b.ValidMoves(p) {
						b.IsSafe(from, to)
						if !b.Equal(before) {
							t.Fatalf("board not restored after IsSafe %s%s:\n%s", from, to, b.Dump())
						}
						for pos, h := range handles {
							if b.At(pos) != h {
								t.Fatalf("piece handle changed at %s after IsSafe %s%s", pos, from, to)
							}
						}
					}
				}
			}
		})
	}
}
