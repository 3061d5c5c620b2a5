package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/chess/position"
)

const maxScrambleAttempts = 1000

var (
	ErrScrambleExhausted = errors.New("no scramble without check found")
	ErrInvalidScramble   = errors.New("invalid scramble mode")
)

// ScrambleMode picks which cells a scramble may use.
type ScrambleMode uint8

const (
	ScrambleModeNone ScrambleMode = iota
	// ScrambleModeMuster keeps every piece inside its owner's home rows.
	ScrambleModeMuster
	// ScrambleModeBattlefield spreads both players over the whole board.
	ScrambleModeBattlefield
)

func ParseScrambleMode(s string) (ScrambleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false":
		return ScrambleModeNone, nil
	case "muster", "true":
		return ScrambleModeMuster, nil
	case "battlefield":
		return ScrambleModeBattlefield, nil
	default:
		return ScrambleModeNone, fmt.Errorf("%w: %q", ErrInvalidScramble, s)
	}
}

func (m ScrambleMode) String() string {
	switch m {
	case ScrambleModeMuster:
		return "muster"
	case ScrambleModeBattlefield:
		return "battlefield"
	default:
		return "none"
	}
}

// ScrambleWith applies the scramble of mode m. ScrambleModeNone leaves b as is.
func (b *Board) ScrambleWith(m ScrambleMode, r *PseudoRand) error {
	switch m {
	case ScrambleModeNone:
		return nil
	case ScrambleModeMuster:
		return b.Scramble(r)
	case ScrambleModeBattlefield:
		return b.ScrambleBattlefield(r)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidScramble, m)
	}
}

// Scramble reshuffles each player's pieces across their two home rows until
// neither side is in check. Meant to be applied right after NewGame.
func (b *Board) Scramble(r *PseudoRand) error {
	for attempt := 0; attempt < maxScrambleAttempts; attempt++ {
		for _, s := range Players {
			b.scrambleRows(r, s)
		}
		if !b.IsCheck(Player1) && !b.IsCheck(Player2) {
			return nil
		}
	}
	return ErrScrambleExhausted
}

// ScrambleBattlefield spreads the pieces of both players over random cells of
// the whole board until neither side is in check and no pawn stands on its
// farthest row.
func (b *Board) ScrambleBattlefield(r *PseudoRand) error {
	pieces := append(b.Pieces(Player1), b.Pieces(Player2)...)
	cells := make([]position.Pos, TotalCells)
	for i := range cells {
		cells[i] = position.Pos(i)
	}
	for attempt := 0; attempt < maxScrambleAttempts; attempt++ {
		r.Shuffle(len(cells), func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})
		b.scatter(pieces, cells)
		if !b.IsCheck(Player1) && !b.IsCheck(Player2) && !b.PromoteAny() {
			return nil
		}
	}
	return ErrScrambleExhausted
}

func (b *Board) scrambleRows(r *PseudoRand, s Player) {
	var cells []position.Pos
	for _, y := range s.HomeRows() {
		for x := position.Pos(0); x < Width; x++ {
			pos := y*Width + x
			if occupant := b.cells[pos]; occupant == nil || occupant.Owner == s {
				cells = append(cells, pos)
			}
		}
	}
	pieces := b.Pieces(s)
	if len(pieces) > len(cells) {
		return
	}
	r.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	b.scatter(pieces, cells)
}

// scatter lifts pieces off the grid and drops the i-th one on cells[i]. Pawns
// count as moved unless they land on their start row, as a layout would set up.
func (b *Board) scatter(pieces []*Piece, cells []position.Pos) {
	for _, p := range pieces {
		b.cells[p.Pos] = nil
	}
	for i, p := range pieces {
		p.Pos = cells[i]
		p.Moved = p.Kind == KindPawn && p.Pos.Row() != p.Owner.PawnRow()
		b.cells[p.Pos] = p
	}
}
