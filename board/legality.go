package board

import (
	"github.com/daystram/chess/position"
)

// IsCheck reports whether s's king stands on a pseudo-legal destination of any
// opponent piece. A player without a king on the board is never in check.
func (b *Board) IsCheck(s Player) bool {
	king := b.King(s)
	if king == nil {
		return false
	}
	return b.genAttackArea(s.Opposite()).IsSet(king.Pos)
}

// IsSafe reports whether moving the piece on from to to leaves its owner out of
// check. The move is simulated and always rolled back before returning.
func (b *Board) IsSafe(from, to position.Pos) bool {
	piece := b.At(from)
	if piece == nil {
		return false
	}
	undo := b.simulate(from, to)
	defer undo()
	return !b.IsCheck(piece.Owner)
}

// IsCheckmate reports whether s is in check with no safe move to resolve it.
func (b *Board) IsCheckmate(s Player) bool {
	if !b.IsCheck(s) {
		return false
	}
	return !b.hasSafeMove(s)
}

// IsStalemate reports whether s is not in check but has no safe move.
func (b *Board) IsStalemate(s Player) bool {
	if !s.IsValid() || b.IsCheck(s) {
		return false
	}
	return !b.hasSafeMove(s)
}

func (b *Board) hasSafeMove(s Player) bool {
	for _, p := range b.Pieces(s) {
		from := p.Pos
		for _, to := range b.ValidMoves(p) {
			if b.IsSafe(from, to) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns the safe destinations of p sorted by tile code.
func (b *Board) LegalMoves(p *Piece) []position.Pos {
	if p == nil {
		return nil
	}
	from := p.Pos
	var mvs []position.Pos
	for _, to := range b.ValidMoves(p) {
		if b.IsSafe(from, to) {
			mvs = append(mvs, to)
		}
	}
	return SortNotation(mvs)
}

// State evaluates the position for s, the player about to move.
func (b *Board) State(s Player) State {
	if !s.IsValid() {
		return StateUnknown
	}
	check := b.IsCheck(s)
	canMove := b.hasSafeMove(s)
	switch {
	case check && !canMove:
		return StateCheckmate
	case check:
		return StateCheck
	case !canMove:
		return StateStalemate
	default:
		return StateRunning
	}
}
