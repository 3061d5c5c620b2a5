package board

import (
	"github.com/daystram/chess/position"
)

// ValidMoves returns the pseudo-legal destinations of p: cells its movement
// pattern reaches on this board, never a friendly occupied cell, without regard
// to whether the move would leave its own king in check. The order is stable
// for a given board.
func (b *Board) ValidMoves(p *Piece) []position.Pos {
	if p == nil || b.At(p.Pos) != p {
		return nil
	}
	return b.genValidDestination(p.Pos, p.Owner, p.Kind)
}

// genValidDestination generates the next valid positions.
// This generate function is not strictly legal (e.g., king may be left in check).
func (b *Board) genValidDestination(from position.Pos, s Player, k Kind) []position.Pos {
	switch k {
	case KindPawn:
		return b.genPawnDestination(from, s)
	case KindBishop:
		return b.HitDiagonals(from, s, 0)
	case KindKnight:
		return b.hitOffsets(from, s, offsetsKnight[:])
	case KindRook:
		return b.HitLaterals(from, s, 0)
	case KindQueen:
		return append(b.HitDiagonals(from, s, 0), b.HitLaterals(from, s, 0)...)
	case KindKing:
		return append(b.HitDiagonals(from, s, 1), b.HitLaterals(from, s, 1)...)
	default:
		return nil
	}
}

func (b *Board) genPawnDestination(from position.Pos, s Player) []position.Pos {
	var mvs []position.Pos
	fwd := s.Forward()
	if moveN1, ok := from.Offset(fwd, 0); ok && b.cells[moveN1] == nil {
		mvs = append(mvs, moveN1)
		if !b.cells[from].Moved {
			if moveN2, ok := from.Offset(2*fwd, 0); ok && b.cells[moveN2] == nil {
				mvs = append(mvs, moveN2)
			}
		}
	}
	for _, side := range [2]int{-1, 1} {
		capture, ok := from.Offset(fwd, side)
		if !ok {
			continue
		}
		if target := b.cells[capture]; target != nil && target.Owner != s {
			mvs = append(mvs, capture)
		}
	}
	return mvs
}

// genAttackArea marks every pseudo-legal destination of s's pieces.
func (b *Board) genAttackArea(s Player) bitmap {
	var attackBM bitmap
	for _, p := range b.registry[s].pieces {
		for _, pos := range b.genValidDestination(p.Pos, s, p.Kind) {
			attackBM.Set(pos)
		}
	}
	return attackBM
}

// DumpAttackArea draws the cells s's pieces can move to.
func (b *Board) DumpAttackArea(s Player) string {
	if !s.IsValid() {
		return bitmap(0).Dump()
	}
	return b.genAttackArea(s).Dump()
}

// GenerateMoves lists s's legal moves: every safe piece move, promotions
// expanded per candidate kind, and king side castling when castle safe.
func (b *Board) GenerateMoves(s Player) []Move {
	if !s.IsValid() {
		return nil
	}
	var mvs []Move
	for _, p := range b.Pieces(s) {
		from := p.Pos
		for _, to := range b.ValidMoves(p) {
			if !b.IsSafe(from, to) {
				continue
			}
			mv := Move{
				From:   from,
				To:     to,
				Kind:   p.Kind,
				Player: s,
			}
			if target := b.cells[to]; target != nil {
				mv.IsCapture = true
				mv.Captured = target.Kind
			}
			if p.Kind == KindPawn && to.Row() == s.PromotionRow() {
				for _, prom := range PawnPromoteCandidates {
					mv.IsPromote = prom
					mvs = append(mvs, mv)
				}
				continue
			}
			mvs = append(mvs, mv)
		}
	}
	if b.IsCastleSafe(s) {
		mvs = append(mvs, Move{
			From:     posCastling[s][KindKing][0],
			To:       posCastling[s][KindKing][1],
			Kind:     KindKing,
			Player:   s,
			IsCastle: true,
		})
	}
	return mvs
}
