package board

import (
	"fmt"
)

// CanPromote reports whether p is a pawn standing on its owner's farthest row.
func (b *Board) CanPromote(p *Piece) bool {
	return p != nil && p.Kind == KindPawn && p.Owner.IsValid() && p.Pos.Row() == p.Owner.PromotionRow()
}

func (b *Board) PromoteAny() bool {
	for _, s := range Players {
		for _, p := range b.registry[s].pieces {
			if b.CanPromote(p) {
				return true
			}
		}
	}
	return false
}

// PawnsToPromote returns Player1's promotable pawns first, each in key order.
func (b *Board) PawnsToPromote() []*Piece {
	var ps []*Piece
	for _, s := range Players {
		for _, p := range b.Pieces(s) {
			if b.CanPromote(p) {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

// Promote retires the pawn and puts a new piece of kind k in its place, keyed
// with the next unused index for that kind. Promote does not check that the pawn
// reached its farthest row; see CanPromote.
func (b *Board) Promote(pawn *Piece, k Kind) (*Piece, error) {
	if !k.IsPromoteCandidate() {
		return nil, fmt.Errorf("%w: cannot promote to %q", ErrInvalidPromotion, k.Name())
	}
	if pawn == nil || !pawn.Owner.IsValid() {
		return nil, fmt.Errorf("%w: no pawn given", ErrPieceNotFound)
	}
	reg := b.registry[pawn.Owner]
	if got, ok := reg.Get(pawn.Key); !ok || got != pawn || b.At(pawn.Pos) != pawn {
		return nil, fmt.Errorf("%w: %s", ErrPieceNotFound, pawn)
	}
	if pawn.Kind != KindPawn {
		return nil, fmt.Errorf("%w: %s is not a pawn", ErrInvalidPromotion, pawn)
	}
	reg.remove(pawn.Key)
	return b.place(pawn.Owner, k, pawn.Pos, pawn.Moved), nil
}
