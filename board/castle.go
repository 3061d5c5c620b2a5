package board

import (
	"fmt"
)

// CanCastle reports whether s may castle king side: king and rook unmoved on
// their original squares with nothing between them.
//
// Neither the king's current check nor attacks on the squares it crosses are
// considered here. IsCastleSafe only looks at the square the king lands on.
func (b *Board) CanCastle(s Player) bool {
	if !s.IsValid() {
		return false
	}
	king := b.cells[posCastling[s][KindKing][0]]
	rook := b.cells[posCastling[s][KindRook][0]]
	if king == nil || rook == nil ||
		king.Kind != KindKing || rook.Kind != KindRook ||
		king.Owner != s || rook.Owner != s ||
		king.Moved || rook.Moved {
		return false
	}
	for _, pos := range posCastlingBetween[s] {
		if b.cells[pos] != nil {
			return false
		}
	}
	return true
}

// Castle moves the king two squares toward the rook and the rook to the square
// the king crossed. A hard castle marks both pieces as moved, a soft one leaves
// the flags as they were so UndoCastle can restore the position exactly.
func (b *Board) Castle(s Player, hard bool) error {
	if !b.CanCastle(s) {
		return fmt.Errorf("%w: %s", ErrCastleNotAllowed, s)
	}
	hopsKing := posCastling[s][KindKing]
	hopsRook := posCastling[s][KindRook]
	b.relocate(hopsKing[0], hopsKing[1])
	b.relocate(hopsRook[0], hopsRook[1])
	if hard {
		b.cells[hopsKing[1]].Moved = true
		b.cells[hopsRook[1]].Moved = true
	}
	return nil
}

// UndoCastle returns king and rook from their post-castle squares to their
// original ones. Moved flags are left untouched.
func (b *Board) UndoCastle(s Player) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, s)
	}
	hopsKing := posCastling[s][KindKing]
	hopsRook := posCastling[s][KindRook]
	king, rook := b.cells[hopsKing[1]], b.cells[hopsRook[1]]
	if king == nil || rook == nil ||
		king.Kind != KindKing || rook.Kind != KindRook ||
		king.Owner != s || rook.Owner != s ||
		b.cells[hopsKing[0]] != nil || b.cells[hopsRook[0]] != nil {
		return fmt.Errorf("%w: %s", ErrCastleNotApplied, s)
	}
	b.relocate(hopsKing[1], hopsKing[0])
	b.relocate(hopsRook[1], hopsRook[0])
	return nil
}

// IsCastleSafe reports whether s can castle without ending in check. The castle
// is applied softly and always undone before returning.
func (b *Board) IsCastleSafe(s Player) bool {
	if err := b.Castle(s, false); err != nil {
		return false
	}
	defer func() {
		_ = b.UndoCastle(s)
	}()
	return !b.IsCheck(s)
}
