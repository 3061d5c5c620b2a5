package board

import "github.com/daystram/chess/position"

type Move struct {
	From, To position.Pos
	Kind     Kind
	Player   Player

	IsCapture bool
	Captured  Kind
	IsCheck   bool
	IsCastle  bool
	IsPromote Kind
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsCastle {
		return "0-0"
	}
	nt := m.Kind.SymbolAlgebra()
	if m.IsCapture {
		if m.Kind == KindPawn {
			nt += m.From.Col().NotationComponentCol()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != KindUnknown {
		nt += m.IsPromote.SymbolAlgebra()
	}
	if m.IsCheck {
		nt += "+"
	}
	return nt
}

// Notation is the from and to tile codes followed by the lower case promotion
// letter, e.g. "f6f5" or "h1h0q".
func (m Move) Notation() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.IsPromote != KindUnknown {
		nt += m.IsPromote.SymbolLayout(Player2)
	}
	return nt
}

// Apply commits mv without legality checking and returns the closure that takes
// it back. Castling moves are applied hard; promotions mint a new key which
// unApply retires again.
func (b *Board) Apply(mv Move) (unApply func()) {
	if mv.IsCastle {
		hopsKing, hopsRook := posCastling[mv.Player][KindKing], posCastling[mv.Player][KindRook]
		king, rook := b.At(hopsKing[0]), b.At(hopsRook[0])
		if err := b.Castle(mv.Player, true); err != nil {
			return func() {}
		}
		return func() {
			_ = b.UndoCastle(mv.Player)
			// CanCastle held, so neither had moved
			king.Moved, rook.Moved = false, false
		}
	}

	if mv.From == mv.To || b.At(mv.From) == nil || !b.Inside(mv.To) {
		return func() {}
	}
	undo := b.simulate(mv.From, mv.To)
	if mv.IsPromote == KindUnknown {
		return undo
	}
	pawn := b.At(mv.To)
	if pawn == nil || pawn.Kind != KindPawn {
		return undo
	}
	reg := b.registry[pawn.Owner]
	next := reg.next
	promoted, err := b.Promote(pawn, mv.IsPromote)
	if err != nil {
		return undo
	}
	return func() {
		reg.remove(promoted.Key)
		reg.add(pawn)
		reg.next = next
		b.cells[mv.To] = pawn
		undo()
	}
}
