package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chess/position"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing

	kindCount = 6 + 1
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Kind{KindKnight, KindBishop, KindRook, KindQueen}

// ParseKind accepts full names ("queen") and single letters ("q").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pawn", "pond", "p":
		return KindPawn, nil
	case "bishop", "b":
		return KindBishop, nil
	case "knight", "n":
		return KindKnight, nil
	case "rook", "r":
		return KindRook, nil
	case "queen", "q":
		return KindQueen, nil
	case "king", "k":
		return KindKing, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) IsPromoteCandidate() bool {
	switch k {
	case KindKnight, KindBishop, KindRook, KindQueen:
		return true
	default:
		return false
	}
}

func (k Kind) SymbolAlgebra() string {
	if k == KindPawn {
		return ""
	}
	return k.SymbolLayout(Player1)
}

// SymbolLayout is upper case for Player1 and lower case for Player2.
func (k Kind) SymbolLayout(owner Player) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if owner == Player2 {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(solid bool) string {
	if solid {
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	}
	switch k {
	case KindPawn:
		return "♙"
	case KindBishop:
		return "♗"
	case KindKnight:
		return "♘"
	case KindRook:
		return "♖"
	case KindQueen:
		return "♕"
	case KindKing:
		return "♔"
	default:
		return ""
	}
}

// Key identifies a piece within its owner's registry.
type Key struct {
	Kind  Kind
	Index uint8
}

func (k Key) String() string {
	return strings.ToLower(k.Kind.SymbolLayout(Player1)) + strconv.Itoa(int(k.Index))
}

// compare orders keys by kind, then by index.
func (k Key) compare(o Key) int {
	if k.Kind != o.Kind {
		return int(k.Kind) - int(o.Kind)
	}
	return int(k.Index) - int(o.Index)
}

// Piece is owned by the Board it was created on. Handles stay valid until the
// piece is captured or promoted away.
type Piece struct {
	Kind  Kind
	Owner Player
	Pos   position.Pos
	Moved bool
	Key   Key
}

func (p *Piece) String() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%s %s (%s) at %s", p.Owner, p.Kind, p.Key, p.Pos)
}
