package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/daystram/chess/position"
)

// UnmarshalLayout places pieces described by a FEN-like placement string onto an
// empty board. Rows are listed from row 0 to row 7, upper case belongs to
// Player1, digits skip empty cells. Pawns found off their starting row are
// marked as moved.
func UnmarshalLayout(layout string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	rows := strings.Split(strings.TrimSpace(layout), "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidLayout)
	}
	var kings [2 + 1]int
	for y := position.Pos(0); y < Height; y++ {
		ptrX := -1
		x := position.Pos(0)
		for ; x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[y]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidLayout)
			}
			var s Player
			var k Kind
			switch cell := rune(rows[y][ptrX]); cell {
			case 'P':
				s, k = Player1, KindPawn
			case 'B':
				s, k = Player1, KindBishop
			case 'N':
				s, k = Player1, KindKnight
			case 'R':
				s, k = Player1, KindRook
			case 'Q':
				s, k = Player1, KindQueen
			case 'K':
				s, k = Player1, KindKing
			case 'p':
				s, k = Player2, KindPawn
			case 'b':
				s, k = Player2, KindBishop
			case 'n':
				s, k = Player2, KindKnight
			case 'r':
				s, k = Player2, KindRook
			case 'q':
				s, k = Player2, KindQueen
			case 'k':
				s, k = Player2, KindKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidLayout)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidLayout, string(cell))
			}
			if k == KindKing {
				kings[s]++
				if kings[s] > 1 {
					return fmt.Errorf("%w: more than one king for %s", ErrInvalidLayout, s)
				}
			}
			b.place(s, k, y*Width+x, k == KindPawn && y != s.PawnRow())
		}
		if ptrX != len(rows[y])-1 {
			return fmt.Errorf("%w: extra cells on row %d", ErrInvalidLayout, y)
		}
	}
	return nil
}

func MarshalLayout(b *Board) string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[y*Width+x] == nil; x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				p := b.cells[y*Width+x]
				_, _ = builder.WriteString(p.Kind.SymbolLayout(p.Owner))
			}
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}

// Layout is MarshalLayout of b.
func (b *Board) Layout() string {
	return MarshalLayout(b)
}
