package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// PosNone marks the absence of a position.
	PosNone Pos = -1
)

var (
	// ErrInvalidCoordinate represents an unknown tile code or an out of bounds coordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Pos is a row-major cell index. Row is the rank digit of a tile code, column the
// file letter, so "b7" is row 7 column 1.
type Pos int8

// NewPos returns the position for the given row and column.
func NewPos(row, col int) (Pos, error) {
	if !Inside(row, col) {
		return PosNone, fmt.Errorf("%w: row=%d col=%d", ErrInvalidCoordinate, row, col)
	}
	return Pos(row)*MaxComponentScalar + Pos(col), nil
}

// NewPosFromNotation translates a tile code such as "e7" into a position.
func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return PosNone, err
	}
	return MaxComponentScalar*row + col, nil
}

// MustParse is NewPosFromNotation for compile-time known tile codes.
func MustParse(n string) Pos {
	p, err := NewPosFromNotation(n)
	if err != nil {
		panic(err)
	}
	return p
}

// Inside reports whether row and col address a cell of the board.
func Inside(row, col int) bool {
	return row >= 0 && row < int(MaxComponentScalar) && col >= 0 && col < int(MaxComponentScalar)
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return p.Col().NotationComponentCol() + p.Row().NotationComponentRow()
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

// Offset steps dRow rows and dCol columns away from p. The second value is false
// when the step leaves the board.
func (p Pos) Offset(dRow, dCol int) (Pos, bool) {
	if !p.IsValid() {
		return PosNone, false
	}
	row, col := int(p.Row())+dRow, int(p.Col())+dCol
	if !Inside(row, col) {
		return PosNone, false
	}
	return Pos(row)*MaxComponentScalar + Pos(col), true
}

func notationToRowCol(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, n)
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, n)
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, n)
	}
	return row, col, nil
}

func notationToCol(c byte) (Pos, error) {
	if c < 'a' || c >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidCoordinate
	}
	return Pos(c - 'a'), nil
}

func notationToRow(r byte) (Pos, error) {
	if r < '0' || r >= '0'+byte(MaxComponentScalar) {
		return 0, ErrInvalidCoordinate
	}
	return Pos(r - '0'), nil
}

func (p Pos) NotationComponentCol() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentRow() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p))
}
