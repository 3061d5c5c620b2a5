package board

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/daystram/chess/position"
)

// bitmap marks cells, bit i being position.Pos(i).
type bitmap uint64

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= 1 << uint(pos)
}

func (bm bitmap) IsSet(pos position.Pos) bool {
	return pos.IsValid() && bm&(1<<uint(pos)) != 0
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Dump draws the bitmap with row 0 on top, like Board.Dump.
func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm.IsSet(y*Width + x) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentCol()))
	}
	return builder.String()
}

// SortNotation orders positions by tile code, e.g. a5 before c5 before c7.
func SortNotation(ps []position.Pos) []position.Pos {
	slices.SortFunc(ps, func(p, q position.Pos) int {
		return strings.Compare(p.Notation(), q.Notation())
	})
	return ps
}

// Notations maps positions to their tile codes.
func Notations(ps []position.Pos) []string {
	ns := make([]string, 0, len(ps))
	for _, p := range ps {
		ns = append(ns, p.Notation())
	}
	return ns
}
