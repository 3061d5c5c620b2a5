package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chess/position"
)

var (
	colorPlayer = [2 + 1]color.Attribute{
		Player1: color.FgRed,
		Player2: color.FgBlue,
	}
	colorTileLight = color.BgHiWhite
	colorTileDark  = color.BgWhite
	colorLabel     = color.New(color.Bold)
)

// Dump draws the board in plain ASCII, row 0 on top.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if p := b.cells[y*Width+x]; p != nil {
				sym = p.Kind.SymbolLayout(p.Owner)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentCol()))
	}
	return builder.String()
}

// Draw renders the board with coloured tiles and pieces. Colours are dropped
// when the output is not a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y))
		for x := position.Pos(0); x < Width; x++ {
			tile := colorTileLight
			if x%2^y%2 == 1 {
				tile = colorTileDark
			}
			c := color.New(tile)
			sym := " "
			if p := b.cells[y*Width+x]; p != nil {
				c.Add(colorPlayer[p.Owner], color.Bold)
				sym = p.Kind.SymbolUnicode(true)
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentCol()))
	}
	return builder.String()
}
