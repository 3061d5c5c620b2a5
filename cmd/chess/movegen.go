package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/daystram/chess/board"
)

func movegen(w io.Writer, b *board.Board, s board.Player, draw bool) error {
	log.Println("============ movegen")
	fmt.Fprintln(w, "to move:", s)
	fmt.Fprintln(w, b.Layout())
	fmt.Fprintln(w, b.Draw())
	fmt.Fprintln(w, b.State(s))
	fmt.Fprintln(w, "attacked by", s.Opposite())
	fmt.Fprintln(w, b.DumpAttackArea(s.Opposite()))
	dumpMoves(w, b, s)

	if draw {
		for _, mv := range b.GenerateMoves(s) {
			unApply := b.Apply(mv)
			fmt.Fprintln(w, mv)
			fmt.Fprintln(w, b.Draw())
			fmt.Fprintln(w, b.Layout())
			unApply()
		}
	}
	return nil
}

func dumpMoves(w io.Writer, b *board.Board, s board.Player) {
	mvs := b.GenerateMoves(s)
	for i, mv := range mvs {
		fmt.Fprintf(w, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.Notation(), mv.Algebra(), mv.Player, mv.Kind.Name(), mv.From, mv.To, mv.IsCapture, mv.IsCastle, mv.IsPromote.Name())
	}
}
