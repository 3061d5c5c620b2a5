package bench

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chess/board"
)

// Counters tallies the leaves of a perft run.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft counts the legal move tree of the given depth from layout, Player1 to
// move. Root moves and their subtree sizes are sent to out when verbose.
func Perft(ctx context.Context, depth int, layout string, parallel, verbose bool, out chan string) (Counters, error) {
	var c Counters
	b, err := board.NewBoard(
		board.WithLayout(layout),
	)
	if err != nil {
		return c, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(ctx, b, board.Player1, depth, true, verbose, out, &c)
	end := time.Now()
	if err := ctx.Err(); err != nil {
		return c, err
	}

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/(end.Sub(start).Seconds()+1e-9)), c.Captures, c.Castles, c.Promotions, c.Checks, end.Sub(start).Seconds())
	}
	return c, nil
}

type perftFunc func(ctx context.Context, b *board.Board, s board.Player, d int, root, verbose bool, out chan string, c *Counters) uint64

func runPerft(ctx context.Context, b *board.Board, s board.Player, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}
	if ctx.Err() != nil {
		return 0
	}

	var sum uint64
	for _, mv := range b.GenerateMoves(s) {
		var child uint64
		unApply := b.Apply(mv)
		if d != 1 {
			child = runPerft(ctx, b, s.Opposite(), d-1, false, verbose, out, c)
		} else {
			child = 1
			c.Nodes++
			leaf := tallyLeaf(b, mv)
			c.Captures += leaf.Captures
			c.Castles += leaf.Castles
			c.Promotions += leaf.Promotions
			c.Checks += leaf.Checks
		}
		unApply()
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.Notation(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(ctx context.Context, b *board.Board, s board.Player, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}
	if ctx.Err() != nil {
		return 0
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves(s) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb := b.Clone()
			bb.Apply(mv)
			if d != 1 {
				var local Counters
				child = runPerft(ctx, bb, s.Opposite(), d-1, false, false, nil, &local)
				atomic.AddUint64(&c.Nodes, local.Nodes)
				atomic.AddUint64(&c.Captures, local.Captures)
				atomic.AddUint64(&c.Castles, local.Castles)
				atomic.AddUint64(&c.Promotions, local.Promotions)
				atomic.AddUint64(&c.Checks, local.Checks)
			} else {
				child = 1
				leaf := tallyLeaf(bb, mv)
				atomic.AddUint64(&c.Nodes, 1)
				atomic.AddUint64(&c.Captures, leaf.Captures)
				atomic.AddUint64(&c.Castles, leaf.Castles)
				atomic.AddUint64(&c.Promotions, leaf.Promotions)
				atomic.AddUint64(&c.Checks, leaf.Checks)
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.Notation(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// tallyLeaf classifies mv, which has just been applied to b.
func tallyLeaf(b *board.Board, mv board.Move) Counters {
	var leaf Counters
	if mv.IsCapture {
		leaf.Captures++
	}
	if mv.IsCastle {
		leaf.Castles++
	}
	if mv.IsPromote != board.KindUnknown {
		leaf.Promotions++
	}
	if b.IsCheck(mv.Player.Opposite()) {
		leaf.Checks++
	}
	return leaf
}
