package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/daystram/chess/board"
	"github.com/daystram/chess/engine"
	"github.com/daystram/chess/game"
	"github.com/daystram/chess/record"
)

type selfplayConfig struct {
	Seed    uint64
	Careful bool
	// Plies caps the game length; zero plays until the game is over.
	Plies int
	Plain bool
	// Store and Save are optional; the finished game is saved when both are set.
	Store *record.Store
	Save  string
}

// selfplay lets two engines play each other from b and prints every ply.
func selfplay(ctx context.Context, w io.Writer, b *board.Board, cfg *selfplayConfig) (*game.Game, error) {
	log.Println("============ selfplay")
	quiet := func(...any) {}
	engines := [2 + 1]*engine.Engine{
		board.Player1: engine.NewEngine(&engine.EngineConfig{Seed: cfg.Seed, Careful: cfg.Careful, Logger: quiet}),
		board.Player2: engine.NewEngine(&engine.EngineConfig{Seed: cfg.Seed + 1, Careful: cfg.Careful, Logger: quiet}),
	}
	g, err := game.NewGame(
		game.WithBoard(b),
		game.WithPlayerKind(board.Player1, game.PlayerKindComputer),
		game.WithPlayerKind(board.Player2, game.PlayerKindComputer),
		game.WithLogger(quiet),
	)
	if err != nil {
		return nil, err
	}
	draw := func() {
		if cfg.Plain {
			fmt.Fprintln(w, g.Board().Dump())
		} else {
			fmt.Fprintln(w, g.Board().Draw())
		}
	}
	draw()

	var timesPick, timesApply []time.Duration
	for ply := 0; !g.IsOver() && (cfg.Plies <= 0 || ply < cfg.Plies); ply++ {
		s := g.Turn()
		t1 := time.Now()
		mv, err := engines[s].Pick(ctx, g.Board(), s)
		t2 := time.Now()
		if err != nil {
			return g, err
		}
		timesPick = append(timesPick, t2.Sub(t1))

		t1 = time.Now()
		if err := g.Apply(mv); err != nil {
			return g, err
		}
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		mvs := g.Log()
		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", ply/2+1, s, mvs[len(mvs)-1])
		draw()
		fmt.Fprintln(w, g.Board().Layout())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "result:", g.Result())
	fmt.Fprintln(w, g.History())
	fmt.Fprintln(w, "pick: ", avg(timesPick))
	fmt.Fprintln(w, "apply:", avg(timesApply))

	if cfg.Store != nil && cfg.Save != "" {
		if err := cfg.Store.Save(cfg.Save, record.FromGame(g)); err != nil {
			return g, err
		}
		log.Printf("saved game as %s\n", cfg.Save)
	}
	return g, nil
}

func avg(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var s time.Duration
	for _, d := range ds {
		s += d
	}
	return s / time.Duration(len(ds))
}
