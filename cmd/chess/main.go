package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strconv"

	"github.com/daystram/chess/board"
	"github.com/daystram/chess/cli"
	"github.com/daystram/chess/engine"
	"github.com/daystram/chess/game"
	"github.com/daystram/chess/record"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	layout   = flag.String("layout", "", "starting layout, rows 0 to 7, upper case for Player 1")
	scramble = flag.String("scramble", "none", "scramble the pieces before the game starts: none, muster or battlefield")
	seed     = flag.Uint64("seed", envUint("CHESS_SEED", 0), "seed for the engine and the scramble (env CHESS_SEED)")
	dbDir    = flag.String("db", os.Getenv("CHESS_DB"), "directory of the saved game store (env CHESS_DB)")
	plain    = flag.Bool("plain", false, "draw the board without colours")
	careful  = flag.Bool("careful", false, "let the engine look at the best reply capture")
	debug    = flag.Bool("debug", false, "log engine statistics")

	p1 = flag.String("p1", envString("CHESS_P1", "human"), "Player 1 kind, human or computer (env CHESS_P1)")
	p2 = flag.String("p2", envString("CHESS_P2", "computer"), "Player 2 kind, human or computer (env CHESS_P2)")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenSide = flag.String("movegen.side", "1", "player whose moves are listed in movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth   = flag.Int("perft", 0, "run perft mode to the given depth")
	perftSerial  = flag.Bool("perft.serial", false, "walk the perft tree on one goroutine")
	perftVerbose = flag.Bool("perft.verbose", false, "print subtree sizes of root moves in perft mode")

	selfplayRun   = flag.Bool("selfplay", false, "run selfplay mode")
	selfplayPlies = flag.Int("selfplay.plies", 200, "maximum number of plies in selfplay mode")
	selfplaySave  = flag.String("selfplay.save", "", "save the selfplay game under this name")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := realMain(ctx)
	stop()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(ctx context.Context) error {
	start := *layout
	if start == "" {
		start = board.DefaultLayout
	}
	if *perftDepth > 0 {
		return perft(ctx, *perftDepth, start, !*perftSerial, *perftVerbose)
	}

	b, err := newBoard(start, *scramble, *seed)
	if err != nil {
		return err
	}
	if *movegenRun {
		s, err := board.ParsePlayer(*movegenSide)
		if err != nil {
			return err
		}
		return movegen(os.Stdout, b, s, *movegenDraw)
	}

	store, err := openStore(*dbDir)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	if *selfplayRun {
		_, err := selfplay(ctx, os.Stdout, b, &selfplayConfig{
			Seed:    *seed,
			Careful: *careful,
			Plies:   *selfplayPlies,
			Plain:   *plain,
			Store:   store,
			Save:    *selfplaySave,
		})
		return err
	}

	var kinds [2 + 1]game.PlayerKind
	for s, kind := range map[board.Player]string{board.Player1: *p1, board.Player2: *p2} {
		k, err := game.ParsePlayerKind(kind)
		if err != nil {
			return err
		}
		kinds[s] = k
	}
	i, err := cli.NewInterface(&cli.Config{
		In:    os.Stdin,
		Out:   os.Stdout,
		Kinds: kinds,
		Board: b,
		Engine: engine.NewEngine(&engine.EngineConfig{
			Seed:    *seed,
			Careful: *careful,
			Debug:   *debug,
			Logger:  log.Println,
		}),
		Store: store,
		Plain: *plain,
	})
	if err != nil {
		return err
	}
	return i.Run(ctx)
}

func newBoard(layout, scramble string, seed uint64) (*board.Board, error) {
	mode, err := board.ParseScrambleMode(scramble)
	if err != nil {
		return nil, err
	}
	b, err := board.NewBoard(board.WithLayout(layout))
	if err != nil {
		return nil, err
	}
	r := board.NewPseudoRand()
	r.Seed(seed)
	if err := b.ScrambleWith(mode, r); err != nil {
		return nil, err
	}
	return b, nil
}

func openStore(dir string) (*record.Store, error) {
	if dir == "" {
		return nil, nil
	}
	log.Printf("opening game store in %s\n", dir)
	return record.Open(dir)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
