package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/daystram/chess/board"
	"github.com/daystram/chess/engine"
	"github.com/daystram/chess/game"
	"github.com/daystram/chess/record"
)

var ErrNoStore = errors.New("no record store configured")

const helpText = `commands:
  board                 draw the board
  moves <tile>          list where the piece on <tile> can go
  move <from> <to>      move a piece, e.g. "move f6 f5"
  castle                castle king side
  promote <kind>        promote the waiting pawn (queen, rook, bishop, knight)
  status                show whose turn it is and the game state
  log                   show the move log
  save <name>           save the game
  load <name>           load a saved game
  list                  list saved games
  replay <name>         replay a saved game move by move
  new                   start a new game
  quit                  leave`

type Config struct {
	In  io.Reader
	Out io.Writer

	Kinds  [2 + 1]game.PlayerKind
	Board  *board.Board
	Engine *engine.Engine
	// Store is optional; without it save, load, list and replay fail.
	Store *record.Store
	// Plain draws the board without colours.
	Plain bool
}

// Interface reads commands line by line and plays computer turns on its own.
type Interface struct {
	in     *bufio.Scanner
	out    io.Writer
	kinds  [2 + 1]game.PlayerKind
	engine *engine.Engine
	store  *record.Store
	plain  bool

	game *game.Game
}

func NewInterface(cfg *Config) (*Interface, error) {
	i := &Interface{
		in:     bufio.NewScanner(cfg.In),
		out:    cfg.Out,
		kinds:  cfg.Kinds,
		engine: cfg.Engine,
		store:  cfg.Store,
		plain:  cfg.Plain,
	}
	if i.engine == nil {
		i.engine = engine.NewEngine(&engine.EngineConfig{Logger: i.println})
	}
	opts := i.gameOptions()
	if cfg.Board != nil {
		opts = append(opts, game.WithBoard(cfg.Board))
	}
	g, err := game.NewGame(opts...)
	if err != nil {
		return nil, err
	}
	i.game = g
	return i, nil
}

func (i *Interface) Game() *game.Game {
	return i.game
}

func (i *Interface) Run(ctx context.Context) error {
	i.commandDraw(ctx)
	for {
		if err := i.playComputer(ctx); err != nil {
			return err
		}

		if !i.in.Scan() {
			return i.in.Err()
		}
		cmd := strings.TrimSpace(i.in.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); strings.ToLower(args[0]) {
		case "help", "?":
			i.println(helpText)
		case "board", "d":
			i.commandDraw(ctx)
		case "moves":
			i.commandMoves(ctx, args[1:])
		case "move", "m":
			i.commandMove(ctx, args[1:])
		case "castle":
			i.commandCastle(ctx)
		case "promote":
			i.commandPromote(ctx, args[1:])
		case "status":
			i.commandStatus(ctx)
		case "log":
			i.println(i.game.History())
		case "save":
			i.commandSave(ctx, args[1:])
		case "load":
			i.commandLoad(ctx, args[1:], false)
		case "replay":
			i.commandLoad(ctx, args[1:], true)
		case "list":
			i.commandList(ctx)
		case "new":
			i.game.Reset()
			i.commandDraw(ctx)
		case "quit", "exit":
			return nil
		default:
			i.println(fmt.Sprintf("unknown command %q, try help", args[0]))
		}
	}
}

func (i *Interface) commandDraw(_ context.Context) {
	if i.plain {
		i.println(i.game.Board().Dump())
	} else {
		i.println(i.game.Board().Draw())
	}
}

func (i *Interface) commandMoves(_ context.Context, args []string) {
	if len(args) != 1 {
		i.println("usage: moves <tile>")
		return
	}
	mvs, err := i.game.LegalMoves(args[0])
	if err != nil {
		i.report(err)
		return
	}
	if len(mvs) == 0 {
		i.println("no moves")
		return
	}
	i.println(strings.Join(board.Notations(mvs), ", "))
}

func (i *Interface) commandMove(ctx context.Context, args []string) {
	if len(args) != 2 {
		i.println("usage: move <from> <to>")
		return
	}
	if err := i.game.Move(args[0], args[1]); err != nil {
		i.report(err)
		return
	}
	i.commandDraw(ctx)
	if p := i.game.PendingPromotion(); p != nil && i.game.Kind(p.Owner) == game.PlayerKindHuman {
		i.println("choose: queen, rook, bishop or knight, e.g. \"promote queen\"")
	}
}

func (i *Interface) commandCastle(ctx context.Context) {
	if err := i.game.Castle(); err != nil {
		i.report(err)
		return
	}
	i.commandDraw(ctx)
}

func (i *Interface) commandPromote(ctx context.Context, args []string) {
	if len(args) != 1 {
		i.println("usage: promote <kind>")
		return
	}
	k, err := board.ParseKind(args[0])
	if err != nil {
		i.report(err)
		return
	}
	if err := i.game.Promote(k); err != nil {
		i.report(err)
		return
	}
	i.commandDraw(ctx)
}

func (i *Interface) commandStatus(_ context.Context) {
	g := i.game
	if g.IsOver() {
		i.println(fmt.Sprintf("game over: %s", g.Result()))
		return
	}
	status := fmt.Sprintf("%s (%s) to move", g.Turn(), g.Kind(g.Turn()))
	if g.State().IsCheck() {
		status += ", in check"
	}
	if p := g.PendingPromotion(); p != nil {
		status += fmt.Sprintf(", promotion pending on %s", p.Pos)
	}
	i.println(status)
}

func (i *Interface) commandSave(_ context.Context, args []string) {
	if len(args) != 1 {
		i.println("usage: save <name>")
		return
	}
	if i.store == nil {
		i.report(ErrNoStore)
		return
	}
	if err := i.store.Save(args[0], record.FromGame(i.game)); err != nil {
		i.report(err)
		return
	}
	i.println(fmt.Sprintf("saved %s", args[0]))
}

func (i *Interface) commandLoad(ctx context.Context, args []string, animate bool) {
	if len(args) != 1 {
		i.println("usage: load <name>")
		return
	}
	if i.store == nil {
		i.report(ErrNoStore)
		return
	}
	r, err := i.store.Load(args[0])
	if err != nil {
		i.report(err)
		return
	}

	var step func(int, *game.Game)
	if animate {
		step = func(n int, g *game.Game) {
			if n > 0 {
				log := g.Log()
				i.println(fmt.Sprintf("[#%d] %s: %s", n, log[n-1].Player, log[n-1]))
			}
			if i.plain {
				i.println(g.Board().Dump())
			} else {
				i.println(g.Board().Draw())
			}
		}
	}
	g, err := r.Replay(step, game.WithLogger(func(...any) {}))
	if err != nil {
		i.report(err)
		return
	}
	i.game = g
	i.game.SetLogger(i.println)
	i.println(fmt.Sprintf("loaded %s: %d moves, %s", args[0], len(r.Moves), g.Result()))
	if !animate {
		i.commandDraw(ctx)
	}
}

func (i *Interface) commandList(_ context.Context) {
	if i.store == nil {
		i.report(ErrNoStore)
		return
	}
	names, err := i.store.List()
	if err != nil {
		i.report(err)
		return
	}
	if len(names) == 0 {
		i.println("no saved games")
		return
	}
	for n, name := range names {
		i.println(fmt.Sprintf("%d. %s", n+1, name))
	}
}

// playComputer plays every consecutive computer turn.
func (i *Interface) playComputer(ctx context.Context) error {
	for !i.game.IsOver() && i.game.Kind(i.game.Turn()) == game.PlayerKindComputer {
		if p := i.game.PendingPromotion(); p != nil {
			if err := i.game.Promote(board.KindQueen); err != nil {
				return err
			}
			continue
		}
		mv, err := i.engine.Pick(ctx, i.game.Board(), i.game.Turn())
		if err != nil {
			return err
		}
		if err := i.game.Apply(mv); err != nil {
			return err
		}
		i.commandDraw(ctx)
	}
	return nil
}

func (i *Interface) gameOptions() []game.Option {
	opts := []game.Option{game.WithLogger(i.println)}
	for _, s := range board.Players {
		if k := i.kinds[s]; k != game.PlayerKindUnknown {
			opts = append(opts, game.WithPlayerKind(s, k))
		}
	}
	return opts
}

func (i *Interface) report(err error) {
	if err != nil {
		i.println(fmt.Sprintf("error: %v", err))
	}
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
