package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/daystram/chess/board"
	"github.com/daystram/chess/position"
)

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrPromotionPending   = errors.New("promotion pending")
	ErrNoPromotionPending = errors.New("no promotion pending")
	ErrGameOver           = errors.New("game over")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type Config struct {
	Board  *board.Board
	Kinds  [2 + 1]PlayerKind
	Logger func(...any)
}

type Option func(*Config)

// WithBoard starts the game from b instead of a fresh board. The game takes
// ownership of b.
func WithBoard(b *board.Board) Option {
	return func(cfg *Config) {
		cfg.Board = b
	}
}

func WithPlayerKind(s board.Player, k PlayerKind) Option {
	return func(cfg *Config) {
		if s.IsValid() {
			cfg.Kinds[s] = k
		}
	}
}

func WithLogger(logger func(...any)) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Game runs turns over a board. Player1 moves first. A pawn reaching its
// farthest row holds the turn until Promote is called.
type Game struct {
	board  *board.Board
	kinds  [2 + 1]PlayerKind
	logger func(...any)

	layout  string
	turn    board.Player
	state   board.State
	pending *board.Piece
	log     []board.Move
}

func NewGame(opts ...Option) (*Game, error) {
	cfg := &Config{
		Kinds:  [2 + 1]PlayerKind{board.Player1: PlayerKindHuman, board.Player2: PlayerKindHuman},
		Logger: DefaultLogger,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.Board == nil {
		b, err := board.NewBoard()
		if err != nil {
			return nil, err
		}
		cfg.Board = b
	}
	if cfg.Logger == nil {
		cfg.Logger = func(...any) {}
	}

	g := &Game{
		board:  cfg.Board,
		kinds:  cfg.Kinds,
		logger: cfg.Logger,
	}
	g.start()
	return g, nil
}

func (g *Game) start() {
	g.layout = g.board.Layout()
	g.turn = board.Player1
	g.pending = nil
	g.log = nil
	g.state = g.board.State(g.turn)
}

// Reset sets up the default layout and clears the log.
func (g *Game) Reset() {
	g.board.NewGame()
	g.start()
}

// SetLogger replaces the logger given with WithLogger.
func (g *Game) SetLogger(logger func(...any)) {
	if logger == nil {
		logger = func(...any) {}
	}
	g.logger = logger
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Layout is the layout the game started from.
func (g *Game) Layout() string {
	return g.layout
}

func (g *Game) Turn() board.Player {
	return g.turn
}

func (g *Game) Kind(s board.Player) PlayerKind {
	if !s.IsValid() {
		return PlayerKindUnknown
	}
	return g.kinds[s]
}

// State is evaluated for the player to move after every completed turn.
func (g *Game) State() board.State {
	return g.state
}

func (g *Game) IsOver() bool {
	return !g.state.IsRunning()
}

// Winner returns the player who delivered checkmate, or PlayerUnknown.
func (g *Game) Winner() board.Player {
	if !g.state.IsCheckmate() {
		return board.PlayerUnknown
	}
	return g.turn.Opposite()
}

// Result describes how the game stands, e.g. "Player 1 wins".
func (g *Game) Result() string {
	switch {
	case g.state.IsCheckmate():
		return fmt.Sprintf("%s wins", g.Winner())
	case g.state.IsDraw():
		return "draw"
	default:
		return "in progress"
	}
}

// PendingPromotion returns the pawn that must be promoted before the turn ends.
func (g *Game) PendingPromotion() *board.Piece {
	return g.pending
}

// Log returns the committed moves in order.
func (g *Game) Log() []board.Move {
	mvs := make([]board.Move, len(g.log))
	copy(mvs, g.log)
	return mvs
}

// History renders the log in numbered pairs, e.g. "1. f5 e3 2. g4 Qh4+".
func (g *Game) History() string {
	builder := strings.Builder{}
	for i, mv := range g.log {
		if mv.Player == board.Player1 {
			if i > 0 {
				_, _ = builder.WriteRune(' ')
			}
			_, _ = builder.WriteString(fmt.Sprintf("%d. ", i/2+1))
		} else {
			_, _ = builder.WriteRune(' ')
		}
		_, _ = builder.WriteString(mv.String())
	}
	return builder.String()
}

// LegalMoves lists the safe destinations of the piece on code.
func (g *Game) LegalMoves(code string) ([]position.Pos, error) {
	pos, err := parseTile(code)
	if err != nil {
		return nil, err
	}
	p := g.board.At(pos)
	if p == nil {
		return nil, fmt.Errorf("%w: %s is empty", board.ErrPieceNotFound, pos)
	}
	return g.board.LegalMoves(p), nil
}

// Move plays the piece on from to to for the player whose turn it is.
func (g *Game) Move(from, to string) error {
	src, err := parseTile(from)
	if err != nil {
		return err
	}
	dst, err := parseTile(to)
	if err != nil {
		return err
	}
	return g.MovePos(src, dst)
}

func (g *Game) MovePos(src, dst position.Pos) error {
	if err := g.ready(); err != nil {
		return err
	}
	p := g.board.At(src)
	if p == nil {
		return fmt.Errorf("%w: %s is empty", ErrIllegalMove, src)
	}
	if p.Owner != g.turn {
		return fmt.Errorf("%w: %s belongs to %s", ErrNotYourTurn, src, p.Owner)
	}
	if !slices.Contains(g.board.ValidMoves(p), dst) || !g.board.IsSafe(src, dst) {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, src, dst)
	}

	mv := board.Move{
		From:   src,
		To:     dst,
		Kind:   p.Kind,
		Player: g.turn,
	}
	if target := g.board.At(dst); target != nil {
		mv.IsCapture = true
		mv.Captured = target.Kind
	}
	g.board.ForceMove(src, dst)
	g.log = append(g.log, mv)

	if g.board.CanPromote(p) {
		g.pending = p
		g.logger(fmt.Sprintf("%s: promote the pawn on %s", g.turn, dst))
		return nil
	}
	g.endTurn()
	return nil
}

// Castle castles king side for the player whose turn it is.
func (g *Game) Castle() error {
	if err := g.ready(); err != nil {
		return err
	}
	if !g.board.IsCastleSafe(g.turn) {
		return fmt.Errorf("%w: %s cannot castle", ErrIllegalMove, g.turn)
	}
	king := g.board.King(g.turn)
	from := king.Pos
	if err := g.board.Castle(g.turn, true); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	g.log = append(g.log, board.Move{
		From:     from,
		To:       king.Pos,
		Kind:     board.KindKing,
		Player:   g.turn,
		IsCastle: true,
	})
	g.endTurn()
	return nil
}

// Promote replaces the pending pawn with a piece of kind k and ends the turn.
func (g *Game) Promote(k board.Kind) error {
	if g.pending == nil {
		return ErrNoPromotionPending
	}
	if _, err := g.board.Promote(g.pending, k); err != nil {
		return err
	}
	g.pending = nil
	g.log[len(g.log)-1].IsPromote = k
	g.endTurn()
	return nil
}

// Apply plays a move as produced by board.GenerateMoves or read back from a
// record, promotion included.
func (g *Game) Apply(mv board.Move) error {
	if mv.IsCastle {
		return g.Castle()
	}
	if err := g.MovePos(mv.From, mv.To); err != nil {
		return err
	}
	if g.pending == nil {
		if mv.IsPromote != board.KindUnknown {
			return fmt.Errorf("%w: %s cannot promote", ErrIllegalMove, mv.To)
		}
		return nil
	}
	if mv.IsPromote == board.KindUnknown {
		return nil
	}
	return g.Promote(mv.IsPromote)
}

func (g *Game) ready() error {
	if g.IsOver() {
		return fmt.Errorf("%w: %s", ErrGameOver, g.Result())
	}
	if g.pending != nil {
		return fmt.Errorf("%w: %s", ErrPromotionPending, g.pending.Pos)
	}
	return nil
}

func (g *Game) endTurn() {
	g.turn = g.turn.Opposite()
	g.state = g.board.State(g.turn)
	last := &g.log[len(g.log)-1]
	last.IsCheck = g.state.IsCheck() || g.state.IsCheckmate()

	g.logger(fmt.Sprintf("%s: %s", last.Player, last))
	switch {
	case g.state.IsCheckmate():
		g.logger(fmt.Sprintf("Checkmate! %s wins!", g.Winner()))
	case g.state.IsCheck():
		g.logger(fmt.Sprintf("%s is in check", g.turn))
	case g.state.IsDraw():
		g.logger("Stalemate!")
	}
}

func parseTile(code string) (position.Pos, error) {
	return position.NewPosFromNotation(strings.ToLower(strings.TrimSpace(code)))
}
