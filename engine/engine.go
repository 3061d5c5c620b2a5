package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chess/board"
)

const (
	ScoreInfinite int32 = math.MaxInt32

	scoreCheckmate  = ScoreInfinite - 1
	scoreStalemate  = 0
	scoreCheckBonus = 50
)

var ErrNoMoves = errors.New("no legal moves")

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	// Seed feeds the tie-break between equally scored moves. Engines sharing a
	// seed pick the same moves.
	Seed uint64
	// Careful subtracts the best capture the opponent is left with.
	Careful bool
	Debug   bool
	Logger  func(...any)
}

// Engine is the computer player. It looks one move ahead: every legal move is
// applied, the position scored, and the move taken back.
type Engine struct {
	rand    *board.PseudoRand
	careful bool
	debug   bool

	nodes       uint32
	elapsedTime time.Duration
	logger      func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	r := board.NewPseudoRand()
	r.Seed(cfg.Seed)

	return &Engine{
		rand:    r,
		careful: cfg.Careful,
		debug:   cfg.Debug,
		logger:  cfg.Logger,
	}
}

// Pick chooses a move for s. The board is left as it was found. When ctx is
// done before every move is scored, the best move scored so far is returned.
func (e *Engine) Pick(ctx context.Context, b *board.Board, s board.Player) (board.Move, error) {
	startTime := time.Now()
	e.nodes = 0

	mvs := b.GenerateMoves(s)
	if len(mvs) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s", ErrNoMoves, s)
	}

	scores := make([]int32, 0, len(mvs))
	bestScore := -ScoreInfinite
	for _, mv := range mvs {
		if ctx.Err() != nil {
			break
		}
		score := e.scoreMove(b, mv)
		scores = append(scores, score)
		bestScore = max(bestScore, score)
	}
	if len(scores) == 0 {
		return board.Move{}, ctx.Err()
	}

	var candidates []board.Move
	for i, score := range scores {
		if score == bestScore {
			candidates = append(candidates, mvs[i])
		}
	}
	mv := candidates[e.rand.Intn(len(candidates))]
	e.elapsedTime = time.Since(startTime)

	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("%s: %s [%s] candidates:%d/%d nodes:%d (%.0fn/s) t:%s",
				s, mv, formatScore(bestScore), len(candidates), len(mvs), e.nodes, float64(e.nodes)/((e.elapsedTime + 1).Seconds()), e.elapsedTime))
	}
	return mv, nil
}

func (e *Engine) scoreMove(b *board.Board, mv board.Move) int32 {
	e.nodes++
	unApply := b.Apply(mv)
	defer unApply()

	opponent := mv.Player.Opposite()
	switch b.State(opponent) {
	case board.StateCheckmate:
		return scoreCheckmate
	case board.StateStalemate:
		return scoreStalemate
	case board.StateCheck:
		return e.score(b, mv.Player) + scoreCheckBonus
	default:
		return e.score(b, mv.Player)
	}
}

func (e *Engine) score(b *board.Board, s board.Player) int32 {
	score := Evaluate(b, s)
	if e.careful {
		score -= e.bestCapture(b, s.Opposite())
	}
	return score
}

// bestCapture is the material value of the richest capture s has.
func (e *Engine) bestCapture(b *board.Board, s board.Player) int32 {
	var best int32
	for _, mv := range b.GenerateMoves(s) {
		e.nodes++
		if mv.IsCapture {
			best = max(best, int32(board.MaterialValue(mv.Captured)))
		}
	}
	return best
}

// Nodes is the number of positions scored by the last Pick.
func (e *Engine) Nodes() uint32 {
	return e.nodes
}

func formatScore(s int32) string {
	if s == scoreCheckmate {
		return "#+1"
	}
	if s > 0 {
		return fmt.Sprintf("+%.2f", float64(s)/100)
	}
	if s < 0 {
		return fmt.Sprintf("%.2f", float64(s)/100)
	}
	return "0"
}
