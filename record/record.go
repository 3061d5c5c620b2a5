package record

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daystram/chess/board"
	"github.com/daystram/chess/game"
	"github.com/daystram/chess/position"
)

const Version = 1

var ErrInvalidRecord = errors.New("invalid record")

// Record is a finished or suspended game: who played, the layout it started
// from and every committed move.
type Record struct {
	Version int       `yaml:"version"`
	Layout  string    `yaml:"layout,omitempty"`
	Players []Player  `yaml:"players"`
	Moves   []Move    `yaml:"moves"`
	Result  string    `yaml:"result"`
	Created time.Time `yaml:"created"`
}

type Player struct {
	ID   int    `yaml:"id"`
	Kind string `yaml:"kind"`
}

type Move struct {
	Player  int    `yaml:"player"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Castle  bool   `yaml:"castle,omitempty"`
	Promote string `yaml:"promote,omitempty"`
}

// FromGame snapshots g.
func FromGame(g *game.Game) *Record {
	r := &Record{
		Version: Version,
		Result:  g.Result(),
		Created: time.Now().UTC().Truncate(time.Second),
	}
	if layout := g.Layout(); layout != board.DefaultLayout {
		r.Layout = layout
	}
	for _, s := range board.Players {
		r.Players = append(r.Players, Player{ID: s.ID(), Kind: g.Kind(s).String()})
	}
	for _, mv := range g.Log() {
		entry := Move{
			Player: mv.Player.ID(),
			From:   mv.From.Notation(),
			To:     mv.To.Notation(),
			Castle: mv.IsCastle,
		}
		if mv.IsPromote != board.KindUnknown {
			entry.Promote = mv.IsPromote.Name()
		}
		r.Moves = append(r.Moves, entry)
	}
	return r
}

func Marshal(r *Record) ([]byte, error) {
	return yaml.Marshal(r)
}

func Unmarshal(data []byte) (*Record, error) {
	r := &Record{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidRecord, r.Version)
	}
	return r, nil
}

// Replay plays the recorded moves on a fresh game. step, when not nil, is
// called once before the first move and after every move.
func (r *Record) Replay(step func(n int, g *game.Game), opts ...game.Option) (*game.Game, error) {
	layout := r.Layout
	if layout == "" {
		layout = board.DefaultLayout
	}
	b, err := board.NewBoard(board.WithLayout(layout))
	if err != nil {
		return nil, err
	}
	opts = append([]game.Option{game.WithBoard(b)}, opts...)
	for _, p := range r.Players {
		s, err := board.NewPlayer(p.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		k, err := game.ParsePlayerKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		opts = append(opts, game.WithPlayerKind(s, k))
	}
	g, err := game.NewGame(opts...)
	if err != nil {
		return nil, err
	}

	if step != nil {
		step(0, g)
	}
	for i, entry := range r.Moves {
		mv, err := entry.move()
		if err != nil {
			return g, err
		}
		if mv.Player != g.Turn() {
			return g, fmt.Errorf("%w: move %d by %s out of turn", ErrInvalidRecord, i+1, mv.Player)
		}
		if err := g.Apply(mv); err != nil {
			return g, fmt.Errorf("move %d: %w", i+1, err)
		}
		if step != nil {
			step(i+1, g)
		}
	}
	return g, nil
}

func (m Move) move() (board.Move, error) {
	s, err := board.NewPlayer(m.Player)
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	mv := board.Move{Player: s, IsCastle: m.Castle}
	if mv.From, err = position.NewPosFromNotation(m.From); err != nil {
		return board.Move{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if mv.To, err = position.NewPosFromNotation(m.To); err != nil {
		return board.Move{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if m.Promote != "" {
		if mv.IsPromote, err = board.ParseKind(m.Promote); err != nil {
			return board.Move{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
	}
	return mv, nil
}
