package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chess/position"
)

var (
	ErrInvalidCoordinate = position.ErrInvalidCoordinate
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidKind       = errors.New("invalid piece kind")
	ErrInvalidPromotion  = errors.New("invalid promotion")
	ErrPieceNotFound     = errors.New("piece not found")
	ErrCastleNotAllowed  = errors.New("castle not allowed")
	ErrCastleNotApplied  = errors.New("castle not applied")
)

// Board keeps the grid and both registries in lockstep. It is not safe for
// concurrent use; Clone a board per goroutine.
type Board struct {
	cells    [TotalCells]*Piece
	registry [2 + 1]*Registry
}

type boardConfig struct {
	layout string
}

type BoardOption func(*boardConfig)

// WithLayout sets up the board from a layout string instead of DefaultLayout.
func WithLayout(layout string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layout = layout
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		layout: DefaultLayout,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	b.reset()
	if err := UnmarshalLayout(cfg.layout, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) reset() {
	b.cells = [TotalCells]*Piece{}
	b.registry = [2 + 1]*Registry{
		Player1: newRegistry(),
		Player2: newRegistry(),
	}
}

// NewGame discards every piece and sets up DefaultLayout.
func (b *Board) NewGame() {
	b.reset()
	if err := UnmarshalLayout(DefaultLayout, b); err != nil {
		panic(err)
	}
}

// place registers a new piece under a freshly minted key.
func (b *Board) place(owner Player, k Kind, pos position.Pos, moved bool) *Piece {
	reg := b.registry[owner]
	p := &Piece{
		Kind:  k,
		Owner: owner,
		Pos:   pos,
		Moved: moved,
		Key:   reg.mint(k),
	}
	reg.add(p)
	b.cells[pos] = p
	return p
}

// ForceMove relocates the piece on src to dst without any legality checking,
// capturing whatever stood on dst. It does nothing if src equals dst, either
// position is off the board, or src is empty.
func (b *Board) ForceMove(src, dst position.Pos) {
	if src == dst || !b.Inside(src) || !b.Inside(dst) {
		return
	}
	piece := b.cells[src]
	if piece == nil {
		return
	}
	if captured := b.cells[dst]; captured != nil {
		b.registry[captured.Owner].remove(captured.Key)
	}
	b.cells[dst] = piece
	b.cells[src] = nil
	piece.Pos = dst
	piece.Moved = true
}

// simulate applies ForceMove and returns the closure that restores the grid,
// both registries, and the mover's position and moved flag exactly.
func (b *Board) simulate(src, dst position.Pos) (undo func()) {
	if src == dst || !b.Inside(src) || !b.Inside(dst) || b.cells[src] == nil {
		return func() {}
	}
	piece, captured := b.cells[src], b.cells[dst]
	moved := piece.Moved
	b.ForceMove(src, dst)
	return func() {
		b.cells[src] = piece
		b.cells[dst] = captured
		piece.Pos = src
		piece.Moved = moved
		if captured != nil {
			b.registry[captured.Owner].add(captured)
		}
	}
}

// relocate moves a piece between two cells without touching its moved flag.
func (b *Board) relocate(src, dst position.Pos) {
	piece := b.cells[src]
	b.cells[src] = nil
	b.cells[dst] = piece
	piece.Pos = dst
}

func (b *Board) Inside(pos position.Pos) bool {
	return pos.IsValid()
}

// HashMove translates a tile code into a coordinate.
func (b *Board) HashMove(code string) (position.Pos, error) {
	return position.NewPosFromNotation(code)
}

// HashPoint translates a coordinate into its tile code.
func (b *Board) HashPoint(pos position.Pos) (string, error) {
	if !b.Inside(pos) {
		return "", fmt.Errorf("%w: %d", ErrInvalidCoordinate, pos)
	}
	return pos.Notation(), nil
}

// PieceAt returns the piece on the tile, or nil when the tile is empty.
func (b *Board) PieceAt(code string) (*Piece, error) {
	pos, err := b.HashMove(code)
	if err != nil {
		return nil, err
	}
	return b.cells[pos], nil
}

// At returns the piece on pos, or nil when pos is empty or off the board.
func (b *Board) At(pos position.Pos) *Piece {
	if !b.Inside(pos) {
		return nil
	}
	return b.cells[pos]
}

func (b *Board) Registry(owner Player) *Registry {
	if !owner.IsValid() {
		return newRegistry()
	}
	return b.registry[owner]
}

// Pieces returns the pieces owner has on the board, ordered by key.
func (b *Board) Pieces(owner Player) []*Piece {
	return b.Registry(owner).Pieces()
}

func (b *Board) Piece(owner Player, key Key) (*Piece, bool) {
	return b.Registry(owner).Get(key)
}

// King returns owner's king, or nil if it is not on the board.
func (b *Board) King(owner Player) *Piece {
	if !owner.IsValid() {
		return nil
	}
	for _, p := range b.registry[owner].pieces {
		if p.Kind == KindKing {
			return p
		}
	}
	return nil
}

// Clone deep copies the board. Pieces of the clone are distinct handles.
func (b *Board) Clone() *Board {
	c := &Board{}
	c.registry = [2 + 1]*Registry{
		Player1: b.registry[Player1].clone(),
		Player2: b.registry[Player2].clone(),
	}
	for _, owner := range Players {
		for _, p := range c.registry[owner].pieces {
			c.cells[p.Pos] = p
		}
	}
	return c
}

// Equal reports whether both boards hold the same pieces under the same keys,
// positions and moved flags, and whether their key counters agree.
func (b *Board) Equal(o *Board) bool {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		p, q := b.cells[pos], o.cells[pos]
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && *p != *q {
			return false
		}
	}
	for _, owner := range Players {
		r, s := b.registry[owner], o.registry[owner]
		if r.next != s.next || len(r.pieces) != len(s.pieces) {
			return false
		}
		for k, p := range r.pieces {
			q, ok := s.pieces[k]
			if !ok || *p != *q {
				return false
			}
		}
	}
	return true
}
