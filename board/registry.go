package board

import (
	"golang.org/x/exp/slices"
)

// Registry holds the pieces one player has on the board. Keys are minted from a
// per-kind counter that only ever grows, so a promoted piece never reuses the key
// of a captured one.
type Registry struct {
	pieces map[Key]*Piece
	next   [kindCount]uint8
}

func newRegistry() *Registry {
	return &Registry{
		pieces: make(map[Key]*Piece, 16),
	}
}

func (r *Registry) mint(k Kind) Key {
	r.next[k]++
	return Key{Kind: k, Index: r.next[k]}
}

func (r *Registry) add(p *Piece) {
	r.pieces[p.Key] = p
}

func (r *Registry) remove(key Key) {
	delete(r.pieces, key)
}

func (r *Registry) Get(key Key) (*Piece, bool) {
	p, ok := r.pieces[key]
	return p, ok
}

func (r *Registry) Len() int {
	return len(r.pieces)
}

// Pieces returns the registered pieces ordered by key.
func (r *Registry) Pieces() []*Piece {
	ps := make([]*Piece, 0, len(r.pieces))
	for _, p := range r.pieces {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, func(p, q *Piece) int {
		return p.Key.compare(q.Key)
	})
	return ps
}

// Keys returns the registered keys ordered like Pieces.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.pieces))
	for _, p := range r.Pieces() {
		keys = append(keys, p.Key)
	}
	return keys
}

func (r *Registry) clone() *Registry {
	c := &Registry{
		pieces: make(map[Key]*Piece, len(r.pieces)),
		next:   r.next,
	}
	for k, p := range r.pieces {
		cp := *p
		c.pieces[k] = &cp
	}
	return c
}
