package board

import (
	"github.com/daystram/chess/position"
)

// HitDiagonals scans the four diagonals from pos. See scanRay.
func (b *Board) HitDiagonals(pos position.Pos, owner Player, limit int) []position.Pos {
	var hits []position.Pos
	for _, d := range directionsDiagonal {
		hits = b.scanRay(hits, pos, owner, d, limit)
	}
	return hits
}

// HitLaterals scans the four orthogonal rays from pos. See scanRay.
func (b *Board) HitLaterals(pos position.Pos, owner Player, limit int) []position.Pos {
	var hits []position.Pos
	for _, d := range directionsLateral {
		hits = b.scanRay(hits, pos, owner, d, limit)
	}
	return hits
}

// scanRay walks from pos along dir, appending every empty cell. The walk stops at
// the first occupied cell, which is appended only when it belongs to the
// opponent of owner. limit <= 0 means unbounded.
func (b *Board) scanRay(hits []position.Pos, pos position.Pos, owner Player, dir [2]int, limit int) []position.Pos {
	next := pos
	for step := 1; limit <= 0 || step <= limit; step++ {
		var ok bool
		next, ok = next.Offset(dir[0], dir[1])
		if !ok {
			break
		}
		occupant := b.cells[next]
		if occupant == nil {
			hits = append(hits, next)
			continue
		}
		if occupant.Owner != owner {
			hits = append(hits, next)
		}
		break
	}
	return hits
}

// hitOffsets applies fixed jumps from pos, skipping cells off the board or held
// by owner.
func (b *Board) hitOffsets(pos position.Pos, owner Player, offsets [][2]int) []position.Pos {
	var hits []position.Pos
	for _, o := range offsets {
		next, ok := pos.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if occupant := b.cells[next]; occupant != nil && occupant.Owner == owner {
			continue
		}
		hits = append(hits, next)
	}
	return hits
}
