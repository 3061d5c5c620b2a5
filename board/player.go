package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chess/position"
)

type Player uint8

const (
	PlayerUnknown Player = iota
	Player1
	Player2
)

// Players lists both players in turn order.
var Players = [2]Player{Player1, Player2}

// NewPlayer coerces a numeric player id.
func NewPlayer(id int) (Player, error) {
	switch id {
	case 1:
		return Player1, nil
	case 2:
		return Player2, nil
	default:
		return PlayerUnknown, fmt.Errorf("%w: %d", ErrInvalidPlayer, id)
	}
}

// ParsePlayer accepts "1", "p1", "player1" and "player 1" style tags.
func ParsePlayer(s string) (Player, error) {
	t := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	t = strings.TrimPrefix(t, "player")
	t = strings.TrimPrefix(t, "p")
	id, err := strconv.Atoi(t)
	if err != nil {
		return PlayerUnknown, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
	return NewPlayer(id)
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return ""
	}
}

func (p Player) ID() int {
	return int(p)
}

func (p Player) IsValid() bool {
	return p == Player1 || p == Player2
}

func (p Player) Opposite() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerUnknown
	}
}

// Forward is the row delta of a pawn advancing for this player.
func (p Player) Forward() int {
	if p == Player1 {
		return -1
	}
	return 1
}

// PawnRow is the row pawns start on.
func (p Player) PawnRow() position.Pos {
	if p == Player1 {
		return 6
	}
	return 1
}

// PromotionRow is the farthest row in this player's direction of travel.
func (p Player) PromotionRow() position.Pos {
	if p == Player1 {
		return 0
	}
	return Height - 1
}

// HomeRows are the rows the player's pieces muster on.
func (p Player) HomeRows() [2]position.Pos {
	if p == Player1 {
		return [2]position.Pos{6, 7}
	}
	return [2]position.Pos{0, 1}
}
