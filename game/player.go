package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPlayerKind = errors.New("invalid player kind")

// PlayerKind tags who makes the decisions for a player.
type PlayerKind uint8

const (
	PlayerKindUnknown PlayerKind = iota
	PlayerKindHuman
	PlayerKindComputer
)

func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return PlayerKindHuman, nil
	case "computer", "cpu", "c":
		return PlayerKindComputer, nil
	default:
		return PlayerKindUnknown, fmt.Errorf("%w: %q", ErrInvalidPlayerKind, s)
	}
}

func (k PlayerKind) String() string {
	switch k {
	case PlayerKindHuman:
		return "human"
	case PlayerKindComputer:
		return "computer"
	default:
		return ""
	}
}
