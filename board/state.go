package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheck is when the King of the player to move is in check.
	StateCheck

	// StateCheckmate is when the King of the player to move is in checkmate.
	StateCheckmate

	// StateStalemate is when the player to move cannot move a piece and King is not in check.
	StateStalemate
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheck:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	return s == StateCheck
}

func (s State) IsCheckmate() bool {
	return s == StateCheckmate
}

func (s State) IsDraw() bool {
	return s == StateStalemate
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheck:
		return "StateCheck"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}
