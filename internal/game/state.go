// Package game runs the turn loop: keys in, moves and level travel out.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal turn loop.
	StatePlaying State = iota
	// StateQuit ends the loop on the next pass.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// TurnResult says what a key press did to the game clock.
type TurnResult int

const (
	// NoTurn means the action failed or took no time.
	NoTurn TurnResult = iota
	// TookTurn means the player acted and a turn passed.
	TookTurn
	// Exit asks the loop to stop.
	Exit
)

// String returns a human-readable result name.
func (r TurnResult) String() string {
	switch r {
	case NoTurn:
		return "no_turn"
	case TookTurn:
		return "took_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
