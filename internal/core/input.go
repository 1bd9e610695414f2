package core

// Action represents a semantic control, abstracted from physical keys and buttons.
// Pointer steering is not an Action: frontends forward pointer positions directly.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Space - pause/unpause the run
	ActionRestart        // R - restart after game over
	ActionHelp           // ? - toggle full key help
	ActionBack           // B, Esc - leave the game for the menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
