// Package tui provides the terminal user interface for devtodo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // List navigation
	ModeAdd                // Add input focused
	ModeEdit               // Editing the selected task in place
	ModeHelp               // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAdd, ModeEdit:
		return true
	case ModeNormal, ModeHelp:
		return false
	}
	return false
}
