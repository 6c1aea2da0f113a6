package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgClearError is sent to clear the error message.
// seq identifies the error it was scheduled for; a newer error is kept.
type MsgClearError struct {
	seq int
}

func (MsgClearError) sealed() {}
