// Package contypes defines shared types for the devconsole command system.
// This file contains the event records exchanged between the session and the
// host: entered raw commands flowing in, printed lines flowing out.
package contypes

// CommandEntered is one accepted input line after parsing: the command name
// and its ordered literal arguments. It is produced once per accepted line
// and consumed exactly once by the dispatcher.
type CommandEntered struct {
	Command string
	Args    []Value
}

// PrintLine is a single reply destined for the session's scrollback.
type PrintLine struct {
	Line string
}
