// Package contypes defines shared types for the devconsole command system.
// This file contains the command schema metadata registered for each console
// command and the canonical help-text rendering used by the dispatcher and
// the built-in help command.
package contypes

import "strings"

// CommandInfo is the registered schema of a console command: its name, an
// optional description and the ordered argument signatures.
type CommandInfo struct {
	// Name is the unique command name users type to invoke it.
	Name string
	// Description is a short human-readable summary, empty when none exists.
	Description string
	// Args describes the positional arguments in binding order. Optional
	// arguments must trail required ones; this is a registration-time
	// contract of command authors, not enforced here.
	Args []CommandArgInfo
}

// CommandArgInfo describes a single positional argument of a command.
type CommandArgInfo struct {
	// Name of the argument as shown in usage lines.
	Name string
	// Type is the argument's type tag, e.g. "string" or "int".
	Type string
	// Description explains the argument, empty when none exists.
	Description string
	// Optional marks arguments that may be omitted.
	Optional bool
}

// HelpText renders the command's full usage text: a usage line with angle
// brackets around required arguments and square brackets around optional
// ones, the description re-indented to at least two leading spaces per line,
// and a table of argument name, type and description with columns padded to
// the widest entry.
func (ci *CommandInfo) HelpText() string {
	var buf strings.Builder
	buf.WriteString("Usage:\n\n")

	buf.WriteString("  > ")
	buf.WriteString(ci.Name)
	for _, arg := range ci.Args {
		buf.WriteString(" ")
		if arg.Optional {
			buf.WriteString("[")
		} else {
			buf.WriteString("<")
		}
		buf.WriteString(arg.Name)
		if arg.Optional {
			buf.WriteString("]")
		} else {
			buf.WriteString(">")
		}
	}
	buf.WriteString("\n\n")

	if ci.Description != "" {
		for _, line := range strings.Split(ci.Description, "\n") {
			indent := len(line) - len(strings.TrimLeft(line, " "))
			if indent < 2 {
				buf.WriteString(strings.Repeat(" ", 2-indent))
			}
			buf.WriteString(line)
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	longestName := 0
	longestType := 0
	for _, arg := range ci.Args {
		if len(arg.Name) > longestName {
			longestName = len(arg.Name)
		}
		if len(arg.Type) > longestType {
			longestType = len(arg.Type)
		}
	}
	for _, arg := range ci.Args {
		buf.WriteString("    ")
		buf.WriteString(arg.Name)
		buf.WriteString(" ")
		buf.WriteString(strings.Repeat(" ", longestName-len(arg.Name)))
		if arg.Optional {
			buf.WriteString("[")
		} else {
			buf.WriteString("<")
		}
		buf.WriteString(arg.Type)
		if arg.Optional {
			buf.WriteString("]")
		} else {
			buf.WriteString(">")
		}
		buf.WriteString(strings.Repeat(" ", longestType-len(arg.Type)))
		if arg.Description != "" {
			buf.WriteString("   - ")
			buf.WriteString(arg.Description)
		}
		buf.WriteString("\n")
	}

	return buf.String()
}
