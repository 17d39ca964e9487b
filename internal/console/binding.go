package console

import (
	"errors"

	"devconsole/pkg/contypes"
)

// BindFunc converts raw literal arguments into a command's typed value.
// Implementations read arguments in declaration order off the reader and may
// return a contypes.CustomBindError for command-specific validation.
type BindFunc[T any] func(r *ArgReader) (T, error)

// HandlerFunc runs once per matched invocation of a command.
type HandlerFunc[T any] func(inv *Invocation[T])

// Runnable couples a command descriptor with its dispatch entry point. The
// Console keys its dispatch map by Name; Dispatch is invoked at most once
// per tick with the entered arguments.
type Runnable interface {
	Name() string
	Help() *contypes.CommandInfo
	Dispatch(args []contypes.Value, out *Replies)
}

// Command is a console command with a typed argument struct T. It binds the
// entered literals through its BindFunc and hands the result to its handler.
type Command[T any] struct {
	name    string
	help    *contypes.CommandInfo
	bind    BindFunc[T]
	handler HandlerFunc[T]
}

// NewCommand creates a typed console command. help may be nil for commands
// that ship no stored help text.
func NewCommand[T any](name string, help *contypes.CommandInfo, bind BindFunc[T], handler HandlerFunc[T]) *Command[T] {
	return &Command[T]{name: name, help: help, bind: bind, handler: handler}
}

// Name returns the command name users type to invoke it.
func (c *Command[T]) Name() string {
	return c.name
}

// Help returns the registered schema, or nil when the command has none.
func (c *Command[T]) Help() *contypes.CommandInfo {
	return c.help
}

// Dispatch binds the entered arguments and runs the handler. On a bind
// failure the error text is replied, followed by the command's help text
// except for ValueTooLarge failures, which are self-explanatory. Successful
// binds are not auto-acknowledged; the handler decides its own replies.
func (c *Command[T]) Dispatch(args []contypes.Value, out *Replies) {
	value, err := c.bind(NewArgReader(args))
	if err != nil {
		out.Reply(err.Error())
		var tooLarge contypes.ValueTooLargeError
		if errors.As(err, &tooLarge) {
			return
		}
		if c.help != nil {
			out.Reply(c.help.HelpText())
		}
		return
	}

	c.handler(&Invocation[T]{Replies: out, value: &value})
}

// NoBind is the BindFunc for commands that take no arguments. Extra
// arguments on the line are ignored.
func NoBind(_ *ArgReader) (struct{}, error) {
	return struct{}{}, nil
}

// Invocation hands a successfully bound command to its handler, together
// with the reply channel for this tick.
type Invocation[T any] struct {
	*Replies
	value *T
}

// Take returns the bound value. It consumes the value: the first call
// returns it with true, every later call in the same invocation returns the
// zero value with false.
func (inv *Invocation[T]) Take() (T, bool) {
	if inv.value == nil {
		var zero T
		return zero, false
	}
	v := *inv.value
	inv.value = nil
	return v, true
}
