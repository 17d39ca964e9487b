package console

import "fmt"

// Replies writes command output back to the session's print-line channel.
// Handlers use it to acknowledge or answer an invocation; the dispatcher
// uses it to surface bind failures.
type Replies struct {
	sink func(line string)
}

func newReplies(sink func(line string)) *Replies {
	return &Replies{sink: sink}
}

// Reply prints a line in the console.
func (r *Replies) Reply(msg string) {
	r.sink(msg)
}

// Replyf prints a formatted line in the console.
func (r *Replies) Replyf(format string, args ...any) {
	r.sink(fmt.Sprintf(format, args...))
}

// Ok prints `[ok]` in the console.
func (r *Replies) Ok() {
	r.Reply("[ok]")
}

// Failed prints `[failed]` in the console.
func (r *Replies) Failed() {
	r.Reply("[failed]")
}

// ReplyOk prints a line followed by `[ok]`.
func (r *Replies) ReplyOk(msg string) {
	r.Reply(msg)
	r.Ok()
}

// ReplyFailed prints a line followed by `[failed]`.
func (r *Replies) ReplyFailed(msg string) {
	r.Reply(msg)
	r.Failed()
}
