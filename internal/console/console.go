package console

import (
	"strings"

	"github.com/google/uuid"

	"devconsole/internal/commands"
	"devconsole/internal/logger"
	"devconsole/internal/parser"
	"devconsole/pkg/contypes"
)

// DefaultHistorySize is the number of submitted lines kept for history
// navigation when no explicit limit is configured.
const DefaultHistorySize = 20

// parseErrorLine is the fixed scrollback line shown for malformed input.
const parseErrorLine = "[error] invalid argument(s)"

// Options configure a console session.
type Options struct {
	// HistorySize bounds the history ring, scratch slot excluded.
	// Zero or negative selects DefaultHistorySize.
	HistorySize int
}

// Console owns one interactive session: the edit buffer, the append-only
// scrollback, the bounded history ring with its navigation cursor, the
// queue of entered commands and the dispatch map. All methods must be
// called from the owning session's tick; the Console does no locking.
type Console struct {
	id       string
	registry *commands.Registry
	dispatch map[string]Runnable

	buf          string
	cursor       int
	scrollback   []string
	history      []string
	historyIndex int
	historySize  int

	entered       []contypes.CommandEntered
	quitRequested bool
}

// New creates a console session. The history ring starts with only the
// scratch slot, which holds the in-progress edit while browsing history.
func New(opts Options) *Console {
	size := opts.HistorySize
	if size <= 0 {
		size = DefaultHistorySize
	}
	c := &Console{
		id:          uuid.NewString(),
		registry:    commands.NewRegistry(),
		dispatch:    make(map[string]Runnable),
		history:     []string{""},
		historySize: size,
	}
	logger.Debug("console session created", "session", c.id, "history_size", size)
	return c
}

// ID returns the session's unique identifier, used for log correlation.
func (c *Console) ID() string {
	return c.id
}

// Registry exposes the command registry for help rendering and listings.
func (c *Console) Registry() *commands.Registry {
	return c.registry
}

// AddCommand registers a command for dispatch and help. Registering a name
// twice overwrites the previous command and logs a warning.
func (c *Console) AddCommand(cmd Runnable) {
	c.registry.Register(cmd)
	c.dispatch[cmd.Name()] = cmd
}

// Buffer returns the current edit line.
func (c *Console) Buffer() string {
	return c.buf
}

// SetBuffer replaces the edit line and moves the cursor to end-of-text.
func (c *Console) SetBuffer(s string) {
	c.buf = s
	c.cursor = len(s)
}

// Cursor returns the edit cursor position within the buffer.
func (c *Console) Cursor() int {
	return c.cursor
}

// Scrollback returns a copy of the visible transcript.
func (c *Console) Scrollback() []string {
	out := make([]string, len(c.scrollback))
	copy(out, c.scrollback)
	return out
}

// History returns a copy of the history ring, most recent first. Index 0 is
// the scratch slot.
func (c *Console) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryIndex returns the history navigation cursor. Zero means the scratch
// slot, i.e. not browsing.
func (c *Console) HistoryIndex() int {
	return c.historyIndex
}

// PrintLine appends one line to the scrollback. This is the inbound end of
// the print-line channel; command replies and host collaborators both land
// here.
func (c *Console) PrintLine(line string) {
	c.scrollback = append(c.scrollback, line)
}

// ClearScrollback empties the visible transcript. History and the edit
// buffer are untouched.
func (c *Console) ClearScrollback() {
	c.scrollback = nil
}

// RequestQuit flags the session for shutdown. The host decides what to do
// with the flag; the console itself never terminates anything.
func (c *Console) RequestQuit() {
	c.quitRequested = true
}

// QuitRequested reports whether a command asked the host to shut down.
func (c *Console) QuitRequested() bool {
	return c.quitRequested
}

// Enqueue appends a raw entered-command record to this session's inbound
// queue, bypassing the parser. The next Tick drains it.
func (c *Console) Enqueue(ev contypes.CommandEntered) {
	c.entered = append(c.entered, ev)
}

// Submit accepts the current edit line. A blank line appends a single empty
// scrollback line and does nothing else. Otherwise the line is echoed as
// `$ <line>`, pushed into history behind the scratch slot (trimming the
// oldest entry past the limit), parsed, and on success queued for dispatch;
// a parse failure appends a fixed error line instead. The edit buffer is
// cleared and the history cursor reset in either non-blank case.
func (c *Console) Submit() {
	if strings.TrimSpace(c.buf) == "" {
		c.scrollback = append(c.scrollback, "")
		return
	}

	c.scrollback = append(c.scrollback, "$ "+c.buf)

	c.history = append(c.history, "")
	copy(c.history[2:], c.history[1:])
	c.history[1] = c.buf
	if len(c.history) > c.historySize+1 {
		c.history = c.history[:c.historySize+1]
	}

	cmd, err := parser.Parse(c.buf)
	if err != nil {
		logger.Debug("rejected console line", "session", c.id, "error", err)
		c.scrollback = append(c.scrollback, parseErrorLine)
	} else {
		c.entered = append(c.entered, contypes.CommandEntered{Command: cmd.Name, Args: cmd.Args})
	}

	c.buf = ""
	c.cursor = 0
	c.historyIndex = 0
}

// HistoryUp moves the navigation cursor one entry into the past and loads
// that entry into the edit buffer. Browsing away from the scratch slot with
// a non-blank buffer first snapshots the buffer into slot 0 so in-progress
// typing survives the round trip. No-op at the oldest entry or when history
// holds only the scratch slot.
func (c *Console) HistoryUp() {
	if len(c.history) <= 1 || c.historyIndex >= len(c.history)-1 {
		return
	}
	if c.historyIndex == 0 && strings.TrimSpace(c.buf) != "" {
		c.history[0] = c.buf
	}
	c.historyIndex++
	c.SetBuffer(c.history[c.historyIndex])
}

// HistoryDown moves the navigation cursor one entry toward the scratch slot
// and loads that entry into the edit buffer. No-op when already there.
func (c *Console) HistoryDown() {
	if c.historyIndex == 0 {
		return
	}
	c.historyIndex--
	c.SetBuffer(c.history[c.historyIndex])
}

// Tick drains the entered-command queue accumulated since the last tick, in
// arrival order. Each event is routed through the dispatch map exactly once;
// events naming unregistered commands produce no reply, and a second event
// for the same name within one drain is dropped. Replies land in the
// scrollback through PrintLine.
func (c *Console) Tick() {
	if len(c.entered) == 0 {
		return
	}
	events := c.entered
	c.entered = nil

	out := newReplies(c.PrintLine)
	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if seen[ev.Command] {
			logger.Debug("dropping duplicate command event", "session", c.id, "command", ev.Command)
			continue
		}
		seen[ev.Command] = true

		cmd, ok := c.dispatch[ev.Command]
		if !ok {
			logger.Debug("no command registered for entered event", "session", c.id, "command", ev.Command)
			continue
		}
		cmd.Dispatch(ev.Args, out)
	}
}
