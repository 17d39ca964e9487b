// Package builtin provides the console commands every devconsole session
// ships with: clear, exit, help and log.
package builtin

import (
	"devconsole/internal/console"
	"devconsole/pkg/contypes"
)

// Clear builds the `clear` command, which empties the scrollback. History
// and the edit buffer are untouched.
func Clear(c *console.Console) console.Runnable {
	help := &contypes.CommandInfo{
		Name:        "clear",
		Description: "Clears the console",
	}
	return console.NewCommand("clear", help, console.NoBind,
		func(inv *console.Invocation[struct{}]) {
			if _, ok := inv.Take(); ok {
				c.ClearScrollback()
			}
		})
}
