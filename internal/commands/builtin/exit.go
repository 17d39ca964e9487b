package builtin

import (
	"devconsole/internal/console"
	"devconsole/pkg/contypes"
)

// Exit builds the `exit` command, which asks the host to shut down and
// acknowledges with `[ok]`. Whether anything actually terminates is the
// host's decision.
func Exit(c *console.Console) console.Runnable {
	help := &contypes.CommandInfo{
		Name:        "exit",
		Description: "Exits the app",
	}
	return console.NewCommand("exit", help, console.NoBind,
		func(inv *console.Invocation[struct{}]) {
			if _, ok := inv.Take(); ok {
				c.RequestQuit()
				inv.Ok()
			}
		})
}
