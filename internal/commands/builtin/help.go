package builtin

import (
	"strings"

	"devconsole/internal/console"
	"devconsole/pkg/contypes"
)

// helpArgs is the typed argument struct of the `help` command.
type helpArgs struct {
	// command to show help for; nil lists all commands.
	command *string
}

// Help builds the `help` command. With no argument it prints an alphabetized
// listing of all registered commands; with a command name it prints that
// command's full help text, or an explanatory line when the command has no
// stored help or does not exist.
func Help(c *console.Console) console.Runnable {
	help := &contypes.CommandInfo{
		Name:        "help",
		Description: "Prints available arguments and usage",
		Args: []contypes.CommandArgInfo{
			{Name: "command", Type: "string", Description: "Help for a given command", Optional: true},
		},
	}
	bind := func(r *console.ArgReader) (helpArgs, error) {
		command, err := r.OptionalString()
		if err != nil {
			return helpArgs{}, err
		}
		return helpArgs{command: command}, nil
	}
	return console.NewCommand("help", help, bind,
		func(inv *console.Invocation[helpArgs]) {
			args, ok := inv.Take()
			if !ok {
				return
			}
			if args.command != nil {
				replyCommandHelp(c, inv.Replies, *args.command)
				return
			}
			replyCommandListing(c, inv.Replies)
		})
}

func replyCommandHelp(c *console.Console, out *console.Replies, name string) {
	d, exists := c.Registry().Get(name)
	switch {
	case !exists:
		out.Replyf("Command '%s' does not exist", name)
	case d.Help() == nil:
		out.Replyf("Help not available for command '%s'", name)
	default:
		out.Reply(d.Help().HelpText())
	}
}

func replyCommandListing(c *console.Console, out *console.Replies) {
	out.Reply("Available commands:")

	longest := 0
	for _, name := range c.Registry().Names() {
		if len(name) > longest {
			longest = len(name)
		}
	}
	for _, d := range c.Registry().All() {
		line := "  " + d.Name() + strings.Repeat(" ", longest-len(d.Name()))
		if info := d.Help(); info != nil && info.Description != "" {
			line += " - " + info.Description
		}
		out.Reply(line)
	}
	out.Reply("")
}
