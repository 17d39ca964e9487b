package builtin

import (
	"devconsole/internal/console"
	"devconsole/pkg/contypes"
)

// logArgs is the typed argument struct of the `log` command.
type logArgs struct {
	msg string
	num *int64
}

// Log builds the `log` command, which prints a message a given number of
// times (once by default) and acknowledges with `[ok]`.
func Log() console.Runnable {
	help := &contypes.CommandInfo{
		Name:        "log",
		Description: "Prints given arguments to the console",
		Args: []contypes.CommandArgInfo{
			{Name: "msg", Type: "string", Description: "Message to print"},
			{Name: "num", Type: "int", Description: "Number of times to print message", Optional: true},
		},
	}
	bind := func(r *console.ArgReader) (logArgs, error) {
		msg, err := r.String()
		if err != nil {
			return logArgs{}, err
		}
		num, err := r.OptionalInt64()
		if err != nil {
			return logArgs{}, err
		}
		return logArgs{msg: msg, num: num}, nil
	}
	return console.NewCommand("log", help, bind,
		func(inv *console.Invocation[logArgs]) {
			args, ok := inv.Take()
			if !ok {
				return
			}
			repeat := int64(1)
			if args.num != nil {
				repeat = *args.num
			}
			for i := int64(0); i < repeat; i++ {
				inv.Reply(args.msg)
			}
			inv.Ok()
		})
}
