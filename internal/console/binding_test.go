package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/contypes"
)

type spawnArgs struct {
	kind  string
	count *int64
}

func spawnBind(r *ArgReader) (spawnArgs, error) {
	kind, err := r.String()
	if err != nil {
		return spawnArgs{}, err
	}
	count, err := r.OptionalInt64()
	if err != nil {
		return spawnArgs{}, err
	}
	if count != nil && *count <= 0 {
		return spawnArgs{}, contypes.CustomBindErrorf("count must be positive, got %d", *count)
	}
	return spawnArgs{kind: kind, count: count}, nil
}

var spawnHelp = &contypes.CommandInfo{
	Name:        "spawn",
	Description: "Spawns entities",
	Args: []contypes.CommandArgInfo{
		{Name: "kind", Type: "string", Description: "entity kind"},
		{Name: "count", Type: "int", Description: "how many", Optional: true},
	},
}

func collectReplies() (*Replies, *[]string) {
	var lines []string
	return newReplies(func(line string) { lines = append(lines, line) }), &lines
}

func TestCommand_DispatchBindsAndRunsHandler(t *testing.T) {
	var got spawnArgs
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(inv *Invocation[spawnArgs]) {
		args, ok := inv.Take()
		require.True(t, ok)
		got = args
		inv.Ok()
	})

	out, lines := collectReplies()
	cmd.Dispatch([]contypes.Value{contypes.StringValue("orc"), contypes.NumberValue(3)}, out)

	assert.Equal(t, "orc", got.kind)
	require.NotNil(t, got.count)
	assert.Equal(t, int64(3), *got.count)
	assert.Equal(t, []string{"[ok]"}, *lines)
}

func TestCommand_DispatchDoesNotAutoAcknowledge(t *testing.T) {
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(inv *Invocation[spawnArgs]) {
		inv.Take()
	})

	out, lines := collectReplies()
	cmd.Dispatch([]contypes.Value{contypes.StringValue("orc")}, out)

	assert.Empty(t, *lines)
}

func TestCommand_TakeIsAtMostOnce(t *testing.T) {
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(inv *Invocation[spawnArgs]) {
		first, ok := inv.Take()
		require.True(t, ok)
		assert.Equal(t, "orc", first.kind)

		second, ok := inv.Take()
		assert.False(t, ok)
		assert.Zero(t, second)
	})

	out, _ := collectReplies()
	cmd.Dispatch([]contypes.Value{contypes.StringValue("orc")}, out)
}

func TestCommand_NotEnoughArgsRepliesErrorAndHelp(t *testing.T) {
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(inv *Invocation[spawnArgs]) {
		t.Fatal("handler must not run on bind failure")
	})

	out, lines := collectReplies()
	cmd.Dispatch(nil, out)

	require.Len(t, *lines, 2)
	assert.Equal(t, contypes.NotEnoughArgsError{}.Error(), (*lines)[0])
	assert.Equal(t, spawnHelp.HelpText(), (*lines)[1])
}

func TestCommand_UnexpectedTypeRepliesErrorAndHelp(t *testing.T) {
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(_ *Invocation[spawnArgs]) {
		t.Fatal("handler must not run on bind failure")
	})

	out, lines := collectReplies()
	cmd.Dispatch([]contypes.Value{contypes.NumberValue(1)}, out)

	require.Len(t, *lines, 2)
	assert.Contains(t, (*lines)[0], "expected argument type 'string'")
	assert.Equal(t, spawnHelp.HelpText(), (*lines)[1])
}

func TestCommand_CustomErrorRepliesErrorAndHelp(t *testing.T) {
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(_ *Invocation[spawnArgs]) {
		t.Fatal("handler must not run on bind failure")
	})

	out, lines := collectReplies()
	cmd.Dispatch([]contypes.Value{contypes.StringValue("orc"), contypes.NumberValue(-2)}, out)

	require.Len(t, *lines, 2)
	assert.Equal(t, "[error] count must be positive, got -2", (*lines)[0])
	assert.Equal(t, spawnHelp.HelpText(), (*lines)[1])
}

func TestCommand_ValueTooLargeSuppressesHelp(t *testing.T) {
	cmd := NewCommand("spawn", spawnHelp, spawnBind, func(_ *Invocation[spawnArgs]) {
		t.Fatal("handler must not run on bind failure")
	})

	out, lines := collectReplies()
	cmd.Dispatch([]contypes.Value{contypes.StringValue("orc"), contypes.NumberValue(1e300)}, out)

	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "does not fit in argument type 'int64'")
}

func TestCommand_BindFailureWithoutHelpRepliesErrorOnly(t *testing.T) {
	cmd := NewCommand("spawn", nil, spawnBind, func(_ *Invocation[spawnArgs]) {
		t.Fatal("handler must not run on bind failure")
	})

	out, lines := collectReplies()
	cmd.Dispatch(nil, out)

	assert.Equal(t, []string{contypes.NotEnoughArgsError{}.Error()}, *lines)
}

func TestReplies_Helpers(t *testing.T) {
	out, lines := collectReplies()

	out.Reply("plain")
	out.Replyf("count=%d", 2)
	out.Ok()
	out.Failed()
	out.ReplyOk("done")
	out.ReplyFailed("broken")

	assert.Equal(t, []string{
		"plain",
		"count=2",
		"[ok]",
		"[failed]",
		"done",
		"[ok]",
		"broken",
		"[failed]",
	}, *lines)
}
