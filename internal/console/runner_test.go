package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/ytget/list-manager/internal/store"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r, err := NewRunner(&out, false)
	require.NoError(t, err)
	return r, &out
}

func TestRunnerScript(t *testing.T) {
	r, out := newTestRunner(t)

	script := `
# shopping
add A
add B
add C
remove 1
list
`
	require.NoError(t, r.Run(context.Background(), strings.NewReader(script)))

	require.Equal(t, []string{"A", "C"}, r.Store().Items())
	require.Equal(t, []string{"A", "C"}, r.Table().Labels())
	require.Contains(t, out.String(), `[success] Item "B" removed.`)
	require.Contains(t, out.String(), "0  A")
	require.Contains(t, out.String(), "1  C")
}

func TestRunnerRemoveAfterShift(t *testing.T) {
	r, _ := newTestRunner(t)

	script := "add A\nadd B\nadd C\nadd D\nremove 0\nremove 2\n"
	require.NoError(t, r.Run(context.Background(), strings.NewReader(script)))

	require.Equal(t, []string{"B", "C"}, r.Store().Items())
}

func TestRunnerRemoveOutOfRange(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.Run(context.Background(), strings.NewReader("add A\nremove 9\nadd B\n"))

	require.ErrorIs(t, err, store.ErrIndexOutOfRange)
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, []string{"A"}, r.Store().Items(), "run must stop at the failing line")
}

func TestRunnerContinueOnError(t *testing.T) {
	r, out := newTestRunner(t)
	r.ContinueOnError = true

	script := "add A\nremove 9\nremove x\nfrobnicate\nadd B\n"
	err := r.Run(context.Background(), strings.NewReader(script))

	require.ErrorIs(t, err, ErrCommandsFailed)
	require.Equal(t, 3, r.Failures())
	require.Equal(t, []string{"A", "B"}, r.Store().Items())
	require.Contains(t, out.String(), "error: line 2:")
	require.Contains(t, out.String(), "error: line 4:")
}

func TestRunnerParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		target error
	}{
		{"bad index", "remove two", ErrBadIndex},
		{"unknown command", "push A", ErrUnknownCommand},
		{"empty list", "remove 0", store.ErrIndexOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestRunner(t)
			err := r.Run(context.Background(), strings.NewReader(tc.script))
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestRunnerSoftOutcomes(t *testing.T) {
	r, out := newTestRunner(t)

	script := "add\nadd milk\nadd MILK\nadd " + strings.Repeat("x", 31) + "\nclear\nclear\n"
	require.NoError(t, r.Run(context.Background(), strings.NewReader(script)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"[warning] " + store.MsgEnterValue,
		`[success] Item "milk" added.`,
		`[danger] "MILK" already exists.`,
		"[warning] " + store.MsgTooLong,
		"[success] " + store.MsgCleared,
		"[info] " + store.MsgAlreadyEmpty,
	}, lines)
	require.Empty(t, r.Store().Items())
}

func TestRunnerQuit(t *testing.T) {
	r, _ := newTestRunner(t)

	require.NoError(t, r.Run(context.Background(), strings.NewReader("add A\nquit\nadd B\n")))
	require.Equal(t, []string{"A"}, r.Store().Items())
}

func TestRunnerCancelled(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, strings.NewReader("add A\n"))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, r.Store().Items())
}

func TestRunnerHelpAndEmptyList(t *testing.T) {
	r, out := newTestRunner(t)

	require.NoError(t, r.Run(context.Background(), strings.NewReader("help\nlist\n")))
	require.Contains(t, out.String(), "remove <index>")
	require.Contains(t, out.String(), emptyTableText)
}

func TestTableRendererMissingOutput(t *testing.T) {
	_, err := store.New(NewTableRenderer(nil, false), nil)
	require.ErrorIs(t, err, store.ErrTargetNotFound)
}

func forceTerminalColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })
}

func TestRunnerPlainOutput(t *testing.T) {
	forceTerminalColor(t)
	var out bytes.Buffer
	r, err := NewRunner(&out, false)
	require.NoError(t, err)
	r.ContinueOnError = true

	err = r.Run(context.Background(), strings.NewReader("list\nadd A\nlist\nbogus\n"))
	require.ErrorIs(t, err, ErrCommandsFailed)

	require.NotContains(t, out.String(), "\x1b[")
	require.Contains(t, out.String(), emptyTableText)
	require.Contains(t, out.String(), "error: line 4:")
}

func TestRunnerColoredOutput(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRunner(&out, true)
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background(), strings.NewReader("add A\nlist\n")))
	require.Contains(t, out.String(), "\x1b[")
}
