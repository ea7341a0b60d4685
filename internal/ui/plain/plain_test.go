package plain

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"

	"github.com/spaceworld/console/internal/cli"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/testutil"
)

type fakeConsole struct {
	completion dispatchers.Completion
	submitted  []string
	history    []string
	cursor     int
	onSubmit   func(line string)
}

func (f *fakeConsole) Suggest(string) dispatchers.Completion {
	return f.completion
}

func (f *fakeConsole) Submit(line string) {
	f.submitted = append(f.submitted, line)
	if f.onSubmit != nil {
		f.onSubmit(line)
	}
}

func (f *fakeConsole) Navigate(delta int) (string, bool) {
	next := f.cursor + delta
	if next < 0 || next >= len(f.history) {
		return "", false
	}
	f.cursor = next
	return f.history[next], true
}

type fakeReader struct {
	lines   []string
	errs    []error
	prompts []string
}

func (r *fakeReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line, err := r.lines[0], r.errs[0]
	r.lines, r.errs = r.lines[1:], r.errs[1:]
	return line, err
}

func (r *fakeReader) SetPrompt(p string) {
	r.prompts = append(r.prompts, p)
}

func newShell() (*Shell, *testutil.Sink, *bytes.Buffer) {
	sink := testutil.NewSink()
	var term bytes.Buffer
	return NewShell(sink, &term), sink, &term
}

func doComplete(c dispatchers.Completion, input string) ([]string, int) {
	comp := completer{console: &fakeConsole{completion: c}}
	runes := []rune(input)
	out, length := comp.Do(runes, len(runes))

	var got []string
	for _, r := range out {
		got = append(got, string(r))
	}
	return got, length
}

func TestCompleter_SingleAppendsSuffix(t *testing.T) {
	got, length := doComplete(dispatchers.Completion{
		Kind: dispatchers.SingleCompletion,
		Line: "spaceworld ",
	}, "spa")

	require.Equal(t, []string{"ceworld "}, got)
	require.Equal(t, 0, length)
}

func TestCompleter_SingleThatRewritesIsDropped(t *testing.T) {
	got, _ := doComplete(dispatchers.Completion{
		Kind: dispatchers.SingleCompletion,
		Line: "spaceworld file ",
	}, "spaceworld  fi")

	require.Empty(t, got)
}

func TestCompleter_SingleWithDifferentCaseIsDropped(t *testing.T) {
	got, _ := doComplete(dispatchers.Completion{
		Kind: dispatchers.SingleCompletion,
		Line: "config ",
	}, "CON")

	require.Empty(t, got)
}

func TestCompleter_AmbiguousWithDifferentCaseIsDropped(t *testing.T) {
	got, _ := doComplete(dispatchers.Completion{
		Kind:       dispatchers.Ambiguous,
		Candidates: []string{"maximize", "metrics"},
		Partial:    "M",
	}, "M")

	require.Empty(t, got)
}

type treeSuggester struct {
	root *dispatchers.DispatchNode
}

func (s treeSuggester) Suggest(line string) dispatchers.Completion {
	return dispatchers.Resolve(s.root, line, dispatchers.DefaultResolveOptions())
}

func TestCompleter_NeverProducesUnknownVerb(t *testing.T) {
	root := cli.BuildTree(cli.Actions{}, []string{"dark"})
	comp := completer{console: treeSuggester{root: root}}

	for _, input := range []string{"CON", "con"} {
		runes := []rune(input)
		out, _ := comp.Do(runes, len(runes))
		for _, suffix := range out {
			line := input + string(suffix)
			_, err := dispatchers.Dispatch(root, dispatchers.ParseLine(line))
			require.NoError(t, err, "completing %q produced %q", input, line)
		}
	}

	out, _ := comp.Do([]rune("con"), 3)
	require.Equal(t, [][]rune{[]rune("fig ")}, out)
}

func TestCompleter_AmbiguousPartial(t *testing.T) {
	got, length := doComplete(dispatchers.Completion{
		Kind:       dispatchers.Ambiguous,
		Candidates: []string{"maximize", "metrics"},
		Partial:    "m",
	}, "m")

	require.Equal(t, []string{"aximize", "etrics"}, got)
	require.Equal(t, 1, length)
}

func TestCompleter_AmbiguousSubcommands(t *testing.T) {
	comp := dispatchers.Completion{
		Kind:       dispatchers.Ambiguous,
		Candidates: []string{"get", "set", "unset"},
	}

	got, length := doComplete(comp, "config")
	require.Equal(t, []string{" get", " set", " unset"}, got)
	require.Equal(t, 0, length)

	got, _ = doComplete(comp, "config ")
	require.Equal(t, []string{"get", "set", "unset"}, got)
}

func TestCompleter_NoSuggestion(t *testing.T) {
	got, length := doComplete(dispatchers.Completion{Kind: dispatchers.NoSuggestion}, "zzz")

	require.Empty(t, got)
	require.Equal(t, 0, length)
}

func TestHistoryKey(t *testing.T) {
	c := &fakeConsole{history: []string{"echo a", "echo b"}, cursor: 2}

	line, handled := historyKey(c, readline.CharPrev)
	require.True(t, handled)
	require.NotNil(t, line)
	require.Equal(t, "echo b", *line)

	line, handled = historyKey(c, readline.CharNext)
	require.True(t, handled)
	require.Nil(t, line, "moving past the newest entry leaves the line alone")

	_, handled = historyKey(c, 'x')
	require.False(t, handled)
}

func TestLoop_SubmitsUntilEOF(t *testing.T) {
	shell, _, _ := newShell()
	c := &fakeConsole{}
	r := &fakeReader{
		lines: []string{"echo hi", ""},
		errs:  []error{nil, nil},
	}

	err := loop(r, Options{Console: c, Shell: shell, WorkingDir: func() string { return "/tmp" }})

	require.NoError(t, err)
	require.Equal(t, []string{"echo hi", ""}, c.submitted)
	require.Equal(t, "/tmp> ", r.prompts[0])
}

func TestLoop_StopsOnExit(t *testing.T) {
	shell, _, _ := newShell()
	c := &fakeConsole{onSubmit: func(string) { shell.Exit() }}
	r := &fakeReader{
		lines: []string{"exit", "echo never"},
		errs:  []error{nil, nil},
	}

	require.NoError(t, loop(r, Options{Console: c, Shell: shell}))
	require.Equal(t, []string{"exit"}, c.submitted)
}

func TestLoop_Interrupt(t *testing.T) {
	shell, _, _ := newShell()
	c := &fakeConsole{}
	r := &fakeReader{
		lines: []string{"half typed", "echo a", ""},
		errs:  []error{readline.ErrInterrupt, nil, readline.ErrInterrupt},
	}

	require.NoError(t, loop(r, Options{Console: c, Shell: shell}))
	require.Equal(t, []string{"echo a"}, c.submitted)
}

func TestLoop_ReadError(t *testing.T) {
	shell, _, _ := newShell()
	boom := errors.New("tty gone")
	r := &fakeReader{lines: []string{""}, errs: []error{boom}}

	err := loop(r, Options{Console: &fakeConsole{}, Shell: shell})
	require.ErrorIs(t, err, boom)
}

func TestRun_RequiresConsole(t *testing.T) {
	require.Error(t, Run(Options{}))
}

func TestPrompt(t *testing.T) {
	require.Equal(t, "~> ", prompt(nil))
	require.Equal(t, "/srv> ", prompt(func() string { return "/srv" }))
}

func TestShell_WindowSequences(t *testing.T) {
	shell, _, term := newShell()

	shell.Clear()
	shell.Maximize()
	shell.Minimize()
	require.NoError(t, shell.Resize(80, 24))

	require.Equal(t, "\x1b[H\x1b[2J\x1b[9;1t\x1b[2t\x1b[8;24;80t", term.String())
	require.Error(t, shell.Resize(0, 0))
}

func TestShell_ExitAndRestart(t *testing.T) {
	shell, _, _ := newShell()
	require.False(t, shell.ExitRequested())

	shell.Exit()
	require.True(t, shell.ExitRequested())
	require.False(t, shell.RestartRequested())

	other, _, _ := newShell()
	require.NoError(t, other.Restart())
	require.True(t, other.ExitRequested())
	require.True(t, other.RestartRequested())
}

func TestShell_ShowSettings(t *testing.T) {
	shell, sink, _ := newShell()
	shell.Settings = func() (map[string]string, error) {
		return map[string]string{"theme": "light"}, nil
	}

	require.NoError(t, shell.ShowSettings())

	lines := sink.Lines()
	require.Equal(t, "Settings", lines[0].Text)
	require.Equal(t, domain.ToneInfo, lines[0].Tone)
	require.Contains(t, sink.Texts(), "  theme = light")
}

func TestShell_ShowSettingsError(t *testing.T) {
	shell, sink, _ := newShell()
	shell.Settings = func() (map[string]string, error) {
		return nil, errors.New("unreadable")
	}

	require.Error(t, shell.ShowSettings())
	require.Empty(t, sink.Lines())
}

func TestShell_ApplyTheme(t *testing.T) {
	shell, _, _ := newShell()
	var got string
	shell.SetTheme = func(name string) error {
		got = name
		return nil
	}

	require.NoError(t, shell.ApplyTheme("blue"))
	require.Equal(t, "blue", got)
}
