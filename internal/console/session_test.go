package console

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceworld/console/internal/actions"
	"github.com/spaceworld/console/internal/actions/fileops"
	"github.com/spaceworld/console/internal/cli"
	"github.com/spaceworld/console/internal/confirm"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/metrics"
	"github.com/spaceworld/console/internal/testutil"
)

type recorder struct {
	calls []dispatchers.Call
	err   error
}

func (r *recorder) action(call dispatchers.Call) error {
	r.calls = append(r.calls, call)
	return r.err
}

type fixture struct {
	session *Session
	sink    *testutil.Sink
	deleted *recorder
	echoed  *recorder
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	f := &fixture{
		sink:    testutil.NewSink(),
		deleted: &recorder{},
		echoed:  &recorder{},
	}

	if opts.Tree == nil {
		opts.Tree = cli.BuildTree(cli.Actions{
			Echo:       f.echoed.action,
			FileDelete: f.deleted.action,
			DirDelete:  f.deleted.action,
			Version:    actions.ShowVersion,
		}, []string{"dark", "light"})
	}
	opts.Out = f.sink
	if opts.WorkingDir == nil {
		opts.WorkingDir = func() string { return "~/work" }
	}

	s, err := New(opts)
	require.NoError(t, err)
	f.session = s
	return f
}

func TestNew_RequiresTreeAndSink(t *testing.T) {
	_, err := New(Options{Out: testutil.NewSink()})
	require.Error(t, err)

	_, err = New(Options{Tree: dispatchers.Root(dispatchers.RootSpec{Name: "sw"})})
	require.Error(t, err)
}

func TestNew_AssignsUniqueIDs(t *testing.T) {
	a := newFixture(t, Options{})
	b := newFixture(t, Options{})

	require.NotEmpty(t, a.session.ID())
	require.NotEqual(t, a.session.ID(), b.session.ID())
}

func TestNew_KeepsGivenID(t *testing.T) {
	f := newFixture(t, Options{ID: "fixed-id"})

	require.Equal(t, "fixed-id", f.session.ID())
}

func TestSubmit_EchoesPromptAndDispatches(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("  spaceworld version  ")

	require.Equal(t, []testutil.Line{
		{Text: "~/work> spaceworld version", Tone: domain.TonePrompt},
		{Text: "SpaceWorld Console v1.0", Tone: domain.ToneInfo},
	}, f.sink.Lines())
	require.Equal(t, []string{"spaceworld version"}, f.session.History())
}

func TestSubmit_EmptyLineIsNotRecorded(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("   ")

	require.Equal(t, []string{"~/work> "}, f.sink.Texts())
	require.Empty(t, f.session.History())
}

func TestSubmit_UnknownCommand(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("claer")

	require.Equal(t, testutil.Line{
		Text: "Unknown command: claer (did you mean clear?)",
		Tone: domain.ToneError,
	}, f.sink.Last())
	require.Equal(t, []string{"claer"}, f.session.History(), "failed lines are recorded too")
}

func TestSubmit_ActionErrorIsForwarded(t *testing.T) {
	f := newFixture(t, Options{})
	f.echoed.err = errors.New("boom")

	f.session.Submit("echo hi")

	require.Equal(t, testutil.Line{Text: "boom", Tone: domain.ToneError}, f.sink.Last())
	require.False(t, f.session.Awaiting())
}

func TestSubmit_PassesArgsAndRoot(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("ECHO one  two")

	require.Len(t, f.echoed.calls, 1)
	call := f.echoed.calls[0]
	require.Equal(t, []string{"one", "two"}, call.Args)
	require.Equal(t, "ECHO one  two", call.Line.Raw)
	require.Same(t, f.session.Tree(), call.Root)
	require.Equal(t, []string{"echo"}, call.Node.Path)
}

// A destructive command waits for y before running.
func TestSubmit_DestructiveConfirmed(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("spaceworld file delete ~/tmp/x.txt")

	require.True(t, f.session.Awaiting())
	require.Equal(t, confirm.AwaitingConfirmation, f.session.gate.State())
	require.Equal(t, "spaceworld file delete ~/tmp/x.txt", f.session.Pending())
	require.Equal(t, testutil.Line{
		Text: "Are you sure you want to delete /tmp/x.txt? (y/n)",
		Tone: domain.ToneWarning,
	}, f.sink.Last())
	require.Empty(t, f.deleted.calls, "nothing runs before confirmation")

	f.session.Submit("y")

	require.False(t, f.session.Awaiting())
	require.Empty(t, f.session.Pending())
	require.Len(t, f.deleted.calls, 1)
	require.Equal(t, []string{"/tmp/x.txt"}, f.deleted.calls[0].Args)
	require.Equal(t, []string{"spaceworld", "file", "delete"}, f.deleted.calls[0].Node.Path)
	require.Contains(t, f.sink.Texts(), "Executing command: spaceworld file delete ~/tmp/x.txt")
}

func TestSubmit_DestructiveCancelled(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("spaceworld dir delete ~/tmp/old")
	f.session.Submit(" N ")

	require.False(t, f.session.Awaiting())
	require.Empty(t, f.deleted.calls)
	require.Equal(t, testutil.Line{Text: "Command canceled.", Tone: domain.ToneError}, f.sink.Last())
}

func TestSubmit_InvalidAnswerKeepsGate(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("spaceworld file delete ~/tmp/x.txt")
	f.session.Submit("clear")
	f.session.Submit("yes")

	require.True(t, f.session.Awaiting())
	require.Equal(t, "spaceworld file delete ~/tmp/x.txt", f.session.Pending())
	require.Equal(t, testutil.Line{Text: "Please enter 'y' or 'n'.", Tone: domain.ToneError}, f.sink.Last())
	require.Empty(t, f.echoed.calls)

	f.session.Submit("Y")

	require.False(t, f.session.Awaiting())
	require.Len(t, f.deleted.calls, 1)
	require.Equal(t, []string{
		"spaceworld file delete ~/tmp/x.txt", "clear", "yes", "Y",
	}, f.session.History())
}

func TestSubmit_DestructiveNeedsPath(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("spaceworld file delete /tmp/x.txt")

	require.False(t, f.session.Awaiting())
	require.Equal(t, domain.ToneError, f.sink.Last().Tone)
	require.Contains(t, f.sink.Last().Text, "Incorrect arguments")
}

// y without a pending command is just an unknown verb.
func TestSubmit_YesWhileIdle(t *testing.T) {
	f := newFixture(t, Options{})

	f.session.Submit("y")

	require.False(t, f.session.Awaiting())
	require.Equal(t, testutil.Line{Text: "Unknown command: y", Tone: domain.ToneError}, f.sink.Last())
	require.Empty(t, f.deleted.calls)
}

func TestSubmit_GateExclusivity(t *testing.T) {
	f := newFixture(t, Options{})
	inputs := []string{
		"spaceworld file delete ~/a", "maybe", "n",
		"y", "spaceworld dir delete ~/b", "y",
		"spaceworld file delete ~/c", "spaceworld file delete ~/d", "n",
	}

	for _, in := range inputs {
		f.session.Submit(in)
		require.Equal(t, f.session.Pending() != "", f.session.Awaiting(), "after %q", in)
		if in == "y" || in == "n" {
			require.False(t, f.session.Awaiting(), "after %q", in)
		}
	}

	require.Len(t, f.deleted.calls, 1)
	require.Equal(t, []string{"/b"}, f.deleted.calls[0].Args)
}

func TestSubmit_RealDeleteAfterConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("bye"), 0644))

	tree := cli.BuildTree(cli.Actions{FileDelete: fileops.DeleteFile}, nil)
	f := newFixture(t, Options{Tree: tree})

	f.session.Submit("spaceworld file delete ~" + path)
	require.FileExists(t, path)

	f.session.Submit("y")

	require.NoFileExists(t, path)
	require.Equal(t, testutil.Line{
		Text: "File " + path + " deleted successfully.",
		Tone: domain.ToneSuccess,
	}, f.sink.Last())
}

func TestSubmit_DeleteFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	tree := cli.BuildTree(cli.Actions{FileDelete: fileops.DeleteFile}, nil)
	f := newFixture(t, Options{Tree: tree})

	f.session.Submit("spaceworld file delete ~" + path)
	f.session.Submit("y")

	require.False(t, f.session.Awaiting())
	last := f.sink.Last()
	require.Equal(t, domain.ToneError, last.Tone)
	require.Contains(t, last.Text, "Error deleting file: ")
}

func TestNavigate(t *testing.T) {
	f := newFixture(t, Options{})

	_, ok := f.session.Navigate(-1)
	require.False(t, ok, "empty history does nothing")

	for _, line := range []string{"echo a", "echo b", "echo c"} {
		f.session.Submit(line)
	}

	line, _ := f.session.Navigate(-1)
	require.Equal(t, "echo c", line)
	f.session.Navigate(-1)
	line, _ = f.session.Navigate(-1)
	require.Equal(t, "echo a", line)
	line, _ = f.session.Navigate(-1)
	require.Equal(t, "echo a", line)
	line, _ = f.session.Navigate(+5)
	require.Equal(t, "echo c", line)
}

func TestComplete_SingleDoesNotPrint(t *testing.T) {
	f := newFixture(t, Options{})

	c := f.session.Complete("spac")

	require.Equal(t, dispatchers.SingleCompletion, c.Kind)
	require.Equal(t, "spaceworld ", c.Line)
	require.Empty(t, f.sink.Lines())
}

func TestComplete_AmbiguousIsListed(t *testing.T) {
	f := newFixture(t, Options{})

	c := f.session.Complete("spaceworld d")

	require.Equal(t, dispatchers.Ambiguous, c.Kind)
	require.Equal(t, []string{"Available commands:", "  - datatime", "  - dir"}, f.sink.Texts())

	f.sink.Reset()
	f.session.Complete("spaceworld file")
	require.Equal(t, "Available subcommands:", f.sink.Texts()[0])
}

func TestComplete_PathListing(t *testing.T) {
	f := newFixture(t, Options{
		ReadDir: func(dir string) ([]string, error) {
			require.Equal(t, "/tmp", dir)
			return []string{"notes.txt", "notes.md", "other"}, nil
		},
	})

	c := f.session.Complete("spaceworld file read ~/tmp/no")

	require.Equal(t, dispatchers.Ambiguous, c.Kind)
	require.Equal(t, dispatchers.SourcePath, c.Source)
	require.Equal(t, []string{"Available files/folders:", "  - notes.txt", "  - notes.md"}, f.sink.Texts())
}

func TestSessionHistory_PersistsOnlyNewLines(t *testing.T) {
	st := testutil.NewTestStore(t)
	testutil.SeedHistory(t, st, "previous", "echo old1", "echo old2")

	f := newFixture(t, Options{Store: st})
	require.Equal(t, []string{"echo old1", "echo old2"}, f.session.History())

	line, _ := f.session.Navigate(-1)
	require.Equal(t, "echo old2", line)

	f.session.Submit("echo new")
	require.NoError(t, f.session.Close())

	lines, err := st.SessionLines(f.session.ID())
	require.NoError(t, err)
	require.Equal(t, []string{"echo new"}, lines)

	all, err := st.LoadHistory(0)
	require.NoError(t, err)
	require.Equal(t, []string{"echo old1", "echo old2", "echo new"}, all)
}

func TestSessionHistory_LimitAppliesToSeed(t *testing.T) {
	st := testutil.NewTestStore(t)
	testutil.SeedHistory(t, st, "previous", "a", "b", "c")

	f := newFixture(t, Options{Store: st, HistoryLimit: 2})

	require.Equal(t, []string{"b", "c"}, f.session.History())
}

type brokenStore struct{}

func (brokenStore) LoadHistory(int) ([]string, error)     { return nil, errors.New("locked") }
func (brokenStore) AppendHistory(string, []string) error { return errors.New("locked") }
func (brokenStore) Close() error                         { return nil }

func TestSessionHistory_BrokenStore(t *testing.T) {
	f := newFixture(t, Options{Store: brokenStore{}})

	require.Empty(t, f.session.History())

	require.NoError(t, f.session.Close(), "nothing to save")

	f.session.Submit("echo x")
	require.Error(t, f.session.Close())
}

func TestSessionMetrics(t *testing.T) {
	rec := metrics.New()
	f := newFixture(t, Options{Metrics: rec})

	f.session.Submit("echo hi")
	f.session.Submit("nope")
	f.session.Submit("spaceworld file delete ~/tmp/x")
	f.session.Complete("spac")

	samples, err := rec.Snapshot()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, s := range samples {
		key := s.Name
		if s.Labels != "" {
			key += "{" + s.Labels + "}"
		}
		values[key] = s.Value
	}
	require.Equal(t, 1.0, values[`sw_commands_total{outcome="ok",verb="echo"}`])
	require.Equal(t, 1.0, values[`sw_commands_total{outcome="unknown",verb="unknown"}`])
	require.Equal(t, 1.0, values[`sw_commands_total{outcome="staged",verb="spaceworld"}`])
	require.Equal(t, 1.0, values[`sw_gate_awaiting`])
	require.Equal(t, 3.0, values[`sw_history_entries`])
}
