package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/spaceworld/console/internal/actions/window"
	"github.com/spaceworld/console/internal/cli"
	"github.com/spaceworld/console/internal/console"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/log"
	"github.com/spaceworld/console/internal/metrics"
	"github.com/spaceworld/console/internal/paths"
	"github.com/spaceworld/console/internal/ui"
	"github.com/spaceworld/console/internal/ui/plain"
	"github.com/spaceworld/console/internal/ui/style"
	"github.com/spaceworld/console/internal/ui/terminal"
)

// Result reports how a console run ended.
type Result struct {
	SessionID string

	// Restart is set when the user asked for the application to be
	// relaunched.
	Restart bool
}

// frontend is one of the two console front-ends, bound to its output sink.
type frontend interface {
	sink() domain.OutputSink
	shell() domain.Shell
	run(s *console.Session) error
	restartRequested() bool
}

// Run builds the command tree and a session on the chosen front-end, runs
// it until exit, then stores the session history.
func Run(app *domain.Application, opts Options) (Result, error) {
	var fe frontend
	if opts.Plain {
		fe = newPlainFrontend(app.Styler)
	} else {
		fe = newTerminalFrontend()
	}
	return run(app, opts, fe)
}

func run(app *domain.Application, opts Options, fe frontend) (Result, error) {
	id := uuid.NewString()
	recorder := metrics.New()

	themes := ""
	if app.Config != nil {
		themes, _ = app.Config.Get("themes")
	}
	tree := cli.BuildTree(cli.DefaultActions(fe.shell(), recorder), style.ThemeList(themes))

	session, err := console.New(console.Options{
		ID:           id,
		Tree:         tree,
		Out:          fe.sink(),
		Store:        app.History,
		HistoryLimit: opts.HistoryLimit,
		Logger:       sessionLogger(app.Logger, id),
		Metrics:      recorder,
		WorkingDir:   paths.WorkingDir,
	})
	if err != nil {
		return Result{}, fmt.Errorf("start session: %w", err)
	}

	for _, line := range window.Banner {
		fe.sink().Append(line, domain.ToneDefault)
	}

	runErr := fe.run(session)

	if err := session.Close(); err != nil {
		app.Logger.Error("%v", err)
	}
	if app.Config != nil {
		if err := app.Config.Set("last_session", id); err != nil {
			app.Logger.Warn("record last session: %v", err)
		}
	}

	return Result{SessionID: id, Restart: fe.restartRequested()}, runErr
}

func sessionLogger(l domain.Logger, id string) domain.Logger {
	if fileLogger, ok := l.(*log.Logger); ok && fileLogger != nil {
		return fileLogger.WithSession(id)
	}
	if l == nil {
		return log.NopLogger{}
	}
	return l
}

type plainFrontend struct {
	writer *ui.Writer
	sh     *plain.Shell
}

func newPlainFrontend(styler domain.Styler) *plainFrontend {
	writer := ui.NewWriter(ui.WithStyler(styler), ui.WithoutEcho())
	return &plainFrontend{
		writer: writer,
		sh:     plain.NewShell(writer, writer),
	}
}

func (f *plainFrontend) sink() domain.OutputSink { return f.writer }
func (f *plainFrontend) shell() domain.Shell     { return f.sh }
func (f *plainFrontend) restartRequested() bool  { return f.sh.RestartRequested() }

func (f *plainFrontend) run(s *console.Session) error {
	return plain.Run(plain.Options{
		Console:    s,
		Shell:      f.sh,
		Writer:     f.writer,
		WorkingDir: paths.WorkingDir,
	})
}

type terminalFrontend struct {
	buf *terminal.Buffer
	sh  *terminal.Shell
}

func newTerminalFrontend() *terminalFrontend {
	buf := terminal.NewBuffer()
	return &terminalFrontend{
		buf: buf,
		sh:  terminal.NewShell(buf, os.Stdout),
	}
}

func (f *terminalFrontend) sink() domain.OutputSink { return f.buf }
func (f *terminalFrontend) shell() domain.Shell     { return f.sh }
func (f *terminalFrontend) restartRequested() bool  { return f.sh.RestartRequested() }

func (f *terminalFrontend) run(s *console.Session) error {
	return terminal.Run(terminal.Options{
		Console:    s,
		Shell:      f.sh,
		Buffer:     f.buf,
		WorkingDir: paths.WorkingDir,
	})
}
