// Package console runs one interactive session: it owns the command tree,
// the history ledger and the confirmation gate, and is the only code that
// mutates them. Front-ends call Submit, Complete and Navigate.
package console

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spaceworld/console/internal/confirm"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/history"
	"github.com/spaceworld/console/internal/log"
	"github.com/spaceworld/console/internal/metrics"
	"github.com/spaceworld/console/internal/paths"
	"github.com/spaceworld/console/internal/usage"
)

type Options struct {
	// ID names the session in logs and in the history store. Empty picks a
	// random UUID.
	ID string

	Tree *dispatchers.DispatchNode
	Out  domain.OutputSink

	// Store seeds the ledger on start and receives the new lines on Close.
	// Nil keeps history in memory only.
	Store        domain.HistoryStore
	HistoryLimit int

	Logger  domain.Logger
	Metrics *metrics.Recorder

	// WorkingDir is shown in the prompt echo.
	WorkingDir func() string
	ReadDir    dispatchers.ReadDirFunc
}

type Session struct {
	id      string
	tree    *dispatchers.DispatchNode
	out     domain.OutputSink
	ledger  *history.Ledger
	gate    *confirm.Gate
	store   domain.HistoryStore
	logger  domain.Logger
	metrics *metrics.Recorder
	resolve dispatchers.ResolveOptions
	cwd     func() string

	// seeded is the number of ledger entries loaded from the store.
	seeded int
}

// New starts a session. A history store that cannot be read is logged and
// the session starts with an empty ledger.
func New(opts Options) (*Session, error) {
	if opts.Tree == nil {
		return nil, errors.New("console: nil command tree")
	}
	if opts.Out == nil {
		return nil, errors.New("console: nil output sink")
	}

	s := &Session{
		id:      opts.ID,
		tree:    opts.Tree,
		out:     opts.Out,
		gate:    confirm.New(),
		store:   opts.Store,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		resolve: dispatchers.DefaultResolveOptions(),
		cwd:     opts.WorkingDir,
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = log.NopLogger{}
	}
	if s.cwd == nil {
		s.cwd = paths.WorkingDir
	}
	if opts.ReadDir != nil {
		s.resolve.ReadDir = opts.ReadDir
	}

	var seed []string
	if s.store != nil {
		lines, err := s.store.LoadHistory(opts.HistoryLimit)
		if err != nil {
			s.logger.Warn("history: load failed: %v", err)
		} else {
			seed = lines
		}
	}
	s.ledger = history.New(seed, opts.HistoryLimit)
	s.seeded = s.ledger.Len()

	s.metrics.Watch(s)
	s.logger.Info("session %s started with %d history lines", s.id, s.seeded)
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Tree() *dispatchers.DispatchNode {
	return s.tree
}

// HistoryLen and Awaiting let the metrics recorder sample the session.
func (s *Session) HistoryLen() int {
	return s.ledger.Len()
}

func (s *Session) Awaiting() bool {
	return s.gate.Awaiting()
}

func (s *Session) Pending() string {
	return s.gate.Pending()
}

// History returns a copy of every ledger entry, oldest first.
func (s *Session) History() []string {
	return s.ledger.Entries()
}

// Submit handles one line typed by the user. The line is echoed after the
// working directory, recorded in history, then routed to the gate when a
// destructive command is waiting, or to the dispatcher otherwise.
func (s *Session) Submit(raw string) {
	line := strings.TrimSpace(raw)
	s.out.Append(fmt.Sprintf("%s> %s", s.cwd(), line), domain.TonePrompt)
	if line == "" {
		return
	}

	s.ledger.Append(line)

	if s.gate.Awaiting() {
		s.respond(line)
		return
	}
	s.dispatch(line)
}

func (s *Session) dispatch(line string) {
	parsed := dispatchers.ParseLine(line)

	res, err := dispatchers.Dispatch(s.tree, parsed)
	if err != nil {
		s.metrics.Command(metricVerb(nil), outcomeFor(err), 0)
		s.report(err)
		return
	}

	if res.Node.Destructive {
		s.stage(res)
		return
	}

	s.run(dispatchers.Call{
		Root: s.tree,
		Node: res.Node,
		Args: res.Args,
		Line: res.Line,
		Out:  s.out,
	})
}

// stage parks a destructive command behind the gate. Nothing runs until the
// user answers y.
func (s *Session) stage(res dispatchers.Resolution) {
	path, ok := res.Line.PathToken()
	if !ok || path == "" {
		s.report(usage.IncorrectArguments(res.Node.Usage))
		return
	}

	pending := dispatchers.PendingCommand(res.Node, path)
	if err := s.gate.Stage(pending); err != nil {
		s.logger.Error("gate: stage %q: %v", pending, err)
		s.report(err)
		return
	}

	s.metrics.Command(metricVerb(res.Node), metrics.OutcomeStaged, 0)
	s.logger.Info("staged %q", pending)
	s.out.Append(fmt.Sprintf("Are you sure you want to delete %s? (y/n)", path), domain.ToneWarning)
}

func (s *Session) respond(line string) {
	resp, err := s.gate.Respond(line)
	if err != nil {
		s.logger.Error("gate: respond: %v", err)
		return
	}
	s.metrics.Confirmation(resp.Kind.String())
	s.logger.Debug("gate: %s for %q", resp.Kind, resp.Pending)

	switch resp.Kind {
	case confirm.Confirmed:
		s.out.Append("Executing command: "+resp.Pending, domain.ToneSuccess)
		s.executePending(resp.Pending)
	case confirm.Cancelled:
		s.out.Append("Command canceled.", domain.ToneError)
	default:
		s.report(usage.InvalidConfirmation())
	}
}

// executePending runs the staged command's action with the path recovered
// from the pending string.
func (s *Session) executePending(pending string) {
	parsed := dispatchers.ParseLine(pending)

	res, err := dispatchers.Dispatch(s.tree, parsed)
	if err != nil {
		s.logger.Error("gate: pending %q no longer resolves: %v", pending, err)
		s.report(err)
		return
	}

	s.run(dispatchers.Call{
		Root: s.tree,
		Node: res.Node,
		Args: []string{dispatchers.PendingPath(pending)},
		Line: parsed,
		Out:  s.out,
	})
}

func (s *Session) run(call dispatchers.Call) {
	verb := metricVerb(call.Node)
	s.logger.Debug("run %q args=%q", call.Node.CommandLine(), call.Args)

	start := time.Now()
	err := call.Node.Action(call)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.Command(verb, metrics.OutcomeError, elapsed)
		s.report(err)
		return
	}
	s.metrics.Command(verb, metrics.OutcomeOK, elapsed)
}

// report renders err with the error tone. Nothing reported here stops the
// session.
func (s *Session) report(err error) {
	var ue *usage.Error
	if errors.As(err, &ue) {
		if ue.Kind == usage.ErrActionFailed {
			s.logger.Warn("action failed: %v", err)
		} else {
			s.logger.Debug("%s: %v", ue.Kind, err)
		}
	} else {
		s.logger.Error("unexpected error: %v", err)
	}
	s.out.Append(err.Error(), domain.ToneError)
}

// Complete resolves a partially typed line. Ambiguous results are listed on
// the output; the caller replaces its input with the returned Line.
func (s *Session) Complete(line string) dispatchers.Completion {
	c := s.Suggest(line)
	if c.Kind != dispatchers.Ambiguous {
		return c
	}

	header := "Available commands:"
	tone := domain.ToneInfo
	switch {
	case c.Source == dispatchers.SourcePath:
		header = "Available files/folders:"
		tone = domain.ToneMuted
	case c.Partial == "":
		header = "Available subcommands:"
	}

	s.out.Append(header, tone)
	for _, cand := range c.Candidates {
		s.out.Append("  - "+cand, tone)
	}
	return c
}

// Suggest resolves line without writing anything to the output.
func (s *Session) Suggest(line string) dispatchers.Completion {
	c := dispatchers.Resolve(s.tree, line, s.resolve)
	s.metrics.Completion(c.Kind.String())
	s.logger.Debug("complete %q: %s %q", line, c.Kind, c.Candidates)
	return c
}

// Navigate moves through history; delta -1 is older, +1 newer.
func (s *Session) Navigate(delta int) (string, bool) {
	return s.ledger.Navigate(delta)
}

// Close stores the lines submitted during this session.
func (s *Session) Close() error {
	added := s.ledger.Since(s.seeded)
	s.logger.Info("session %s closed after %d lines", s.id, len(added))

	if s.store == nil || len(added) == 0 {
		return nil
	}
	if err := s.store.AppendHistory(s.id, added); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func metricVerb(node *dispatchers.DispatchNode) string {
	if node == nil || len(node.Path) == 0 {
		return "unknown"
	}
	return node.Path[0]
}

func outcomeFor(err error) string {
	var ue *usage.Error
	if errors.As(err, &ue) && ue.Kind == usage.ErrUnknownCommand {
		return metrics.OutcomeUnknown
	}
	return metrics.OutcomeError
}
