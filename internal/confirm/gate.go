// Package confirm holds the two-state gate that parks a destructive command
// until the user answers y or n.
package confirm

import (
	"errors"
	"strings"
)

type State int

const (
	Idle State = iota
	AwaitingConfirmation
)

func (s State) String() string {
	if s == AwaitingConfirmation {
		return "awaiting_confirmation"
	}
	return "idle"
}

type ResponseKind int

const (
	Invalid ResponseKind = iota
	Confirmed
	Cancelled
)

func (k ResponseKind) String() string {
	switch k {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

// Response is the gate's reading of one submitted line. Pending is the staged
// command the answer applies to.
type Response struct {
	Kind    ResponseKind
	Pending string
}

var (
	ErrNotIdle    = errors.New("a command is already awaiting confirmation")
	ErrNotPending = errors.New("no command is awaiting confirmation")
	ErrEmpty      = errors.New("pending command is empty")
)

// Gate is Idle or AwaitingConfirmation. pending is non-empty exactly when
// the gate is awaiting.
type Gate struct {
	pending string
}

func New() *Gate {
	return &Gate{}
}

func (g *Gate) State() State {
	if g.pending != "" {
		return AwaitingConfirmation
	}
	return Idle
}

func (g *Gate) Awaiting() bool {
	return g.State() == AwaitingConfirmation
}

func (g *Gate) Pending() string {
	return g.pending
}

// Stage parks pending and moves the gate to AwaitingConfirmation.
func (g *Gate) Stage(pending string) error {
	if g.Awaiting() {
		return ErrNotIdle
	}
	if strings.TrimSpace(pending) == "" {
		return ErrEmpty
	}
	g.pending = pending
	return nil
}

// Respond interprets line as an answer. Only y or n, in any case and with
// surrounding whitespace ignored, returns the gate to Idle.
func (g *Gate) Respond(line string) (Response, error) {
	if !g.Awaiting() {
		return Response{}, ErrNotPending
	}

	resp := Response{Pending: g.pending}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y":
		resp.Kind = Confirmed
		g.pending = ""
	case "n":
		resp.Kind = Cancelled
		g.pending = ""
	default:
		resp.Kind = Invalid
	}
	return resp, nil
}
