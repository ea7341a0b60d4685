// Package random holds the spaceworld random leaf action.
package random

import (
	"math/rand/v2"
	"strconv"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

type Deps struct {
	// IntN returns a value in [0, n).
	IntN func(n int64) int64
}

func DefaultDeps() Deps {
	return Deps{
		IntN: rand.Int64N,
	}
}

// Number handles "spaceworld random [start] <end>" and prints an integer in
// the inclusive range. start defaults to 0.
func Number(call dispatchers.Call) error {
	return number(call, DefaultDeps())
}

func number(call dispatchers.Call, deps Deps) error {
	var start, end int64
	var err error

	switch len(call.Args) {
	case 1:
		end, err = strconv.ParseInt(call.Args[0], 10, 64)
	case 2:
		start, err = strconv.ParseInt(call.Args[0], 10, 64)
		if err == nil {
			end, err = strconv.ParseInt(call.Args[1], 10, 64)
		}
	default:
		return usage.IncorrectArguments(call.Node.Usage)
	}

	if err != nil {
		return usage.InvalidNumber("Invalid range. Please enter whole numbers.")
	}
	if start > end {
		return usage.InvalidNumber("Invalid range: start is greater than end.")
	}

	span := end - start + 1
	if span <= 0 {
		// The range covers more than int64 can count.
		return usage.InvalidNumber("Invalid range: too wide.")
	}

	value := start + deps.IntN(span)
	call.Out.Append(strconv.FormatInt(value, 10), domain.ToneInfo)
	return nil
}
