// Package clock holds the spaceworld datatime leaf actions.
package clock

import (
	"fmt"
	"time"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/format"
)

type Deps struct {
	Now      func() time.Time
	Date     func(time.Time) string
	TimeFull func(time.Time) string
	Full     func(time.Time) string
}

func DefaultDeps() Deps {
	return Deps{
		Now:      time.Now,
		Date:     format.Date,
		TimeFull: format.TimeFull,
		Full:     format.Full,
	}
}

// Time prints the current time of day with seconds.
func Time(call dispatchers.Call) error {
	return showTime(call, DefaultDeps())
}

func showTime(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	call.Out.Append(deps.TimeFull(deps.Now()), domain.ToneInfo)
	return nil
}

// DateTime prints the current date and time with seconds.
func DateTime(call dispatchers.Call) error {
	return showDateTime(call, DefaultDeps())
}

func showDateTime(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	call.Out.Append(deps.Full(deps.Now()), domain.ToneInfo)
	return nil
}

// Date prints today's date in the configured display_date format.
func Date(call dispatchers.Call) error {
	return showDate(call, DefaultDeps())
}

func showDate(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	call.Out.Append(deps.Date(deps.Now()), domain.ToneInfo)
	return nil
}

// Week prints the name of the current weekday.
func Week(call dispatchers.Call) error {
	return showWeek(call, DefaultDeps())
}

func showWeek(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	call.Out.Append(deps.Now().Weekday().String(), domain.ToneInfo)
	return nil
}

// Year prints the current month and year on two lines.
func Year(call dispatchers.Call) error {
	return showYear(call, DefaultDeps())
}

func showYear(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	now := deps.Now()
	call.Out.Append(fmt.Sprintf("Month: %s", now.Month()), domain.ToneInfo)
	call.Out.Append(fmt.Sprintf("Year: %d", now.Year()), domain.ToneInfo)
	return nil
}
