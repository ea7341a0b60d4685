package config

import (
	"fmt"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// Get handles "config get <key>".
func Get(call dispatchers.Call) error {
	return get(call, DefaultDeps())
}

func get(call dispatchers.Call, deps Deps) error {
	if len(call.Args) != 1 {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	key := call.Args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	call.Out.Append(fmt.Sprintf("%s=%s", key, value), domain.ToneInfo)
	return nil
}

// Set handles "config set <key> <value>". Values may contain spaces.
func Set(call dispatchers.Call) error {
	return set(call, DefaultDeps())
}

func set(call dispatchers.Call, deps Deps) error {
	if len(call.Args) < 2 {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	key := call.Args[0]
	value := call.Line.Rest(len(call.Line.Tokens) - len(call.Args) + 1)

	if err := deps.Set(key, value); err != nil {
		return err
	}

	call.Out.Append(fmt.Sprintf("%s set to %s", key, value), domain.ToneSuccess)
	return nil
}

// Unset handles "config unset <key>".
func Unset(call dispatchers.Call) error {
	return unset(call, DefaultDeps())
}

func unset(call dispatchers.Call, deps Deps) error {
	if len(call.Args) != 1 {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	key := call.Args[0]
	if err := deps.Unset(key); err != nil {
		return err
	}

	call.Out.Append(fmt.Sprintf("%s reset to default", key), domain.ToneSuccess)
	return nil
}
