package fileops

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// CreateDir handles "spaceworld dir create ~<parent> <name>".
func CreateDir(call dispatchers.Call) error {
	return createDir(call, DefaultDeps())
}

func createDir(call dispatchers.Call, deps Deps) error {
	args := call.Line.PathArgs()
	if len(args) != 2 {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	target := filepath.Join(args[0], args[1])
	if err := deps.Mkdir(target, 0755); err != nil {
		return usage.ActionFailed(err)
	}

	call.Out.Append(fmt.Sprintf("Directory %s created.", target), domain.ToneSuccess)
	return nil
}

// DeleteDir removes an empty directory. Like DeleteFile it only runs once
// the gate released the staged command.
func DeleteDir(call dispatchers.Call) error {
	return deleteDir(call, DefaultDeps())
}

func deleteDir(call dispatchers.Call, deps Deps) error {
	if len(call.Args) != 1 || call.Args[0] == "" {
		return usage.IncorrectArguments(call.Node.Usage)
	}
	path := call.Args[0]

	info, err := deps.Stat(path)
	if err != nil {
		return usage.ActionFailedWith("Error deleting directory", err)
	}
	if !info.IsDir() {
		return usage.ActionFailedWith("Error deleting directory", errors.New(path+" is not a directory"))
	}

	if err := deps.Remove(path); err != nil {
		return usage.ActionFailedWith("Error deleting directory", err)
	}

	call.Out.Append(fmt.Sprintf("Directory %s deleted successfully.", path), domain.ToneSuccess)
	return nil
}
