package fileops

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// CreateFile handles "spaceworld file create ~<path>".
func CreateFile(call dispatchers.Call) error {
	return createFile(call, DefaultDeps())
}

func createFile(call dispatchers.Call, deps Deps) error {
	args := call.Line.PathArgs()
	if len(args) != 1 {
		return usage.IncorrectArguments(call.Node.Usage)
	}
	path := args[0]

	f, err := deps.Create(path)
	if err != nil {
		return usage.ActionFailed(err)
	}
	if err := f.Close(); err != nil {
		return usage.ActionFailed(err)
	}

	call.Out.Append(fmt.Sprintf("File %s created.", path), domain.ToneSuccess)
	return nil
}

// ReadFile handles "spaceworld file read ~<path>".
func ReadFile(call dispatchers.Call) error {
	return readFile(call, DefaultDeps())
}

func readFile(call dispatchers.Call, deps Deps) error {
	args := call.Line.PathArgs()
	if len(args) != 1 {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	data, err := deps.ReadFile(args[0])
	if err != nil {
		return usage.ActionFailed(err)
	}

	call.Out.Append(string(data), domain.ToneInfo)
	return nil
}

// WriteFile handles "spaceworld file write ~<path> <content>". The content is
// everything after the path, with its inner spacing kept.
func WriteFile(call dispatchers.Call) error {
	return writeFile(call, DefaultDeps())
}

func writeFile(call dispatchers.Call, deps Deps) error {
	path, content, ok := splitPathAndContent(call.Line)
	if !ok {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	if err := deps.WriteFile(path, []byte(content), 0644); err != nil {
		return usage.ActionFailed(err)
	}

	call.Out.Append(fmt.Sprintf("Wrote %d bytes to %s.", len(content), path), domain.ToneSuccess)
	return nil
}

func splitPathAndContent(line dispatchers.ParsedLine) (path, content string, ok bool) {
	target, found := line.PathToken()
	if !found {
		return "", "", false
	}

	end := strings.IndexFunc(target, unicode.IsSpace)
	if end < 0 {
		return "", "", false
	}

	path = target[:end]
	content = strings.TrimLeftFunc(target[end:], unicode.IsSpace)
	if content == "" {
		return "", "", false
	}
	return path, content, true
}

// DeleteFile removes the file named by the first argument. It only runs
// after the confirmation gate released "spaceworld file delete ~<path>".
func DeleteFile(call dispatchers.Call) error {
	return deleteFile(call, DefaultDeps())
}

func deleteFile(call dispatchers.Call, deps Deps) error {
	if len(call.Args) != 1 || call.Args[0] == "" {
		return usage.IncorrectArguments(call.Node.Usage)
	}
	path := call.Args[0]

	if info, err := deps.Stat(path); err == nil && info.IsDir() {
		return usage.ActionFailedWith("Error deleting file", errors.New(path+" is a directory"))
	}

	if err := deps.Remove(path); err != nil {
		return usage.ActionFailedWith("Error deleting file", err)
	}

	call.Out.Append(fmt.Sprintf("File %s deleted successfully.", path), domain.ToneSuccess)
	return nil
}
