package cli

import (
	"fmt"

	"github.com/spaceworld/console/internal/actions/theme"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/ui/style"
)

// BuildTree registers the whole console grammar. themeNames populates the
// theme subtree.
func BuildTree(a Actions, themeNames []string) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "sw",
		Summary: "SpaceWorld console",
		Usage:   "<command> [arguments]",
	})

	// Console
	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   root,
		Summary:  "Clear the display and print the banner",
		Usage:    "clear",
		Action:   a.Clear,
		Category: dispatchers.CategoryConsole,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "echo",
		Parent:   root,
		Summary:  "Print text",
		Usage:    "echo <text>",
		Args:     EchoTextArg,
		Action:   a.Echo,
		Category: dispatchers.CategoryConsole,
	})

	// Window
	for _, verb := range []struct {
		name    string
		summary string
		action  dispatchers.CommandFunc
	}{
		{"exit", "Close the console", a.Exit},
		{"restart", "Restart the application", a.Restart},
		{"maximize", "Maximize the window", a.Maximize},
		{"minimize", "Minimize the window", a.Minimize},
		{"settings", "Open the settings view", a.Settings},
	} {
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     verb.name,
			Parent:   root,
			Summary:  verb.summary,
			Usage:    verb.name,
			Action:   verb.action,
			Category: dispatchers.CategoryWindow,
		})
	}

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "resize",
		Parent:   root,
		Summary:  "Resize the window",
		Usage:    "resize <width> <height>",
		Args:     ResizeArgs,
		Action:   a.Resize,
		Category: dispatchers.CategoryWindow,
	})

	// Appearance
	themeNode := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "theme",
		Parent:   root,
		Summary:  "Switch the color theme",
		Usage:    theme.UsageLine(themeNames),
		Args:     ThemeNameArg,
		Action:   a.Theme,
		Category: dispatchers.CategoryTheme,
	})
	addThemes(themeNode, themeNames)

	// config is the only case-sensitive verb.
	config := dispatchers.Command(dispatchers.CommandSpec{
		Name:          "config",
		Parent:        root,
		Summary:       "Print the configuration as JSON",
		Usage:         "config [get|set|unset]",
		Action:        a.Config,
		Category:      dispatchers.CategoryConsole,
		CaseSensitive: true,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print one configuration value",
		Usage:    "config get <key>",
		Args:     ConfigKeyArg,
		Action:   a.ConfigGet,
		Category: dispatchers.CategoryConsole,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Save a configuration value",
		Usage:    "config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   a.ConfigSet,
		Category: dispatchers.CategoryConsole,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Reset a configuration value to its default",
		Usage:    "config unset <key>",
		Args:     ConfigKeyArg,
		Action:   a.ConfigUnset,
		Category: dispatchers.CategoryConsole,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Parent:   root,
		Summary:  "List commands, or describe one",
		Usage:    "help [command]",
		Args:     HelpTopicArg,
		Action:   a.Help,
		Category: dispatchers.CategoryConsole,
	})

	buildSpaceworld(root, a)

	return root
}

func buildSpaceworld(root *dispatchers.DispatchNode, a Actions) {
	sw := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "spaceworld",
		Parent:  root,
		Summary: "SpaceWorld utilities",
		Usage:   "spaceworld <file|datatime|dir|ip|speedtest|random|version|metrics>",
	})

	// Files
	file := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "file",
		Parent:   sw,
		Summary:  "File utilities",
		Usage:    "spaceworld file <create|read|write|delete> ~<path>",
		Category: dispatchers.CategoryFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "create",
		Parent:   file,
		Summary:  "Create an empty file",
		Usage:    "spaceworld file create ~<path>",
		Args:     PathArg,
		Action:   a.FileCreate,
		Category: dispatchers.CategoryFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "read",
		Parent:   file,
		Summary:  "Print the contents of a file",
		Usage:    "spaceworld file read ~<path>",
		Args:     PathArg,
		Action:   a.FileRead,
		Category: dispatchers.CategoryFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "write",
		Parent:   file,
		Summary:  "Replace the contents of a file",
		Usage:    "spaceworld file write ~<path> <content>",
		Args:     WriteArgs,
		Action:   a.FileWrite,
		Category: dispatchers.CategoryFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "delete",
		Parent:      file,
		Summary:     "Delete a file, after confirmation",
		Usage:       "spaceworld file delete ~<path>",
		Args:        PathArg,
		Action:      a.FileDelete,
		Category:    dispatchers.CategoryFiles,
		Destructive: true,
	})

	// Date and time
	datatime := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "datatime",
		Parent:   sw,
		Summary:  "Date and time",
		Usage:    "spaceworld datatime <time|datatime|data|week|year>",
		Category: dispatchers.CategorySystem,
	})

	for _, leaf := range []struct {
		name    string
		summary string
		action  dispatchers.CommandFunc
	}{
		{"time", "Print the current time", a.Time},
		{"datatime", "Print the current date and time", a.DateTime},
		{"data", "Print today's date", a.Date},
		{"week", "Print the day of the week", a.Week},
		{"year", "Print the current month and year", a.Year},
	} {
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     leaf.name,
			Parent:   datatime,
			Summary:  leaf.summary,
			Usage:    "spaceworld datatime " + leaf.name,
			Action:   leaf.action,
			Category: dispatchers.CategorySystem,
		})
	}

	dir := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "dir",
		Parent:   sw,
		Summary:  "Directory utilities",
		Usage:    "spaceworld dir <create|delete> ~<path>",
		Category: dispatchers.CategoryFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "create",
		Parent:   dir,
		Summary:  "Create a directory inside parent",
		Usage:    "spaceworld dir create ~<parent> <name>",
		Args:     DirCreateArgs,
		Action:   a.DirCreate,
		Category: dispatchers.CategoryFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "delete",
		Parent:      dir,
		Summary:     "Delete an empty directory, after confirmation",
		Usage:       "spaceworld dir delete ~<path>",
		Args:        PathArg,
		Action:      a.DirDelete,
		Category:    dispatchers.CategoryFiles,
		Destructive: true,
	})

	// System information
	for _, leaf := range []struct {
		name    string
		summary string
		usage   string
		args    []dispatchers.ArgSpec
		action  dispatchers.CommandFunc
	}{
		{"ip", "List the addresses of every network interface", "spaceworld ip", nil, a.IP},
		{"speedtest", "Measure download and upload speed in the background", "spaceworld speedtest", nil, a.Speedtest},
		{"random", "Print a random integer in an inclusive range", "spaceworld random [start] <end>", RandomRangeArgs, a.Random},
		{"version", "Show the console version", "spaceworld version", nil, a.Version},
		{"metrics", "Show counters for this session", "spaceworld metrics", nil, a.Metrics},
	} {
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     leaf.name,
			Parent:   sw,
			Summary:  leaf.summary,
			Usage:    leaf.usage,
			Args:     leaf.args,
			Action:   leaf.action,
			Category: dispatchers.CategorySystem,
		})
	}
}

func addThemes(themeNode *dispatchers.DispatchNode, names []string) {
	for _, name := range names {
		dispatchers.Group(dispatchers.GroupSpec{
			Name:     name,
			Parent:   themeNode,
			Summary:  fmt.Sprintf("Switch to the %s theme", name),
			Usage:    "theme " + name,
			Category: dispatchers.CategoryTheme,
		})
	}
}

// reloadThemes runs next and, when it edited the themes key, rebuilds the
// theme subtree from the saved value.
func reloadThemes(next dispatchers.CommandFunc, lookup func(string) (string, bool)) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := next(call); err != nil {
			return err
		}
		if len(call.Args) > 0 && call.Args[0] == "themes" && call.Root != nil {
			value, _ := lookup("themes")
			RebuildThemes(call.Root, style.ThemeList(value))
		}
		return nil
	}
}

// RebuildThemes replaces the theme subtree with names.
func RebuildThemes(root *dispatchers.DispatchNode, names []string) {
	themeNode, ok := root.Child("theme")
	if !ok {
		return
	}
	themeNode.ClearChildren()
	themeNode.Usage = theme.UsageLine(names)
	addThemes(themeNode, names)
}
