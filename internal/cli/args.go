package cli

import "github.com/spaceworld/console/internal/dispatchers"

var (
	EchoTextArg = []dispatchers.ArgSpec{
		{
			Name:        "text",
			Description: "Text to print",
			Required:    false,
		},
	}

	ResizeArgs = []dispatchers.ArgSpec{
		{
			Name:        "width",
			Description: "Window width in cells",
			Required:    true,
		},
		{
			Name:        "height",
			Description: "Window height in cells",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., dark, light, blue)",
			Required:    true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	HelpTopicArg = []dispatchers.ArgSpec{
		{
			Name:        "command",
			Description: "Command path to describe (e.g., spaceworld file)",
			Required:    false,
		},
	}

	PathArg = []dispatchers.ArgSpec{
		{
			Name:        "~path",
			Description: "Target path after the ~ sentinel",
			Required:    true,
		},
	}

	WriteArgs = []dispatchers.ArgSpec{
		{
			Name:        "~path",
			Description: "File to write, after the ~ sentinel",
			Required:    true,
		},
		{
			Name:        "content",
			Description: "Text to write",
			Required:    true,
		},
	}

	DirCreateArgs = []dispatchers.ArgSpec{
		{
			Name:        "~parent",
			Description: "Existing parent directory, after the ~ sentinel",
			Required:    true,
		},
		{
			Name:        "name",
			Description: "Name of the new directory",
			Required:    true,
		},
	}

	RandomRangeArgs = []dispatchers.ArgSpec{
		{
			Name:        "start",
			Description: "Lowest value (defaults to 0)",
			Required:    false,
		},
		{
			Name:        "end",
			Description: "Highest value, inclusive",
			Required:    true,
		},
	}
)
