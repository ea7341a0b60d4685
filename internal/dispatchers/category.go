package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryConsole                       // clear, echo, help, config
	CategoryWindow                        // exit, restart, resize, maximize, minimize, settings
	CategoryTheme                         // theme
	CategoryFiles                         // spaceworld file/dir
	CategorySystem                        // spaceworld datatime/ip/speedtest/random/version/metrics
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryConsole:
		return "console"
	case CategoryWindow:
		return "window"
	case CategoryTheme:
		return "appearance"
	case CategoryFiles:
		return "files and directories"
	case CategorySystem:
		return "system information"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryConsole,
	CategoryWindow,
	CategoryTheme,
	CategoryFiles,
	CategorySystem,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
