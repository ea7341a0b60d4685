package dispatchers

type RootSpec struct {
	Name    string
	Summary string
	Usage   string
}

type GroupSpec struct {
	Name     string
	Parent   *DispatchNode
	Summary  string
	Usage    string
	Category CommandCategory
}

type CommandSpec struct {
	Name          string
	Parent        *DispatchNode
	Summary       string
	Usage         string
	Args          []ArgSpec
	Action        CommandFunc
	Category      CommandCategory
	CaseSensitive bool
	Destructive   bool
}
