package actions

import "github.com/spaceworld/console/internal/metrics"

// Version is the console version reported by spaceworld version.
var Version = "1.0"

type actionDependencies struct {
	Version  func() string
	Snapshot func() ([]metrics.Sample, error)
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Version: func() string { return Version },
	}
}
