package actions

import (
	"fmt"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
)

func ShowVersion(call dispatchers.Call) error {
	return showVersion(call, defaultDeps())
}

func showVersion(call dispatchers.Call, deps actionDependencies) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	call.Out.Append(fmt.Sprintf("SpaceWorld Console v%s", deps.Version()), domain.ToneInfo)
	return nil
}
