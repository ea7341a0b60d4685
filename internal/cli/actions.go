package cli

import (
	"github.com/spaceworld/console/internal/actions"
	"github.com/spaceworld/console/internal/actions/clock"
	configactions "github.com/spaceworld/console/internal/actions/config"
	"github.com/spaceworld/console/internal/actions/fileops"
	"github.com/spaceworld/console/internal/actions/help"
	"github.com/spaceworld/console/internal/actions/netinfo"
	"github.com/spaceworld/console/internal/actions/random"
	"github.com/spaceworld/console/internal/actions/speedtest"
	"github.com/spaceworld/console/internal/actions/theme"
	"github.com/spaceworld/console/internal/actions/window"
	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/metrics"
)

// Actions is the leaf action table. Every field is attached to exactly one
// grammar path by BuildTree; a nil field leaves that path without an action.
type Actions struct {
	Clear    dispatchers.CommandFunc
	Echo     dispatchers.CommandFunc
	Exit     dispatchers.CommandFunc
	Restart  dispatchers.CommandFunc
	Maximize dispatchers.CommandFunc
	Minimize dispatchers.CommandFunc
	Settings dispatchers.CommandFunc
	Resize   dispatchers.CommandFunc
	Theme    dispatchers.CommandFunc
	Help     dispatchers.CommandFunc

	Config      dispatchers.CommandFunc
	ConfigGet   dispatchers.CommandFunc
	ConfigSet   dispatchers.CommandFunc
	ConfigUnset dispatchers.CommandFunc

	FileCreate dispatchers.CommandFunc
	FileRead   dispatchers.CommandFunc
	FileWrite  dispatchers.CommandFunc
	FileDelete dispatchers.CommandFunc
	DirCreate  dispatchers.CommandFunc
	DirDelete  dispatchers.CommandFunc

	Time     dispatchers.CommandFunc
	DateTime dispatchers.CommandFunc
	Date     dispatchers.CommandFunc
	Week     dispatchers.CommandFunc
	Year     dispatchers.CommandFunc

	IP        dispatchers.CommandFunc
	Speedtest dispatchers.CommandFunc
	Random    dispatchers.CommandFunc
	Version   dispatchers.CommandFunc
	Metrics   dispatchers.CommandFunc
}

// DefaultActions binds the action table to the hosting shell and the
// session's metrics recorder.
func DefaultActions(shell domain.Shell, recorder *metrics.Recorder) Actions {
	windowDeps := window.DefaultDeps(shell)
	themeDeps := theme.DefaultDeps(shell)

	return Actions{
		Clear:    window.Clear(windowDeps),
		Echo:     actions.Echo,
		Exit:     window.Exit(windowDeps),
		Restart:  window.Restart(windowDeps),
		Maximize: window.Maximize(windowDeps),
		Minimize: window.Minimize(windowDeps),
		Settings: window.Settings(windowDeps),
		Resize:   window.Resize(windowDeps),
		Theme:    theme.Set(themeDeps),
		Help:     help.Show,

		Config:      configactions.Show,
		ConfigGet:   configactions.Get,
		ConfigSet:   reloadThemes(configactions.Set, config.Get),
		ConfigUnset: reloadThemes(configactions.Unset, config.Get),

		FileCreate: fileops.CreateFile,
		FileRead:   fileops.ReadFile,
		FileWrite:  fileops.WriteFile,
		FileDelete: fileops.DeleteFile,
		DirCreate:  fileops.CreateDir,
		DirDelete:  fileops.DeleteDir,

		Time:     clock.Time,
		DateTime: clock.DateTime,
		Date:     clock.Date,
		Week:     clock.Week,
		Year:     clock.Year,

		IP:        netinfo.ListIPs,
		Speedtest: speedtest.Run,
		Random:    random.Number,
		Version:   actions.ShowVersion,
		Metrics:   actions.ShowMetrics(recorder),
	}
}
