package actions

import (
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/metrics"
	"github.com/spaceworld/console/internal/usage"
)

// ShowMetrics returns the action for spaceworld metrics, bound to the
// session's recorder.
func ShowMetrics(recorder *metrics.Recorder) dispatchers.CommandFunc {
	deps := defaultDeps()
	deps.Snapshot = recorder.Snapshot
	return func(call dispatchers.Call) error {
		return showMetrics(call, deps)
	}
}

func showMetrics(call dispatchers.Call, deps actionDependencies) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	samples, err := deps.Snapshot()
	if err != nil {
		return usage.ActionFailed(err)
	}

	if len(samples) == 0 {
		call.Out.Append("No metrics recorded yet.", domain.ToneMuted)
		return nil
	}

	for _, s := range samples {
		call.Out.Append(s.String(), domain.ToneInfo)
	}
	return nil
}
