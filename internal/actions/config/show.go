package config

import (
	"encoding/json"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// Show prints the merged configuration as indented JSON.
func Show(call dispatchers.Call) error {
	return show(call, DefaultDeps())
}

func show(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	configMap, err := deps.GetAll()
	if err != nil {
		return usage.ActionFailed(err)
	}

	visible := Visible(configMap)

	data, err := json.MarshalIndent(visible, "", "    ")
	if err != nil {
		return usage.ActionFailed(err)
	}

	call.Out.Append(string(data), domain.ToneDefault)
	return nil
}

// Visible drops hidden keys, and keys that are only shown once set.
func Visible(configMap map[string]string) map[string]string {
	out := make(map[string]string, len(configMap))
	for _, key := range domain.VisibleConfigKeys() {
		value, ok := configMap[key.Name]
		if !ok {
			continue
		}
		if key.HideIfEmpty && value == "" {
			continue
		}
		out[key.Name] = value
	}
	return out
}
