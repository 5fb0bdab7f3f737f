package config

func seed(v uint64) *uint64 { return &v }

var Presets = map[string]map[string]*Config{
	"bimodal": {
		"default": {
			Target: "bimodal", Samples: 1000, StepSize: 0.1, NumSteps: 10,
		},
		"explore": {
			Target: "bimodal", Samples: 5000, StepSize: 0.15, NumSteps: 20,
		},
		"mode": {
			Target: "bimodal", Samples: 1000, StepSize: 0.01, NumSteps: 1,
			Start: StartConfig{X: 2.5, Y: 2.5},
		},
		"unstable": {
			Target: "bimodal", Samples: 200, StepSize: 2.2, NumSteps: 10,
			Seed: seed(42),
		},
	},
	"banana": {
		"default": {
			Target: "banana", Samples: 1000, StepSize: 0.1, NumSteps: 10,
		},
		"fine": {
			Target: "banana", Samples: 2000, StepSize: 0.02, NumSteps: 50,
			Start: StartConfig{X: 1, Y: 1},
		},
		"stress": {
			Target: "banana", Samples: 50000, StepSize: 0.1, NumSteps: 5,
		},
	},
}

// GetPreset returns a copy of the named preset so callers may modify it.
func GetPreset(targetName, preset string) *Config {
	targetPresets, ok := Presets[targetName]
	if !ok {
		return nil
	}
	cfg, ok := targetPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	c.Log = LogConfig{Level: "info"}
	return &c
}

func ListPresets(targetName string) []string {
	targetPresets, ok := Presets[targetName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(targetPresets))
	for name := range targetPresets {
		names = append(names, name)
	}
	return names
}
