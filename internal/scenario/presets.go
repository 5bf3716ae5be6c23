package scenario

// Presets are named starting conditions per scenario kind. "classic" uses
// the constants from the original sketches; "circular" starts at exactly
// circular speed; "plunge" falls below the collision threshold and ends the
// run on purpose.
var Presets = map[string]map[string]*Config{
	Orbit2D: {
		"classic": {
			Scenario: Orbit2D, G: 50, CentralMass: 1000, BodyMass: 1, Dt: 0.01,
			Threshold: Threshold2D, TrailCap: 1000,
			Init: InitState{X: 150, VY: 2.5},
		},
		"circular": {
			Scenario: Orbit2D, G: 50, CentralMass: 1000, BodyMass: 1, Dt: 0.01,
			Threshold: Threshold2D, TrailCap: 1000,
			Init: InitState{X: 150, VY: 18.257419}, // sqrt(G*M/r)
		},
		"plunge": {
			Scenario: Orbit2D, G: 50, CentralMass: 1000, BodyMass: 1, Dt: 0.01,
			Threshold: Threshold2D, TrailCap: 1000,
			Init: InitState{X: 150, VY: 0.5},
		},
	},
	Orbit3D: {
		"classic": {
			Scenario: Orbit3D, G: 50, CentralMass: 1000, BodyMass: 1, Dt: 0.01,
			Threshold: Threshold3D, TrailCap: 1000,
			Init: InitState{X: 150, VZ: 15},
		},
		"circular": {
			Scenario: Orbit3D, G: 50, CentralMass: 1000, BodyMass: 1, Dt: 0.01,
			Threshold: Threshold3D, TrailCap: 1000,
			Init: InitState{X: 150, VZ: 18.257419},
		},
		"plunge": {
			Scenario: Orbit3D, G: 50, CentralMass: 1000, BodyMass: 1, Dt: 0.01,
			Threshold: Threshold3D, TrailCap: 1000,
			Init: InitState{X: 150, VZ: 2},
		},
	},
}

func GetPreset(kind, name string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	return names
}
