package config

import "sort"

var Presets = map[string]*Config{
	"sparse": {
		Name: "sparse", Balls: 20, Diameter: 10, Boundary: "independent",
		Field: FieldConfig{Right: 640, Bottom: 480}, Steps: 2000, SampleEvery: 10, FPS: 60,
	},
	"dense": {
		Name: "dense", Balls: 600, Diameter: 16, Boundary: "independent",
		Field: FieldConfig{Right: 640, Bottom: 480}, Steps: 2000, SampleEvery: 20, FPS: 60,
	},
	"crowd": {
		Name: "crowd", Balls: 150, Diameter: 20, Boundary: "independent",
		Field: FieldConfig{Right: 400, Bottom: 300}, Steps: 3000, SampleEvery: 10, FPS: 60,
	},
	"legacy": {
		Name: "legacy", Balls: 100, Diameter: 24, Boundary: "ordered",
		Field: FieldConfig{Right: 800, Bottom: 600}, Steps: 2000, SampleEvery: 10, FPS: 60,
	},
	"corridor": {
		Name: "corridor", Balls: 30, Diameter: 10, Boundary: "independent",
		Field: FieldConfig{Right: 600, Bottom: 40}, Steps: 2000, SampleEvery: 10, FPS: 60,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
