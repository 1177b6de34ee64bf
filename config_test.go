package main

import "testing"

func TestConfigValidate(t *testing.T) {
	valid := Config{InputDir: "./input", OutputDir: "./output", PointsPerFile: 50}
	if err := valid.validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero points", Config{InputDir: "in", OutputDir: "out", PointsPerFile: 0}},
		{"negative points", Config{InputDir: "in", OutputDir: "out", PointsPerFile: -5}},
		{"empty input dir", Config{OutputDir: "out", PointsPerFile: 50}},
		{"empty output dir", Config{InputDir: "in", PointsPerFile: 50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.validate(); err == nil {
				t.Errorf("Expected an error for %s, got nil", tc.name)
			}
		})
	}
}
