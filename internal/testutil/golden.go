// Package testutil provides shared helpers for scenario-driven scanner tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ScenariosDir is the relative path from the module root to the scenarios.
const ScenariosDir = "testdata/scenarios"

// Scenario represents a test scenario loaded from a scenario.json file.
type Scenario struct {
	// Source is the source file to scan, relative to the scenario directory.
	Source string `json:"source"`
	// Keywords optionally names a keyword file; empty means the built-in set.
	Keywords string `json:"keywords,omitempty"`
	Expect   Expect `json:"expect"`
}

// Expect describes the expected outcome of scanning the scenario source.
type Expect struct {
	// Output is the golden file holding the expected rendering.
	Output string `json:"output"`
	// ErrorsOnly selects the error-token rendering instead of the full one.
	ErrorsOnly bool `json:"errorsOnly,omitempty"`
	// ErrorCount is the expected number of Error-kind tokens.
	ErrorCount int `json:"errorCount"`
}

// LoadScenario loads a scenario from a directory containing scenario.json.
func LoadScenario(dir string) (*Scenario, error) {
	data, err := os.ReadFile(filepath.Join(dir, "scenario.json"))
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListScenarios returns all scenario directories under the given root.
func ListScenarios(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			scenarioPath := filepath.Join(root, e.Name(), "scenario.json")
			if _, err := os.Stat(scenarioPath); err == nil {
				dirs = append(dirs, filepath.Join(root, e.Name()))
			}
		}
	}
	return dirs, nil
}

// ReadFileString reads a scenario-relative file as a string.
func ReadFileString(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
