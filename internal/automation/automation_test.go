package automation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/sim"
)

const scenarioYAML = `
name: density
description: sparse versus crowded
steps:
  - name: few
    preset: sparse
    balls: 5
    seed: 1
    steps: 20
  - preset: crowd
    balls: 40
    boundary: ordered
    seed: 2
    steps: 10
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Name != "density" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}
	if sc.Steps[0].Balls == nil || *sc.Steps[0].Balls != 5 {
		t.Error("balls override not parsed")
	}
	if sc.Steps[1].Diameter != nil {
		t.Error("unset override should stay nil")
	}

	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
}

func TestStepConfig(t *testing.T) {
	w, h, n := 100, 50, 4
	cfg, err := ScenarioStep{Preset: "legacy", Balls: &n, Width: &w, Height: &h, Boundary: "independent"}.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Field.Right != 100 || cfg.Field.Bottom != 50 {
		t.Errorf("field override not applied: %+v", cfg.Field)
	}
	if cfg.Diameter != 24 || cfg.Boundary != "independent" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := (ScenarioStep{Preset: "nope"}).Config(); err == nil {
		t.Error("expected unknown preset error")
	}

	many := 100000
	if _, err := (ScenarioStep{Balls: &many}).Config(); err == nil {
		t.Error("expected capacity error")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}

	var saved []string
	save := func(cfg *config.Config, r *sim.Result) (string, error) {
		saved = append(saved, cfg.Name)
		return "id-" + cfg.Name, nil
	}

	var out strings.Builder
	outcomes, err := RunScenario(context.Background(), sc, &out, save)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Name != "few" || outcomes[1].Name != "crowd" {
		t.Errorf("unexpected names %q %q", outcomes[0].Name, outcomes[1].Name)
	}
	if outcomes[0].Result.StepsTaken != 20 || outcomes[1].Result.StepsTaken != 10 {
		t.Error("steps override not applied")
	}
	if outcomes[0].RunID != "id-few" || len(saved) != 2 {
		t.Errorf("save not called per step: %v", saved)
	}
	if !strings.Contains(out.String(), "running step 2/2: crowd") {
		t.Errorf("missing progress in %q", out.String())
	}
}

func TestRunScenarioStopsOnError(t *testing.T) {
	bad := 0
	sc := &Scenario{Steps: []ScenarioStep{
		{Preset: "sparse", Steps: &bad},
		{Diameter: &bad},
	}}

	outcomes, err := RunScenario(context.Background(), sc, io.Discard, nil)
	if err == nil || !strings.Contains(err.Error(), "step 2") {
		t.Fatalf("expected step 2 error, got %v", err)
	}
	if len(outcomes) != 1 {
		t.Errorf("expected first outcome kept, got %d", len(outcomes))
	}
}

func TestExecute(t *testing.T) {
	cfg := config.GetPreset("sparse")
	cfg.Seed = 9
	cfg.Steps = 50

	r, err := Execute(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.StepsTaken != 50 {
		t.Errorf("expected 50 steps, got %d", r.StepsTaken)
	}
	if _, ok := r.Metrics["collision_rate"]; !ok {
		t.Error("default metrics not attached")
	}
}
