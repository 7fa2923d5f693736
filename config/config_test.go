package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	if err := Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
	}{
		{"zero cell width", func() { Collision.CellWidth = 0 }},
		{"negative cell height", func() { Collision.CellHeight = -8 }},
		{"no resolve depth", func() { Collision.MaxResolveDepth = 0 }},
		{"zero tick rate", func() { C.TickRate = 0 }},
		{"zero time factor", func() { C.TimeFactor = 0 }},
		{"negative slow motion", func() { C.SlowMotionFactor = -1 }},
		{"flat player", func() { Player.Height = 0 }},
		{"empty crate", func() { Crate.Size = 0 }},
		{"instant platform", func() { Platform.DefaultSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			defer Reset()
			tt.mutate()
			if err := Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	Reset()
	defer Reset()

	path := writeFile(t, "sandbox.yaml", `
game:
  tick_rate: 30
collision:
  cell_width: 64
  max_resolve_depth: 4
player:
  max_speed: 6.5
debug:
  show_cells: true
`)
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	if C.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", C.TickRate)
	}
	if Collision.CellWidth != 64 || Collision.MaxResolveDepth != 4 {
		t.Errorf("Collision = %+v", Collision)
	}
	if Collision.CellHeight != 32 {
		t.Errorf("CellHeight = %v, want the default kept", Collision.CellHeight)
	}
	if Player.MaxSpeed != 6.5 || Player.JumpSpeed != 10 {
		t.Errorf("Player = %+v", Player)
	}
	if !Debug.ShowCells || !Debug.ShowHitboxes {
		t.Errorf("Debug = %+v", Debug)
	}
	if C.Width != 640 {
		t.Errorf("Width = %d, want the default kept", C.Width)
	}
}

func TestLoadOverridesJSON(t *testing.T) {
	Reset()
	defer Reset()

	path := writeFile(t, "sandbox.json", `{"crate": {"size": 16, "priority": 3}}`)
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if Crate.Size != 16 || Crate.Priority != 3 || Crate.Gravity != 0.75 {
		t.Errorf("Crate = %+v", Crate)
	}
}

func TestLoadOverridesErrors(t *testing.T) {
	Reset()
	defer Reset()

	if err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}

	path := writeFile(t, "bad.yaml", "collision:\n  cell_width: 0\n")
	if err := LoadOverrides(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestEveryActionIsBound(t *testing.T) {
	for a := ActionNone + 1; a < ActionCount; a++ {
		b, ok := Input.Bindings[a]
		if !ok || len(b.Keys) == 0 {
			t.Errorf("action %d has no key binding", a)
		}
	}
}
