package core

import (
	"errors"
	"testing"

	cfg "github.com/automoto/hitgrid/config"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript("right:3  right+jump:1\tidle:2 left+press:1")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(script) != 4 || script.Len() != 7 {
		t.Fatalf("got %d steps covering %d ticks", len(script), script.Len())
	}

	tests := []struct {
		tick int
		want []cfg.ActionID
	}{
		{0, []cfg.ActionID{cfg.ActionMoveRight}},
		{2, []cfg.ActionID{cfg.ActionMoveRight}},
		{3, []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionJump}},
		{4, nil},
		{5, nil},
		{6, []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionPress}},
		{7, nil},
		{100, nil},
	}
	for _, tt := range tests {
		var want [cfg.ActionCount]bool
		for _, id := range tt.want {
			want[id] = true
		}
		if got := script.At(tt.tick); got != want {
			t.Errorf("At(%d) = %v, want %v", tt.tick, got, want)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"right", "right:x", "right:-1", "fly:3", "right+:2"} {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseScript(s); !errors.Is(err, ErrBadScript) {
				t.Errorf("err = %v, want ErrBadScript", err)
			}
		})
	}
}

func TestEmptyScriptHoldsNothing(t *testing.T) {
	script, err := ParseScript("")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if script.Len() != 0 || script.At(0) != ([cfg.ActionCount]bool{}) {
		t.Errorf("empty script = %v", script)
	}
}
