package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/hitgrid/config"
)

// ErrBadScript is returned for scripts that cannot be parsed.
var ErrBadScript = errors.New("bad input script")

// scriptActions maps script words to the actions they hold.
var scriptActions = map[string]cfg.ActionID{
	"left":  cfg.ActionMoveLeft,
	"right": cfg.ActionMoveRight,
	"jump":  cfg.ActionJump,
	"press": cfg.ActionPress,
}

// Step holds a set of actions for a number of ticks.
type Step struct {
	Actions [cfg.ActionCount]bool
	Ticks   int
}

// Script is a sequence of input steps. Ticks past its end hold nothing.
type Script []Step

// ParseScript reads steps of the form "actions:ticks" separated by spaces,
// where actions is "idle" or action names joined by "+", for example
// "right:30 right+jump:1 idle:10".
func ParseScript(s string) (Script, error) {
	var script Script
	for _, field := range strings.Fields(s) {
		words, count, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no tick count", ErrBadScript, field)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("%w: %q has an invalid tick count", ErrBadScript, field)
		}

		var step Step
		step.Ticks = ticks
		if words != "idle" {
			for _, word := range strings.Split(words, "+") {
				id, ok := scriptActions[word]
				if !ok {
					return nil, fmt.Errorf("%w: unknown action %q", ErrBadScript, word)
				}
				step.Actions[id] = true
			}
		}
		script = append(script, step)
	}
	return script, nil
}

// Len returns the number of ticks the script covers.
func (s Script) Len() int {
	n := 0
	for _, step := range s {
		n += step.Ticks
	}
	return n
}

// At returns the actions held on the given tick.
func (s Script) At(tick int) [cfg.ActionCount]bool {
	for _, step := range s {
		if tick < step.Ticks {
			return step.Actions
		}
		tick -= step.Ticks
	}
	return [cfg.ActionCount]bool{}
}
