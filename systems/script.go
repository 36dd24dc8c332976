package systems

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/yohamta/donburi/ecs"
)

var scriptActions = map[string]cfg.ActionID{
	"left":   cfg.ActionMoveLeft,
	"right":  cfg.ActionMoveRight,
	"jump":   cfg.ActionJump,
	"pause":  cfg.ActionPause,
	"select": cfg.ActionMenuSelect,
}

// ScriptStep holds a set of actions for a number of consecutive steps.
type ScriptStep struct {
	Frames  int
	Actions []cfg.ActionID
}

// Script is a recorded input sequence for headless runs.
type Script []ScriptStep

// ParseScript reads "frames:action+action" segments separated by commas,
// e.g. "30:idle,12:jump+right,60:right". "idle" holds nothing.
func ParseScript(s string) (Script, error) {
	var out Script
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		count, actions, ok := strings.Cut(seg, ":")
		if !ok {
			return nil, fmt.Errorf("script segment %q: want frames:actions", seg)
		}
		frames, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("script segment %q: frames must be a positive integer", seg)
		}
		step := ScriptStep{Frames: frames}
		for _, name := range strings.Split(actions, "+") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "idle" || name == "" {
				continue
			}
			id, ok := scriptActions[name]
			if !ok {
				return nil, fmt.Errorf("script segment %q: unknown action %q", seg, name)
			}
			step.Actions = append(step.Actions, id)
		}
		out = append(out, step)
	}
	if len(out) == 0 {
		return nil, errors.New("script is empty")
	}
	return out, nil
}

// Len is the number of steps the script covers.
func (s Script) Len() int {
	n := 0
	for _, st := range s {
		n += st.Frames
	}
	return n
}

// At returns the held actions at step i. Past the end nothing is held.
func (s Script) At(i int) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for _, st := range s {
		if i < st.Frames {
			for _, id := range st.Actions {
				held[id] = true
			}
			return held
		}
		i -= st.Frames
	}
	return held
}

// NewUpdateScriptedInput replaces device polling with s, one entry per update.
func NewUpdateScriptedInput(s Script) ecs.System {
	step := 0
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		input.Previous = input.Current
		input.Current = s.At(step)
		input.LastInputMethod = components.InputScripted
		step++
	}
}
