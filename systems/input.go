package systems

import (
	"strings"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// NewUpdateInput polls the keyboard and gamepads through the given bindings.
// Must run BEFORE every system that reads input.
func NewUpdateInput(bindings cfg.InputConfig) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
		analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs, bindings.AnalogDeadzone)

		var keyboardUsed, gamepadUsed bool
		var activeGamepadID ebiten.GamepadID

		for actionID, binding := range bindings.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
					keyboardUsed = true
				}
			}

			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.StandardGamepadButtons {
					if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
						gamepadUsed = true
						activeGamepadID = gpID
					}
				}
			}
		}

		// Merge analog stick into directional actions
		if analogLeft {
			input.Current[cfg.ActionMoveLeft] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
		if analogRight {
			input.Current[cfg.ActionMoveRight] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
		if analogUp {
			input.Current[cfg.ActionMenuUp] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
		if analogDown {
			input.Current[cfg.ActionMenuDown] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}

		// Gamepad takes priority if both were used
		if gamepadUsed {
			input.LastInputMethod = getControllerType(activeGamepadID)
		} else if keyboardUsed {
			input.LastInputMethod = components.InputKeyboard
		}
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID, deadzone float64) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IntentFromInput maps the action snapshot onto the movement intent.
func IntentFromInput(input *components.InputData) physics.Intent {
	jump := GetAction(input, cfg.ActionJump)
	return physics.Intent{
		Left:        GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:       GetAction(input, cfg.ActionMoveRight).Pressed,
		JumpPressed: jump.JustPressed,
		JumpHeld:    jump.Pressed,
	}
}
