package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads, toggles pause and writes the
// player's movement intent. Must run before the simulation systems.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	if actionJustPressed(cfg.ActionPause) {
		if entry, ok := components.Pause.First(ecs.World); ok {
			pause := components.Pause.Get(entry)
			pause.IsPaused = !pause.IsPaused
		}
	}

	if actionJustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	var move math.Vec2
	if actionPressed(cfg.ActionMoveLeft) {
		move.X--
	}
	if actionPressed(cfg.ActionMoveRight) {
		move.X++
	}
	if actionPressed(cfg.ActionMoveUp) {
		move.Y--
	}
	if actionPressed(cfg.ActionMoveDown) {
		move.Y++
	}
	if move == (math.Vec2{}) {
		move = analogStick()
	}
	components.Intent.Get(playerEntry).Move = move
}

func actionPressed(id cfg.ActionID) bool {
	binding := cfg.Input.Bindings[id]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, button := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, button) {
				return true
			}
		}
	}
	return false
}

func actionJustPressed(id cfg.ActionID) bool {
	binding := cfg.Input.Bindings[id]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, button := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, button) {
				return true
			}
		}
	}
	return false
}

// analogStick returns the first left stick pushed past the deadzone.
func analogStick() math.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := math.Vec2{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if v.X*v.X+v.Y*v.Y > deadzone*deadzone {
			return v
		}
	}
	return math.Vec2{}
}
