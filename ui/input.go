package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

// PollInput reads the held arrow keys. WASD is accepted as well.
func PollInput() types.InputState {
	return types.InputState{
		Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Up:    rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Down:  rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
	}
}

// Commands are one-shot key presses outside of steering.
type Commands struct {
	Reset     bool
	ToggleHUD bool
	Quit      bool
}

func PollCommands() Commands {
	return Commands{
		Reset:     rl.IsKeyPressed(rl.KeyR),
		ToggleHUD: rl.IsKeyPressed(rl.KeyH),
		Quit:      rl.IsKeyPressed(rl.KeyQ),
	}
}
