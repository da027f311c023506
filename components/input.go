package components

import "github.com/yohamta/donburi"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // currently held down
	JustPressed bool // pressed this frame
}

// IntentData is the per-tick movement intent fed in by the input
// collaborator. MoveX is strafe (+right), MoveZ is forward (+forward),
// both in [-1, 1] camera-relative.
type IntentData struct {
	MoveX  float64
	MoveZ  float64
	Jump   ActionState
	Crouch ActionState
}

var Intent = donburi.NewComponentType[IntentData]()

// StepActions updates edge flags from the previous tick's held state.
// Call once per tick before the locomotion system runs.
func (in *IntentData) StepActions(jumpHeld, crouchHeld bool) {
	in.Jump = stepAction(in.Jump, jumpHeld)
	in.Crouch = stepAction(in.Crouch, crouchHeld)
}

func stepAction(prev ActionState, held bool) ActionState {
	return ActionState{
		Pressed:     held,
		JustPressed: held && !prev.Pressed,
	}
}
