package components

import (
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Current   cfg.StateID
	SlideLeft float64 // seconds of slide remaining, 0 when not sliding
}

var State = donburi.NewComponentType[StateData]()
