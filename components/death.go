package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks the player as Dying. Tween drives the fade from 1 to 0;
// when it finishes the run is torn down.
type DeathData struct {
	Tween *gween.Tween
	Fade  float32
	Done  bool
}

var Death = donburi.NewComponentType[DeathData]()
