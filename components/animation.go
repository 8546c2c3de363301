package components

import (
	"github.com/yohamta/donburi"
)

// AnimationData is a looping frame counter. A paused animation does not
// advance.
type AnimationData struct {
	Frames    int
	FrameTime float64 // seconds per frame
	Frame     int
	Elapsed   float64
	Playing   bool
}

// Advance moves the animation forward by dt and reports whether it wrapped
// back to frame 0.
func (a *AnimationData) Advance(dt float64) (wrapped bool) {
	if !a.Playing || a.Frames <= 1 || a.FrameTime <= 0 {
		return false
	}
	a.Elapsed += dt
	for a.Elapsed >= a.FrameTime {
		a.Elapsed -= a.FrameTime
		a.Frame = (a.Frame + 1) % a.Frames
		if a.Frame == 0 {
			wrapped = true
		}
	}
	return wrapped
}

var Animation = donburi.NewComponentType[AnimationData]()
