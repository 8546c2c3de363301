package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Damage subtracts amount and clamps the result to [0, Max].
func (h *HealthData) Damage(amount float64) {
	h.Current -= amount
	h.Clamp()
}

// Heal adds amount without exceeding Max.
func (h *HealthData) Heal(amount float64) {
	h.Current += amount
	h.Clamp()
}

func (h *HealthData) Clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

var Health = donburi.NewComponentType[HealthData]()
