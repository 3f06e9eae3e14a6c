package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Damage subtracts amount, floored at 0, and returns the health left
func (h *HealthData) Damage(amount float64) float64 {
	if amount <= 0 {
		return h.Current
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
