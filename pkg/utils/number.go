package utils

import "math"

// RoundHalfUp arredonda para o inteiro mais próximo (0.5 sobe)
func RoundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// SafeFloat converte valores possivelmente ausentes/inválidos do backend em 0
func SafeFloat(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

// SafeInt converte contagens possivelmente ausentes do backend em 0
func SafeInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
