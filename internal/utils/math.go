// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + t*(to-from)
}

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// math.Mod(-tiny, 360) + 360 может округлиться ровно до 360
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// WrapIndex приводит i к диапазону [0, n). При n <= 0 возвращает 0.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
