package utils

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name         string
		from, to, tt float64
		want         float64
	}{
		{"start", -180, 180, 0, -180},
		{"end", -180, 180, 1, 180},
		{"middle", -180, 180, 0.5, 0},
		{"reverse", 180, -180, 0.25, 90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.from, tc.to, tc.tt); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tc.from, tc.to, tc.tt, got, tc.want)
			}
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{6, 6},
		{354, 354},
		{360, 0},
		{366, 6},
		{720, 0},
		{-6, 354},
		{-360, 0},
	}
	for _, tc := range tests {
		got := NormalizeDegrees(tc.in)
		if got != tc.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v out of [0,360)", tc.in, got)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 334, 0},
		{333, 334, 333},
		{334, 334, 0},
		{395, 334, 61},
		{-1, 334, 333},
		{5, 0, 0},
		{5, -3, 0},
	}
	for _, tc := range tests {
		if got := WrapIndex(tc.i, tc.n); got != tc.want {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}
