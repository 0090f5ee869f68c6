package core

import (
	"math"
	"testing"
)

func TestLinearPowerToDB(t *testing.T) {
	tests := []struct {
		power float64
		want  float64
	}{
		{1, 0},
		{10, 10},
		{100, 20},
		{0.001, -30},
	}
	for _, tt := range tests {
		if got := LinearPowerToDB(tt.power); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("LinearPowerToDB(%v) = %v, want %v", tt.power, got, tt.want)
		}
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatalf("zero power must map to -Inf")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatalf("negative power must map to NaN")
	}
}
