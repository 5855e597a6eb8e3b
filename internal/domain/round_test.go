package domain_test

import (
	"testing"

	"healthtracker/internal/domain"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"truncates down", 57.142857, 57.1},
		{"rounds up", 44.66, 44.7},
		{"exact half goes away from zero", 78.125, 78.1},
		{"quarter", 0.25, 0.3},
		{"already one decimal", 1562.5, 1562.5},
		{"integer", 6250, 6250},
		{"zero", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.Round1(tc.in); got != tc.want {
				t.Errorf("Round1(%v) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den float64
		want     float64
	}{
		{"four of seven days", 4, 7, 57.1},
		{"full", 1500, 1500, 100},
		{"zero denominator", 10, 0, 0},
		{"negative denominator", 10, -3, 0},
		{"zero numerator", 0, 7, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.Ratio(tc.num, tc.den); got != tc.want {
				t.Errorf("Ratio(%v, %v) = %v; want %v", tc.num, tc.den, got, tc.want)
			}
		})
	}
}
