package score

import (
	"math"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		want    int
	}{
		{name: "add", current: 4, delta: 3, want: 7},
		{name: "subtract", current: 4, delta: -1, want: 3},
		{name: "floor", current: 0, delta: -1, want: 0},
		{name: "restore below zero", current: 5, delta: -9, want: 0},
		{name: "ceiling", current: 28, delta: 7, want: 30},
		{name: "huge delta", current: 5, delta: math.MaxInt, want: 30},
		{name: "huge negative delta", current: 5, delta: math.MinInt, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Apply(tt.current, tt.delta); got != tt.want {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFaltaEnvido(t *testing.T) {
	tests := []struct {
		name    string
		local   int
		visitor int
		want    int
	}{
		{name: "start", local: 0, visitor: 0, want: 30},
		{name: "local leads", local: 22, visitor: 10, want: 8},
		{name: "visitor leads", local: 3, visitor: 25, want: 5},
		{name: "finished", local: 30, visitor: 12, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FaltaEnvido(tt.local, tt.visitor); got != tt.want {
				t.Errorf("FaltaEnvido() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name    string
		local   int
		visitor int
		want    Side
	}{
		{name: "in progress", local: 29, visitor: 15, want: None},
		{name: "local", local: 30, visitor: 15, want: Local},
		{name: "visitor", local: 2, visitor: 30, want: Visitor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Winner(tt.local, tt.visitor); got != tt.want {
				t.Errorf("Winner() = %v, want %v", got, tt.want)
			}
		})
	}
}
