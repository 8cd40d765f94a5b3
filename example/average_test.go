package main

import (
	"testing"

	"github.com/swdee/go-lidarlite"
)

func TestAverage(t *testing.T) {
	a := newAverage(4)

	samples := []lidarlite.Measurement{
		{Distance: 100, SignalStrength: 10},
		{Distance: 102, SignalStrength: 20},
		{Distance: 98, SignalStrength: 30},
		{Distance: 101, SignalStrength: 41},
	}

	for i, m := range samples[:3] {
		if _, _, ok := a.add(m); ok {
			t.Fatalf("sample %d: expected block to be incomplete", i)
		}
	}

	dist, sig, ok := a.add(samples[3])

	if !ok {
		t.Fatal("expected block to complete on the 4th sample")
	}

	if dist != 100.25 || sig != 25.25 {
		t.Errorf("expected 100.25,25.25 got %f,%f", dist, sig)
	}

	// next block starts from zero
	for i := 0; i < 3; i++ {
		if _, _, ok := a.add(lidarlite.Measurement{Distance: 50}); ok {
			t.Fatalf("sample %d: expected new block to be incomplete", i)
		}
	}

	if dist, _, ok := a.add(lidarlite.Measurement{Distance: 50}); !ok || dist != 50 {
		t.Errorf("expected second block mean 50, got %f %v", dist, ok)
	}
}

func TestAverageSingle(t *testing.T) {
	a := newAverage(1)

	dist, sig, ok := a.add(lidarlite.Measurement{Distance: 300, SignalStrength: 64})

	if !ok || dist != 300 || sig != 64 {
		t.Errorf("expected 300,64 got %f,%f %v", dist, sig, ok)
	}
}
