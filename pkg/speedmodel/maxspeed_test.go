package speedmodel

import (
	"math"
	"testing"

	"github.com/lintang-b-s/speedmodel/pkg"
)

func TestMaxspeedUnknown(t *testing.T) {
	ms := NewUnknownMaxspeed()
	if ms.IsKnown() {
		t.Error("zero maxspeed should be unknown")
	}
	if _, ok := ms.SpeedFor(true); ok {
		t.Error("unknown maxspeed must not yield a forward value")
	}
	if _, ok := ms.SpeedFor(false); ok {
		t.Error("unknown maxspeed must not yield a backward value")
	}
}

func TestMaxspeedBackwardFallsBackToForward(t *testing.T) {
	ms := NewForwardMaxspeed(pkg.METRIC, 90)

	forward, ok := ms.SpeedFor(true)
	if !ok || forward != 90 {
		t.Errorf("forward = %v ok=%v, want 90", forward, ok)
	}
	backward, ok := ms.SpeedFor(false)
	if !ok || backward != 90 {
		t.Errorf("backward without explicit value = %v ok=%v, want forward 90", backward, ok)
	}
}

func TestMaxspeedBidirectional(t *testing.T) {
	ms := NewBidirMaxspeed(pkg.METRIC, 90, 70)

	if v, _ := ms.SpeedFor(true); v != 90 {
		t.Errorf("forward = %v, want 90", v)
	}
	if v, _ := ms.SpeedFor(false); v != 70 {
		t.Errorf("backward = %v, want 70", v)
	}
}

func TestMaxspeedUnitConversion(t *testing.T) {
	testCases := []struct {
		name     string
		ms       Maxspeed
		expected float64
	}{
		{"metric stays km/h", NewForwardMaxspeed(pkg.METRIC, 60), 60},
		{"imperial converts from mph", NewForwardMaxspeed(pkg.IMPERIAL, 30), 30 * pkg.MPH_TO_KMH},
		{"nautical converts from knots", NewForwardMaxspeed(pkg.NAUTICAL, 10), 10 * pkg.KNOTS_TO_KMH},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ms.SpeedFor(true)
			if !ok {
				t.Fatal("expected a known limit")
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
