package speedmodel

import "github.com/lintang-b-s/speedmodel/pkg"

// Maxspeed is a posted legal speed limit with optional forward/backward
// asymmetry. Absence of a forward value means no posted limit at all. Absence
// of a backward value means the backward limit equals the forward one.
type Maxspeed struct {
	units       pkg.Units
	forward     float64
	backward    float64
	hasForward  bool
	hasBackward bool
}

// NewUnknownMaxspeed builds the "no posted limit" state.
func NewUnknownMaxspeed() Maxspeed {
	return Maxspeed{}
}

func NewForwardMaxspeed(units pkg.Units, forward float64) Maxspeed {
	return Maxspeed{
		units:      units,
		forward:    forward,
		hasForward: true,
	}
}

func NewBidirMaxspeed(units pkg.Units, forward, backward float64) Maxspeed {
	return Maxspeed{
		units:       units,
		forward:     forward,
		backward:    backward,
		hasForward:  true,
		hasBackward: true,
	}
}

func (m Maxspeed) IsKnown() bool {
	return m.hasForward
}

// SpeedFor returns the posted limit in km/h for the given travel direction.
// The backward direction falls back to the forward value when no explicit
// backward limit is posted. ok is false when there is no posted limit.
func (m Maxspeed) SpeedFor(forward bool) (float64, bool) {
	if !m.hasForward {
		return 0, false
	}
	value := m.forward
	if !forward && m.hasBackward {
		value = m.backward
	}
	return m.toKMpH(value), true
}

func (m Maxspeed) toKMpH(value float64) float64 {
	switch m.units {
	case pkg.IMPERIAL:
		return value * pkg.MPH_TO_KMH
	case pkg.NAUTICAL:
		return value * pkg.KNOTS_TO_KMH
	default:
		return value
	}
}

// SpeedParams is the per-query context of a speed resolution: travel direction,
// whether the feature lies inside a city boundary, and the posted limit.
// Constructed once per query, never mutated.
type SpeedParams struct {
	Forward  bool
	InCity   bool
	Maxspeed Maxspeed
}

func NewSpeedParams(forward, inCity bool, maxspeed Maxspeed) SpeedParams {
	return SpeedParams{
		Forward:  forward,
		InCity:   inCity,
		Maxspeed: maxspeed,
	}
}
