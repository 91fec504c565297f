package speedmodel

// SpeedKMpH is a weight/eta speed pair in km/h. Weight is minimized by the path
// search, Eta is used for travel time estimates only.
type SpeedKMpH struct {
	Weight float64 `json:"weight"`
	Eta    float64 `json:"eta"`
}

func NewSpeedKMpH(weight, eta float64) SpeedKMpH {
	return SpeedKMpH{
		Weight: weight,
		Eta:    eta,
	}
}

// NewUniformSpeedKMpH builds a pair with weight == eta.
func NewUniformSpeedKMpH(speed float64) SpeedKMpH {
	return SpeedKMpH{
		Weight: speed,
		Eta:    speed,
	}
}

// IsValid reports whether both components are usable. The two components are
// valid or invalid jointly, there is no half-valid state.
func (s SpeedKMpH) IsValid() bool {
	return s.Weight > 0 && s.Eta > 0
}

// Mul applies a factor componentwise. speed.Mul(factor) == factor.Mul(speed).
func (s SpeedKMpH) Mul(factor SpeedFactor) SpeedKMpH {
	return SpeedKMpH{
		Weight: s.Weight * factor.Weight,
		Eta:    s.Eta * factor.Eta,
	}
}

// SpeedFactor is a multiplicative weight/eta adjustment applied on top of a
// base speed, e.g. for road surface quality.
type SpeedFactor struct {
	Weight float64 `json:"weight"`
	Eta    float64 `json:"eta"`
}

func NewSpeedFactor(weight, eta float64) SpeedFactor {
	return SpeedFactor{
		Weight: weight,
		Eta:    eta,
	}
}

func NewUniformSpeedFactor(factor float64) SpeedFactor {
	return SpeedFactor{
		Weight: factor,
		Eta:    factor,
	}
}

func (f SpeedFactor) IsValid() bool {
	return f.Weight > 0 && f.Eta > 0
}

func (f SpeedFactor) Mul(speed SpeedKMpH) SpeedKMpH {
	return SpeedKMpH{
		Weight: speed.Weight * f.Weight,
		Eta:    speed.Eta * f.Eta,
	}
}

var identityFactor = NewUniformSpeedFactor(1.0)

// InOutCitySpeed keeps a separate speed pair for the in-city and out-of-city
// context of the same road category.
type InOutCitySpeed struct {
	InCity  SpeedKMpH `json:"in_city"`
	OutCity SpeedKMpH `json:"out_city"`
}

func NewInOutCitySpeed(inCity, outCity SpeedKMpH) InOutCitySpeed {
	return InOutCitySpeed{
		InCity:  inCity,
		OutCity: outCity,
	}
}

// NewSameInOutCitySpeed builds a variant that does not differentiate by city
// context.
func NewSameInOutCitySpeed(speed SpeedKMpH) InOutCitySpeed {
	return InOutCitySpeed{
		InCity:  speed,
		OutCity: speed,
	}
}

func (s InOutCitySpeed) Select(inCity bool) SpeedKMpH {
	if inCity {
		return s.InCity
	}
	return s.OutCity
}

func (s InOutCitySpeed) IsValid() bool {
	return s.InCity.IsValid() && s.OutCity.IsValid()
}

type InOutCityFactor struct {
	InCity  SpeedFactor `json:"in_city"`
	OutCity SpeedFactor `json:"out_city"`
}

func NewInOutCityFactor(inCity, outCity SpeedFactor) InOutCityFactor {
	return InOutCityFactor{
		InCity:  inCity,
		OutCity: outCity,
	}
}

func NewUniformInOutCityFactor(factor float64) InOutCityFactor {
	return InOutCityFactor{
		InCity:  NewUniformSpeedFactor(factor),
		OutCity: NewUniformSpeedFactor(factor),
	}
}

func (f InOutCityFactor) Select(inCity bool) SpeedFactor {
	if inCity {
		return f.InCity
	}
	return f.OutCity
}

func (f InOutCityFactor) IsValid() bool {
	return f.InCity.IsValid() && f.OutCity.IsValid()
}
