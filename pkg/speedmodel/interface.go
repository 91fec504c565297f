package speedmodel

// VehicleModel is the per-vehicle-class capability surface consumed by the
// routing-graph builder.
type VehicleModel interface {
	ResolveSpeed(tags []uint32, params SpeedParams) SpeedKMpH
	IsOneWay(tags []uint32) bool
	HasPassThroughTag(tags []uint32) bool
	IsRoutable(tags []uint32) bool
	OffroadSpeed() SpeedKMpH
	MaxWeightSpeed() float64
}
