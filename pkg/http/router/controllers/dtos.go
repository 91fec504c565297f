package controllers

import (
	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
)

// maxspeedRequest model info
//
//	@Description	posted speed limit of the road segment. backward is optional,
//	@Description	a missing backward means the forward limit holds both ways.
type maxspeedRequest struct {
	Units    string   `json:"units" validate:"omitempty,oneof=metric imperial nautical"` // unit system of the limit, default metric.
	Forward  float64  `json:"forward" validate:"required,gt=0"`                          // posted limit along the way direction.
	Backward *float64 `json:"backward" validate:"omitempty,gt=0"`                        // posted limit against the way direction.
}

func (m *maxspeedRequest) ToMaxspeed() speedmodel.Maxspeed {
	if m == nil {
		return speedmodel.NewUnknownMaxspeed()
	}
	units, _ := pkg.GetUnits(m.Units)
	if m.Backward != nil {
		return speedmodel.NewBidirMaxspeed(units, m.Forward, *m.Backward)
	}
	return speedmodel.NewForwardMaxspeed(units, m.Forward)
}

// resolveSpeedRequest model info
//
//	@Description	request body for speed resolution of one road segment.
type resolveSpeedRequest struct {
	Vehicle   string           `json:"vehicle" validate:"required,oneof=car pedestrian bicycle"`          // vehicle model to resolve with.
	Tags      [][]string       `json:"tags" validate:"required,min=1,dive,min=1,dive,required"`           // tag paths of the segment, e.g. [["highway","secondary"],["psurface","paved_good"]].
	Direction string           `json:"direction" validate:"omitempty,oneof=forward backward"`             // travel direction relative to node order, default forward.
	InCity    bool             `json:"in_city"`                                                           // whether the segment lies inside a city boundary.
	Maxspeed  *maxspeedRequest `json:"maxspeed" validate:"omitempty"`                                     // posted speed limit, omit when unknown.
}

type resolveSpeedResponse struct {
	WeightSpeed        float64 `json:"weight_speed_kmh"`
	EtaSpeed           float64 `json:"eta_speed_kmh"`
	OneWay             bool    `json:"one_way"`
	PassThroughAllowed bool    `json:"pass_through_allowed"`
}

func NewResolveSpeedResponse(speed speedmodel.SpeedKMpH, oneWay, passThrough bool) resolveSpeedResponse {
	return resolveSpeedResponse{
		WeightSpeed:        speed.Weight,
		EtaSpeed:           speed.Eta,
		OneWay:             oneWay,
		PassThroughAllowed: passThrough,
	}
}

type maxWeightSpeedResponse struct {
	Vehicle        string  `json:"vehicle"`
	MaxWeightSpeed float64 `json:"max_weight_speed_kmh"`
	OffroadSpeed   float64 `json:"offroad_speed_kmh"`
}

func NewMaxWeightSpeedResponse(vehicle string, maxWeightSpeed, offroadSpeed float64) maxWeightSpeedResponse {
	return maxWeightSpeedResponse{
		Vehicle:        vehicle,
		MaxWeightSpeed: maxWeightSpeed,
		OffroadSpeed:   offroadSpeed,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
