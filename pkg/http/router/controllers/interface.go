package controllers

import (
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
)

type SpeedService interface {
	ResolveSpeed(vehicle string, tagPaths [][]string, forward, inCity bool,
		maxspeed speedmodel.Maxspeed) (speedmodel.SpeedKMpH, bool, bool, error)
	MaxWeightSpeed(vehicle string) (float64, float64, error)
}
