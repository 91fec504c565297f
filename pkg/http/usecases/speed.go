package usecases

import (
	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
	"github.com/lintang-b-s/speedmodel/pkg/util"

	"go.uber.org/zap"
)

// SpeedService answers speed-resolution queries against the vehicle model
// factory. Tag paths coming from clients are translated to opaque ids through
// the same taxonomy the models were registered with.
type SpeedService struct {
	log      *zap.Logger
	factory  *speedmodel.ModelFactory
	taxonomy speedmodel.Taxonomy
}

func NewSpeedService(log *zap.Logger, factory *speedmodel.ModelFactory,
	taxonomy speedmodel.Taxonomy) *SpeedService {
	return &SpeedService{
		log:      log,
		factory:  factory,
		taxonomy: taxonomy,
	}
}

// ResolveSpeed resolves the weight/eta speed pair of one road segment. It also
// reports whether the segment is oneway for the vehicle and whether routes may
// pass through it.
func (s *SpeedService) ResolveSpeed(vehicle string, tagPaths [][]string, forward, inCity bool,
	maxspeed speedmodel.Maxspeed) (speedmodel.SpeedKMpH, bool, bool, error) {

	model, err := s.getModel(vehicle)
	if err != nil {
		return speedmodel.SpeedKMpH{}, false, false, err
	}

	tags := make([]uint32, 0, len(tagPaths))
	for _, path := range tagPaths {
		tags = append(tags, s.taxonomy.GetTypeID(path...))
	}

	speed := model.ResolveSpeed(tags, speedmodel.NewSpeedParams(forward, inCity, maxspeed))
	return speed, model.IsOneWay(tags), model.HasPassThroughTag(tags), nil
}

// MaxWeightSpeed returns the largest configured weight speed of the vehicle
// model plus its offroad fallback speed.
func (s *SpeedService) MaxWeightSpeed(vehicle string) (float64, float64, error) {
	model, err := s.getModel(vehicle)
	if err != nil {
		return 0, 0, err
	}
	return model.MaxWeightSpeed(), model.OffroadSpeed().Weight, nil
}

func (s *SpeedService) getModel(vehicle string) (speedmodel.VehicleModel, error) {
	vehicleType, ok := pkg.GetVehicleType(vehicle)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown vehicle type %q", vehicle)
	}
	return s.factory.GetModel(vehicleType)
}
