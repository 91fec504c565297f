package speedmodel

import (
	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/util"
)

// ModelFactory builds every vehicle model once against a shared taxonomy and
// hands out read-only instances keyed by vehicle type.
type ModelFactory struct {
	models map[pkg.VehicleType]VehicleModel
}

func NewModelFactory(taxonomy Taxonomy) (*ModelFactory, error) {
	car, err := NewCarModel(taxonomy)
	if err != nil {
		return nil, err
	}
	pedestrian, err := NewPedestrianModel(taxonomy)
	if err != nil {
		return nil, err
	}
	bicycle, err := NewBicycleModel(taxonomy)
	if err != nil {
		return nil, err
	}

	return &ModelFactory{
		models: map[pkg.VehicleType]VehicleModel{
			pkg.CAR:        car,
			pkg.PEDESTRIAN: pedestrian,
			pkg.BICYCLE:    bicycle,
		},
	}, nil
}

func (f *ModelFactory) GetModel(vehicle pkg.VehicleType) (VehicleModel, error) {
	model, ok := f.models[vehicle]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no speed model for vehicle type %s", vehicle)
	}
	return model, nil
}
