package speedmodel

import "github.com/lintang-b-s/speedmodel/pkg"

var bicycleLimits = LimitsInitList{
	{pkg.TRUNK, true, true},
	{pkg.TRUNK_LINK, true, true},
	{pkg.PRIMARY, true, true},
	{pkg.PRIMARY_LINK, true, true},
	{pkg.SECONDARY, true, true},
	{pkg.SECONDARY_LINK, true, true},
	{pkg.TERTIARY, true, true},
	{pkg.TERTIARY_LINK, true, true},
	{pkg.RESIDENTIAL, true, true},
	{pkg.LIVING_STREET, true, true},
	{pkg.ROAD, true, true},
	{pkg.SERVICE, true, false},
	{pkg.TRACK, true, true},
	{pkg.UNCLASSIFIED, true, true},
	{pkg.CYCLEWAY, true, true},
	{pkg.FOOTWAY, true, true},
	{pkg.PATH, true, true},
	{pkg.STEPS, true, true},
	{pkg.FERRY, true, true},
	{pkg.PIER, true, true},
}

var bicycleCategorySpeeds = CategorySpeeds{
	pkg.TRUNK:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.TRUNK_LINK:     NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.PRIMARY:        NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.PRIMARY_LINK:   NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.SECONDARY:      NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.SECONDARY_LINK: NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.TERTIARY:       NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.TERTIARY_LINK:  NewSameInOutCitySpeed(NewUniformSpeedKMpH(18.0)),
	pkg.RESIDENTIAL:    NewSameInOutCitySpeed(NewUniformSpeedKMpH(16.0)),
	pkg.LIVING_STREET:  NewSameInOutCitySpeed(NewUniformSpeedKMpH(12.0)),
	pkg.ROAD:           NewSameInOutCitySpeed(NewUniformSpeedKMpH(12.0)),
	pkg.SERVICE:        NewSameInOutCitySpeed(NewUniformSpeedKMpH(14.0)),
	pkg.TRACK:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(10.0)),
	pkg.UNCLASSIFIED:   NewSameInOutCitySpeed(NewUniformSpeedKMpH(14.0)),
	pkg.CYCLEWAY:       NewSameInOutCitySpeed(NewUniformSpeedKMpH(20.0)),
	pkg.FOOTWAY:        NewSameInOutCitySpeed(NewUniformSpeedKMpH(7.0)),
	pkg.PATH:           NewSameInOutCitySpeed(NewUniformSpeedKMpH(8.0)),
	pkg.STEPS:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(1.0)),
	pkg.FERRY:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(10.0)),
	pkg.PIER:           NewSameInOutCitySpeed(NewUniformSpeedKMpH(7.0)),
}

var bicycleCategoryFactors = CategoryFactors{
	pkg.TRUNK:   NewUniformInOutCityFactor(0.9),
	pkg.PRIMARY: NewUniformInOutCityFactor(0.9),
}

var bicycleSurface = SurfaceInitList{
	{"psurface", "paved_good", NewSpeedFactor(1.0, 1.0)},
	{"psurface", "paved_bad", NewSpeedFactor(0.8, 0.8)},
	{"psurface", "unpaved_good", NewSpeedFactor(1.0, 1.0)},
	{"psurface", "unpaved_bad", NewSpeedFactor(0.3, 0.3)},
}

var bicycleOffroadSpeed = NewUniformSpeedKMpH(3.0)

type BicycleModel struct {
	*SpeedModel
}

func NewBicycleModel(taxonomy Taxonomy) (*BicycleModel, error) {
	model, err := NewSpeedModel(taxonomy, bicycleLimits, bicycleSurface,
		bicycleCategorySpeeds, bicycleCategoryFactors, bicycleOffroadSpeed)
	if err != nil {
		return nil, err
	}
	return &BicycleModel{SpeedModel: model}, nil
}
