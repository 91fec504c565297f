package speedmodel

import "github.com/lintang-b-s/speedmodel/pkg"

// CarRoutableCategories is the closed set of categories a car may drive on.
var CarRoutableCategories = LimitsInitList{
	{pkg.MOTORWAY, true, true},
	{pkg.MOTORWAY_LINK, true, true},
	{pkg.TRUNK, true, true},
	{pkg.TRUNK_LINK, true, true},
	{pkg.PRIMARY, true, true},
	{pkg.PRIMARY_LINK, true, true},
	{pkg.SECONDARY, true, true},
	{pkg.SECONDARY_LINK, true, true},
	{pkg.TERTIARY, true, true},
	{pkg.TERTIARY_LINK, true, true},
	{pkg.RESIDENTIAL, true, true},
	{pkg.UNCLASSIFIED, true, true},
	{pkg.ROAD, true, true},
	{pkg.TRACK, true, true},
	// transit-only traffic is not welcome on living streets and service roads.
	{pkg.LIVING_STREET, true, false},
	{pkg.SERVICE, true, false},
	{pkg.FERRY, true, true},
	{pkg.SHUTTLE_TRAIN, true, true},
	{pkg.PIER, true, true},
}

// carCategorySpeeds holds weight/eta base speeds in km/h per category, with a
// separate in-city and out-of-city branch. Weight speeds are tuned for route
// choice, eta speeds for realistic arrival times.
var carCategorySpeeds = CategorySpeeds{
	pkg.MOTORWAY:       NewInOutCitySpeed(NewSpeedKMpH(100.0, 105.0), NewSpeedKMpH(115.0, 120.0)),
	pkg.MOTORWAY_LINK:  NewInOutCitySpeed(NewSpeedKMpH(65.0, 70.0), NewSpeedKMpH(70.0, 75.0)),
	pkg.TRUNK:          NewInOutCitySpeed(NewSpeedKMpH(85.0, 90.0), NewSpeedKMpH(100.0, 105.0)),
	pkg.TRUNK_LINK:     NewInOutCitySpeed(NewSpeedKMpH(60.0, 65.0), NewSpeedKMpH(65.0, 70.0)),
	pkg.PRIMARY:        NewInOutCitySpeed(NewSpeedKMpH(65.0, 70.0), NewSpeedKMpH(90.0, 90.0)),
	pkg.PRIMARY_LINK:   NewInOutCitySpeed(NewSpeedKMpH(50.0, 55.0), NewSpeedKMpH(60.0, 60.0)),
	pkg.SECONDARY:      NewInOutCitySpeed(NewSpeedKMpH(55.0, 60.0), NewSpeedKMpH(70.0, 70.0)),
	pkg.SECONDARY_LINK: NewInOutCitySpeed(NewSpeedKMpH(45.0, 50.0), NewSpeedKMpH(55.0, 55.0)),
	pkg.TERTIARY:       NewInOutCitySpeed(NewSpeedKMpH(40.0, 45.0), NewSpeedKMpH(50.0, 55.0)),
	pkg.TERTIARY_LINK:  NewInOutCitySpeed(NewSpeedKMpH(30.0, 35.0), NewSpeedKMpH(35.0, 40.0)),
	pkg.RESIDENTIAL:    NewInOutCitySpeed(NewSpeedKMpH(25.0, 30.0), NewSpeedKMpH(30.0, 35.0)),
	pkg.LIVING_STREET:  NewSameInOutCitySpeed(NewSpeedKMpH(8.0, 10.0)),
	pkg.ROAD:           NewSameInOutCitySpeed(NewSpeedKMpH(30.0, 30.0)),
	pkg.SERVICE:        NewSameInOutCitySpeed(NewSpeedKMpH(15.0, 20.0)),
	pkg.TRACK:          NewSameInOutCitySpeed(NewSpeedKMpH(5.0, 10.0)),
	pkg.UNCLASSIFIED:   NewInOutCitySpeed(NewSpeedKMpH(30.0, 35.0), NewSpeedKMpH(40.0, 45.0)),
	pkg.FERRY:          NewSameInOutCitySpeed(NewSpeedKMpH(10.0, 10.0)),
	pkg.SHUTTLE_TRAIN:  NewSameInOutCitySpeed(NewSpeedKMpH(25.0, 30.0)),
	pkg.PIER:           NewSameInOutCitySpeed(NewSpeedKMpH(10.0, 10.0)),
}

var carCategoryFactors = CategoryFactors{
	pkg.MOTORWAY:       NewUniformInOutCityFactor(1.0),
	pkg.MOTORWAY_LINK:  NewUniformInOutCityFactor(1.0),
	pkg.TRUNK:          NewUniformInOutCityFactor(1.0),
	pkg.TRUNK_LINK:     NewUniformInOutCityFactor(1.0),
	pkg.PRIMARY:        NewUniformInOutCityFactor(1.0),
	pkg.PRIMARY_LINK:   NewUniformInOutCityFactor(1.0),
	pkg.SECONDARY:      NewUniformInOutCityFactor(1.0),
	pkg.SECONDARY_LINK: NewUniformInOutCityFactor(1.0),
	pkg.TERTIARY:       NewUniformInOutCityFactor(1.0),
	pkg.TERTIARY_LINK:  NewUniformInOutCityFactor(1.0),
	pkg.RESIDENTIAL:    NewUniformInOutCityFactor(0.75),
	pkg.LIVING_STREET:  NewUniformInOutCityFactor(0.5),
	pkg.ROAD:           NewUniformInOutCityFactor(0.3),
	pkg.SERVICE:        NewUniformInOutCityFactor(0.8),
	pkg.TRACK:          NewUniformInOutCityFactor(0.5),
	pkg.UNCLASSIFIED:   NewUniformInOutCityFactor(0.8),
	pkg.FERRY:          NewUniformInOutCityFactor(0.9),
	pkg.SHUTTLE_TRAIN:  NewUniformInOutCityFactor(0.9),
	pkg.PIER:           NewUniformInOutCityFactor(0.7),
}

// CarSurface maps generator surface classes to car speed factors.
var CarSurface = SurfaceInitList{
	{"psurface", "paved_good", NewSpeedFactor(0.8, 0.9)},
	{"psurface", "paved_bad", NewSpeedFactor(0.4, 0.5)},
	{"psurface", "unpaved_good", NewSpeedFactor(0.6, 0.8)},
	{"psurface", "unpaved_bad", NewSpeedFactor(0.2, 0.2)},
}

var carOffroadSpeed = NewUniformSpeedKMpH(3.0)

type CarModel struct {
	*SpeedModel
}

func NewCarModel(taxonomy Taxonomy) (*CarModel, error) {
	model, err := NewSpeedModel(taxonomy, CarRoutableCategories, CarSurface,
		carCategorySpeeds, carCategoryFactors, carOffroadSpeed)
	if err != nil {
		return nil, err
	}
	return &CarModel{SpeedModel: model}, nil
}
