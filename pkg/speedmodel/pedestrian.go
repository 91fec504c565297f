package speedmodel

import "github.com/lintang-b-s/speedmodel/pkg"

var pedestrianLimits = LimitsInitList{
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
	{pkg.SERVICE, true, true},
	{pkg.TRACK, true, true},
	{pkg.UNCLASSIFIED, true, true},
	{pkg.PEDESTRIAN_WAY, true, true},
	{pkg.FOOTWAY, true, true},
	{pkg.PATH, true, true},
	{pkg.STEPS, true, true},
	{pkg.CYCLEWAY, true, true},
	{pkg.FERRY, true, true},
	{pkg.PIER, true, true},
}

var pedestrianCategorySpeeds = CategorySpeeds{
	pkg.TRUNK:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(4.0)),
	pkg.TRUNK_LINK:     NewSameInOutCitySpeed(NewUniformSpeedKMpH(4.0)),
	pkg.PRIMARY:        NewSameInOutCitySpeed(NewUniformSpeedKMpH(4.5)),
	pkg.PRIMARY_LINK:   NewSameInOutCitySpeed(NewUniformSpeedKMpH(4.5)),
	pkg.SECONDARY:      NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.SECONDARY_LINK: NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.TERTIARY:       NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.TERTIARY_LINK:  NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.RESIDENTIAL:    NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.LIVING_STREET:  NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.ROAD:           NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.SERVICE:        NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.TRACK:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.UNCLASSIFIED:   NewSameInOutCitySpeed(NewUniformSpeedKMpH(4.5)),
	pkg.PEDESTRIAN_WAY: NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.FOOTWAY:        NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.PATH:           NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.STEPS:          NewSameInOutCitySpeed(NewSpeedKMpH(3.0, 2.0)),
	pkg.CYCLEWAY:       NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
	pkg.FERRY:          NewSameInOutCitySpeed(NewUniformSpeedKMpH(10.0)),
	pkg.PIER:           NewSameInOutCitySpeed(NewUniformSpeedKMpH(5.0)),
}

var pedestrianSurface = SurfaceInitList{
	{"psurface", "paved_good", NewSpeedFactor(1.0, 1.0)},
	{"psurface", "paved_bad", NewSpeedFactor(1.0, 1.0)},
	{"psurface", "unpaved_good", NewSpeedFactor(1.0, 1.0)},
	{"psurface", "unpaved_bad", NewSpeedFactor(0.8, 0.8)},
}

var pedestrianOffroadSpeed = NewUniformSpeedKMpH(3.0)

type PedestrianModel struct {
	*SpeedModel
}

func NewPedestrianModel(taxonomy Taxonomy) (*PedestrianModel, error) {
	model, err := NewSpeedModel(taxonomy, pedestrianLimits, pedestrianSurface,
		pedestrianCategorySpeeds, nil, pedestrianOffroadSpeed)
	if err != nil {
		return nil, err
	}
	return &PedestrianModel{SpeedModel: model}, nil
}

// IsOneWay always reports false: walking both ways is legal regardless of
// oneway tags aimed at vehicle traffic.
func (m *PedestrianModel) IsOneWay(tags []uint32) bool {
	return false
}
