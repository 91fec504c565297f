package speedmodel

import (
	"testing"

	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/taxonomy"
)

// fixture tables, kept small on purpose so expected speeds are easy to verify
// by hand.
var (
	testLimits = LimitsInitList{
		{pkg.TRUNK, true, true},
		{pkg.PRIMARY, true, true},
		{pkg.SECONDARY, true, true},
		{pkg.RESIDENTIAL, true, true},
		{pkg.SERVICE, true, false},
	}

	testSpeeds = CategorySpeeds{
		pkg.TRUNK:       NewInOutCitySpeed(NewUniformSpeedKMpH(100.0), NewUniformSpeedKMpH(150.0)),
		pkg.PRIMARY:     NewInOutCitySpeed(NewUniformSpeedKMpH(90.0), NewUniformSpeedKMpH(120.0)),
		pkg.SECONDARY:   NewSameInOutCitySpeed(NewSpeedKMpH(80.0, 70.0)),
		pkg.RESIDENTIAL: NewInOutCitySpeed(NewSpeedKMpH(45.0, 55.0), NewSpeedKMpH(50.0, 60.0)),
		pkg.SERVICE:     NewInOutCitySpeed(NewSpeedKMpH(47.0, 36.0), NewSpeedKMpH(50.0, 40.0)),
	}

	testFactors = CategoryFactors{
		pkg.TRUNK:       NewUniformInOutCityFactor(1.0),
		pkg.PRIMARY:     NewUniformInOutCityFactor(1.0),
		pkg.SECONDARY:   NewUniformInOutCityFactor(1.0),
		pkg.RESIDENTIAL: NewUniformInOutCityFactor(0.5),
	}

	testSurface = SurfaceInitList{
		{"psurface", "paved_good", NewSpeedFactor(0.8, 0.9)},
		{"psurface", "paved_bad", NewSpeedFactor(0.4, 0.5)},
		{"psurface", "unpaved_good", NewSpeedFactor(0.6, 0.8)},
		{"psurface", "unpaved_bad", NewSpeedFactor(0.2, 0.2)},
	}

	testOffroadSpeed = NewUniformSpeedKMpH(3.0)
)

type testTags struct {
	primary, secondary, secondaryBridge, secondaryTunnel, residential, service uint32
	oneway, pavedGood, pavedBad, unpavedGood, unpavedBad                       uint32
	highwayOnly                                                               uint32
}

func newTestModel(t *testing.T) (*SpeedModel, testTags) {
	t.Helper()

	tax := taxonomy.New()
	model, err := NewSpeedModel(tax, testLimits, testSurface, testSpeeds, testFactors,
		testOffroadSpeed)
	if err != nil {
		t.Fatalf("building fixture model: %v", err)
	}

	tags := testTags{
		primary:         tax.GetTypeID("highway", "primary"),
		secondary:       tax.GetTypeID("highway", "secondary"),
		secondaryBridge: tax.GetTypeID("highway", "secondary", "bridge"),
		secondaryTunnel: tax.GetTypeID("highway", "secondary", "tunnel"),
		residential:     tax.GetTypeID("highway", "residential"),
		service:         tax.GetTypeID("highway", "service"),
		oneway:          tax.GetTypeID("hwtag", "oneway"),
		pavedGood:       tax.GetTypeID("psurface", "paved_good"),
		pavedBad:        tax.GetTypeID("psurface", "paved_bad"),
		unpavedGood:     tax.GetTypeID("psurface", "unpaved_good"),
		unpavedBad:      tax.GetTypeID("psurface", "unpaved_bad"),
		highwayOnly:     tax.GetTypeID("highway"),
	}
	return model, tags
}

func checkSpeed(t *testing.T, model *SpeedModel, tags []uint32, expected InOutCitySpeed) {
	t.Helper()

	inCity := model.ResolveSpeed(tags, NewSpeedParams(true, true, NewUnknownMaxspeed()))
	if !speedEq(inCity, expected.InCity) {
		t.Errorf("in city: got %v, want %v", inCity, expected.InCity)
	}
	outCity := model.ResolveSpeed(tags, NewSpeedParams(true, false, NewUnknownMaxspeed()))
	if !speedEq(outCity, expected.OutCity) {
		t.Errorf("out of city: got %v, want %v", outCity, expected.OutCity)
	}
}

func TestResolveSpeed(t *testing.T) {
	model, tags := newTestModel(t)

	checkSpeed(t, model, []uint32{tags.secondaryBridge}, testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.secondaryTunnel}, testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.secondary}, testSpeeds[pkg.SECONDARY])

	checkSpeed(t, model, []uint32{tags.primary},
		NewInOutCitySpeed(NewSpeedKMpH(90.0, 90.0), NewSpeedKMpH(120.0, 120.0)))
	checkSpeed(t, model, []uint32{tags.residential},
		NewInOutCitySpeed(NewSpeedKMpH(22.5, 27.5), NewSpeedKMpH(25.0, 30.0)))
}

func TestResolveSpeedMultiTypes(t *testing.T) {
	model, tags := newTestModel(t)

	// a bare "highway" tag is not a category and must not disturb resolution.
	checkSpeed(t, model, []uint32{tags.secondaryTunnel, tags.secondary}, testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.secondaryTunnel, tags.highwayOnly}, testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.highwayOnly, tags.secondaryTunnel}, testSpeeds[pkg.SECONDARY])
}

func TestResolveSpeedOrderSensitivity(t *testing.T) {
	model, tags := newTestModel(t)

	// the last recognized category tag wins. inherited quirk, see resolveCategory.
	checkSpeed(t, model, []uint32{tags.secondary, tags.primary},
		NewInOutCitySpeed(NewSpeedKMpH(90.0, 90.0), NewSpeedKMpH(120.0, 120.0)))
	checkSpeed(t, model, []uint32{tags.primary, tags.secondary}, testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.oneway, tags.primary, tags.secondary},
		testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.secondary, tags.oneway, tags.primary},
		NewInOutCitySpeed(NewSpeedKMpH(90.0, 90.0), NewSpeedKMpH(120.0, 120.0)))
}

func TestOneWay(t *testing.T) {
	model, tags := newTestModel(t)

	// oneway does not influence the speed and is found regardless of position.
	checkSpeed(t, model, []uint32{tags.secondaryBridge, tags.oneway}, testSpeeds[pkg.SECONDARY])
	checkSpeed(t, model, []uint32{tags.oneway, tags.secondaryBridge}, testSpeeds[pkg.SECONDARY])

	testCases := []struct {
		name string
		tags []uint32
		want bool
	}{
		{"oneway after category", []uint32{tags.secondaryBridge, tags.oneway}, true},
		{"oneway before category", []uint32{tags.oneway, tags.secondaryBridge}, true},
		{"oneway surrounded", []uint32{tags.primary, tags.oneway, tags.secondary}, true},
		{"oneway alone", []uint32{tags.oneway}, true},
		{"no oneway", []uint32{tags.secondary}, false},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.HasOneWayTag(tt.tags); got != tt.want {
				t.Errorf("HasOneWayTag(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}

func TestPassThrough(t *testing.T) {
	model, tags := newTestModel(t)

	testCases := []struct {
		name string
		tags []uint32
		want bool
	}{
		{"secondary allowed", []uint32{tags.secondary}, true},
		{"primary allowed", []uint32{tags.primary}, true},
		{"service forbidden", []uint32{tags.service}, false},
		{"no category", []uint32{tags.oneway}, false},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.HasPassThroughTag(tt.tags); got != tt.want {
				t.Errorf("HasPassThroughTag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSurfaceFactor(t *testing.T) {
	model, tags := newTestModel(t)

	checkSpeed(t, model, []uint32{tags.secondary, tags.pavedGood},
		NewSameInOutCitySpeed(NewSpeedKMpH(64.0, 63.0)))
	checkSpeed(t, model, []uint32{tags.secondary, tags.pavedBad},
		NewSameInOutCitySpeed(NewSpeedKMpH(32.0, 35.0)))
	checkSpeed(t, model, []uint32{tags.secondary, tags.unpavedGood},
		NewSameInOutCitySpeed(NewSpeedKMpH(48.0, 56.0)))
	checkSpeed(t, model, []uint32{tags.secondary, tags.unpavedBad},
		NewSameInOutCitySpeed(NewSpeedKMpH(16.0, 14.0)))

	checkSpeed(t, model, []uint32{tags.residential, tags.pavedGood},
		NewInOutCitySpeed(NewSpeedKMpH(18.0, 24.75), NewSpeedKMpH(20.0, 27.0)))
	checkSpeed(t, model, []uint32{tags.residential, tags.pavedBad},
		NewInOutCitySpeed(NewSpeedKMpH(9.0, 13.75), NewSpeedKMpH(10.0, 15.0)))
	checkSpeed(t, model, []uint32{tags.residential, tags.unpavedGood},
		NewInOutCitySpeed(NewSpeedKMpH(13.5, 22.0), NewSpeedKMpH(15.0, 24.0)))
	checkSpeed(t, model, []uint32{tags.residential, tags.unpavedBad},
		NewInOutCitySpeed(NewSpeedKMpH(4.5, 5.5), NewSpeedKMpH(5.0, 6.0)))
}

func TestMaxspeedResolution(t *testing.T) {
	model, tags := newTestModel(t)

	testCases := []struct {
		name     string
		tags     []uint32
		params   SpeedParams
		expected SpeedKMpH
	}{
		{
			name:     "posted limit replaces base before surface factor",
			tags:     []uint32{tags.secondary, tags.unpavedBad},
			params:   NewSpeedParams(true, false, NewForwardMaxspeed(pkg.METRIC, 90)),
			expected: NewSpeedKMpH(18.0, 18.0),
		},
		{
			name:     "primary with paved good",
			tags:     []uint32{tags.primary, tags.pavedGood},
			params:   NewSpeedParams(true, false, NewForwardMaxspeed(pkg.METRIC, 90)),
			expected: NewSpeedKMpH(72.0, 81.0),
		},
		{
			name:     "bidirectional limit, forward direction",
			tags:     []uint32{tags.primary, tags.pavedGood},
			params:   NewSpeedParams(true, false, NewBidirMaxspeed(pkg.METRIC, 90, 70)),
			expected: NewSpeedKMpH(72.0, 81.0),
		},
		{
			name:     "bidirectional limit, backward direction",
			tags:     []uint32{tags.primary, tags.pavedGood},
			params:   NewSpeedParams(false, false, NewBidirMaxspeed(pkg.METRIC, 90, 70)),
			expected: NewSpeedKMpH(56.0, 63.0),
		},
		{
			name:     "residential keeps category factor under posted limit",
			tags:     []uint32{tags.residential, tags.pavedGood},
			params:   NewSpeedParams(true, false, NewForwardMaxspeed(pkg.METRIC, 60)),
			expected: NewSpeedKMpH(24.0, 27.0),
		},
		{
			name:     "residential in city, same posted limit",
			tags:     []uint32{tags.residential, tags.pavedGood},
			params:   NewSpeedParams(true, true, NewForwardMaxspeed(pkg.METRIC, 60)),
			expected: NewSpeedKMpH(24.0, 27.0),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ResolveSpeed(tt.tags, tt.params)
			if !speedEq(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOffroadFallback(t *testing.T) {
	model, tags := newTestModel(t)

	params := NewSpeedParams(true, true, NewForwardMaxspeed(pkg.METRIC, 60))

	// no recognized category: every other tag is ignored, even the posted limit.
	got := model.ResolveSpeed([]uint32{tags.oneway, tags.pavedGood}, params)
	if !speedEq(got, testOffroadSpeed) {
		t.Errorf("got %v, want offroad speed %v", got, testOffroadSpeed)
	}

	got = model.ResolveSpeed(nil, params)
	if !speedEq(got, testOffroadSpeed) {
		t.Errorf("empty tag set: got %v, want offroad speed %v", got, testOffroadSpeed)
	}
}

func TestMaxWeightSpeed(t *testing.T) {
	model, _ := newTestModel(t)

	if got := model.MaxWeightSpeed(); got != 150.0 {
		t.Errorf("MaxWeightSpeed = %v, want 150", got)
	}
}
