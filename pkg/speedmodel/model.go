package speedmodel

import (
	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/util"
)

// Taxonomy resolves a classification tag path to its opaque numeric id. The
// model registers every tag it cares about through this interface at
// construction time and afterwards matches features by id only.
type Taxonomy interface {
	GetTypeID(path ...string) uint32
}

// LimitEntry marks a road category as usable by a vehicle class and records
// whether routes may pass through it without starting or ending there.
type LimitEntry struct {
	Category           pkg.RoadCategory
	Routable           bool
	PassThroughAllowed bool
}

type LimitsInitList []LimitEntry

// SurfaceInit binds a surface tag key/value pair to its speed factor.
type SurfaceInit struct {
	Key    string
	Value  string
	Factor SpeedFactor
}

type SurfaceInitList []SurfaceInit

type CategorySpeeds map[pkg.RoadCategory]InOutCitySpeed

type CategoryFactors map[pkg.RoadCategory]InOutCityFactor

// SpeedModel converts the classification tags of one road feature into a
// weight/eta speed pair. All tables are built once at construction and never
// mutated afterwards, so every query method is safe for concurrent use.
type SpeedModel struct {
	categoryByTag  map[uint32]pkg.RoadCategory
	limits         map[pkg.RoadCategory]LimitEntry
	speeds         CategorySpeeds
	factors        CategoryFactors
	surfaceFactors map[uint32]SpeedFactor
	onewayTagID    uint32
	offroadSpeed   SpeedKMpH
	maxWeightSpeed float64
}

func NewSpeedModel(taxonomy Taxonomy, limits LimitsInitList, surfaces SurfaceInitList,
	speeds CategorySpeeds, factors CategoryFactors, offroadSpeed SpeedKMpH) (*SpeedModel, error) {

	m := &SpeedModel{
		categoryByTag:  make(map[uint32]pkg.RoadCategory),
		limits:         make(map[pkg.RoadCategory]LimitEntry, len(limits)),
		speeds:         speeds,
		factors:        make(CategoryFactors, len(limits)),
		surfaceFactors: make(map[uint32]SpeedFactor, len(surfaces)),
		onewayTagID:    taxonomy.GetTypeID("hwtag", "oneway"),
		offroadSpeed:   offroadSpeed,
	}

	for _, entry := range limits {
		m.limits[entry.Category] = entry
		for _, path := range categoryTagPaths(entry.Category) {
			m.categoryByTag[taxonomy.GetTypeID(path...)] = entry.Category
		}

		// missing factor entries default to identity, missing speed entries are
		// a configuration defect caught by validate below.
		if factor, ok := factors[entry.Category]; ok {
			m.factors[entry.Category] = factor
		} else {
			m.factors[entry.Category] = NewUniformInOutCityFactor(1.0)
		}
	}

	for _, surface := range surfaces {
		m.surfaceFactors[taxonomy.GetTypeID(surface.Key, surface.Value)] = surface.Factor
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	for _, speed := range m.speeds {
		m.maxWeightSpeed = max(m.maxWeightSpeed, speed.InCity.Weight, speed.OutCity.Weight)
	}

	return m, nil
}

// validate catches static configuration defects: a category declared routable
// must carry a valid speed entry and a valid factor entry.
func (m *SpeedModel) validate() error {
	for category, entry := range m.limits {
		if !entry.Routable {
			continue
		}
		speed, ok := m.speeds[category]
		if !ok {
			return util.WrapErrorf(nil, util.ErrInvalidSpeedTable,
				"no speed entry for routable category %s", category)
		}
		if !speed.IsValid() {
			return util.WrapErrorf(nil, util.ErrInvalidSpeedTable,
				"invalid speed entry for category %s", category)
		}
		if factor := m.factors[category]; !factor.IsValid() {
			return util.WrapErrorf(nil, util.ErrInvalidSpeedTable,
				"invalid factor entry for category %s", category)
		}
	}
	return nil
}

// categoryTagPaths lists every tag path that resolves to the given category.
// Bridge and tunnel variants carry the same speeds as the plain category.
func categoryTagPaths(category pkg.RoadCategory) [][]string {
	switch category {
	case pkg.FERRY, pkg.SHUTTLE_TRAIN:
		return [][]string{{"route", category.String()}}
	case pkg.PIER:
		return [][]string{{"man_made", "pier"}}
	default:
		name := category.String()
		return [][]string{
			{"highway", name},
			{"highway", name, "bridge"},
			{"highway", name, "tunnel"},
		}
	}
}

// resolveCategory scans the tag set for known category tags. When several tags
// match, the last one in iteration order wins. That order dependency is
// inherited behavior with no confirmed rationale, kept as-is so features with
// several road tags classify the same way they always have.
func (m *SpeedModel) resolveCategory(tags []uint32) (pkg.RoadCategory, bool) {
	var (
		category pkg.RoadCategory
		found    bool
	)
	for _, tag := range tags {
		if c, ok := m.categoryByTag[tag]; ok {
			category = c
			found = true
		}
	}
	return category, found
}

// resolveSurfaceFactor applies the same last-match-wins rule as
// resolveCategory. No surface tag means the identity factor.
func (m *SpeedModel) resolveSurfaceFactor(tags []uint32) SpeedFactor {
	factor := identityFactor
	for _, tag := range tags {
		if f, ok := m.surfaceFactors[tag]; ok {
			factor = f
		}
	}
	return factor
}

// ResolveSpeed computes the weight/eta speed pair of a feature for the given
// query context. Features with no resolvable category get the offroad speed
// regardless of any other tags. A known posted limit for the active direction
// replaces the tabled base speed before the category and surface factors are
// applied, matching the original resolution order.
func (m *SpeedModel) ResolveSpeed(tags []uint32, params SpeedParams) SpeedKMpH {
	category, ok := m.resolveCategory(tags)
	if !ok {
		return m.offroadSpeed
	}

	speed := m.speeds[category].Select(params.InCity)
	if limit, known := params.Maxspeed.SpeedFor(params.Forward); known {
		speed = NewUniformSpeedKMpH(limit)
	}

	factor := m.factors[category].Select(params.InCity)
	surface := m.resolveSurfaceFactor(tags)

	return speed.Mul(factor).Mul(surface)
}

// HasOneWayTag reports whether the dedicated oneway tag is present. The result
// does not depend on tag order.
func (m *SpeedModel) HasOneWayTag(tags []uint32) bool {
	for _, tag := range tags {
		if tag == m.onewayTagID {
			return true
		}
	}
	return false
}

// IsOneWay is the default per-vehicle oneway decision; vehicle classes that
// ignore oneway restrictions override it.
func (m *SpeedModel) IsOneWay(tags []uint32) bool {
	return m.HasOneWayTag(tags)
}

// HasPassThroughTag reports whether routes may merely transit the feature.
// Features with no resolvable category cannot be passed through.
func (m *SpeedModel) HasPassThroughTag(tags []uint32) bool {
	category, ok := m.resolveCategory(tags)
	if !ok {
		return false
	}
	return m.limits[category].PassThroughAllowed
}

// IsRoutable reports whether the feature belongs to a category this vehicle
// class may drive on at all.
func (m *SpeedModel) IsRoutable(tags []uint32) bool {
	category, ok := m.resolveCategory(tags)
	if !ok {
		return false
	}
	return m.limits[category].Routable
}

// OffroadSpeed is the fallback used when no category resolves.
func (m *SpeedModel) OffroadSpeed() SpeedKMpH {
	return m.offroadSpeed
}

// MaxWeightSpeed is the largest configured weight speed across all categories
// and both city contexts, usable as an admissible heuristic bound by the path
// search.
func (m *SpeedModel) MaxWeightSpeed() float64 {
	return m.maxWeightSpeed
}
