package osmbuilder

var (
	// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
	acceptedHighway = map[string]struct{}{
		"motorway":       struct{}{},
		"motorway_link":  struct{}{},
		"trunk":          struct{}{},
		"trunk_link":     struct{}{},
		"primary":        struct{}{},
		"primary_link":   struct{}{},
		"secondary":      struct{}{},
		"secondary_link": struct{}{},
		"tertiary":       struct{}{},
		"tertiary_link":  struct{}{},
		"residential":    struct{}{},
		"living_street":  struct{}{},
		"road":           struct{}{},
		"service":        struct{}{},
		"track":          struct{}{},
		"unclassified":   struct{}{},
		"pedestrian":     struct{}{},
		"footway":        struct{}{},
		"path":           struct{}{},
		"steps":          struct{}{},
		"cycleway":       struct{}{},
	}

	acceptedRoute = map[string]struct{}{
		"ferry":         struct{}{},
		"shuttle_train": struct{}{},
	}

	// osm surface values folded into the four psurface classes the speed
	// models know about.
	surfaceClass = map[string]string{
		"asphalt":         "paved_good",
		"concrete":        "paved_good",
		"concrete:plates": "paved_good",
		"concrete:lanes":  "paved_good",
		"paved":           "paved_good",
		"paving_stones":   "paved_good",

		"sett":               "paved_bad",
		"cobblestone":        "paved_bad",
		"unhewn_cobblestone": "paved_bad",
		"metal":              "paved_bad",
		"wood":               "paved_bad",

		"compacted":   "unpaved_good",
		"fine_gravel": "unpaved_good",
		"pebblestone": "unpaved_good",

		"unpaved":   "unpaved_bad",
		"gravel":    "unpaved_bad",
		"dirt":      "unpaved_bad",
		"earth":     "unpaved_bad",
		"grass":     "unpaved_bad",
		"ground":    "unpaved_bad",
		"mud":       "unpaved_bad",
		"sand":      "unpaved_bad",
		"snow":      "unpaved_bad",
		"woodchips": "unpaved_bad",
	}
)

// Edge is one directed routing-graph edge with its resolved speeds.
type Edge struct {
	From        int64
	To          int64
	WayID       int64
	DistanceM   float64
	WeightSpeed float64 // km/h, minimized by path search
	EtaSpeed    float64 // km/h, used for travel time
}

func NewEdge(from, to, wayID int64, distanceM, weightSpeed, etaSpeed float64) Edge {
	return Edge{
		From:        from,
		To:          to,
		WayID:       wayID,
		DistanceM:   distanceM,
		WeightSpeed: weightSpeed,
		EtaSpeed:    etaSpeed,
	}
}
