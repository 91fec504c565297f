package pkg

type VehicleType uint8

const (
	CAR VehicleType = iota
	PEDESTRIAN
	BICYCLE
)

func (v VehicleType) String() string {
	switch v {
	case CAR:
		return "car"
	case PEDESTRIAN:
		return "pedestrian"
	case BICYCLE:
		return "bicycle"
	default:
		return "unknown"
	}
}

func GetVehicleType(vehicle string) (VehicleType, bool) {
	switch vehicle {
	case "car":
		return CAR, true
	case "pedestrian":
		return PEDESTRIAN, true
	case "bicycle":
		return BICYCLE, true
	default:
		return CAR, false
	}
}

type RoadCategory uint8

// enum of road/route categories used as speed-table keys: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       RoadCategory = 0
	MOTORWAY_LINK  RoadCategory = 1
	TRUNK          RoadCategory = 2
	TRUNK_LINK     RoadCategory = 3
	PRIMARY        RoadCategory = 4
	PRIMARY_LINK   RoadCategory = 5
	SECONDARY      RoadCategory = 6
	SECONDARY_LINK RoadCategory = 7
	TERTIARY       RoadCategory = 8
	TERTIARY_LINK  RoadCategory = 9
	RESIDENTIAL    RoadCategory = 10
	LIVING_STREET  RoadCategory = 11
	ROAD           RoadCategory = 12
	SERVICE        RoadCategory = 13
	TRACK          RoadCategory = 14
	UNCLASSIFIED   RoadCategory = 15
	PEDESTRIAN_WAY RoadCategory = 16
	FOOTWAY        RoadCategory = 17
	PATH           RoadCategory = 18
	STEPS          RoadCategory = 19
	CYCLEWAY       RoadCategory = 20
	FERRY          RoadCategory = 21
	SHUTTLE_TRAIN  RoadCategory = 22
	PIER           RoadCategory = 23
	UNKNOWN_ROAD   RoadCategory = 24
)

func (r RoadCategory) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link",
		"secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street",
		"road", "service", "track", "unclassified", "pedestrian", "footway", "path", "steps",
		"cycleway", "ferry", "shuttle_train", "pier", "unknown"}[r]
}

func GetRoadCategory(roadType string) RoadCategory {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk":
		return TRUNK
	case "trunk_link":
		return TRUNK_LINK
	case "primary":
		return PRIMARY
	case "primary_link":
		return PRIMARY_LINK
	case "secondary":
		return SECONDARY
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary":
		return TERTIARY
	case "tertiary_link":
		return TERTIARY_LINK
	case "residential":
		return RESIDENTIAL
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "service":
		return SERVICE
	case "track":
		return TRACK
	case "unclassified":
		return UNCLASSIFIED
	case "pedestrian":
		return PEDESTRIAN_WAY
	case "footway":
		return FOOTWAY
	case "path":
		return PATH
	case "steps":
		return STEPS
	case "cycleway":
		return CYCLEWAY
	case "ferry":
		return FERRY
	case "shuttle_train":
		return SHUTTLE_TRAIN
	case "pier":
		return PIER
	default:
		return UNKNOWN_ROAD
	}
}

type Units uint8

// unit system of a posted maxspeed value
const (
	METRIC   Units = 0 // km/h
	IMPERIAL Units = 1 // mph
	NAUTICAL Units = 2 // knots
)

func GetUnits(units string) (Units, bool) {
	switch units {
	case "metric", "":
		return METRIC, true
	case "imperial":
		return IMPERIAL, true
	case "nautical":
		return NAUTICAL, true
	default:
		return METRIC, false
	}
}

const (
	MPH_TO_KMH   = 1.60934
	KNOTS_TO_KMH = 1.852
)
