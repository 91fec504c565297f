package osmbuilder

import (
	"strings"

	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
	"github.com/lintang-b-s/speedmodel/pkg/util"
	"github.com/paulmach/osm"
)

// translateWayTags converts the osm tags of one way into the opaque tag ids
// the speed model matches against. Order follows osm tag order, which is what
// the last-match-wins resolution rule feeds on.
func translateWayTags(way *osm.Way, taxonomy speedmodel.Taxonomy) []uint32 {
	tags := make([]uint32, 0, 4)

	for _, tag := range way.Tags {
		switch tag.Key {
		case "highway":
			if _, ok := acceptedHighway[tag.Value]; !ok {
				continue
			}
			switch {
			case way.Tags.Find("bridge") == "yes":
				tags = append(tags, taxonomy.GetTypeID("highway", tag.Value, "bridge"))
			case way.Tags.Find("tunnel") == "yes":
				tags = append(tags, taxonomy.GetTypeID("highway", tag.Value, "tunnel"))
			default:
				tags = append(tags, taxonomy.GetTypeID("highway", tag.Value))
			}
		case "route":
			if _, ok := acceptedRoute[tag.Value]; ok {
				tags = append(tags, taxonomy.GetTypeID("route", tag.Value))
			}
		case "man_made":
			if tag.Value == "pier" {
				tags = append(tags, taxonomy.GetTypeID("man_made", "pier"))
			}
		case "surface":
			if class, ok := surfaceClass[tag.Value]; ok {
				tags = append(tags, taxonomy.GetTypeID("psurface", class))
			}
		case "oneway":
			if tag.Value == "yes" || tag.Value == "-1" {
				tags = append(tags, taxonomy.GetTypeID("hwtag", "oneway"))
			}
		}
	}

	return tags
}

// parseMaxspeedTags builds the structured maxspeed of a way from its raw
// maxspeed tags. Values are normalized to km/h here so the model sees a metric
// limit. Anything malformed or non-numeric ("none", "signals", ...) counts as
// no posted limit.
func parseMaxspeedTags(tags osm.Tags) speedmodel.Maxspeed {
	forward, forwardOK := parseMaxspeedValue(tags.Find("maxspeed:forward"))
	if !forwardOK {
		forward, forwardOK = parseMaxspeedValue(tags.Find("maxspeed"))
	}
	backward, backwardOK := parseMaxspeedValue(tags.Find("maxspeed:backward"))

	switch {
	case forwardOK && backwardOK:
		return speedmodel.NewBidirMaxspeed(pkg.METRIC, forward, backward)
	case forwardOK:
		return speedmodel.NewForwardMaxspeed(pkg.METRIC, forward)
	default:
		return speedmodel.NewUnknownMaxspeed()
	}
}

// parseMaxspeedValue converts one raw maxspeed tag value to km/h.
func parseMaxspeedValue(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	switch {
	case strings.Contains(value, "mph"):
		speed, err := util.StringToFloat64(strings.TrimSpace(strings.Replace(value, "mph", "", -1)))
		if err != nil {
			return 0, false
		}
		return speed * pkg.MPH_TO_KMH, true
	case strings.Contains(value, "knots"):
		speed, err := util.StringToFloat64(strings.TrimSpace(strings.Replace(value, "knots", "", -1)))
		if err != nil {
			return 0, false
		}
		return speed * pkg.KNOTS_TO_KMH, true
	case strings.Contains(value, "km/h"):
		speed, err := util.StringToFloat64(strings.TrimSpace(strings.Replace(value, "km/h", "", -1)))
		if err != nil {
			return 0, false
		}
		return speed, true
	default:
		speed, err := util.StringToFloat64(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return speed, true
	}
}
