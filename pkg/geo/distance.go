package geo

import (
	"math"

	"github.com/lintang-b-s/speedmodel/pkg/util"
)

const (
	earthRadiusKM = 6371.0
)

// CalculateHaversineDistance returns the great-circle distance between two
// coordinates in kilometers.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := util.DegreeToRadians(lat2 - lat1)
	dLon := util.DegreeToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(util.DegreeToRadians(lat1))*math.Cos(util.DegreeToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
