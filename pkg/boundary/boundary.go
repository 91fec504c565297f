// Package boundary answers the "is this coordinate inside a city" question for
// speed resolution. City extents are kept as bounding boxes in an r-tree; the
// speed model itself only ever sees the resulting boolean.
package boundary

import (
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type CityBox struct {
	Name   string
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

func NewCityBox(name string, minLat, minLon, maxLat, maxLon float64) CityBox {
	return CityBox{
		Name:   name,
		MinLat: minLat,
		MinLon: minLon,
		MaxLat: maxLat,
		MaxLon: maxLon,
	}
}

type Index struct {
	tr *rtree.RTreeG[CityBox]
}

func NewIndex(cities []CityBox, log *zap.Logger) *Index {
	var tr rtree.RTreeG[CityBox]
	for _, city := range cities {
		tr.Insert([2]float64{city.MinLon, city.MinLat}, [2]float64{city.MaxLon, city.MaxLat}, city)
	}
	log.Info("built city boundary index", zap.Int("cities", len(cities)))
	return &Index{tr: &tr}
}

// InCity reports whether the coordinate lies inside any known city extent.
func (idx *Index) InCity(lat, lon float64) bool {
	found := false
	idx.tr.Search([2]float64{lon, lat}, [2]float64{lon, lat},
		func(min, max [2]float64, data CityBox) bool {
			found = true
			return false
		})
	return found
}

// City returns the name of the first city extent containing the coordinate.
func (idx *Index) City(lat, lon float64) (string, bool) {
	name := ""
	idx.tr.Search([2]float64{lon, lat}, [2]float64{lon, lat},
		func(min, max [2]float64, data CityBox) bool {
			name = data.Name
			return false
		})
	return name, name != ""
}
