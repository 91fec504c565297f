package boundary

import (
	"encoding/csv"
	"os"

	"github.com/lintang-b-s/speedmodel/pkg/util"
)

// LoadCityBoxes reads city extents from a csv file with one
// "name,minLat,minLon,maxLat,maxLon" record per line.
func LoadCityBoxes(filename string) ([]CityBox, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	cities := make([]CityBox, 0, len(records))
	for _, record := range records {
		if len(record) != 5 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"city record must have 5 fields, got %d", len(record))
		}
		minLat, err := util.StringToFloat64(record[1])
		if err != nil {
			return nil, err
		}
		minLon, err := util.StringToFloat64(record[2])
		if err != nil {
			return nil, err
		}
		maxLat, err := util.StringToFloat64(record[3])
		if err != nil {
			return nil, err
		}
		maxLon, err := util.StringToFloat64(record[4])
		if err != nil {
			return nil, err
		}
		cities = append(cities, NewCityBox(record[0], minLat, minLon, maxLat, maxLon))
	}

	return cities, nil
}
