package geo

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expectedKM             float64
		toleranceKM            float64
	}{
		{
			name: "yogyakarta to surakarta",
			lat1: -7.7956, lon1: 110.3695,
			lat2: -7.5755, lon2: 110.8243,
			expectedKM:  55.9,
			toleranceKM: 1.0,
		},
		{
			name: "same point",
			lat1: -7.7956, lon1: 110.3695,
			lat2: -7.7956, lon2: 110.3695,
			expectedKM:  0,
			toleranceKM: 1e-9,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.expectedKM) > tt.toleranceKM {
				t.Errorf("got %v km, want %v km (+- %v)", got, tt.expectedKM, tt.toleranceKM)
			}
		})
	}
}
