package boundary

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestInCity(t *testing.T) {
	idx := NewIndex([]CityBox{
		NewCityBox("yogyakarta", -7.83, 110.32, -7.75, 110.43),
		NewCityBox("surakarta", -7.60, 110.76, -7.53, 110.87),
	}, zap.NewNop())

	testCases := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"inside yogyakarta", -7.7956, 110.3695, true},
		{"inside surakarta", -7.5755, 110.8243, true},
		{"countryside between the two", -7.70, 110.60, false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.InCity(tt.lat, tt.lon); got != tt.want {
				t.Errorf("InCity(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}

	if name, ok := idx.City(-7.7956, 110.3695); !ok || name != "yogyakarta" {
		t.Errorf("City = %q ok=%v, want yogyakarta", name, ok)
	}
}

func TestLoadCityBoxes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cities.csv")
	content := "yogyakarta,-7.83,110.32,-7.75,110.43\nsurakarta,-7.60,110.76,-7.53,110.87\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cities, err := LoadCityBoxes(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(cities) != 2 {
		t.Fatalf("got %d cities, want 2", len(cities))
	}
	if cities[0].Name != "yogyakarta" || cities[0].MinLat != -7.83 || cities[0].MaxLon != 110.43 {
		t.Errorf("unexpected first city: %+v", cities[0])
	}

	if err := os.WriteFile(file, []byte("broken,1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCityBoxes(file); err == nil {
		t.Error("short record should fail")
	}
}
