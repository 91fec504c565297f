package main

import (
	"flag"

	"github.com/lintang-b-s/speedmodel/pkg"
	"github.com/lintang-b-s/speedmodel/pkg/boundary"
	"github.com/lintang-b-s/speedmodel/pkg/logger"
	"github.com/lintang-b-s/speedmodel/pkg/osmbuilder"
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
	"github.com/lintang-b-s/speedmodel/pkg/taxonomy"
	"go.uber.org/zap"
)

var (
	mapFile  = flag.String("map", "./data/solo_jogja.osm.pbf", "openstreetmap pbf file")
	cityFile = flag.String("cities", "./data/cities.csv", "city bounding boxes csv file")
	outFile  = flag.String("out", "./data/edges.graph", "output edge file")
	vehicle  = flag.String("vehicle", "car", "vehicle type (car, pedestrian, bicycle)")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	vehicleType, ok := pkg.GetVehicleType(*vehicle)
	if !ok {
		log.Fatal("unknown vehicle type", zap.String("vehicle", *vehicle))
	}

	tax := taxonomy.New()
	factory, err := speedmodel.NewModelFactory(tax)
	if err != nil {
		panic(err)
	}
	model, err := factory.GetModel(vehicleType)
	if err != nil {
		panic(err)
	}

	cities, err := boundary.LoadCityBoxes(*cityFile)
	if err != nil {
		panic(err)
	}
	cityIndex := boundary.NewIndex(cities, log)

	builder := osmbuilder.NewBuilder(model, tax, cityIndex, log)
	edges, err := builder.Parse(*mapFile)
	if err != nil {
		panic(err)
	}

	if err := osmbuilder.WriteEdges(*outFile, edges); err != nil {
		panic(err)
	}
	log.Info("wrote edge file", zap.Int("edges", len(edges)), zap.String("file", *outFile))
}
