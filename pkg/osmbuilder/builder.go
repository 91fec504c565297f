package osmbuilder

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/lintang-b-s/speedmodel/pkg/boundary"
	"github.com/lintang-b-s/speedmodel/pkg/concurrent"
	"github.com/lintang-b-s/speedmodel/pkg/geo"
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type scannedWay struct {
	id       int64
	nodes    []int64
	tags     []uint32
	oneWay   bool
	reversed bool
	maxspeed speedmodel.Maxspeed
}

// Builder turns an openstreetmap extract into directed routing-graph edges
// with per-direction weight/eta speeds resolved by one vehicle model.
type Builder struct {
	model    speedmodel.VehicleModel
	taxonomy speedmodel.Taxonomy
	cities   *boundary.Index
	log      *zap.Logger
}

func NewBuilder(model speedmodel.VehicleModel, taxonomy speedmodel.Taxonomy,
	cities *boundary.Index, log *zap.Logger) *Builder {
	return &Builder{
		model:    model,
		taxonomy: taxonomy,
		cities:   cities,
		log:      log,
	}
}

// Parse scans the pbf file twice: first the ways (to learn which nodes matter),
// then the nodes (for their coordinates), and finally resolves speeds for every
// accepted way on a worker pool.
func (b *Builder) Parse(mapFile string) ([]Edge, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ways, neededNodes, err := b.scanWays(f)
	if err != nil {
		return nil, err
	}
	b.log.Sugar().Infof("accepted %d openstreetmap ways", len(ways))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	coords, err := b.scanNodes(f, neededNodes)
	if err != nil {
		return nil, err
	}
	b.log.Sugar().Infof("collected %d node coordinates", len(coords))

	return b.buildEdges(ways, coords), nil
}

func (b *Builder) scanWays(f *os.File) ([]scannedWay, map[int64]struct{}, error) {
	scanner := osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	defer scanner.Close()

	ways := make([]scannedWay, 0)
	neededNodes := make(map[int64]struct{})

	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 {
			continue
		}

		tags := translateWayTags(way, b.taxonomy)
		if !b.model.IsRoutable(tags) {
			continue
		}

		if (countWays+1)%50000 == 0 {
			b.log.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		nodes := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			nodes = append(nodes, int64(node.ID))
			neededNodes[int64(node.ID)] = struct{}{}
		}

		ways = append(ways, scannedWay{
			id:       int64(way.ID),
			nodes:    nodes,
			tags:     tags,
			oneWay:   b.model.IsOneWay(tags),
			reversed: way.Tags.Find("oneway") == "-1",
			maxspeed: parseMaxspeedTags(way.Tags),
		})
	}

	return ways, neededNodes, scanner.Err()
}

func (b *Builder) scanNodes(f *os.File, neededNodes map[int64]struct{}) (map[int64]nodeCoord, error) {
	scanner := osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	defer scanner.Close()

	coords := make(map[int64]nodeCoord, len(neededNodes))

	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}

		if (countNodes+1)%500000 == 0 {
			b.log.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		node := o.(*osm.Node)
		if _, ok := neededNodes[int64(node.ID)]; !ok {
			continue
		}
		coords[int64(node.ID)] = nodeCoord{
			lat: node.Lat,
			lon: node.Lon,
		}
	}

	return coords, scanner.Err()
}

// buildEdges resolves per-direction speeds for every scanned way. Resolution is
// pure, so ways fan out to a worker pool.
func (b *Builder) buildEdges(ways []scannedWay, coords map[int64]nodeCoord) []Edge {
	pool := concurrent.NewWorkerPool[scannedWay, []Edge](runtime.NumCPU(), len(ways))

	pool.Start(func(way scannedWay) []Edge {
		return b.wayEdges(way, coords)
	})
	for _, way := range ways {
		pool.AddJob(way)
	}
	pool.Close()
	pool.Wait()

	edges := make([]Edge, 0, 2*len(ways))
	for wayEdges := range pool.CollectResults() {
		edges = append(edges, wayEdges...)
	}
	return edges
}

func (b *Builder) wayEdges(way scannedWay, coords map[int64]nodeCoord) []Edge {
	distanceM := 0.0
	for i := 1; i < len(way.nodes); i++ {
		from, okFrom := coords[way.nodes[i-1]]
		to, okTo := coords[way.nodes[i]]
		if !okFrom || !okTo {
			return nil
		}
		distanceM += geo.CalculateHaversineDistance(from.lat, from.lon, to.lat, to.lon) * 1000
	}
	if distanceM == 0 {
		return nil
	}

	// the in-city decision uses the way midpoint, which is good enough for
	// ways already split at junctions.
	mid := coords[way.nodes[len(way.nodes)/2]]
	inCity := b.cities.InCity(mid.lat, mid.lon)

	head := way.nodes[0]
	tail := way.nodes[len(way.nodes)-1]
	if way.reversed {
		// oneway=-1: travel is only legal against node order.
		head, tail = tail, head
	}

	forward := b.model.ResolveSpeed(way.tags, speedmodel.NewSpeedParams(true, inCity, way.maxspeed))
	edges := []Edge{NewEdge(head, tail, way.id, distanceM, forward.Weight, forward.Eta)}

	if !way.oneWay {
		backward := b.model.ResolveSpeed(way.tags, speedmodel.NewSpeedParams(false, inCity, way.maxspeed))
		edges = append(edges, NewEdge(tail, head, way.id, distanceM, backward.Weight, backward.Eta))
	}
	return edges
}
