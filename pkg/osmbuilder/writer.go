package osmbuilder

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/dsnet/compress/bzip2"
)

// WriteEdges stores the resolved edges as a bzip2-compressed text file:
// a header line with the edge count, then one line per directed edge with
// "from to wayId distanceM weightSpeed etaSpeed".
func WriteEdges(filename string, edges []Edge) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d\n", len(edges))
	for _, e := range edges {
		distF := strconv.FormatFloat(e.DistanceM, 'f', -1, 64)
		weightF := strconv.FormatFloat(e.WeightSpeed, 'f', -1, 64)
		etaF := strconv.FormatFloat(e.EtaSpeed, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %d %s %s %s\n", e.From, e.To, e.WayID, distF, weightF, etaF)
	}

	if err := w.Flush(); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

// ReadEdges loads an edge file written by WriteEdges.
func ReadEdges(filename string) ([]Edge, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	r := bufio.NewReader(bz)

	var count int
	if _, err := fmt.Fscanf(r, "%d\n", &count); err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, count)
	for i := 0; i < count; i++ {
		var e Edge
		if _, err := fmt.Fscanf(r, "%d %d %d %f %f %f\n",
			&e.From, &e.To, &e.WayID, &e.DistanceM, &e.WeightSpeed, &e.EtaSpeed); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}
