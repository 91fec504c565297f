package osmbuilder

import (
	"path/filepath"
	"testing"
)

func TestWriteReadEdges(t *testing.T) {
	file := filepath.Join(t.TempDir(), "edges.graph")

	edges := []Edge{
		NewEdge(1, 2, 100, 1523.5, 56, 63),
		NewEdge(2, 1, 100, 1523.5, 56, 63),
		NewEdge(2, 3, 101, 80.25, 18.75, 22.5),
	}

	if err := WriteEdges(file, edges); err != nil {
		t.Fatal(err)
	}

	got, err := ReadEdges(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(edges) {
		t.Fatalf("got %d edges, want %d", len(got), len(edges))
	}
	for i := range edges {
		if got[i] != edges[i] {
			t.Errorf("edge[%d] = %+v, want %+v", i, got[i], edges[i])
		}
	}
}

func TestWriteReadEdgesLarge(t *testing.T) {
	file := filepath.Join(t.TempDir(), "edges.graph")

	// enough edges to overflow the write buffer, so a lost final flush or a
	// truncated compressed stream would fail the read back.
	edges := make([]Edge, 0, 20000)
	for i := 0; i < 10000; i++ {
		edges = append(edges, NewEdge(int64(i), int64(i+1), int64(i), float64(i)+0.5, 56, 63))
		edges = append(edges, NewEdge(int64(i+1), int64(i), int64(i), float64(i)+0.5, 56, 63))
	}

	if err := WriteEdges(file, edges); err != nil {
		t.Fatal(err)
	}
	got, err := ReadEdges(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(edges) {
		t.Fatalf("got %d edges, want %d", len(got), len(edges))
	}
	if got[len(got)-1] != edges[len(edges)-1] {
		t.Errorf("last edge = %+v, want %+v", got[len(got)-1], edges[len(edges)-1])
	}
}
