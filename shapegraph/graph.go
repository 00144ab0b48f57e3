// Package shapegraph turns the closed polygon outline of a shape into the
// vertex and segment records stored in a saved workspace. Records reference
// each other by ids drawn from a caller-owned IDPool.
package shapegraph

import (
	"log/slog"

	"tangramkit/kit"
	"tangramkit/pathdata"
)

// Vertex is a polygon corner. SegmentIDs holds the outgoing segment first,
// then the incoming one.
type Vertex struct {
	ID          string         `json:"id"`
	Coordinates pathdata.Point `json:"coordinates"`
	ShapeID     string         `json:"shapeId"`
	Idx         int            `json:"idx"`
	SegmentIDs  [2]string      `json:"segmentIds"`
	Type        string         `json:"type"`
	Visible     bool           `json:"visible"`
	Color       string         `json:"color"`
	Size        float64        `json:"size"`
}

// Segment is a polygon side running from VertexIDs[0] to VertexIDs[1].
type Segment struct {
	ID               string    `json:"id"`
	ShapeID          string    `json:"shapeId"`
	Idx              int       `json:"idx"`
	VertexIDs        [2]string `json:"vertexIds"`
	DivisionPointIDs []string  `json:"divisionPointIds"`
	Counterclockwise bool      `json:"counterclockwise"`
	IsInfinite       bool      `json:"isInfinite"`
	IsSemiInfinite   bool      `json:"isSemiInfinite"`
}

// Graph is everything derived from one shape path.
type Graph struct {
	ShapeID    string    `json:"shapeId"`
	SegmentIDs []string  `json:"segmentIds"`
	PointIDs   []string  `json:"pointIds"`
	Vertices   []Vertex  `json:"vertices"`
	Segments   []Segment `json:"segments"`
}

// PointCount returns the number of vertices Build creates for path d.
func PointCount(d string) int {
	return len(pathdata.PathPoints(d))
}

// IDsNeeded returns the number of ids Build draws for path d.
func IDsNeeded(d string) int {
	return 2 * PointCount(d)
}

// Build derives the vertices and segments of the closed polygon described
// by path data d. Only M, L, H and V commands make vertices.
//
// Point ids are drawn from pool first, then segment ids. When the pool
// holds fewer than twice the number of vertices, Build returns an
// *ExhaustedError and draws nothing.
func Build(shapeID, d string, pool *IDPool) (*Graph, error) {
	pts := pathdata.PathPoints(d)
	n := len(pts)
	if 2*n > pool.Len() {
		return nil, &ExhaustedError{ShapeID: shapeID, Needed: 2 * n, Available: pool.Len()}
	}
	pointIDs, err := pool.Take(n)
	if err != nil {
		return nil, err
	}
	segmentIDs, err := pool.Take(n)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		ShapeID:    shapeID,
		SegmentIDs: segmentIDs,
		PointIDs:   pointIDs,
		Vertices:   make([]Vertex, n),
		Segments:   make([]Segment, n),
	}
	for i, p := range pts {
		g.Vertices[i] = Vertex{
			ID:          pointIDs[i],
			Coordinates: p,
			ShapeID:     shapeID,
			Idx:         i,
			SegmentIDs:  [2]string{segmentIDs[i], segmentIDs[(i-1+n)%n]},
			Type:        "vertex",
			Visible:     true,
			Color:       "#000",
			Size:        1,
		}
		g.Segments[i] = Segment{
			ID:               segmentIDs[i],
			ShapeID:          shapeID,
			Idx:              i,
			VertexIDs:        [2]string{pointIDs[i], pointIDs[(i+1)%n]},
			DivisionPointIDs: []string{},
		}
	}
	return g, nil
}

// BuildKit builds every shape of a kit in order from one pool. It stops at
// the first shape the pool cannot serve.
func BuildKit(shapes []kit.Shape, pool *IDPool) ([]*Graph, error) {
	graphs := make([]*Graph, 0, len(shapes))
	for _, s := range shapes {
		g, err := Build(s.ID, s.Path, pool)
		if err != nil {
			return nil, err
		}
		slog.Debug("built shape", "shape", s.ID, "points", len(g.Vertices), "poolLeft", pool.Len())
		graphs = append(graphs, g)
	}
	return graphs, nil
}

// KitIDsNeeded returns the number of ids BuildKit draws for shapes.
func KitIDsNeeded(shapes []kit.Shape) int {
	total := 0
	for _, s := range shapes {
		total += IDsNeeded(s.Path)
	}
	return total
}
