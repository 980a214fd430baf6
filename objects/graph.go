package objects

import (
	"fmt"
	"sort"
	"strings"
)

// MaxGraphVertices bounds graph size at validation time. Isomorphism
// checking is a permutation search, so authoring-scale graphs only.
const MaxGraphVertices = 10

// Vertex is a node in an authored graph. The label participates in
// comparisons only when the graph is labeled; X and Y are display
// coordinates and never affect rule semantics.
type Vertex struct {
	Label string
	X     float64
	Y     float64
}

// Edge connects two vertices by index. Weight participates in comparisons
// only when the graph is weighted.
type Edge struct {
	Src    int
	Dst    int
	Weight float64
}

// Graph is a vertex set with an edge relation over it.
type Graph struct {
	Vertices   []Vertex
	Edges      []Edge
	IsDirected bool
	IsWeighted bool
	IsLabeled  bool
}

// String renders a compact deterministic summary: vertex labels in
// declaration order followed by the edge list.
func (g Graph) String() string {
	labels := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		if g.IsLabeled && v.Label != "" {
			labels[i] = v.Label
		} else {
			labels[i] = fmt.Sprintf("v%d", i)
		}
	}
	sep := "-"
	if g.IsDirected {
		sep = "->"
	}
	edges := make([]string, len(g.Edges))
	for i, e := range g.Edges {
		if g.IsWeighted {
			edges[i] = fmt.Sprintf("%s%s%s(%g)", labels[e.Src], sep, labels[e.Dst], e.Weight)
		} else {
			edges[i] = fmt.Sprintf("%s%s%s", labels[e.Src], sep, labels[e.Dst])
		}
	}
	sort.Strings(edges)
	return fmt.Sprintf("({%s}; %s)", strings.Join(labels, ", "), strings.Join(edges, ", "))
}

func parseGraph(v any) (any, error) {
	switch val := v.(type) {
	case Graph:
		return val, checkGraph(val)
	case map[string]any:
		g := Graph{}
		g.IsDirected, _ = val["isDirected"].(bool)
		g.IsWeighted, _ = val["isWeighted"].(bool)
		g.IsLabeled, _ = val["isLabeled"].(bool)
		rawVertices, ok := val["vertices"].([]any)
		if !ok {
			return nil, fmt.Errorf("graph: missing vertex list")
		}
		for i, rv := range rawVertices {
			m, ok := rv.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("graph: vertex %d: expected a mapping, got %T", i, rv)
			}
			vertex := Vertex{}
			vertex.Label, _ = m["label"].(string)
			if x, ok := toFloat(m["x"]); ok {
				vertex.X = x
			}
			if y, ok := toFloat(m["y"]); ok {
				vertex.Y = y
			}
			g.Vertices = append(g.Vertices, vertex)
		}
		rawEdges, _ := val["edges"].([]any)
		for i, re := range rawEdges {
			m, ok := re.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("graph: edge %d: expected a mapping, got %T", i, re)
			}
			edge := Edge{}
			for key, dst := range map[string]*int{"src": &edge.Src, "dst": &edge.Dst} {
				n, err := parseInt(m[key])
				if err != nil {
					return nil, fmt.Errorf("graph: edge %d: %s: %w", i, key, err)
				}
				*dst = n.(int)
			}
			if w, ok := toFloat(m["weight"]); ok {
				edge.Weight = w
			}
			g.Edges = append(g.Edges, edge)
		}
		return g, checkGraph(g)
	default:
		return nil, fmt.Errorf("expected a graph, got %T", v)
	}
}

func checkGraph(g Graph) error {
	if len(g.Vertices) > MaxGraphVertices {
		return fmt.Errorf("graph: at most %d vertices supported, got %d", MaxGraphVertices, len(g.Vertices))
	}
	for i, e := range g.Edges {
		if e.Src < 0 || e.Src >= len(g.Vertices) || e.Dst < 0 || e.Dst >= len(g.Vertices) {
			return fmt.Errorf("graph: edge %d references vertex outside the vertex set", i)
		}
	}
	return nil
}
