package rules

import (
	"fmt"
	"strconv"

	"github.com/grishamjindal/oppia/objects"
)

// graphPredicates implements the GraphInput family.
func graphPredicates() map[string]Predicate {
	return map[string]Predicate{
		"IsIsomorphicTo": func(answer any, inputs map[string]any) (bool, error) {
			a, err := graphAnswer(answer)
			if err != nil {
				return false, err
			}
			return isIsomorphic(a, inputs["g"].(objects.Graph)), nil
		},
	}
}

func graphAnswer(answer any) (objects.Graph, error) {
	v, err := objects.Parse(objects.GraphType, answer)
	if err != nil {
		return objects.Graph{}, fmt.Errorf("answer: %w", err)
	}
	return v.(objects.Graph), nil
}

// isIsomorphic reports whether the two graphs are isomorphic. When the
// graphs are labeled, a vertex may only map to a vertex with the same
// label; when weighted, mapped edges must carry the same weight; when
// directed, edge orientation must be preserved. Graphs with differing
// structural flags never match.
//
// The search is a permutation walk with label pruning. Validation caps
// graphs at MaxGraphVertices, so the search space stays small.
func isIsomorphic(a, b objects.Graph) bool {
	if a.IsDirected != b.IsDirected || a.IsWeighted != b.IsWeighted || a.IsLabeled != b.IsLabeled {
		return false
	}
	if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) {
		return false
	}

	mapping := make([]int, len(a.Vertices))
	used := make([]bool, len(b.Vertices))
	return assignVertex(a, b, mapping, used, 0)
}

func assignVertex(a, b objects.Graph, mapping []int, used []bool, i int) bool {
	if i == len(a.Vertices) {
		return edgesMatch(a, b, mapping)
	}
	for j := range b.Vertices {
		if used[j] {
			continue
		}
		if a.IsLabeled && a.Vertices[i].Label != b.Vertices[j].Label {
			continue
		}
		mapping[i] = j
		used[j] = true
		if assignVertex(a, b, mapping, used, i+1) {
			return true
		}
		used[j] = false
	}
	return false
}

// edgesMatch checks that the candidate vertex mapping carries the edge
// multiset of a exactly onto the edge multiset of b.
func edgesMatch(a, b objects.Graph, mapping []int) bool {
	counts := make(map[string]int, len(b.Edges))
	for _, e := range b.Edges {
		counts[edgeKey(b, e.Src, e.Dst, e.Weight)]++
	}
	for _, e := range a.Edges {
		key := edgeKey(b, mapping[e.Src], mapping[e.Dst], e.Weight)
		if counts[key] == 0 {
			return false
		}
		counts[key]--
	}
	return true
}

func edgeKey(g objects.Graph, src, dst int, weight float64) string {
	if !g.IsDirected && src > dst {
		src, dst = dst, src
	}
	key := strconv.Itoa(src) + "-" + strconv.Itoa(dst)
	if g.IsWeighted {
		key += "@" + strconv.FormatFloat(weight, 'g', -1, 64)
	}
	return key
}
