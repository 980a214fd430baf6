package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// mapPredicates implements the InteractiveMap family. Distances are
// great-circle kilometers; Within is inclusive of the boundary, NotWithin
// is its complement.
func mapPredicates() map[string]Predicate {
	return map[string]Predicate{
		"Within": coordPredicate(func(a objects.Coord, inputs map[string]any) bool {
			return a.DistanceKm(inputs["p"].(objects.Coord)) <= inputs["d"].(float64)
		}),
		"NotWithin": coordPredicate(func(a objects.Coord, inputs map[string]any) bool {
			return a.DistanceKm(inputs["p"].(objects.Coord)) > inputs["d"].(float64)
		}),
	}
}

func coordPredicate(match func(a objects.Coord, inputs map[string]any) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		v, err := objects.Parse(objects.CoordTwoDim, answer)
		if err != nil {
			return false, fmt.Errorf("answer: %w", err)
		}
		return match(v.(objects.Coord), inputs), nil
	}
}
