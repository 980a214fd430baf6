package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// setPredicates implements the SetInput family. The answer and the
// parameter are sets of unicode strings; subset and superset checks are
// proper (a set is not a proper subset of itself).
func setPredicates() map[string]Predicate {
	return map[string]Predicate{
		"Equals": setPredicate(func(answer, x stringSet) bool {
			return answer.equals(x)
		}),
		"IsSubsetOf": setPredicate(func(answer, x stringSet) bool {
			return answer.isSubsetOf(x) && !answer.equals(x)
		}),
		"IsSupersetOf": setPredicate(func(answer, x stringSet) bool {
			return x.isSubsetOf(answer) && !answer.equals(x)
		}),
		"HasElementsIn": setPredicate(func(answer, x stringSet) bool {
			return answer.intersects(x)
		}),
		"HasElementsNotIn": setPredicate(func(answer, x stringSet) bool {
			return !answer.isSubsetOf(x)
		}),
		"OmitsElementsIn": setPredicate(func(answer, x stringSet) bool {
			return !x.isSubsetOf(answer)
		}),
		"IsDisjointFrom": setPredicate(func(answer, x stringSet) bool {
			return !answer.intersects(x)
		}),
	}
}

func setPredicate(match func(answer, x stringSet) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		a, err := setAnswer(answer)
		if err != nil {
			return false, err
		}
		return match(a, newStringSet(inputs["x"].([]string))), nil
	}
}

func setAnswer(answer any) (stringSet, error) {
	v, err := objects.Parse(objects.SetOfUnicodeString, answer)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	return newStringSet(v.([]string)), nil
}

// stringSet is an unordered collection with membership semantics.
// Insertion order is irrelevant to every operation.
type stringSet map[string]struct{}

func newStringSet(elems []string) stringSet {
	s := make(stringSet, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

func (s stringSet) equals(other stringSet) bool {
	return len(s) == len(other) && s.isSubsetOf(other)
}

func (s stringSet) isSubsetOf(other stringSet) bool {
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}
	return true
}

func (s stringSet) intersects(other stringSet) bool {
	for e := range s {
		if _, ok := other[e]; ok {
			return true
		}
	}
	return false
}
