package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// itemSelectionPredicates implements the ItemSelectionInput family. The
// answer is the set of selected choices; HTML content is compared as
// opaque text.
func itemSelectionPredicates() map[string]Predicate {
	return map[string]Predicate{
		"Equals": itemSelectionPredicate(func(answer, x stringSet) bool {
			return answer.equals(x)
		}),
		"ContainsAtLeastOneOf": itemSelectionPredicate(func(answer, x stringSet) bool {
			return answer.intersects(x)
		}),
		"DoesNotContainAtLeastOneOf": itemSelectionPredicate(func(answer, x stringSet) bool {
			return !x.isSubsetOf(answer)
		}),
	}
}

func itemSelectionPredicate(match func(answer, x stringSet) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		a, err := setAnswer(answer)
		if err != nil {
			return false, err
		}
		return match(a, newStringSet(inputs["x"].([]string))), nil
	}
}

// dragAndDropPredicates implements the DragAndDropSortInput family. The
// answer is an ordering: a list of positions, each holding the set of
// items placed there. Positions in rule parameters are 1-based.
func dragAndDropPredicates() map[string]Predicate {
	return map[string]Predicate{
		"IsEqualToOrdering": orderingPredicate(func(answer [][]string, inputs map[string]any) bool {
			return orderingsEqual(answer, inputs["x"].([][]string))
		}),
		"IsEqualToOrderingWithOneItemAtIncorrectPosition": orderingPredicate(func(answer [][]string, inputs map[string]any) bool {
			return misplacedItemCount(answer, inputs["x"].([][]string)) == 1
		}),
		"HasElementXAtPositionY": orderingPredicate(func(answer [][]string, inputs map[string]any) bool {
			x := inputs["x"].(string)
			y := inputs["y"].(int)
			if y < 1 || y > len(answer) {
				return false
			}
			_, ok := newStringSet(answer[y-1])[x]
			return ok
		}),
		"HasElementXBeforeElementY": orderingPredicate(func(answer [][]string, inputs map[string]any) bool {
			positions := itemPositions(answer)
			px, okX := positions[inputs["x"].(string)]
			py, okY := positions[inputs["y"].(string)]
			return okX && okY && px < py
		}),
	}
}

func orderingPredicate(match func(answer [][]string, inputs map[string]any) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		v, err := objects.Parse(objects.ListOfSetsOfHtmlStrings, answer)
		if err != nil {
			return false, fmt.Errorf("answer: %w", err)
		}
		return match(v.([][]string), inputs), nil
	}
}

func orderingsEqual(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !newStringSet(a[i]).equals(newStringSet(b[i])) {
			return false
		}
	}
	return true
}

// itemPositions maps every item to the index of the position holding it.
func itemPositions(ordering [][]string) map[string]int {
	positions := make(map[string]int)
	for i, set := range ordering {
		for _, item := range set {
			positions[item] = i
		}
	}
	return positions
}

// misplacedItemCount counts items whose position differs between the two
// orderings. An item present in only one of them counts as misplaced.
func misplacedItemCount(answer, expected [][]string) int {
	answerPositions := itemPositions(answer)
	expectedPositions := itemPositions(expected)
	count := 0
	for item, pos := range answerPositions {
		expectedPos, ok := expectedPositions[item]
		if !ok || pos != expectedPos {
			count++
		}
	}
	for item := range expectedPositions {
		if _, ok := answerPositions[item]; !ok {
			count++
		}
	}
	return count
}
