package rules

import "fmt"

// newPredicateTable builds the two-level interaction type -> rule name ->
// predicate mapping. Called once per engine; the table is immutable
// afterwards and holds no external resources, so there is no teardown.
func newPredicateTable() (map[string]map[string]Predicate, error) {
	numeric, err := numericPredicates()
	if err != nil {
		return nil, fmt.Errorf("NumericInput: %w", err)
	}
	return map[string]map[string]Predicate{
		"NumericInput":         numeric,
		"TextInput":            textPredicates(),
		"SetInput":             setPredicates(),
		"FractionInput":        fractionPredicates(),
		"ItemSelectionInput":   itemSelectionPredicates(),
		"DragAndDropSortInput": dragAndDropPredicates(),
		"GraphInput":           graphPredicates(),
		"MusicNotesInput":      musicPredicates(),
		"CodeRepl":             codePredicates(),
		"InteractiveMap":       mapPredicates(),
	}, nil
}
