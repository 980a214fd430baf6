package rules

import (
	"fmt"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/grishamjindal/oppia/objects"
)

// textPredicates implements the TextInput family. Both the answer and the
// parameter are normalized strings; every comparison except
// CaseSensitiveEquals is case-insensitive.
func textPredicates() map[string]Predicate {
	return map[string]Predicate{
		"Equals": textPredicate(func(answer, x string) bool {
			return strings.EqualFold(answer, x)
		}),
		"CaseSensitiveEquals": textPredicate(func(answer, x string) bool {
			return answer == x
		}),
		"StartsWith": textPredicate(func(answer, x string) bool {
			return strings.HasPrefix(strings.ToLower(answer), strings.ToLower(x))
		}),
		"Contains": textPredicate(func(answer, x string) bool {
			return strings.Contains(strings.ToLower(answer), strings.ToLower(x))
		}),
		// Misspelled by at most one character: Wagner-Fischer edit
		// distance with unit costs, after case folding.
		"FuzzyEquals": textPredicate(func(answer, x string) bool {
			return smetrics.WagnerFischer(strings.ToLower(answer), strings.ToLower(x), 1, 1, 1) <= 1
		}),
	}
}

func textPredicate(match func(answer, x string) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		a, err := normalizedAnswer(answer)
		if err != nil {
			return false, err
		}
		return match(a, inputs["x"].(string)), nil
	}
}

func normalizedAnswer(answer any) (string, error) {
	s, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("answer: expected a string, got %T", answer)
	}
	return objects.NormalizeWhitespace(objects.NormalizeUnicode(s)), nil
}
