package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// fractionPredicates implements the FractionInput family. Value
// comparisons are exact rational arithmetic; the part-inspection rules
// (numerator, denominator, integer part) compare the answer as written,
// without reducing it first.
func fractionPredicates() map[string]Predicate {
	return map[string]Predicate{
		"IsExactlyEqualTo": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a == inputs["f"].(objects.Fraction)
		}),
		"IsEquivalentTo": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.IsEquivalentTo(inputs["f"].(objects.Fraction))
		}),
		"IsEquivalentToAndInSimplestForm": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.IsEquivalentTo(inputs["f"].(objects.Fraction)) && a.IsInSimplestForm()
		}),
		"IsLessThan": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.LessThan(inputs["f"].(objects.Fraction))
		}),
		"IsGreaterThan": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return inputs["f"].(objects.Fraction).LessThan(a)
		}),
		"HasNumeratorEqualTo": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.SignedNumerator() == inputs["x"].(int)
		}),
		"HasDenominatorEqualTo": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.Denominator == inputs["x"].(int)
		}),
		"HasIntegerPartEqualTo": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.SignedWholeNumber() == inputs["x"].(int)
		}),
		"HasNoFractionalPart": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			return a.Numerator == 0
		}),
		"HasFractionalPartExactlyEqualTo": fractionPredicate(func(a objects.Fraction, inputs map[string]any) bool {
			f := inputs["f"].(objects.Fraction)
			return a.Numerator == f.Numerator && a.Denominator == f.Denominator
		}),
	}
}

func fractionPredicate(match func(a objects.Fraction, inputs map[string]any) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		a, err := fractionAnswer(answer)
		if err != nil {
			return false, err
		}
		return match(a, inputs), nil
	}
}

func fractionAnswer(answer any) (objects.Fraction, error) {
	v, err := objects.Parse(objects.FractionType, answer)
	if err != nil {
		return objects.Fraction{}, fmt.Errorf("answer: %w", err)
	}
	return v.(objects.Fraction), nil
}
