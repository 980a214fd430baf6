package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grishamjindal/oppia/objects"
)

func fr(negative bool, whole, num, den int) objects.Fraction {
	return objects.Fraction{IsNegative: negative, WholeNumber: whole, Numerator: num, Denominator: den}
}

// TestFractionInputRules covers the FractionInput family: exact and
// rational equality, ordering, and part inspection.
func TestFractionInputRules(t *testing.T) {
	engine := newTestEngine(t)

	testCases := []struct {
		name   string
		rule   string
		answer objects.Fraction
		inputs map[string]any
		want   bool
	}{
		{"Exactly equal", "IsExactlyEqualTo", fr(false, 0, 1, 2), map[string]any{"f": fr(false, 0, 1, 2)}, true},
		{"Equivalent is not exact", "IsExactlyEqualTo", fr(false, 0, 2, 4), map[string]any{"f": fr(false, 0, 1, 2)}, false},

		{"Equivalent reduced", "IsEquivalentTo", fr(false, 0, 2, 4), map[string]any{"f": fr(false, 0, 1, 2)}, true},
		{"Equivalent mixed vs improper", "IsEquivalentTo", fr(false, 1, 1, 2), map[string]any{"f": fr(false, 0, 3, 2)}, true},
		{"Not equivalent", "IsEquivalentTo", fr(false, 0, 1, 3), map[string]any{"f": fr(false, 0, 1, 2)}, false},
		{"Sign matters", "IsEquivalentTo", fr(true, 0, 1, 2), map[string]any{"f": fr(false, 0, 1, 2)}, false},

		{"Equivalent and simplest", "IsEquivalentToAndInSimplestForm", fr(false, 0, 1, 2), map[string]any{"f": fr(false, 0, 2, 4)}, true},
		{"Equivalent but not simplest", "IsEquivalentToAndInSimplestForm", fr(false, 0, 2, 4), map[string]any{"f": fr(false, 0, 1, 2)}, false},

		{"Less than", "IsLessThan", fr(false, 0, 1, 3), map[string]any{"f": fr(false, 0, 1, 2)}, true},
		{"Not less than when equal", "IsLessThan", fr(false, 0, 1, 2), map[string]any{"f": fr(false, 0, 1, 2)}, false},
		{"Negative less than positive", "IsLessThan", fr(true, 0, 1, 2), map[string]any{"f": fr(false, 0, 1, 4)}, true},
		{"Greater than", "IsGreaterThan", fr(false, 1, 0, 1), map[string]any{"f": fr(false, 0, 1, 2)}, true},

		{"Numerator equal", "HasNumeratorEqualTo", fr(false, 0, 3, 4), map[string]any{"x": 3}, true},
		{"Numerator signed", "HasNumeratorEqualTo", fr(true, 0, 3, 4), map[string]any{"x": -3}, true},
		{"Numerator unequal", "HasNumeratorEqualTo", fr(false, 0, 3, 4), map[string]any{"x": 4}, false},

		{"Denominator equal", "HasDenominatorEqualTo", fr(false, 0, 3, 4), map[string]any{"x": 4}, true},
		{"Denominator unequal", "HasDenominatorEqualTo", fr(false, 0, 3, 4), map[string]any{"x": 3}, false},

		{"Integer part equal", "HasIntegerPartEqualTo", fr(false, 2, 1, 2), map[string]any{"x": 2}, true},
		{"Integer part signed", "HasIntegerPartEqualTo", fr(true, 2, 1, 2), map[string]any{"x": -2}, true},
		{"Integer part zero", "HasIntegerPartEqualTo", fr(false, 0, 1, 2), map[string]any{"x": 0}, true},

		{"No fractional part", "HasNoFractionalPart", fr(false, 3, 0, 1), map[string]any{}, true},
		{"Has fractional part", "HasNoFractionalPart", fr(false, 3, 1, 2), map[string]any{}, false},

		{"Fractional part matches", "HasFractionalPartExactlyEqualTo", fr(false, 5, 1, 2), map[string]any{"f": fr(false, 0, 1, 2)}, true},
		{"Fractional part representation matters", "HasFractionalPartExactlyEqualTo", fr(false, 0, 2, 4), map[string]any{"f": fr(false, 0, 1, 2)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.Classify("FractionInput", tc.rule, tc.answer, tc.inputs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFractionInputGenericAnswer verifies a decoded mapping is accepted as
// a fraction answer.
func TestFractionInputGenericAnswer(t *testing.T) {
	engine := newTestEngine(t)

	answer := map[string]any{
		"isNegative":  false,
		"wholeNumber": 0,
		"numerator":   1,
		"denominator": 2,
	}
	got, err := engine.Classify("FractionInput", "IsEquivalentTo", answer,
		map[string]any{"f": fr(false, 0, 2, 4)})
	require.NoError(t, err)
	assert.True(t, got)
}

// TestFractionInputRejectsZeroDenominator verifies validation rejects a
// zero denominator parameter.
func TestFractionInputRejectsZeroDenominator(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Classify("FractionInput", "IsEquivalentTo", fr(false, 0, 1, 2),
		map[string]any{"f": fr(false, 0, 1, 0)})
	assert.Error(t, err)
}
