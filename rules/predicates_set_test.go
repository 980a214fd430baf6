package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetInputRules covers the SetInput family. Subset and superset are
// proper; insertion order never matters.
func TestSetInputRules(t *testing.T) {
	engine := newTestEngine(t)

	testCases := []struct {
		name   string
		rule   string
		answer []string
		x      []string
		want   bool
	}{
		{"Equals same order", "Equals", []string{"a", "b"}, []string{"a", "b"}, true},
		{"Equals different order", "Equals", []string{"b", "a"}, []string{"a", "b"}, true},
		{"Equals different elements", "Equals", []string{"a", "c"}, []string{"a", "b"}, false},
		{"Equals different sizes", "Equals", []string{"a"}, []string{"a", "b"}, false},

		{"Proper subset", "IsSubsetOf", []string{"a"}, []string{"a", "b"}, true},
		{"Equal set is not proper subset", "IsSubsetOf", []string{"a", "b"}, []string{"a", "b"}, false},
		{"Non-subset", "IsSubsetOf", []string{"a", "c"}, []string{"a", "b"}, false},
		{"Empty set is proper subset", "IsSubsetOf", []string{}, []string{"a"}, true},

		{"Proper superset", "IsSupersetOf", []string{"a", "b", "c"}, []string{"a", "b"}, true},
		{"Equal set is not proper superset", "IsSupersetOf", []string{"a", "b"}, []string{"a", "b"}, false},
		{"Non-superset", "IsSupersetOf", []string{"a", "c"}, []string{"a", "b"}, false},

		{"Has elements in", "HasElementsIn", []string{"a", "z"}, []string{"a", "b"}, true},
		{"No elements in", "HasElementsIn", []string{"y", "z"}, []string{"a", "b"}, false},

		{"Has elements not in", "HasElementsNotIn", []string{"a", "z"}, []string{"a", "b"}, true},
		{"All elements in", "HasElementsNotIn", []string{"a", "b"}, []string{"a", "b"}, false},

		{"Omits elements in", "OmitsElementsIn", []string{"a"}, []string{"a", "b"}, true},
		{"Omits nothing", "OmitsElementsIn", []string{"a", "b"}, []string{"a", "b"}, false},

		{"Disjoint", "IsDisjointFrom", []string{"y", "z"}, []string{"a", "b"}, true},
		{"Overlapping", "IsDisjointFrom", []string{"a", "z"}, []string{"a", "b"}, false},
		{"Empty answer is disjoint", "IsDisjointFrom", []string{}, []string{"a"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.Classify("SetInput", tc.rule, tc.answer, map[string]any{"x": tc.x})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSetInputRejectsDuplicateAnswer verifies an answer with repeated
// elements is a shape error, not a silent false.
func TestSetInputRejectsDuplicateAnswer(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Classify("SetInput", "Equals", []string{"a", "a"}, map[string]any{"x": []string{"a"}})
	assert.Error(t, err)
}
