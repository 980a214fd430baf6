package rules

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grishamjindal/oppia/objects"
)

// TestDefaultRegistryLoads verifies the embedded catalogue parses and
// passes its own lint.
func TestDefaultRegistryLoads(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() failed: %v", err)
	}
	if err := registry.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if len(registry.Interactions()) == 0 {
		t.Fatal("registry should declare interaction types")
	}
}

// TestGetSpecSchemaDerivation verifies the parameter schema is derived
// from the template placeholders, in placeholder order.
func TestGetSpecSchemaDerivation(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() failed: %v", err)
	}

	spec, err := registry.GetSpec("NumericInput", "IsWithinTolerance")
	if err != nil {
		t.Fatalf("GetSpec() failed: %v", err)
	}

	want := &Spec{
		InteractionType: "NumericInput",
		Name:            "IsWithinTolerance",
		Description:     "is within {{tol|Real}} of {{x|Real}}",
		Params: []Param{
			{Name: "tol", Type: objects.Real},
			{Name: "x", Type: objects.Real},
		},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}
}

// TestSpecParamsMatchTemplatePlaceholders verifies, for every rule in the
// catalogue, that the declared parameters exactly match the template's
// placeholders.
func TestSpecParamsMatchTemplatePlaceholders(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() failed: %v", err)
	}

	pattern := regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\|([a-zA-Z][a-zA-Z0-9]*)\}\}`)
	for _, interaction := range registry.Interactions() {
		names, err := registry.ListRules(interaction)
		if err != nil {
			t.Fatalf("ListRules(%q) failed: %v", interaction, err)
		}
		for _, name := range names {
			spec, err := registry.GetSpec(interaction, name)
			if err != nil {
				t.Fatalf("GetSpec(%q, %q) failed: %v", interaction, name, err)
			}
			var fromTemplate []Param
			for _, m := range pattern.FindAllStringSubmatch(spec.Description, -1) {
				fromTemplate = append(fromTemplate, Param{Name: m[1], Type: objects.Type(m[2])})
			}
			if diff := cmp.Diff(fromTemplate, spec.Params); diff != "" {
				t.Errorf("%s.%s: schema does not match template (-template +declared):\n%s",
					interaction, name, diff)
			}
		}
	}
}

// TestListRulesDeclarationOrder verifies ListRules preserves the
// catalogue's declaration order and returns a stable copy.
func TestListRulesDeclarationOrder(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() failed: %v", err)
	}

	names, err := registry.ListRules("NumericInput")
	if err != nil {
		t.Fatalf("ListRules() failed: %v", err)
	}
	want := []string{
		"Equals",
		"IsDoubleOf",
		"IsLessThan",
		"IsGreaterThan",
		"IsLessThanOrEqualTo",
		"IsGreaterThanOrEqualTo",
		"IsInclusivelyBetween",
		"IsWithinTolerance",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}

	// Mutating the returned slice must not affect the registry.
	names[0] = "Tampered"
	again, _ := registry.ListRules("NumericInput")
	if again[0] != "Equals" {
		t.Error("ListRules() should return a copy")
	}
}

// TestGetSpecErrors verifies lookup failures carry the right error types.
func TestGetSpecErrors(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() failed: %v", err)
	}

	_, err = registry.GetSpec("NoSuchWidget", "Equals")
	var unknownInteraction *UnknownInteractionTypeError
	if !errors.As(err, &unknownInteraction) {
		t.Errorf("GetSpec() error = %v, want UnknownInteractionTypeError", err)
	}

	_, err = registry.GetSpec("NumericInput", "NoSuchRule")
	var unknownRule *UnknownRuleError
	if !errors.As(err, &unknownRule) {
		t.Errorf("GetSpec() error = %v, want UnknownRuleError", err)
	}

	_, err = registry.ListRules("NoSuchWidget")
	if !errors.As(err, &unknownInteraction) {
		t.Errorf("ListRules() error = %v, want UnknownInteractionTypeError", err)
	}
}

// TestSharedRuleNamesAreScoped verifies a rule name appearing under
// several interaction types resolves to unrelated schemas.
func TestSharedRuleNamesAreScoped(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() failed: %v", err)
	}

	numeric, err := registry.GetSpec("NumericInput", "Equals")
	if err != nil {
		t.Fatalf("GetSpec(NumericInput, Equals) failed: %v", err)
	}
	text, err := registry.GetSpec("TextInput", "Equals")
	if err != nil {
		t.Fatalf("GetSpec(TextInput, Equals) failed: %v", err)
	}
	set, err := registry.GetSpec("SetInput", "Equals")
	if err != nil {
		t.Fatalf("GetSpec(SetInput, Equals) failed: %v", err)
	}

	if numeric.Params[0].Type != objects.Real {
		t.Errorf("NumericInput.Equals parameter type = %s, want Real", numeric.Params[0].Type)
	}
	if text.Params[0].Type != objects.NormalizedString {
		t.Errorf("TextInput.Equals parameter type = %s, want NormalizedString", text.Params[0].Type)
	}
	if set.Params[0].Type != objects.SetOfUnicodeString {
		t.Errorf("SetInput.Equals parameter type = %s, want SetOfUnicodeString", set.Params[0].Type)
	}
}

// TestLoadRegistryRejectsBadSources verifies malformed declarative sources
// fail at load time, not at first use.
func TestLoadRegistryRejectsBadSources(t *testing.T) {
	testCases := []struct {
		name   string
		source string
	}{
		{"Unknown placeholder type", `
NumericInput:
  Equals:
    description: "is equal to {{x|Imaginary}}"
`},
		{"Repeated parameter", `
NumericInput:
  Equals:
    description: "{{x|Real}} and {{x|Real}} again"
`},
		{"Not a mapping", `- just\n- a\n- list`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadRegistry([]byte(tc.source)); err == nil {
				t.Error("LoadRegistry() should reject the source")
			}
		})
	}
}

// TestValidateCatchesMalformedPlaceholder verifies the lint flags a
// template with a placeholder the schema derivation could not parse.
func TestValidateCatchesMalformedPlaceholder(t *testing.T) {
	registry, err := LoadRegistry([]byte(`
NumericInput:
  Equals:
    description: "is equal to {{x Real}}"
`))
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}
	if err := registry.Validate(); err == nil {
		t.Error("Validate() should flag the malformed placeholder")
	}
}
