package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// UnknownInteractionTypeError is returned when the interaction type is not
// present in the registry.
type UnknownInteractionTypeError struct {
	InteractionType string
}

func (e *UnknownInteractionTypeError) Error() string {
	return fmt.Sprintf("unknown interaction type %q", e.InteractionType)
}

// UnknownRuleError is returned when the interaction type exists but does
// not declare the named rule.
type UnknownRuleError struct {
	InteractionType string
	Rule            string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("interaction type %q has no rule %q", e.InteractionType, e.Rule)
}

// UnimplementedRuleError is returned when a rule is declared in the
// registry but has no predicate backing it. This is a registry defect,
// not a caller mistake.
type UnimplementedRuleError struct {
	InteractionType string
	Rule            string
}

func (e *UnimplementedRuleError) Error() string {
	return fmt.Sprintf("rule %s.%s has no predicate implementation", e.InteractionType, e.Rule)
}

// MissingParameterError is returned when the caller's parameter bag omits
// a declared parameter.
type MissingParameterError struct {
	InteractionType string
	Rule            string
	Param           string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("rule %s.%s: missing parameter %q", e.InteractionType, e.Rule, e.Param)
}

// ParameterTypeError is returned when a supplied parameter value does not
// validate against its declared type.
type ParameterTypeError struct {
	InteractionType string
	Rule            string
	Param           string
	Expected        objects.Type
	Cause           error
}

func (e *ParameterTypeError) Error() string {
	return fmt.Sprintf("rule %s.%s: parameter %q is not a valid %s: %v",
		e.InteractionType, e.Rule, e.Param, e.Expected, e.Cause)
}

func (e *ParameterTypeError) Unwrap() error { return e.Cause }
