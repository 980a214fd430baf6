package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// identifierPattern is the shape required of interaction type names, rule
// names, and parameter names.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks the registry against the invariants the catalogue must
// satisfy to be usable:
//
//   - interaction type, rule, and parameter names are well-formed
//     identifiers;
//   - every placeholder's type is in the vocabulary and every declared
//     parameter appears in the template exactly once (guaranteed for
//     registries built by LoadRegistry, re-checked here so hand-built
//     registries get the same gate);
//   - no template contains a malformed placeholder that the schema
//     derivation silently skipped.
//
// Returns nil if the registry is valid.
func (r *Registry) Validate() error {
	for _, interaction := range r.interactions {
		if err := validateIdentifier(interaction); err != nil {
			return fmt.Errorf("invalid interaction type name %q: %w", interaction, err)
		}
		for _, ruleName := range r.ruleOrder[interaction] {
			if err := validateIdentifier(ruleName); err != nil {
				return fmt.Errorf("interaction type %q: invalid rule name %q: %w", interaction, ruleName, err)
			}
			if err := validateSpec(r.specs[interaction][ruleName]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateAgainst additionally requires that every declared rule is backed
// by a predicate in the engine's table, so Classify can never fail with
// UnimplementedRuleError for a rule the registry advertises.
func (r *Registry) ValidateAgainst(e *Engine) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, interaction := range r.interactions {
		byRule := e.predicates[interaction]
		if byRule == nil {
			return &UnimplementedRuleError{InteractionType: interaction, Rule: r.ruleOrder[interaction][0]}
		}
		for _, ruleName := range r.ruleOrder[interaction] {
			if _, ok := byRule[ruleName]; !ok {
				return &UnimplementedRuleError{InteractionType: interaction, Rule: ruleName}
			}
		}
	}
	return nil
}

func validateSpec(spec *Spec) error {
	for _, p := range spec.Params {
		if err := validateIdentifier(p.Name); err != nil {
			return fmt.Errorf("rule %s.%s: invalid parameter name %q: %w", spec.InteractionType, spec.Name, p.Name, err)
		}
		placeholder := "{{" + p.Name + "|" + string(p.Type) + "}}"
		if strings.Count(spec.Description, placeholder) != 1 {
			return fmt.Errorf("rule %s.%s: parameter %q must appear in the template exactly once",
				spec.InteractionType, spec.Name, p.Name)
		}
	}
	// A stray "{{" not consumed by the placeholder grammar means the
	// template carries something the schema derivation could not see.
	stripped := placeholderPattern.ReplaceAllString(spec.Description, "")
	if strings.Contains(stripped, "{{") || strings.Contains(stripped, "}}") {
		return fmt.Errorf("rule %s.%s: template contains a malformed placeholder", spec.InteractionType, spec.Name)
	}
	return nil
}

func validateIdentifier(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("identifier cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("identifier length %d exceeds maximum of 100 characters", len(name))
	}
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$")
	}
	return nil
}
