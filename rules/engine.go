// Package rules implements the interaction rule evaluation engine: a
// registry of named, parameterized comparison rules per answer-input
// widget type ("interaction"), the predicates that evaluate a learner's
// answer against a rule bound to concrete parameter values, and the
// renderer that turns a bound rule into its human-readable description.
//
// The registry and the predicate table are built once at initialization
// and are immutable afterwards; Classify and Render are pure functions
// with no shared mutable state, so an Engine may be used concurrently
// without coordination.
package rules

import (
	"fmt"

	"github.com/grishamjindal/oppia/objects"
)

// Predicate evaluates one rule: the learner's answer against validated,
// canonicalized parameter values. Predicates are pure functions; the only
// errors they return are answer-shape mismatches.
type Predicate func(answer any, inputs map[string]any) (bool, error)

// Engine ties the specification registry to the predicate table.
type Engine struct {
	registry   *Registry
	predicates map[string]map[string]Predicate
}

// NewEngine creates an engine over the embedded canonical rule
// definitions.
func NewEngine() (*Engine, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule definitions: %w", err)
	}
	return NewEngineWithRegistry(registry)
}

// NewEngineWithRegistry creates an engine over a caller-supplied registry.
// The predicate table is compiled here; a compile failure is a build
// defect and surfaces immediately rather than at first evaluation.
func NewEngineWithRegistry(registry *Registry) (*Engine, error) {
	table, err := newPredicateTable()
	if err != nil {
		return nil, fmt.Errorf("failed to build predicate table: %w", err)
	}
	return &Engine{registry: registry, predicates: table}, nil
}

// Registry returns the engine's specification registry.
func (e *Engine) Registry() *Registry { return e.registry }

// GetSpec resolves a rule specification, scoped by interaction type.
func (e *Engine) GetSpec(interactionType, ruleName string) (*Spec, error) {
	return e.registry.GetSpec(interactionType, ruleName)
}

// ListRules returns the interaction type's rule names in declaration order.
func (e *Engine) ListRules(interactionType string) ([]string, error) {
	return e.registry.ListRules(interactionType)
}

// Classify evaluates the learner's answer against the named rule bound to
// the supplied parameter bag and returns the boolean classification.
//
// The parameter bag is validated against the rule's declared schema before
// the predicate runs: a missing parameter fails with MissingParameterError
// and the first invalid value fails with ParameterTypeError. Failures are
// terminal; there is no partial evaluation and no recovery inside the
// engine.
func (e *Engine) Classify(interactionType, ruleName string, answer any, inputs map[string]any) (bool, error) {
	spec, err := e.registry.GetSpec(interactionType, ruleName)
	if err != nil {
		return false, err
	}

	canonical, err := e.validateInputs(spec, inputs)
	if err != nil {
		return false, err
	}

	byRule, ok := e.predicates[interactionType]
	if !ok {
		return false, &UnimplementedRuleError{InteractionType: interactionType, Rule: ruleName}
	}
	predicate, ok := byRule[ruleName]
	if !ok {
		return false, &UnimplementedRuleError{InteractionType: interactionType, Rule: ruleName}
	}

	return predicate(answer, canonical)
}

// Render is the description-rendering counterpart of Classify: it resolves
// the rule specification and substitutes the parameter values into its
// template.
func (e *Engine) Render(interactionType, ruleName string, inputs map[string]any) (string, error) {
	spec, err := e.registry.GetSpec(interactionType, ruleName)
	if err != nil {
		return "", err
	}
	return Render(spec, inputs)
}

// validateInputs checks the parameter bag against the declared schema,
// fail-fast on the first problem, and returns the canonicalized values
// the predicates operate on.
func (e *Engine) validateInputs(spec *Spec, inputs map[string]any) (map[string]any, error) {
	canonical := make(map[string]any, len(spec.Params))
	for _, p := range spec.Params {
		v, ok := inputs[p.Name]
		if !ok {
			return nil, &MissingParameterError{
				InteractionType: spec.InteractionType,
				Rule:            spec.Name,
				Param:           p.Name,
			}
		}
		cv, err := objects.Parse(p.Type, v)
		if err != nil {
			return nil, &ParameterTypeError{
				InteractionType: spec.InteractionType,
				Rule:            spec.Name,
				Param:           p.Name,
				Expected:        p.Type,
				Cause:           err,
			}
		}
		canonical[p.Name] = cv
	}
	return canonical, nil
}
