package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/grishamjindal/oppia/objects"
)

// numericRuleExpressions defines the NumericInput comparison semantics as
// CEL expressions over the answer and the canonicalized parameter values.
// Expressions are compiled once when the predicate table is built and the
// compiled programs are evaluated on every classification.
//
// IsInclusivelyBetween intentionally does not normalize the bound order:
// with a > b it matches nothing, and callers relying on that get the
// documented behavior.
var numericRuleExpressions = map[string]string{
	"Equals":                 `answer == inputs.x`,
	"IsDoubleOf":             `answer == 2.0 * inputs.x`,
	"IsLessThan":             `answer < inputs.x`,
	"IsGreaterThan":          `answer > inputs.x`,
	"IsLessThanOrEqualTo":    `answer <= inputs.x`,
	"IsGreaterThanOrEqualTo": `answer >= inputs.x`,
	"IsInclusivelyBetween":   `inputs.a <= answer && answer <= inputs.b`,
	"IsWithinTolerance":      `inputs.x - inputs.tol <= answer && answer <= inputs.x + inputs.tol`,
}

func numericPredicates() (map[string]Predicate, error) {
	env, err := cel.NewEnv(
		cel.Variable("answer", cel.DoubleType),
		cel.Variable("inputs", cel.MapType(cel.StringType, cel.DoubleType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	predicates := make(map[string]Predicate, len(numericRuleExpressions))
	for name, expression := range numericRuleExpressions {
		ast, issues := env.Compile(expression)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("rule %s: compile error: %w", name, issues.Err())
		}
		prog, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("rule %s: program creation error: %w", name, err)
		}
		predicates[name] = numericPredicate(prog)
	}
	return predicates, nil
}

// numericPredicate wraps a compiled program as a Predicate. Parameter
// values arrive canonicalized as float64; only the answer still needs a
// shape check.
func numericPredicate(prog cel.Program) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		a, err := realAnswer(answer)
		if err != nil {
			return false, err
		}
		vars := map[string]float64{}
		for name, v := range inputs {
			vars[name] = v.(float64)
		}
		out, _, err := prog.Eval(map[string]any{
			"answer": a,
			"inputs": vars,
		})
		if err != nil {
			return false, fmt.Errorf("evaluation error: %w", err)
		}
		matched, ok := out.Value().(bool)
		if !ok {
			return false, fmt.Errorf("expression did not produce a boolean")
		}
		return matched, nil
	}
}

func realAnswer(answer any) (float64, error) {
	v, err := objects.Parse(objects.Real, answer)
	if err != nil {
		return 0, fmt.Errorf("answer: %w", err)
	}
	return v.(float64), nil
}
