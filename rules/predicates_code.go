package rules

import (
	"fmt"
	"strings"

	"github.com/grishamjindal/oppia/objects"
)

// codePredicates implements the CodeRepl family. The answer is the full
// evaluation record of the learner's run; code comparisons ignore
// incidental whitespace via objects.NormalizeCode.
func codePredicates() map[string]Predicate {
	return map[string]Predicate{
		"CodeEquals": codePredicate(func(a objects.CodeEvaluation, inputs map[string]any) bool {
			return objects.NormalizeCode(a.Code) == objects.NormalizeCode(inputs["x"].(string))
		}),
		"CodeContains": codePredicate(func(a objects.CodeEvaluation, inputs map[string]any) bool {
			return strings.Contains(objects.NormalizeCode(a.Code), objects.NormalizeCode(inputs["x"].(string)))
		}),
		"CodeDoesNotContain": codePredicate(func(a objects.CodeEvaluation, inputs map[string]any) bool {
			return !strings.Contains(objects.NormalizeCode(a.Code), objects.NormalizeCode(inputs["x"].(string)))
		}),
		"OutputEquals": codePredicate(func(a objects.CodeEvaluation, inputs map[string]any) bool {
			return objects.NormalizeWhitespace(a.Output) == objects.NormalizeWhitespace(inputs["x"].(string))
		}),
		"ResultsInError": codePredicate(func(a objects.CodeEvaluation, inputs map[string]any) bool {
			return strings.TrimSpace(a.Error) != ""
		}),
		"ErrorContains": codePredicate(func(a objects.CodeEvaluation, inputs map[string]any) bool {
			return strings.Contains(a.Error, inputs["x"].(string))
		}),
	}
}

func codePredicate(match func(a objects.CodeEvaluation, inputs map[string]any) bool) Predicate {
	return func(answer any, inputs map[string]any) (bool, error) {
		a, err := codeAnswer(answer)
		if err != nil {
			return false, err
		}
		return match(a, inputs), nil
	}
}

func codeAnswer(answer any) (objects.CodeEvaluation, error) {
	switch v := answer.(type) {
	case objects.CodeEvaluation:
		return v, nil
	case map[string]any:
		a := objects.CodeEvaluation{}
		a.Code, _ = v["code"].(string)
		a.Output, _ = v["output"].(string)
		a.Evaluation, _ = v["evaluation"].(string)
		a.Error, _ = v["error"].(string)
		return a, nil
	default:
		return objects.CodeEvaluation{}, fmt.Errorf("answer: expected a code evaluation, got %T", answer)
	}
}
