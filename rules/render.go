package rules

import (
	"strings"

	"github.com/grishamjindal/oppia/objects"
)

// Render produces the human-readable description for a rule bound to
// concrete parameter values, substituting each {{name|Type}} placeholder
// with the type-formatted value. Every declared parameter must be present
// and valid; rendering never proceeds with unvalidated values. Identical
// (spec, inputs) always yields an identical string.
func Render(spec *Spec, inputs map[string]any) (string, error) {
	out := spec.Description
	for _, p := range spec.Params {
		v, ok := inputs[p.Name]
		if !ok {
			return "", &MissingParameterError{
				InteractionType: spec.InteractionType,
				Rule:            spec.Name,
				Param:           p.Name,
			}
		}
		formatted, err := objects.Format(p.Type, v)
		if err != nil {
			return "", &ParameterTypeError{
				InteractionType: spec.InteractionType,
				Rule:            spec.Name,
				Param:           p.Name,
				Expected:        p.Type,
				Cause:           err,
			}
		}
		out = strings.ReplaceAll(out, "{{"+p.Name+"|"+string(p.Type)+"}}", formatted)
	}
	return out, nil
}
