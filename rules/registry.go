package rules

import (
	_ "embed"
	"fmt"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/grishamjindal/oppia/objects"
)

//go:embed definitions.yaml
var definitionsYAML []byte

// Param is one declared rule parameter: its name and the type its values
// must validate against.
type Param struct {
	Name string
	Type objects.Type
}

// Spec is a rule specification: a named rule owned by one interaction
// type, with an ordered parameter schema and a description template. The
// schema is derived once at load time from the template's {{name|Type}}
// placeholders; runtime code never re-parses the template for types.
type Spec struct {
	InteractionType string
	Name            string
	Description     string
	Params          []Param
}

// Registry holds every rule specification, keyed by interaction type and
// rule name. It is built once from the declarative source and is read-only
// afterwards, so it is safe to share across goroutines without locking.
type Registry struct {
	specs        map[string]map[string]*Spec
	interactions []string            // declaration order
	ruleOrder    map[string][]string // declaration order per interaction
}

// placeholderPattern matches {{name|Type}}. Parameter names follow the
// usual identifier shape; type names are bare words from the vocabulary.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\|([a-zA-Z][a-zA-Z0-9]*)\}\}`)

// LoadRegistry builds a Registry from a declarative YAML document keyed by
// interaction type, each value mapping rule names to {description}.
// Declaration order is preserved for ListRules and Interactions.
func LoadRegistry(source []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule definitions: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("rule definitions document is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rule definitions must be a mapping of interaction types")
	}

	r := &Registry{
		specs:     make(map[string]map[string]*Spec),
		ruleOrder: make(map[string][]string),
	}
	for i := 0; i < len(root.Content); i += 2 {
		interaction := root.Content[i].Value
		rulesNode := root.Content[i+1]
		if rulesNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("interaction type %q: expected a mapping of rules", interaction)
		}
		if _, dup := r.specs[interaction]; dup {
			return nil, fmt.Errorf("interaction type %q declared twice", interaction)
		}
		r.specs[interaction] = make(map[string]*Spec)
		r.interactions = append(r.interactions, interaction)

		for j := 0; j < len(rulesNode.Content); j += 2 {
			ruleName := rulesNode.Content[j].Value
			var body struct {
				Description string `yaml:"description"`
			}
			if err := rulesNode.Content[j+1].Decode(&body); err != nil {
				return nil, fmt.Errorf("rule %s.%s: %w", interaction, ruleName, err)
			}
			spec, err := newSpec(interaction, ruleName, body.Description)
			if err != nil {
				return nil, err
			}
			if _, dup := r.specs[interaction][ruleName]; dup {
				return nil, fmt.Errorf("rule %s.%s declared twice", interaction, ruleName)
			}
			r.specs[interaction][ruleName] = spec
			r.ruleOrder[interaction] = append(r.ruleOrder[interaction], ruleName)
		}
	}
	return r, nil
}

// newSpec derives the parameter schema from the template placeholders.
func newSpec(interaction, ruleName, description string) (*Spec, error) {
	spec := &Spec{
		InteractionType: interaction,
		Name:            ruleName,
		Description:     description,
	}
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(description, -1) {
		name, typeName := m[1], objects.Type(m[2])
		if seen[name] {
			return nil, fmt.Errorf("rule %s.%s: parameter %q appears more than once in template", interaction, ruleName, name)
		}
		if !objects.Known(typeName) {
			return nil, fmt.Errorf("rule %s.%s: parameter %q: %w", interaction, ruleName, name,
				&objects.UnknownTypeError{Name: typeName})
		}
		seen[name] = true
		spec.Params = append(spec.Params, Param{Name: name, Type: typeName})
	}
	return spec, nil
}

// GetSpec returns the specification for the named rule, scoped by
// interaction type.
func (r *Registry) GetSpec(interactionType, ruleName string) (*Spec, error) {
	byRule, ok := r.specs[interactionType]
	if !ok {
		return nil, &UnknownInteractionTypeError{InteractionType: interactionType}
	}
	spec, ok := byRule[ruleName]
	if !ok {
		return nil, &UnknownRuleError{InteractionType: interactionType, Rule: ruleName}
	}
	return spec, nil
}

// ListRules returns the interaction type's rule names in declaration
// order. The returned slice is a copy.
func (r *Registry) ListRules(interactionType string) ([]string, error) {
	order, ok := r.ruleOrder[interactionType]
	if !ok {
		return nil, &UnknownInteractionTypeError{InteractionType: interactionType}
	}
	out := make([]string, len(order))
	copy(out, order)
	return out, nil
}

// Interactions returns every interaction type name in declaration order.
// The returned slice is a copy.
func (r *Registry) Interactions() []string {
	out := make([]string, len(r.interactions))
	copy(out, r.interactions)
	return out
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
	defaultRegistryErr  error
)

// DefaultRegistry returns the registry built from the embedded canonical
// definitions. The build happens once; the result is shared.
func DefaultRegistry() (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		defaultRegistry, defaultRegistryErr = LoadRegistry(definitionsYAML)
	})
	return defaultRegistry, defaultRegistryErr
}
