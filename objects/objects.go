// Package objects defines the parameter-type vocabulary used by interaction
// rules: for every type it provides validation of caller-supplied values,
// canonicalization into a fixed Go representation, and deterministic
// display formatting. The vocabulary is closed at build time; new types are
// added by extending the definition table, never inferred at runtime.
package objects

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Type identifies a parameter type in the vocabulary.
type Type string

const (
	Real                    Type = "Real"
	Int                     Type = "Int"
	NonnegativeInt          Type = "NonnegativeInt"
	NormalizedString        Type = "NormalizedString"
	UnicodeString           Type = "UnicodeString"
	HtmlString              Type = "HtmlString"
	CodeString              Type = "CodeString"
	FractionType            Type = "Fraction"
	GraphType               Type = "Graph"
	MusicPhraseType         Type = "MusicPhrase"
	SetOfUnicodeString      Type = "SetOfUnicodeString"
	SetOfHtmlString         Type = "SetOfHtmlString"
	ListOfSetsOfHtmlStrings Type = "ListOfSetsOfHtmlStrings"
	CoordTwoDim             Type = "CoordTwoDim"
)

// UnknownTypeError is returned when a type name is not in the vocabulary.
type UnknownTypeError struct {
	Name Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown parameter type %q", string(e.Name))
}

// definition holds the behavior registered for one type.
type definition struct {
	// parse converts a caller-supplied value (a typed Go value or a
	// generic decoded YAML/JSON value) into the canonical representation,
	// validating it along the way.
	parse func(v any) (any, error)

	// format renders a canonical value for human display. Must be
	// deterministic for identical input.
	format func(v any) string
}

// definitions is the closed type vocabulary. Built once at package
// initialization and read-only afterwards.
var definitions = map[Type]definition{
	Real: {
		parse:  parseReal,
		format: func(v any) string { return formatReal(v.(float64)) },
	},
	Int: {
		parse:  parseInt,
		format: func(v any) string { return strconv.Itoa(v.(int)) },
	},
	NonnegativeInt: {
		parse:  parseNonnegativeInt,
		format: func(v any) string { return strconv.Itoa(v.(int)) },
	},
	NormalizedString: {
		parse:  parseNormalizedString,
		format: func(v any) string { return v.(string) },
	},
	UnicodeString: {
		parse:  parseUnicodeString,
		format: func(v any) string { return v.(string) },
	},
	HtmlString: {
		parse:  parseUnicodeString,
		format: func(v any) string { return v.(string) },
	},
	CodeString: {
		parse:  parseCodeString,
		format: func(v any) string { return v.(string) },
	},
	FractionType: {
		parse:  parseFraction,
		format: func(v any) string { return v.(Fraction).String() },
	},
	GraphType: {
		parse:  parseGraph,
		format: func(v any) string { return v.(Graph).String() },
	},
	MusicPhraseType: {
		parse:  parseMusicPhrase,
		format: func(v any) string { return formatMusicPhrase(v.(MusicPhrase)) },
	},
	SetOfUnicodeString: {
		parse:  parseStringSet,
		format: func(v any) string { return formatStringSet(v.([]string)) },
	},
	SetOfHtmlString: {
		parse:  parseStringSet,
		format: func(v any) string { return formatStringSet(v.([]string)) },
	},
	ListOfSetsOfHtmlStrings: {
		parse:  parseListOfStringSets,
		format: func(v any) string { return formatListOfStringSets(v.([][]string)) },
	},
	CoordTwoDim: {
		parse:  parseCoord,
		format: func(v any) string { return v.(Coord).String() },
	},
}

// Known reports whether name is part of the type vocabulary.
func Known(name Type) bool {
	_, ok := definitions[name]
	return ok
}

// Types returns the vocabulary in lexicographic order.
func Types() []Type {
	names := make([]Type, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Parse validates v against the named type and returns its canonical
// representation (float64 for Real, int for the integer types, string for
// the text types, the package's struct types for structured values).
// Generic decoded YAML/JSON shapes are accepted alongside the canonical
// Go types.
func Parse(t Type, v any) (any, error) {
	def, ok := definitions[t]
	if !ok {
		return nil, &UnknownTypeError{Name: t}
	}
	return def.parse(v)
}

// Validate checks v against the named type without returning the
// canonical value.
func Validate(t Type, v any) error {
	_, err := Parse(t, v)
	return err
}

// Format renders v, which must validate against the named type, for human
// display. The rendering is deterministic for identical input.
func Format(t Type, v any) (string, error) {
	def, ok := definitions[t]
	if !ok {
		return "", &UnknownTypeError{Name: t}
	}
	canonical, err := def.parse(v)
	if err != nil {
		return "", err
	}
	return def.format(canonical), nil
}

func parseReal(v any) (any, error) {
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("expected a real number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("expected a finite real number")
	}
	return f, nil
}

func parseInt(v any) (any, error) {
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("expected an integer, got %T", v)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil, fmt.Errorf("expected an integer, got %v", v)
	}
	return int(f), nil
}

func parseNonnegativeInt(v any) (any, error) {
	n, err := parseInt(v)
	if err != nil {
		return nil, fmt.Errorf("expected a non-negative integer, got %T", v)
	}
	if n.(int) < 0 {
		return nil, fmt.Errorf("expected a non-negative integer, got %d", n)
	}
	return n, nil
}

func parseUnicodeString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, got %T", v)
	}
	return NormalizeUnicode(s), nil
}

func parseNormalizedString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, got %T", v)
	}
	normalized := NormalizeWhitespace(NormalizeUnicode(s))
	if normalized == "" {
		return nil, fmt.Errorf("expected a non-empty string")
	}
	return normalized, nil
}

func parseCodeString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func parseStringSet(v any) (any, error) {
	elems, err := toStringSlice(v)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(elems))
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		e = NormalizeUnicode(e)
		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("set elements must be unique, %q repeats", e)
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}

func parseListOfStringSets(v any) (any, error) {
	var raw []any
	switch val := v.(type) {
	case [][]string:
		raw = make([]any, len(val))
		for i, s := range val {
			raw[i] = s
		}
	case []any:
		raw = val
	default:
		return nil, fmt.Errorf("expected a list of sets of strings, got %T", v)
	}
	out := make([][]string, 0, len(raw))
	for i, item := range raw {
		set, err := parseStringSet(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, set.([]string))
	}
	return out, nil
}

// toFloat accepts the numeric kinds produced by Go callers and by generic
// YAML/JSON decoding.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toStringSlice(v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected a string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}

// formatReal renders a float without a trailing ".0" for whole values, so
// descriptions read naturally ("is within 2 of 10").
func formatReal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatStringSet(elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}

func formatListOfStringSets(sets [][]string) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = formatStringSet(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
