package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Fraction is a signed mixed number: sign, whole part, and a fractional
// part numerator/denominator. Whole part and numerator are non-negative;
// the denominator is strictly positive.
type Fraction struct {
	IsNegative  bool
	WholeNumber int
	Numerator   int
	Denominator int
}

// Value returns the rational value as an exact pair p/q with q > 0.
func (f Fraction) Value() (p, q int64) {
	p = int64(f.WholeNumber)*int64(f.Denominator) + int64(f.Numerator)
	if f.IsNegative {
		p = -p
	}
	return p, int64(f.Denominator)
}

// IsEquivalentTo reports whether f and other denote the same rational
// value, regardless of representation.
func (f Fraction) IsEquivalentTo(other Fraction) bool {
	p1, q1 := f.Value()
	p2, q2 := other.Value()
	return p1*q2 == p2*q1
}

// LessThan compares by rational value.
func (f Fraction) LessThan(other Fraction) bool {
	p1, q1 := f.Value()
	p2, q2 := other.Value()
	return p1*q2 < p2*q1
}

// IsInSimplestForm reports whether the fractional part cannot be reduced.
func (f Fraction) IsInSimplestForm() bool {
	return gcd(f.Numerator, f.Denominator) == 1
}

// SignedNumerator returns the numerator with the fraction's sign applied.
func (f Fraction) SignedNumerator() int {
	if f.IsNegative {
		return -f.Numerator
	}
	return f.Numerator
}

// SignedWholeNumber returns the whole part with the fraction's sign applied.
func (f Fraction) SignedWholeNumber() int {
	if f.IsNegative {
		return -f.WholeNumber
	}
	return f.WholeNumber
}

// String renders the fraction the way an author would write it:
// "3", "1/2", "-2 3/4".
func (f Fraction) String() string {
	var b strings.Builder
	if f.IsNegative {
		b.WriteByte('-')
	}
	if f.Numerator == 0 {
		b.WriteString(strconv.Itoa(f.WholeNumber))
		return b.String()
	}
	if f.WholeNumber != 0 {
		b.WriteString(strconv.Itoa(f.WholeNumber))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.Itoa(f.Numerator))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(f.Denominator))
	return b.String()
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func parseFraction(v any) (any, error) {
	switch val := v.(type) {
	case Fraction:
		return val, checkFraction(val)
	case map[string]any:
		f := Fraction{}
		neg, ok := val["isNegative"].(bool)
		if !ok {
			return nil, fmt.Errorf("fraction: missing or non-boolean isNegative")
		}
		f.IsNegative = neg
		for key, dst := range map[string]*int{
			"wholeNumber": &f.WholeNumber,
			"numerator":   &f.Numerator,
			"denominator": &f.Denominator,
		} {
			raw, present := val[key]
			if !present {
				return nil, fmt.Errorf("fraction: missing %s", key)
			}
			n, err := parseInt(raw)
			if err != nil {
				return nil, fmt.Errorf("fraction: %s: %w", key, err)
			}
			*dst = n.(int)
		}
		return f, checkFraction(f)
	default:
		return nil, fmt.Errorf("expected a fraction, got %T", v)
	}
}

func checkFraction(f Fraction) error {
	if f.WholeNumber < 0 {
		return fmt.Errorf("fraction: whole number must be non-negative, got %d", f.WholeNumber)
	}
	if f.Numerator < 0 {
		return fmt.Errorf("fraction: numerator must be non-negative, got %d", f.Numerator)
	}
	if f.Denominator <= 0 {
		return fmt.Errorf("fraction: denominator must be positive, got %d", f.Denominator)
	}
	return nil
}
