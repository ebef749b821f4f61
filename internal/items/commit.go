package items

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// escapedMinus is how some launchers deliver a literal minus sign in
// free-text input.
const escapedMinus = `\-`

// Edit is the host input for one commit. Which field is consulted depends
// on the item type: Bool and Enum read Selection, the others read FreeText.
type Edit struct {
	Selection *int
	FreeText  *string
}

// Selected builds an Edit for a selected row.
func Selected(row int) Edit {
	return Edit{Selection: &row}
}

// Typed builds an Edit for submitted free text.
func Typed(text string) Edit {
	return Edit{FreeText: &text}
}

// Commit applies an edit to it in place and reports whether the value
// changed. A rejected edit returns a validation error and leaves the item
// untouched.
//
// Rules per type:
//   - Bool:   selection 0 sets true, 1 sets false, anything else is ignored
//   - Int:    free text parsed as a base-10 integer, then clamped to bounds
//   - Float:  free text parsed as a real number, then clamped to bounds
//   - String: free text replaces the value verbatim
//   - Enum:   selection becomes the index; out-of-range indices are rejected
func Commit(it Item, e Edit) (bool, error) {
	switch v := it.(type) {
	case *Bool:
		if e.Selection == nil {
			return false, nil
		}
		old := v.Value
		switch *e.Selection {
		case 0:
			v.Value = true
		case 1:
			v.Value = false
		}
		return v.Value != old, nil

	case *Int:
		if e.FreeText == nil {
			return false, nil
		}
		n, err := ParseInt(*e.FreeText)
		if err != nil {
			return false, err
		}
		n = Clamp(n, v.Min, v.Max)
		changed := n != v.Value
		v.Value = n
		return changed, nil

	case *Float:
		if e.FreeText == nil {
			return false, nil
		}
		f, err := ParseFloat(*e.FreeText)
		if err != nil {
			return false, err
		}
		f = Clamp(f, v.Min, v.Max)
		changed := f != v.Value
		v.Value = f
		return changed, nil

	case *String:
		if e.FreeText == nil {
			return false, nil
		}
		changed := *e.FreeText != v.Value
		v.Value = *e.FreeText
		return changed, nil

	case *Enum:
		if e.Selection == nil {
			return false, nil
		}
		idx := *e.Selection
		if idx < 0 || idx >= len(v.Options) {
			return false, NewValidationError(
				fmt.Sprintf("selection %d is not one of the %d option(s)", idx, len(v.Options)), nil)
		}
		changed := idx != v.Value
		v.Value = idx
		return changed, nil

	default:
		panic(fmt.Sprintf("items: unknown item type %T", it))
	}
}

// ParseInt parses integer free text. Surrounding whitespace is ignored and
// an escaped minus is accepted.
func ParseInt(text string) (int64, error) {
	s := normalizeNumber(text)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("%q is not an integer", text), err)
	}
	return n, nil
}

// ParseFloat parses real-number free text. Surrounding whitespace is ignored
// and an escaped minus is accepted. NaN and infinities are rejected because
// they cannot be written back as JSON.
func ParseFloat(text string) (float64, error) {
	s := normalizeNumber(text)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("%q is not a number", text), err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewValidationError(fmt.Sprintf("%q is not a finite number", text), nil)
	}
	return f, nil
}

func normalizeNumber(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, escapedMinus, "-"))
}

// Clamp forces v into [min, max]. Each bound is applied independently and a
// nil bound imposes no constraint.
func Clamp[T int64 | float64](v T, min, max *T) T {
	if min != nil && v < *min {
		v = *min
	}
	if max != nil && v > *max {
		v = *max
	}
	return v
}
