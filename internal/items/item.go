package items

import (
	"fmt"
	"strconv"
)

// Kind identifies an item variant. The values match the JSON tags.
type Kind string

const (
	KindBool   Kind = "Bool"
	KindInt    Kind = "Int"
	KindFloat  Kind = "Float"
	KindString Kind = "String"
	KindEnum   Kind = "Enum"
)

// Item is a typed configuration value. The set of implementations is closed:
// *Bool, *Int, *Float, *String and *Enum.
type Item interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Text returns the current value as display text.
	Text() string

	sealed()
}

// Bool is a true/false item.
type Bool struct {
	Value bool
}

// Int is an integer item with optional inclusive bounds.
type Int struct {
	Value int64
	Min   *int64
	Max   *int64
}

// Float is a real-number item with optional inclusive bounds.
type Float struct {
	Value float64
	Min   *float64
	Max   *float64
}

// String is a free-text item.
type String struct {
	Value string
}

// Enum selects one of a fixed list of options by index.
type Enum struct {
	Value   int
	Options []string
}

func (*Bool) Kind() Kind   { return KindBool }
func (*Int) Kind() Kind    { return KindInt }
func (*Float) Kind() Kind  { return KindFloat }
func (*String) Kind() Kind { return KindString }
func (*Enum) Kind() Kind   { return KindEnum }

func (b *Bool) Text() string { return strconv.FormatBool(b.Value) }

func (i *Int) Text() string { return FormatInt(i.Value) }

func (f *Float) Text() string { return FormatFloat(f.Value) }

func (s *String) Text() string { return s.Value }

// Text returns the selected option. The index invariant is enforced by Load
// and Commit, so an out-of-range index here is a programming error.
func (e *Enum) Text() string { return e.Options[e.Value] }

func (*Bool) sealed()   {}
func (*Int) sealed()    {}
func (*Float) sealed()  {}
func (*String) sealed() {}
func (*Enum) sealed()   {}

// FormatInt renders an integer in canonical decimal form.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders a float in the shortest form that round-trips,
// without an exponent ("1", "0.5", "-12.25").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Bound returns a pointer to v, for building Int and Float bounds.
func Bound[T int64 | float64](v T) *T {
	return &v
}

// Named pairs a display name with an item.
type Named struct {
	Name string
	Item Item
}

// String returns the browse-list line for the entry ("name: value").
func (n Named) String() string {
	return fmt.Sprintf("%s: %s", n.Name, n.Item.Text())
}

// Clone returns a deep copy of an item.
func Clone(it Item) Item {
	switch v := it.(type) {
	case *Bool:
		c := *v
		return &c
	case *Int:
		c := Int{Value: v.Value}
		if v.Min != nil {
			c.Min = Bound(*v.Min)
		}
		if v.Max != nil {
			c.Max = Bound(*v.Max)
		}
		return &c
	case *Float:
		c := Float{Value: v.Value}
		if v.Min != nil {
			c.Min = Bound(*v.Min)
		}
		if v.Max != nil {
			c.Max = Bound(*v.Max)
		}
		return &c
	case *String:
		c := *v
		return &c
	case *Enum:
		return &Enum{Value: v.Value, Options: append([]string(nil), v.Options...)}
	default:
		panic(fmt.Sprintf("items: unknown item type %T", it))
	}
}

// Check verifies the invariants of a loaded item: bounds ordered, value
// within bounds, enum options present and index in range.
func Check(it Item) error {
	switch v := it.(type) {
	case *Bool, *String:
		return nil
	case *Int:
		return checkBounds(v.Value, v.Min, v.Max, FormatInt)
	case *Float:
		return checkBounds(v.Value, v.Min, v.Max, FormatFloat)
	case *Enum:
		if len(v.Options) == 0 {
			return fmt.Errorf("enum has no options")
		}
		if v.Value < 0 || v.Value >= len(v.Options) {
			return fmt.Errorf("enum value %d out of range for %d option(s)", v.Value, len(v.Options))
		}
		return nil
	default:
		panic(fmt.Sprintf("items: unknown item type %T", it))
	}
}

func checkBounds[T int64 | float64](value T, min, max *T, format func(T) string) error {
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("min %s is greater than max %s", format(*min), format(*max))
	}
	if min != nil && value < *min {
		return fmt.Errorf("value %s is below min %s", format(value), format(*min))
	}
	if max != nil && value > *max {
		return fmt.Errorf("value %s is above max %s", format(value), format(*max))
	}
	return nil
}
