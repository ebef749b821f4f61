package items

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// wireEntry is one element of the array document shape
type wireEntry struct {
	Name *string         `json:"name"`
	Item json.RawMessage `json:"item"`
}

// Variant bodies. Bounds are emitted as null when absent.
type (
	boolBody struct {
		Value bool `json:"value"`
	}
	intBody struct {
		Value int64  `json:"value"`
		Min   *int64 `json:"min"`
		Max   *int64 `json:"max"`
	}
	floatBody struct {
		Value float64  `json:"value"`
		Min   *float64 `json:"min"`
		Max   *float64 `json:"max"`
	}
	stringBody struct {
		Value string `json:"value"`
	}
	enumBody struct {
		Value   int      `json:"value"`
		Options []string `json:"options"`
	}
)

// Load parses the array document shape into a Set.
// Any deviation from the expected shape, or an item that violates its
// invariants, is reported as a malformed input error. Numeric values are
// clamped into their bounds.
func Load(data []byte) (*Set, error) {
	if isNull(data) {
		return nil, NewMalformedInputError("input is null, expected an array of named items", nil)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewMalformedInputError("input is not a JSON array of named items", err)
	}

	entries := make([]Named, 0, len(raw))
	for i, r := range raw {
		var w wireEntry
		if err := json.Unmarshal(r, &w); err != nil {
			return nil, newEntryError(i, "", "entry is not an object", err)
		}
		if w.Name == nil {
			return nil, newEntryError(i, "", `entry is missing "name"`, nil)
		}
		if len(w.Item) == 0 {
			return nil, newEntryError(i, *w.Name, `entry is missing "item"`, nil)
		}

		it, err := decodeItem(w.Item)
		if err != nil {
			return nil, newEntryError(i, *w.Name, "invalid item", err)
		}
		entries = append(entries, Named{Name: *w.Name, Item: it})
	}

	return &Set{entries: entries}, nil
}

// LoadSingleObject parses the single-object document shape, where each key
// is an item name. Entries keep the key order of the document.
func LoadSingleObject(data []byte) (*Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, NewMalformedInputError("input is not a JSON object of named items", err)
	}

	var entries []Named
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, NewMalformedInputError("failed to read item name", err)
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, newEntryError(len(entries), name, "failed to read item", err)
		}

		it, err := decodeItem(raw)
		if err != nil {
			return nil, newEntryError(len(entries), name, "invalid item", err)
		}
		entries = append(entries, Named{Name: name, Item: it})
	}

	if _, err := dec.Token(); err != nil {
		return nil, NewMalformedInputError("unterminated object", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, NewMalformedInputError("unexpected data after object", err)
	}

	return &Set{entries: entries}, nil
}

// decodeItem decodes one externally tagged item and checks its invariants
func decodeItem(data json.RawMessage) (Item, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("item must be an object tagged with its type: %w", err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("item must have exactly one type tag, got %d", len(tagged))
	}

	var (
		kind Kind
		body json.RawMessage
	)
	for tag, b := range tagged {
		kind, body = Kind(tag), b
	}
	if isNull(body) {
		return nil, fmt.Errorf("%s item body must be an object", kind)
	}

	it, err := decodeVariant(kind, body)
	if err != nil {
		return nil, err
	}
	if err := Check(it); err != nil {
		return nil, err
	}
	return it, nil
}

func decodeVariant(kind Kind, body json.RawMessage) (Item, error) {
	switch kind {
	case KindBool:
		var w boolBody
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, fmt.Errorf("invalid Bool item: %w", err)
		}
		return &Bool{Value: w.Value}, nil

	case KindInt:
		var w intBody
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, fmt.Errorf("invalid Int item: %w", err)
		}
		return &Int{Value: Clamp(w.Value, w.Min, w.Max), Min: w.Min, Max: w.Max}, nil

	case KindFloat:
		var w floatBody
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, fmt.Errorf("invalid Float item: %w", err)
		}
		return &Float{Value: Clamp(w.Value, w.Min, w.Max), Min: w.Min, Max: w.Max}, nil

	case KindString:
		var w stringBody
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, fmt.Errorf("invalid String item: %w", err)
		}
		return &String{Value: w.Value}, nil

	case KindEnum:
		var w enumBody
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, fmt.Errorf("invalid Enum item: %w", err)
		}
		if w.Options == nil {
			return nil, fmt.Errorf(`Enum item requires "options"`)
		}
		return &Enum{Value: w.Value, Options: w.Options}, nil

	default:
		return nil, fmt.Errorf("unknown item type %q (expected Bool, Int, Float, String or Enum)", kind)
	}
}

// MarshalItem encodes a single item in its tagged form, e.g.
// {"Int":{"value":5,"min":0,"max":null}}.
func MarshalItem(it Item) ([]byte, error) {
	var body any
	switch v := it.(type) {
	case *Bool:
		body = boolBody{Value: v.Value}
	case *Int:
		body = intBody{Value: v.Value, Min: v.Min, Max: v.Max}
	case *Float:
		body = floatBody{Value: v.Value, Min: v.Min, Max: v.Max}
	case *String:
		body = stringBody{Value: v.Value}
	case *Enum:
		body = enumBody{Value: v.Value, Options: v.Options}
	default:
		panic(fmt.Sprintf("items: unknown item type %T", it))
	}

	data, err := json.Marshal(map[Kind]any{it.Kind(): body})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s item: %w", it.Kind(), err)
	}
	return data, nil
}

// MarshalJSON encodes the set in the array document shape.
func (s *Set) MarshalJSON() ([]byte, error) {
	type outEntry struct {
		Name string          `json:"name"`
		Item json.RawMessage `json:"item"`
	}

	out := make([]outEntry, len(s.entries))
	for i, e := range s.entries {
		data, err := MarshalItem(e.Item)
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, e.Name, err)
		}
		out[i] = outEntry{Name: e.Name, Item: data}
	}
	return json.Marshal(out)
}

// SingleObject encodes the set as one JSON object keyed by item name, in
// set order. When names repeat, the key keeps its first position and the
// last entry's value.
func (s *Set) SingleObject() ([]byte, error) {
	var order []string
	values := make(map[string]json.RawMessage, len(s.entries))

	for i, e := range s.entries {
		data, err := MarshalItem(e.Item)
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, e.Name, err)
		}
		if _, seen := values[e.Name]; !seen {
			order = append(order, e.Name)
		}
		values[e.Name] = data
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
