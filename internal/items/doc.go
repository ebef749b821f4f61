// Package items defines the typed configuration values edited by cfgedit.
//
// An Item is one of five variants:
//
//   - Bool:   true/false
//   - Int:    int64 with optional inclusive Min/Max bounds
//   - Float:  float64 with optional inclusive Min/Max bounds
//   - String: free text
//   - Enum:   an index into a fixed, non-empty list of options
//
// Items are paired with a display name (Named) and collected in a Set that
// preserves document order. Names are not required to be unique; all access
// is positional.
//
// # Wire Format
//
// The JSON shape is an array of named, externally tagged items:
//
//	[
//	  {"name": "verbose", "item": {"Bool": {"value": false}}},
//	  {"name": "retries", "item": {"Int": {"value": 3, "min": 0, "max": null}}},
//	  {"name": "mode", "item": {"Enum": {"value": 0, "options": ["fast", "safe"]}}}
//	]
//
// The "value" key may be omitted and defaults to the variant's zero value.
// "min" and "max" may be omitted or null. "options" is required for Enum.
//
// An alternate single-object shape keys the tagged items by name:
//
//	{"verbose": {"Bool": {"value": false}}, "mode": {"Enum": {...}}}
//
// # Editing
//
// Commit applies a host edit (a selected row or submitted free text) to an
// item. Numeric input accepts an escaped minus ("\-") and is clamped into
// the item's bounds. Unparseable numbers and out-of-range enum selections
// are rejected with a validation error and leave the item unchanged.
package items
