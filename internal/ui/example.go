package ui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cfgedit/internal/items"
)

// ExampleSet returns the item set shown by --example
func ExampleSet() *items.Set {
	return items.NewSet(
		items.Named{Name: "bool item", Item: &items.Bool{Value: false}},
		items.Named{Name: "int item", Item: &items.Int{Value: 0, Min: items.Bound[int64](0)}},
		items.Named{Name: "float item", Item: &items.Float{Value: 0, Max: items.Bound(69.0)}},
		items.Named{Name: "string item", Item: &items.String{Value: "hello"}},
		items.Named{Name: "enum items", Item: &items.Enum{Value: 0, Options: []string{"opt1", "opt2", "other_opt"}}},
	)
}

// RenderExample renders the sample input in both document shapes
func RenderExample(width int) (string, error) {
	set := ExampleSet()

	array, err := set.MarshalJSON()
	if err != nil {
		return "", err
	}
	single, err := set.SingleObject()
	if err != nil {
		return "", err
	}

	inputBody := lipgloss.JoinVertical(lipgloss.Left,
		DocumentStyle.Render(indent(array)),
		"",
		NoteStyle.Render("Output is the same with changed value keys."),
		NoteStyle.Render("Keys with a value of null can be omitted."),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderBox("Example input", "cfgedit --input '<json>'", inputBody, PrimaryColor, width),
		RenderBox("Single object shape", "cfgedit --out-singleobj", DocumentStyle.Render(indent(single)), SuccessColor, width),
	), nil
}

func indent(doc []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return string(doc)
	}
	return strings.TrimRight(buf.String(), "\n")
}
