// Package output writes a finished item set to the result stream.
package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/cfgedit/internal/items"
)

// Format is the encoding of the written document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name to a Format. The empty string means JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", name)
	}
}

// Options selects the document shape and encoding
type Options struct {
	Format       Format
	SingleObject bool
}

// Write encodes set to w followed by a newline
func Write(w io.Writer, set *items.Set, opts Options) error {
	data, err := Encode(set, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Encode returns the encoded document including the trailing newline
func Encode(set *items.Set, opts Options) ([]byte, error) {
	var doc []byte
	var err error
	if opts.SingleObject {
		doc, err = set.SingleObject()
	} else {
		doc, err = set.MarshalJSON()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	switch opts.Format {
	case FormatJSON, "":
		return append(doc, '\n'), nil
	case FormatYAML:
		return toYAML(doc)
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// toYAML re-encodes a JSON document as block-style YAML. JSON is valid
// YAML, so the document is parsed into a node tree to keep key order and
// only the presentation style is changed.
func toYAML(doc []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return nil, fmt.Errorf("failed to convert output to YAML: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to convert output to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle clears flow and quoting styles. Strings that would read back
// as another type stay quoted because the encoder checks their tag.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
