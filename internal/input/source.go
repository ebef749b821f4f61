package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies where the item document comes from
type Kind int

const (
	KindStdin Kind = iota
	KindFile
	KindLiteral
)

// Source is the single input source selected on the command line
type Source struct {
	Kind    Kind
	Path    string
	Literal string
}

// SelectSource picks the input source from the command line flags. Exactly
// one of useStdin, file and literal must be set.
func SelectSource(useStdin bool, file, literal string) (Source, error) {
	var chosen []string
	var src Source

	if useStdin {
		chosen = append(chosen, "--stdin")
		src = Source{Kind: KindStdin}
	}
	if file != "" {
		chosen = append(chosen, "--file")
		src = Source{Kind: KindFile, Path: file}
	}
	if literal != "" {
		chosen = append(chosen, "--input")
		src = Source{Kind: KindLiteral, Literal: literal}
	}

	switch len(chosen) {
	case 0:
		return Source{}, NewUsageError("no input source given, use one of --stdin, --file or --input")
	case 1:
		return src, nil
	default:
		return Source{}, NewUsageError("only one input source may be given, got %s", strings.Join(chosen, " and "))
	}
}

// IsYAML reports whether the source is a file with a YAML extension
func (s Source) IsYAML() bool {
	if s.Kind != KindFile {
		return false
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// String describes the source for logs and error messages
func (s Source) String() string {
	switch s.Kind {
	case KindStdin:
		return "stdin"
	case KindFile:
		return fmt.Sprintf("file %s", s.Path)
	case KindLiteral:
		return "--input argument"
	default:
		return fmt.Sprintf("Source(%d)", int(s.Kind))
	}
}
