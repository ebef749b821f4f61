package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/muurk/cfgedit/internal/items"
	"github.com/muurk/cfgedit/internal/logging"
)

// Options controls how a source is read and decoded
type Options struct {
	// Stdin is read for KindStdin sources. Defaults to os.Stdin.
	Stdin io.Reader
	// Hint receives a short usage note when Stdin is an interactive
	// terminal. Nil disables it.
	Hint io.Writer
	// SingleObject accepts the {"name": item} shape instead of the array.
	SingleObject bool
}

// Load reads the selected source and decodes it into an item set
func Load(src Source, opts Options) (*items.Set, error) {
	data, err := Read(src, opts)
	if err != nil {
		return nil, err
	}

	if src.IsYAML() {
		data, err = YAMLToJSON(data)
		if err != nil {
			return nil, err
		}
	}

	var set *items.Set
	if opts.SingleObject {
		set, err = items.LoadSingleObject(data)
	} else {
		set, err = items.Load(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	logging.LogInput(src.String(), len(data), set.Len())
	return set, nil
}

// Read returns the raw document bytes of a source
func Read(src Source, opts Options) ([]byte, error) {
	switch src.Kind {
	case KindLiteral:
		return []byte(src.Literal), nil

	case KindFile:
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil

	case KindStdin:
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		if opts.Hint != nil && isTerminal(stdin) {
			fmt.Fprintln(opts.Hint, "Reading items from stdin, finish with an empty line.")
		}
		data, err := ReadFramed(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unknown input source %v", src)
	}
}

// ReadFramed reads r until two consecutive newlines or EOF. The returned
// bytes include the terminating newlines; anything after them is ignored.
func ReadFramed(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	var buf bytes.Buffer

	for {
		line, err := br.ReadBytes('\n')
		buf.Write(line)
		if bytes.HasSuffix(buf.Bytes(), []byte("\n\n")) {
			return buf.Bytes(), nil
		}
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
