package input

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/cfgedit/internal/items"
)

const sampleJSON = `[{"name":"b","item":{"Bool":{"value":true}}},{"name":"n","item":{"Int":{"value":3,"min":0,"max":null}}}]`

func TestSelectSource(t *testing.T) {
	tests := []struct {
		name    string
		stdin   bool
		file    string
		literal string
		want    Source
		wantErr bool
	}{
		{name: "stdin", stdin: true, want: Source{Kind: KindStdin}},
		{name: "file", file: "items.json", want: Source{Kind: KindFile, Path: "items.json"}},
		{name: "literal", literal: "[]", want: Source{Kind: KindLiteral, Literal: "[]"}},
		{name: "none", wantErr: true},
		{name: "stdin and file", stdin: true, file: "x.json", wantErr: true},
		{name: "file and literal", file: "x.json", literal: "[]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectSource(tt.stdin, tt.file, tt.literal)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsUsageError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFramed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"stops at blank line", "[1,\n2]\n\nignored", "[1,\n2]\n\n"},
		{"reads to EOF", "[1,2]", "[1,2]"},
		{"single trailing newline", "[1,2]\n", "[1,2]\n"},
		{"leading blank line", "\n\n[1]", "\n\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFramed(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestLoad_Stdin(t *testing.T) {
	set, err := Load(Source{Kind: KindStdin}, Options{
		Stdin: strings.NewReader(sampleJSON + "\n\nnot json"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b: true", "n: 3"}, set.Lines())
}

func TestLoad_Literal(t *testing.T) {
	set, err := Load(Source{Kind: KindLiteral, Literal: sampleJSON}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLoad_SingleObject(t *testing.T) {
	doc := `{"z":{"String":{"value":"last"}},"a":{"Bool":{"value":false}}}`
	set, err := Load(Source{Kind: KindLiteral, Literal: doc}, Options{SingleObject: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"z: last", "a: false"}, set.Lines())
}

func TestLoad_YAMLFile(t *testing.T) {
	doc := `
- name: verbose
  item:
    Bool:
      value: true
- name: ratio
  item:
    Float:
      value: 0.25
      min: 0
      max: ~
- name: mode
  item:
    Enum:
      value: 1
      options: [fast, safe]
`
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	set, err := Load(Source{Kind: KindFile, Path: path}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"verbose: true", "ratio: 0.25", "mode: safe"}, set.Lines())

	f := set.At(1).Item.(*items.Float)
	require.NotNil(t, f.Min)
	assert.Equal(t, 0.0, *f.Min)
	assert.Nil(t, f.Max)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	set, err := Load(Source{Kind: KindFile, Path: path}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(Source{Kind: KindFile, Path: filepath.Join(t.TempDir(), "nope.json")}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, items.IsMalformedInput(err))
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "{{"},
		{"object instead of array", `{"name":"x"}`},
		{"enum index out of range", `[{"name":"e","item":{"Enum":{"value":2,"options":["a"]}}}]`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(Source{Kind: KindLiteral, Literal: tt.doc}, Options{})
			require.Error(t, err)
			assert.True(t, items.IsMalformedInput(err))
		})
	}
}

func TestYAMLToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"scalars", "a: 1\nb: 1.5\nc: true\nd: ~\ne: text", `{"a":1,"b":1.5,"c":true,"d":null,"e":"text"}`},
		{"order kept", "z: 1\na: 2", `{"z":1,"a":2}`},
		{"quoted number stays string", `a: "1"`, `{"a":"1"}`},
		{"hex int", "a: 0x10", `{"a":16}`},
		{"sequence", "- 1\n- two", `[1,"two"]`},
		{"alias", "base: &b [1]\ncopy: *b", `{"base":[1],"copy":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YAMLToJSON([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestYAMLToJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", "a: [1"},
		{"empty", ""},
		{"infinity", "a: .inf"},
		{"complex key", "? [1, 2]\n: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := YAMLToJSON([]byte(tt.in))
			require.Error(t, err)
			assert.True(t, items.IsMalformedInput(err))
		})
	}
}
