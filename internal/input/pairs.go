package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/dylanjustice/extensions/enumerable"
)

// LoadPairs reads an ordered list of key-value pairs from a YAML (.yaml,
// .yml) or CUE (.cue) file. The top level must be a mapping whose keys and
// values are scalars (YAML) or strings (CUE). Null values load as empty
// strings.
func LoadPairs(path string) ([]enumerable.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "pairs file", Err: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Message: "reading pairs file", Err: err}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return parseYAMLPairs(path, data)
	case ".cue":
		return parseCUEPairs(path, data)
	default:
		return nil, &LoadError{
			Path:    path,
			Message: fmt.Sprintf("extension %q (want .yaml, .yml or .cue)", ext),
			Err:     ErrUnsupportedFormat,
		}
	}
}

func parseYAMLPairs(path string, data []byte) ([]enumerable.Pair, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "parsing YAML", Err: err}
	}

	// An empty document decodes to the zero node.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []enumerable.Pair{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Path: path, Line: root.Line, Message: "top level must be a mapping", Err: ErrInvalidPairs}
	}

	// Mapping content alternates key, value.
	entries := lo.Chunk(root.Content, 2)
	pairs := make([]enumerable.Pair, 0, len(entries))
	for _, kv := range entries {
		key, err := yamlScalar(path, kv[0])
		if err != nil {
			return nil, err
		}
		value, err := yamlScalar(path, kv[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, enumerable.Pair{Key: key, Value: value})
	}
	return pairs, nil
}

func yamlScalar(path string, n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", &LoadError{Path: path, Line: n.Line, Message: "keys and values must be scalars", Err: ErrInvalidPairs}
	}
	if n.Tag == "!!null" {
		return "", nil
	}
	return n.Value, nil
}

func parseCUEPairs(path string, data []byte) ([]enumerable.Pair, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &LoadError{Path: path, Message: "compiling CUE", Err: err}
	}

	if value.IncompleteKind() != cue.StructKind {
		return nil, &LoadError{Path: path, Message: "top level must be a struct", Err: ErrInvalidPairs}
	}

	fields, err := value.Fields()
	if err != nil {
		return nil, &LoadError{Path: path, Message: "iterating fields", Err: err}
	}

	pairs := []enumerable.Pair{}
	for fields.Next() {
		sel := fields.Selector()
		label := sel.String()
		if sel.IsString() {
			label = sel.Unquoted()
		}
		field := fields.Value()

		switch field.Kind() {
		case cue.NullKind:
			pairs = append(pairs, enumerable.Pair{Key: label})
		case cue.StringKind:
			s, err := field.String()
			if err != nil {
				return nil, &LoadError{Path: path, Line: field.Pos().Line(), Message: "field " + label, Err: err}
			}
			pairs = append(pairs, enumerable.Pair{Key: label, Value: s})
		default:
			return nil, &LoadError{
				Path:    path,
				Line:    field.Pos().Line(),
				Message: fmt.Sprintf("field %s must be a concrete string or null", label),
				Err:     ErrInvalidPairs,
			}
		}
	}
	return pairs, nil
}
