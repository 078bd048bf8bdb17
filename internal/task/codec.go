package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed snapshot.schema.json
var snapshotSchema string

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("snapshot.schema.json", strings.NewReader(snapshotSchema)); err != nil {
		panic(err)
	}
	schema, err := compiler.Compile("snapshot.schema.json")
	if err != nil {
		panic(err)
	}
	return schema
}

// Encode serializes the list as pretty-printed JSON with 2-space
// indentation and a trailing newline. A nil task slice encodes as an empty
// array so that every encoding round-trips through Decode.
func (l *List) Encode() ([]byte, error) {
	out := List{Tasks: l.Tasks, Name: l.Name}
	if out.Tasks == nil {
		out.Tasks = []string{}
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal task snapshot: %w", err)
	}

	return append(data, '\n'), nil
}

// Decode reconstructs a list from a snapshot produced by Encode. The
// snapshot is checked against the embedded JSON Schema before it is
// accepted; malformed or schema-invalid input yields a *FormatError.
func Decode(data []byte) (*List, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("parse: %w", err)}
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return nil, &FormatError{Err: err}
	}

	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("parse: %w", err)}
	}

	return &l, nil
}
