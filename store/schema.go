package store

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var collectionSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()

	entries, err := fs.ReadDir(schemasFS, "schemas")
	if err != nil {
		panic(fmt.Sprintf("reading embedded schemas: %v", err))
	}
	for _, entry := range entries {
		file, err := schemasFS.Open("schemas/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("opening schema %s: %v", entry.Name(), err))
		}
		if err := compiler.AddResource(entry.Name(), file); err != nil {
			panic(fmt.Sprintf("adding schema resource %s: %v", entry.Name(), err))
		}
		file.Close()
	}
	for _, entry := range entries {
		schema, err := compiler.Compile(entry.Name())
		if err != nil {
			panic(fmt.Sprintf("compiling schema %s: %v", entry.Name(), err))
		}
		collectionSchemas[strings.TrimSuffix(entry.Name(), ".json")] = schema
	}
}

// validateStored reports whether raw is a JSON document conforming to the
// named collection schema. Anything that fails here is treated as corrupt
// durable data and discarded in favor of the seed.
func validateStored(name string, raw []byte) error {
	schema, ok := collectionSchemas[name]
	if !ok {
		return fmt.Errorf("no schema registered for %q", name)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse stored %s: %w", name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validate stored %s: %w", name, err)
	}
	return nil
}
