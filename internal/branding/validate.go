package branding

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/branding.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("branding.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("branding.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// parse validates raw YAML against the branding schema and decodes it.
// Fields absent from data keep their hard default values.
func parse(data []byte) (brand, error) {
	b := hardDefaults()
	if len(bytes.TrimSpace(data)) == 0 {
		return b, errors.New("branding document is empty")
	}

	schema, err := getSchema()
	if err != nil {
		return b, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return b, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return b, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return b, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return b, fmt.Errorf("invalid branding: %s", strings.Join(issues(ve), "; "))
		}
		return b, fmt.Errorf("validating branding: %w", err)
	}

	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("decoding branding: %w", err)
	}
	return b, nil
}

// issues flattens the leaves of a validation error tree into
// "<location>: <message>" strings.
func issues(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return []string{"/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg}
	}
	var out []string
	for _, cause := range ve.Causes {
		out = append(out, issues(cause)...)
	}
	return out
}
