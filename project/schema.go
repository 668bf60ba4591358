package project

import _ "embed"
import "strings"

import "github.com/pkg/errors"
import "github.com/xeipuuv/gojsonschema"

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Validate validates a JSON project document against the project schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(err, "cannot validate project")
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return errors.Errorf("project does not match schema: %s", strings.Join(problems, "; "))
	}
	return nil
}
