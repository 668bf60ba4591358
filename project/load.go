package project

import "encoding/json"
import "os"
import "path/filepath"
import "strings"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

// Format is the encoding of a project file.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFromPath guesses the format of a project file from its extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Load reads, validates and decodes the project file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read project")
	}
	p, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid project %s", path)
	}
	return p, nil
}

// Parse validates and decodes a project document.
func Parse(data []byte, format Format) (*Project, error) {
	jsonData, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := Validate(jsonData); err != nil {
		return nil, err
	}
	p := New()
	if err := json.Unmarshal(jsonData, p); err != nil {
		return nil, errors.Wrap(err, "cannot decode project")
	}
	return p, nil
}

// Marshal encodes the project in the given format.
func Marshal(p *Project, format Format) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode project")
	}
	if format == JSON {
		return data, nil
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Save writes the project to path in the format given by its extension.
func Save(p *Project, path string) error {
	data, err := Marshal(p, FormatFromPath(path))
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "cannot write project")
}

func toJSON(data []byte, format Format) ([]byte, error) {
	if format == JSON {
		return data, nil
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot parse YAML")
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot convert YAML")
	}
	return jsonData, nil
}
