package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a shape definition file from the given path.
// Files ending in .json parse as JSON, everything else as YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape definition file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shape definition YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseJSON parses JSON data into a File.
func ParseJSON(data []byte) (*File, error) {
	var f File

	err := json.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shape definition JSON: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
