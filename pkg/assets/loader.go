// loader.go — Load the caption map and the brand file.
package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCaptions reads the JSON caption map at path. A missing file yields an
// empty map; a malformed one is an error.
func LoadCaptions(path string) (CaptionMap, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return CaptionMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}

	captions := CaptionMap{}
	if err := json.Unmarshal(data, &captions); err != nil {
		return nil, fmt.Errorf("parse captions %s: %w", path, err)
	}
	return captions, nil
}

// LoadBrand reads a YAML brand file. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func LoadBrand(path string) (Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Brand{}, fmt.Errorf("read brand file: %w", err)
	}

	var brand Brand
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&brand); err != nil && !errors.Is(err, io.EOF) {
		return Brand{}, fmt.Errorf("parse brand file %s: %w", path, err)
	}
	return brand, nil
}
