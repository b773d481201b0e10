// samples.go — Starter caption map and brand file for --init.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SampleCaptions returns a caption map keyed by the synthetic screen IDs, so
// raw screenshots named after them pick up a caption straight away.
func SampleCaptions() CaptionMap {
	captions := make(CaptionMap, len(Screens))
	for _, s := range Screens {
		captions[s.ID] = s.Subtitle
	}
	return captions
}

// WriteSamples writes captions.json and brand.yaml into dir. Existing files
// are left untouched. It returns the paths it created.
func WriteSamples(dir string) ([]string, error) {
	captionsJSON, err := json.MarshalIndent(SampleCaptions(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal captions: %w", err)
	}
	brandYAML, err := yaml.Marshal(DefaultBrand())
	if err != nil {
		return nil, fmt.Errorf("marshal brand: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"captions.json", append(captionsJSON, '\n')},
		{"brand.yaml", brandYAML},
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var created []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		err := writeNew(path, f.data)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return created, err
		}
		created = append(created, path)
	}
	return created, nil
}

func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
