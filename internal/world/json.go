package world

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses dataset JSON.
func Decode(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	if ds.Regions == nil {
		ds.Regions = NewRegionMap()
	}
	return &ds, nil
}

// Save writes a dataset file with the conventional formatting: two-space
// indent, UTF-8 kept as-is.
func Save(path string, ds *Dataset) error {
	data, err := Encode(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode renders dataset JSON in the on-disk formatting.
func Encode(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
