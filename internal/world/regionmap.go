package world

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// RegionMap is the regions mapping of a dataset. Unlike a plain Go map it
// remembers JSON object key order, which the sorting and conversion passes
// are defined over.
type RegionMap struct {
	codes   []string
	regions map[string]*Region
}

// NewRegionMap returns an empty mapping.
func NewRegionMap() *RegionMap {
	return &RegionMap{regions: make(map[string]*Region)}
}

// Len returns the number of regions.
func (m *RegionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.codes)
}

// Codes returns the region codes in their current order. The returned slice
// is shared; callers must not modify it.
func (m *RegionMap) Codes() []string {
	if m == nil {
		return nil
	}
	return m.codes
}

// Get returns the region for a code.
func (m *RegionMap) Get(code string) (*Region, bool) {
	if m == nil {
		return nil, false
	}
	r, ok := m.regions[code]
	return r, ok
}

// Set stores a region under a code. A new code is appended; an existing
// code keeps its position.
func (m *RegionMap) Set(code string, r *Region) {
	if m.regions == nil {
		m.regions = make(map[string]*Region)
	}
	if _, ok := m.regions[code]; !ok {
		m.codes = append(m.codes, code)
	}
	m.regions[code] = r
}

// Sort reorders the mapping: 3-character codes first, longer codes after,
// each group alphabetical. Sorting an already-sorted mapping is a no-op.
func (m *RegionMap) Sort() {
	if m == nil {
		return
	}
	slices.SortStableFunc(m.codes, func(a, b string) int {
		if ga, gb := sortGroup(a), sortGroup(b); ga != gb {
			return ga - gb
		}
		return strings.Compare(a, b)
	})
}

// sortGroup ranks 3-character codes ahead of composite keys.
func sortGroup(code string) int {
	if len(code) == 3 {
		return 0
	}
	return 1
}

// MarshalJSON writes the mapping as a JSON object in stored key order.
func (m *RegionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range m.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.regions[code])
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", code, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording keys in document order.
func (m *RegionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("regions: expected object, got %v", tok)
	}

	m.codes = nil
	m.regions = make(map[string]*Region)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("regions: expected key, got %v", tok)
		}
		var r Region
		if err := dec.Decode(&r); err != nil {
			return fmt.Errorf("region %s: %w", code, err)
		}
		m.Set(code, &r)
	}
	_, err = dec.Token() // closing brace
	return err
}
