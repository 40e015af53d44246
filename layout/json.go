package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a layout from JSON.
func Load(r io.Reader) (*Layout, error) {
	var l Layout
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if l.Rows <= 0 || l.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, l.Cols, l.Rows)
	}
	return &l, nil
}

// LoadFile reads a layout from a JSON file.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	defer f.Close()
	return Load(f)
}
