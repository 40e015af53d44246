package font

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFace is loaded when a requested face name is unknown or
// fails to load.
const DefaultFace = "go-regular"

// builtin maps logical face names to embedded font data.
var builtin = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
	"go-mono":    gomono.TTF,
}

// Source loads faces by logical name and caches them for the
// lifetime of the process. The zero value is ready to use.
type Source struct {
	// Fetch resolves a face name to raw font bytes. It defaults to
	// FetchBytes.
	Fetch func(name string) ([]byte, error)

	// Default overrides DefaultFace as the fallback face name.
	Default string

	mu    sync.Mutex
	faces map[string]*Face
}

// Load returns the face for name. Unknown or unloadable names fall
// back to the default face and, failing that too, to the synthetic
// notch face. Load never fails. Loads run under the source lock, so
// concurrent requests for an uncached name share one load.
func (s *Source) Load(name string) *Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[name]; ok {
		return f
	}
	f := s.load(name)
	if s.faces == nil {
		s.faces = make(map[string]*Face)
	}
	s.faces[name] = f
	return f
}

func (s *Source) load(name string) *Face {
	fetch := s.Fetch
	if fetch == nil {
		fetch = FetchBytes
	}
	if f, err := parseFace(name, fetch); err == nil {
		return f
	}
	def := s.Default
	if def == "" {
		def = DefaultFace
	}
	if def != name {
		if f, err := parseFace(def, fetch); err == nil {
			return f
		}
	}
	return Fallback()
}

func parseFace(name string, fetch func(string) ([]byte, error)) (*Face, error) {
	data, err := fetch(name)
	if err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse %q: %w", name, err)
	}
	return &Face{Name: name, font: fnt}, nil
}

// FetchBytes resolves name against the built-in faces first and the
// filesystem second, so a face name may be a path to a font file.
func FetchBytes(name string) ([]byte, error) {
	if data, ok := builtin[name]; ok {
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("font: no face %q: %w", name, err)
	}
	return data, nil
}
