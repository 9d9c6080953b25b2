// Package source resolves shader source text by identifier.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// ErrNotFound is returned when no source exists for an identifier.
var ErrNotFound = errors.New("source not found")

// Lookup resolves an identifier to shader source text.
type Lookup interface {
	Lookup(id string) (string, error)
}

// Map serves sources from memory.
type Map map[string]string

// Lookup returns the source stored under id.
func (m Map) Lookup(id string) (string, error) {
	src, ok := m[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return src, nil
}

// DefaultExtensions are tried, in order, when an id does not name a file directly.
var DefaultExtensions = []string{".vert", ".frag", ".glsl"}

// FS serves sources from files in a filesystem.
type FS struct {
	fsys fs.FS
	exts []string
}

// NewFS creates a lookup over fsys. With no extensions, DefaultExtensions is used.
func NewFS(fsys fs.FS, exts ...string) *FS {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return &FS{fsys: fsys, exts: exts}
}

// Dir creates a lookup over the files below dir.
func Dir(dir string) *FS {
	return NewFS(os.DirFS(dir))
}

// Lookup reads id as a path, then id with each extension appended.
func (f *FS) Lookup(id string) (string, error) {
	if !fs.ValidPath(id) {
		return "", fmt.Errorf("%w: invalid path %q", ErrNotFound, id)
	}

	candidates := []string{id}
	if path.Ext(id) == "" {
		for _, ext := range f.exts {
			candidates = append(candidates, id+ext)
		}
	}

	for _, name := range candidates {
		data, err := fs.ReadFile(f.fsys, name)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Chain searches several lookups.
// Lookups are searched in reverse order (last added = highest priority).
type Chain struct {
	lookups []Lookup
}

// NewChain creates a chain over lookups, lowest priority first.
func NewChain(lookups ...Lookup) *Chain {
	c := &Chain{}
	for _, l := range lookups {
		c.Add(l)
	}
	return c
}

// Add appends l with the highest priority so far.
func (c *Chain) Add(l Lookup) {
	if l != nil {
		c.lookups = append(c.lookups, l)
	}
}

// Len returns the number of lookups in the chain.
func (c *Chain) Len() int {
	return len(c.lookups)
}

// Lookup returns the first match. Errors other than ErrNotFound stop the search.
func (c *Chain) Lookup(id string) (string, error) {
	for i := len(c.lookups) - 1; i >= 0; i-- {
		src, err := c.lookups[i].Lookup(id)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, id)
}
