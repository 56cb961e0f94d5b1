package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

//go:embed files/*.tmpl
var embedded embed.FS

// ID names one of the fixed template resources.
type ID string

const (
	Controller       ID = "controller"
	Repository       ID = "repository"
	ValidationSchema ID = "schema"
)

// IDs lists every template resource shipped with expressor.
func IDs() []ID {
	return []ID{Controller, Repository, ValidationSchema}
}

// ErrNotFound is returned by providers that do not carry a resource.
var ErrNotFound = fs.ErrNotExist

// Provider looks up template source by ID.
type Provider interface {
	Template(id ID) (string, error)
}

// EmbedProvider serves the templates compiled into the binary.
type EmbedProvider struct {
	fsys fs.FS
	dir  string
}

// NewEmbedProvider returns a provider over the built-in templates.
func NewEmbedProvider() *EmbedProvider {
	return &EmbedProvider{fsys: embedded, dir: "files"}
}

// Template implements Provider.
func (p *EmbedProvider) Template(id ID) (string, error) {
	data, err := fs.ReadFile(p.fsys, p.dir+"/"+fileName(id))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// DirProvider reads <dir>/<id>.tmpl from a file system, letting projects
// override the built-in templates.
type DirProvider struct {
	fs  afero.Fs
	dir string
}

// NewDirProvider creates a provider rooted at dir.
func NewDirProvider(fsys afero.Fs, dir string) *DirProvider {
	return &DirProvider{fs: fsys, dir: dir}
}

// Template implements Provider.
func (p *DirProvider) Template(id ID) (string, error) {
	data, err := afero.ReadFile(p.fs, filepath.Join(p.dir, fileName(id)))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ChainProvider asks each provider in turn and returns the first hit.
// Only a not-found result moves on to the next provider.
type ChainProvider []Provider

// Template implements Provider.
func (c ChainProvider) Template(id ID) (string, error) {
	for _, p := range c {
		src, err := p.Template(id)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("template %s: %w", id, ErrNotFound)
}

// MapProvider serves templates from memory.
type MapProvider map[ID]string

// Template implements Provider.
func (m MapProvider) Template(id ID) (string, error) {
	src, ok := m[id]
	if !ok {
		return "", fmt.Errorf("template %s: %w", id, ErrNotFound)
	}

	return src, nil
}

func fileName(id ID) string {
	return string(id) + ".tmpl"
}
