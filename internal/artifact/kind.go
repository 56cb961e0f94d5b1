// Package artifact describes the kinds of generated source files and
// writes them into a project tree.
package artifact

import (
	"fmt"
	"path/filepath"

	"github.com/conneroisu/expressor/internal/templates"
)

// Kind identifies one kind of generated artifact.
type Kind string

const (
	Controller       Kind = "controller"
	Repository       Kind = "repository"
	ValidationSchema Kind = "schema"
)

// DefaultExtension is the file extension used when none is configured.
const DefaultExtension = "ts"

type layout struct {
	dir      string
	suffix   string
	label    string
	template templates.ID
}

// Each kind owns a distinct directory and suffix, so no two kinds can
// resolve to the same file.
var layouts = map[Kind]layout{
	Controller: {
		dir:      filepath.Join("src", "app", "controllers"),
		suffix:   ".controller",
		label:    "Controller",
		template: templates.Controller,
	},
	Repository: {
		dir:      filepath.Join("src", "app", "repositories"),
		suffix:   ".repository",
		label:    "Repository",
		template: templates.Repository,
	},
	ValidationSchema: {
		dir:      filepath.Join("src", "app", "validateSchema"),
		suffix:   ".schema",
		label:    "Validate schema",
		template: templates.ValidationSchema,
	},
}

// Kinds returns every artifact kind.
func Kinds() []Kind {
	return []Kind{Controller, Repository, ValidationSchema}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := layouts[k]
	return ok
}

// Label is the user-facing name of the kind, e.g. "Validate schema".
func (k Kind) Label() string {
	return layouts[k].label
}

// Template returns the template resource used for the kind.
func (k Kind) Template() templates.ID {
	return layouts[k].template
}

// Dir returns the kind's directory relative to the project root.
func (k Kind) Dir() string {
	return layouts[k].dir
}

// OutputPath returns where an artifact of kind k named lower lives under
// root: <root>/<dir>/<lower><suffix>.<ext>.
func OutputPath(root string, k Kind, lower, ext string) (string, error) {
	l, ok := layouts[k]
	if !ok {
		return "", fmt.Errorf("unknown artifact kind %q", k)
	}
	if ext == "" {
		ext = DefaultExtension
	}

	return filepath.Join(root, l.dir, lower+l.suffix+"."+ext), nil
}
