// Package templates loads the template resources for generated artifacts
// and fills them with name data.
//
// Templates use text/template syntax with plain variable interpolation,
// e.g. {{.name}}. Placeholders missing from the context render empty.
package templates

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"text/template"

	"github.com/conneroisu/expressor/internal/errors"
)

// Context maps placeholder names to their values.
type Context map[string]string

// Renderer turns a template ID plus a Context into text.
type Renderer struct {
	provider Provider
}

// NewRenderer creates a renderer backed by provider.
func NewRenderer(provider Provider) *Renderer {
	return &Renderer{provider: provider}
}

// Render loads the template identified by id and executes it with data.
// Rendering is deterministic: the same id and context yield the same text.
func (r *Renderer) Render(id ID, data Context) (string, error) {
	src, err := r.provider.Template(id)
	if err != nil {
		code := errors.ErrCodeTemplateInvalid
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeTemplateMissing
		}
		return "", errors.NewTemplateLoadError(code, string(id), err)
	}

	tmpl, err := template.New(string(id)).Option("missingkey=zero").Parse(src)
	if err != nil {
		return "", errors.NewTemplateLoadError(errors.ErrCodeTemplateInvalid, string(id), err)
	}

	if data == nil {
		data = Context{}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, map[string]string(data)); err != nil {
		return "", errors.NewTemplateLoadError(errors.ErrCodeTemplateInvalid, string(id), err)
	}

	return out.String(), nil
}
