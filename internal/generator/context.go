package generator

import (
	"fmt"

	"github.com/conneroisu/expressor/internal/artifact"
	"github.com/conneroisu/expressor/internal/naming"
	"github.com/conneroisu/expressor/internal/templates"
)

// BuildContext maps the name forms of a request onto the placeholders of
// the kind's template.
//
//	controller: name
//	repository: name, model, capitalizedModel
//	schema:     name, capitalizedName
func BuildContext(kind artifact.Kind, forms naming.Forms, options map[string]string) (templates.Context, error) {
	switch kind {
	case artifact.Controller:
		return templates.Context{
			"name": forms.Capitalized,
		}, nil
	case artifact.Repository:
		model := options[OptionModel]
		if model == "" {
			model = forms.Raw
		}
		return templates.Context{
			"name":             forms.Capitalized,
			"model":            naming.Lower(model),
			"capitalizedModel": naming.Capitalize(model),
		}, nil
	case artifact.ValidationSchema:
		return templates.Context{
			"name":            forms.Raw,
			"capitalizedName": forms.Capitalized,
		}, nil
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", kind)
	}
}
