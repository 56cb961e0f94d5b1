// Package generator runs the make:* pipeline: resolve the name, derive its
// casing forms, render the kind's template and write the artifact.
package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/conneroisu/expressor/internal/artifact"
	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/naming"
	"github.com/conneroisu/expressor/internal/prompt"
	"github.com/conneroisu/expressor/internal/templates"
)

// OptionModel names the backing model of a repository.
const OptionModel = "model"

// Request asks for one artifact. RawName may be empty, in which case the
// user is prompted.
type Request struct {
	Kind    artifact.Kind
	RawName string
	Options map[string]string
}

// Reporter receives the user-facing outcome of a run.
type Reporter interface {
	Log(message string, prefix ...string)
	Notice(message string)
}

// Generator wires the pipeline collaborators together. It keeps no state
// between runs.
type Generator struct {
	prompter prompt.Prompter
	renderer *templates.Renderer
	writer   *artifact.Writer
	reporter Reporter
	logger   logging.Logger
}

// New creates a generator.
func New(p prompt.Prompter, r *templates.Renderer, w *artifact.Writer, rep Reporter, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Generator{
		prompter: p,
		renderer: r,
		writer:   w,
		reporter: rep,
		logger:   logger.WithComponent("generator"),
	}
}

// Questions asked when a name is not given on the command line.
var questions = map[artifact.Kind]string{
	artifact.Controller:       "What should the controller be named?",
	artifact.Repository:       "What should the repository be named? (user)",
	artifact.ValidationSchema: "What should the validate-schema be named?",
}

// Question returns the prompt shown for kind.
func Question(kind artifact.Kind) string {
	return questions[kind]
}

// Generate runs the pipeline and returns the written path. When the
// artifact already exists it reports so and returns an AlreadyExists
// error without touching the file.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	if !req.Kind.Valid() {
		return "", fmt.Errorf("unknown artifact kind %q", req.Kind)
	}

	raw, err := prompt.Required(ctx, g.prompter, req.RawName, Question(req.Kind))
	if err != nil {
		return "", err
	}

	forms, err := naming.Normalize(raw)
	if err != nil {
		return "", errors.WithCommand(err, "make:"+string(req.Kind))
	}

	data, err := BuildContext(req.Kind, forms, req.Options)
	if err != nil {
		return "", err
	}

	log := g.logger.With("kind", string(req.Kind), "name", forms.Raw)

	exists, err := g.writer.Exists(req.Kind, forms.Lower)
	if err != nil {
		return "", err
	}
	if exists {
		path, _ := g.writer.Path(req.Kind, forms.Lower)
		log.Debug(ctx, "Artifact exists, skipping", "path", path)
		g.reportExists(req.Kind)
		return "", errors.NewAlreadyExistsError(req.Kind.Label(), path)
	}

	content, err := g.renderer.Render(req.Kind.Template(), data)
	if err != nil {
		return "", err
	}

	path, err := g.writer.Write(req.Kind, forms.Lower, content)
	if err != nil {
		if errors.IsAlreadyExists(err) {
			g.reportExists(req.Kind)
		}
		return "", err
	}

	log.Debug(ctx, "Artifact written", "path", path)
	if g.reporter != nil {
		g.reporter.Log(fmt.Sprintf("%s [%s] created successfully.", req.Kind.Label(), Relative(g.writer.Root(), path)))
	}

	return path, nil
}

func (g *Generator) reportExists(kind artifact.Kind) {
	if g.reporter != nil {
		g.reporter.Notice(kind.Label() + " already exists.")
	}
}

// Relative renders path relative to root with a leading "./".
func Relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return "." + string(filepath.Separator) + rel
}
