package errors

import "errors"

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title   string
	Command string
}

// Suggestions returns hints for the error codes a user can act on.
func Suggestions(err error) []ErrorSuggestion {
	var ee *ExpressorError
	if !errors.As(err, &ee) {
		return nil
	}

	switch ee.Code {
	case ErrCodeEmptyName:
		command, _ := ee.Context[ContextCommand].(string)
		if command == "" {
			return []ErrorSuggestion{{Title: "Pass the name as an argument"}}
		}
		return []ErrorSuggestion{
			{Title: "Pass the name as an argument", Command: "expressor " + command + " <name>"},
		}
	case ErrCodeUnsafeName:
		return []ErrorSuggestion{
			{Title: "Use a plain directory name without path separators or shell characters"},
		}
	case ErrCodeDirectoryMissing:
		return []ErrorSuggestion{
			{Title: "Run the command from the project root, or pass --root"},
			{Title: "Create a project first", Command: "expressor new my-app"},
		}
	case ErrCodeTemplateMissing, ErrCodeTemplateInvalid:
		return []ErrorSuggestion{
			{Title: "Check generator.templates_dir in your configuration, or reinstall expressor"},
		}
	case ErrCodeCommandFailed, ErrCodeCloneFailed:
		return []ErrorSuggestion{
			{Title: "Check that git and your package manager are installed and on PATH"},
		}
	case ErrCodeCommandNotAllowed:
		return []ErrorSuggestion{
			{Title: "Set bootstrap.package_manager to one of npm, pnpm, yarn or bun"},
		}
	case ErrCodeConfigInvalid:
		return []ErrorSuggestion{
			{Title: "Inspect the effective configuration", Command: "expressor config show"},
		}
	}

	return nil
}
