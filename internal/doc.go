// Package internal contains the implementation packages for expressor.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - naming: casing forms derived from a user-supplied name
//   - templates: template providers and the text/template renderer
//   - artifact: artifact kinds, output paths and the collision-checked writer
//   - prompt: argument-or-prompt resolution of required values
//   - generator: the make:* pipeline tying the packages above together
//   - bootstrap: the `new` pipeline (fetch, set up, install, clean up)
//   - runner: allow-listed external process execution
//   - validation: argument, command, project name and URL checks
//   - errors: the structured error type, exit codes and the command boundary handler
//   - config, logging, ui, version: ambient concerns
//
// # Inter-Package Communication
//
// Every component receives the project root and its collaborators
// (file system, prompter, runner, printer, logger) explicitly; nothing
// reads the process working directory after configuration is loaded.
// Tests substitute an in-memory afero file system and stub prompters,
// fetchers and runners.
package internal
