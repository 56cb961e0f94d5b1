// Package validation provides safety checks for values that end up on an
// external command line: project names, program names and repository URLs.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// dangerous lists shell metacharacters rejected in command arguments.
var dangerous = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}

// ValidateArgument validates a command line argument to prevent injection attacks
func ValidateArgument(arg string) error {
	for _, char := range dangerous {
		if strings.Contains(arg, char) {
			return fmt.Errorf("contains dangerous character: %q", char)
		}
	}

	if strings.Contains(arg, "..") {
		return fmt.Errorf("contains path traversal: %s", arg)
	}

	if filepath.IsAbs(arg) {
		return fmt.Errorf("absolute path not allowed: %s", arg)
	}

	return nil
}

// ValidateCommand validates a command name against an allowlist
func ValidateCommand(command string, allowedCommands map[string]bool) error {
	if command == "" {
		return fmt.Errorf("command cannot be empty")
	}

	if !allowedCommands[command] {
		return fmt.Errorf("command '%s' is not allowed", command)
	}

	if err := ValidateArgument(command); err != nil {
		return fmt.Errorf("invalid command '%s': %w", command, err)
	}

	return nil
}

// ValidateProjectName checks that name can be used as a new directory
// directly below the working directory.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if name == "." {
		return fmt.Errorf("project name cannot be the current directory")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("project name cannot contain path separators: %s", name)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("project name cannot start with '-': %s", name)
	}

	return ValidateArgument(name)
}
