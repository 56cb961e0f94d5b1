package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL validates a template repository URL before it is handed to
// git. Only http, https and ssh remotes are accepted.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	switch parsed.Scheme {
	case "http", "https", "ssh":
	default:
		return fmt.Errorf("invalid URL scheme: %q (only http, https and ssh allowed)", parsed.Scheme)
	}

	for _, char := range dangerous {
		if strings.Contains(rawURL, char) {
			return fmt.Errorf("URL contains dangerous character: %q", char)
		}
	}

	if strings.Contains(rawURL, " ") {
		return fmt.Errorf("URL contains spaces")
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}
