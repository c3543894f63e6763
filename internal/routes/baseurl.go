package routes

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultBaseURL = "http://localhost:8080"

func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

// ValidateBaseURL checks the public URL the viewer is served from. A path
// prefix is allowed; the route table is mounted below it.
func ValidateBaseURL(baseURL string) error {
	baseURL = NormalizeBaseURL(baseURL)

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: absolute URL with host is required", baseURL)
	}
	if u.User != nil {
		return fmt.Errorf("invalid base URL %q: userinfo is not allowed", baseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid base URL %q: query and fragment are not allowed", baseURL)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid base URL %q: host is required", baseURL)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("invalid base URL %q: http or https is required", baseURL)
	}
	return nil
}
