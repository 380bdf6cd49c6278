package core

import (
	"net/url"
	"strings"
)

// AssetsScheme marks resources that live under the engine's assets directory
const AssetsScheme = "assets"

// ValidateURI checks that a resource reference is usable by the engine:
// a non-empty assets:///, file://, http(s):// URI or a plain path.
// The resource itself is never opened here.
func ValidateURI(kind, field, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return NewValidationError(kind, field, "must be a non-empty uri or path")
	}

	// Windows style paths parse as a one-letter scheme
	normalized := strings.ReplaceAll(ref, `\`, `/`)
	u, err := url.Parse(normalized)
	if err != nil {
		return NewValidationError(kind, field, "is not a valid uri: %v", err)
	}

	switch u.Scheme {
	case "":
		return nil
	case AssetsScheme:
		if u.Host != "" {
			return NewValidationError(kind, field, "assets uri must not have a host, got %q", ref)
		}
		if strings.Trim(u.Path, "/") == "" {
			return NewValidationError(kind, field, "assets uri has an empty path")
		}
		return nil
	case "file":
		if u.Path == "" {
			return NewValidationError(kind, field, "file uri has an empty path")
		}
		return nil
	case "http", "https":
		if u.Host == "" {
			return NewValidationError(kind, field, "%s uri must have a host", u.Scheme)
		}
		return nil
	default:
		if len(u.Scheme) == 1 {
			// drive letter
			return nil
		}
		return NewValidationError(kind, field, "unsupported uri scheme %q", u.Scheme)
	}
}
