package session

import (
	"fmt"

	"github.com/pteropackages/soar/pkg/config"
)

// Scope selects which credential set a session authenticates with.
type Scope string

const (
	ScopeApplication Scope = "application"
	ScopeClient      Scope = "client"
)

// ParseScope parses a scope name.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeApplication, ScopeClient:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid scope %q (use application or client)", s)
	}
}

// ResolveAuth returns the credentials for scope. Both the URL and the key
// must be set; a nil config counts as missing both.
func ResolveAuth(cfg *config.Config, scope Scope) (config.Auth, error) {
	var auth config.Auth
	if cfg != nil {
		switch scope {
		case ScopeApplication:
			auth = cfg.Application
		case ScopeClient:
			auth = cfg.Client
		default:
			return config.Auth{}, fmt.Errorf("invalid scope %q (use application or client)", scope)
		}
	}

	var missing []string
	if auth.URL == "" {
		missing = append(missing, "url")
	}
	if auth.Key == "" {
		missing = append(missing, "key")
	}
	if len(missing) > 0 {
		return config.Auth{}, &MissingAuthError{Scope: scope, Missing: missing}
	}
	return auth, nil
}
