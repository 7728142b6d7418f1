package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pteropackages/soar/pkg/client"
	"github.com/pteropackages/soar/pkg/config"
	"github.com/pteropackages/soar/pkg/exit"
	"github.com/pteropackages/soar/pkg/models"
)

func TestResolveAuth(t *testing.T) {
	cfg := config.Default()
	cfg.Application = config.Auth{URL: "https://panel.example.com", Key: "ptla_key"}
	cfg.Client = config.Auth{URL: "https://panel.example.com", Key: "ptlc_key"}

	app, err := ResolveAuth(cfg, ScopeApplication)
	require.NoError(t, err)
	assert.Equal(t, "ptla_key", app.Key)

	cl, err := ResolveAuth(cfg, ScopeClient)
	require.NoError(t, err)
	assert.Equal(t, "ptlc_key", cl.Key)

	_, err = ResolveAuth(cfg, Scope("admin"))
	require.Error(t, err)
}

func TestResolveAuth_Missing(t *testing.T) {
	tests := []struct {
		name    string
		auth    config.Auth
		missing []string
	}{
		{"both empty", config.Auth{}, []string{"url", "key"}},
		{"no url", config.Auth{Key: "k"}, []string{"url"}},
		{"no key", config.Auth{URL: "https://panel.example.com"}, []string{"key"}},
	}

	for _, scope := range []Scope{ScopeApplication, ScopeClient} {
		for _, tt := range tests {
			t.Run(string(scope)+"/"+tt.name, func(t *testing.T) {
				cfg := config.Default()
				if scope == ScopeApplication {
					cfg.Application = tt.auth
				} else {
					cfg.Client = tt.auth
				}

				_, err := ResolveAuth(cfg, scope)

				var authErr *MissingAuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, scope, authErr.Scope)
				assert.Equal(t, tt.missing, authErr.Missing)
				assert.Equal(t, exit.AuthError, authErr.ExitCode())
			})
		}
	}
}

func TestResolveAuth_NilConfig(t *testing.T) {
	_, err := ResolveAuth(nil, ScopeApplication)

	var authErr *MissingAuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, []string{"url", "key"}, authErr.Missing)
}

func TestNew_MissingAuthNeverDispatches(t *testing.T) {
	mock := client.NewMockClient()
	cfg := config.Default()
	cfg.Application = config.Auth{URL: "https://panel.example.com"}

	sess, err := New(cfg, ScopeApplication, models.FlagOptions{}, WithDispatcher(mock))

	assert.Nil(t, sess)
	var authErr *MissingAuthError
	require.True(t, errors.As(err, &authErr))
	assert.Empty(t, mock.SendCalls)
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("client")
	require.NoError(t, err)
	assert.Equal(t, ScopeClient, s)

	_, err = ParseScope("nope")
	require.Error(t, err)
}
