package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/parsers"
	"github.com/pteropackages/soar/pkg/query"
	"github.com/pteropackages/soar/pkg/session"
)

// argumentError turns a cobra or flag parsing error into an ArgumentError.
func argumentError(err error) error {
	if err == nil {
		return nil
	}
	var argErr *session.ArgumentError
	if errors.As(err, &argErr) {
		return err
	}
	return session.NewArgumentError(err.Error())
}

// exactArgs is cobra.ExactArgs reporting an ArgumentError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return argumentError(cobra.ExactArgs(n)(cmd, args))
	}
}

// payloadError describes why the --data or --file payload was rejected.
func payloadError(err error) error {
	switch {
	case errors.Is(err, parsers.ErrNoPayload), errors.Is(err, parsers.ErrPayloadConflict):
		return session.NewArgumentError(err.Error())
	default:
		return session.NewArgumentError("couldn't parse payload:", err.Error())
	}
}

func filterError(err error) error {
	if errors.Is(err, query.ErrIDAndExternal) {
		return session.NewArgumentError(err.Error())
	}
	return fmt.Errorf("failed to build request path: %w", err)
}
