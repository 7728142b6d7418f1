package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/config"
	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/output"
	"github.com/pteropackages/soar/pkg/parsers"
	"github.com/pteropackages/soar/pkg/session"
	"github.com/pteropackages/soar/pkg/validator"
)

// sessionOptions lets tests swap the dispatcher or indicator.
var sessionOptions = func() []session.Option { return nil }

func newSession(scope session.Scope, flags models.FlagOptions) (*session.Session, error) {
	cfg, err := config.Load(true)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := []session.Option{
		session.WithVersion(Version),
		session.WithForceDebug(debugMode),
	}
	opts = append(opts, sessionOptions()...)
	return session.New(cfg, scope, flags, opts...)
}

// getOperationContext bounds a whole command action. Multi-request flows get
// one request timeout per request they make.
func getOperationContext(cmd *cobra.Command, s *session.Session, requests int) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, s.Config().RequestTimeout()*time.Duration(requests))
}

func wrapTimeoutError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("operation timed out: consider increasing http.timeout: %w", err)
	}
	return err
}

// readPayload decodes --data or --file and validates it with rules.
func readPayload(cmd *cobra.Command, silent bool, rules []validator.Rule) (map[string]any, error) {
	data, _ := cmd.Flags().GetString("data")
	file, _ := cmd.Flags().GetString("file")
	strict, _ := cmd.Flags().GetBool("strict")

	payload, err := parsers.ReadPayload(data, file)
	if err != nil {
		return nil, payloadError(err)
	}

	result := validator.NewValidator(strict).Validate(payload, rules...)
	if err := result.Err(); err != nil {
		return nil, err
	}
	if !silent {
		for _, w := range result.Warnings() {
			output.Warning(w)
		}
	}
	return payload, nil
}

// printResult prints rendered output with a heading unless it is empty.
func printResult(flags models.FlagOptions, heading, out string) {
	if out == "" {
		return
	}
	if !flags.Silent {
		output.Success(heading + "\n")
	}
	fmt.Println(out)
}

// request runs one request and renders it.
func request(cmd *cobra.Command, scope session.Scope, defaultFormat models.Format, method, path string) error {
	flags := parseFlagOptions(cmd, defaultFormat)

	s, err := newSession(scope, flags)
	if err != nil {
		return err
	}

	ctx, cancel := getOperationContext(cmd, s, 1)
	defer cancel()

	res, err := s.Request(ctx, method, path, nil)
	if err != nil {
		return wrapTimeoutError(err)
	}

	out, err := s.Close(res)
	if err != nil {
		return err
	}
	printResult(flags, "request result:", out)
	return nil
}
