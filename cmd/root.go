package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/config"
	"github.com/pteropackages/soar/pkg/exit"
	"github.com/pteropackages/soar/pkg/logger"
	"github.com/pteropackages/soar/pkg/output"
)

var (
	logLevel  string
	debugMode bool

	rootCmd = &cobra.Command{
		Use:   "soar",
		Short: "Pterodactyl panel command-line client",
		Long: `soar is a command-line client for the Pterodactyl panel API.

It talks to the Application API (users, servers, nodes, locations, nests) and
the Client API (account, permissions, servers) using the keys stored in the
soar configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error) - overrides config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"show debug and http logs for every request")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return argumentError(err)
	})
}

// Execute runs the root command and exits with the code mapped from the error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		output.PrintError(err)
		os.Exit(exitCode(err))
	}
}

// execute runs the command tree with args.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(joinOutputArgs(args))
	return rootCmd.ExecuteContext(ctx)
}

func exitCode(err error) int {
	if err == nil {
		return exit.Success
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return exit.GeneralError
}

func configureLogging() {
	effectiveLogLevel := "warn"

	cfg, err := config.Load(true)
	if err == nil {
		switch {
		case cfg.Logs.Level != "":
			effectiveLogLevel = cfg.Logs.Level
		case cfg.Logs.ShowDebug:
			effectiveLogLevel = "debug"
		case cfg.Logs.ShowHTTP:
			effectiveLogLevel = "info"
		}
	}

	if debugMode {
		effectiveLogLevel = "debug"
	}
	if logLevel != "" {
		effectiveLogLevel = logLevel
	}

	logger.SetLevel(effectiveLogLevel)
}
