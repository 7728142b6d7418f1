package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/config"
	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/output"
	"github.com/pteropackages/soar/pkg/session"
)

const errFailedToLoadConfiguration = "failed to load configuration: %w"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage soar configuration",
	Long:  `Manage the global configuration and the local workspace overlay (` + config.LocalFileName + `).`,
}

var infoConfigCmd = &cobra.Command{
	Use:   "info",
	Short: "Gets the soar configuration setup",
	Long:  `Gets the global soar configuration setup (or local if specified).`,
	Args:  exactArgs(0),
	RunE:  runConfigInfo,
}

var setupConfigCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup a new soar configuration",
	Long: `Setup a new global configuration interactively, or a local configuration
for the workspace copied from the global one (or from --link).`,
	Example: `  soar config setup
  soar config setup --local --force
  soar config setup --local --link ../other/.soar-local.yml`,
	Args: exactArgs(0),
	RunE: runConfigSetup,
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Sets an option in the soar configuration",
	Example: `  soar config set application.url https://panel.example.com
  soar config set logs.show_http true --local`,
	Args: exactArgs(2),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return config.Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runConfigSet,
}

var keysConfigCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the settable config keys",
	Args:  exactArgs(0),
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(infoConfigCmd, setupConfigCmd, setConfigCmd, keysConfigCmd)

	infoConfigCmd.Flags().Bool("local", false, "show the local configuration for the workspace")
	infoConfigCmd.Flags().BoolP("hide", "H", false, "hide the API keys from the command output")
	infoConfigCmd.Flags().Bool("yaml", false, "print the configuration as YAML")

	setupConfigCmd.Flags().Bool("local", false, "setup a local configuration for the workspace")
	setupConfigCmd.Flags().String("link", "", "copy the local configuration from this file instead of the global one")
	setupConfigCmd.Flags().BoolP("force", "f", false, "skip all confirmation prompts")
	registerPayloadCompletion(setupConfigCmd, "link")

	setConfigCmd.Flags().Bool("local", false, "update the local configuration")
}

func loadScoped(local bool) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if local {
		cfg, err = config.LoadLocal()
	} else {
		cfg, err = config.Load(false)
	}
	if err != nil {
		return nil, fmt.Errorf(errFailedToLoadConfiguration, err)
	}
	return cfg, nil
}

func scopeName(local bool) string {
	if local {
		return "Local"
	}
	return "Global"
}

func runConfigInfo(cmd *cobra.Command, _ []string) error {
	local, _ := cmd.Flags().GetBool("local")
	hide, _ := cmd.Flags().GetBool("hide")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	cfg, err := loadScoped(local)
	if err != nil {
		return err
	}
	if hide {
		cfg = cfg.Masked()
	}

	if asYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		text := strings.TrimSuffix(string(data), "\n")
		if cfg.Logs.UseColour && output.IsTerminal() {
			text = output.Colorize(text, models.FormatYAML)
		}
		fmt.Println(text)
		return nil
	}

	printConfigInfo(cfg, local)
	return nil
}

func printConfigInfo(cfg *config.Config, local bool) {
	const width = 17
	notSet := func(s string) string {
		if s == "" {
			return "Not Set"
		}
		return s
	}

	output.Heading(fmt.Sprintf("Soar %s Config", scopeName(local)))
	output.KeyValue("version", cfg.Version, width)

	fmt.Println()
	output.Heading("Application Details")
	output.KeyValue("url", notSet(cfg.Application.URL), width)
	output.KeyValue("key", notSet(cfg.Application.Key), width)

	fmt.Println()
	output.Heading("Client Details")
	output.KeyValue("url", notSet(cfg.Client.URL), width)
	output.KeyValue("key", notSet(cfg.Client.Key), width)

	fmt.Println()
	output.Heading("Logging")
	output.KeyValue("show debug logs", models.FormatValue(cfg.Logs.ShowDebug), width)
	output.KeyValue("show http logs", models.FormatValue(cfg.Logs.ShowHTTP), width)
	output.KeyValue("use colour", models.FormatValue(cfg.Logs.UseColour), width)
	output.KeyValue("level", notSet(cfg.Logs.Level), width)

	fmt.Println()
	output.Heading("HTTP")
	output.KeyValue("parse body", models.FormatValue(cfg.HTTP.ParseBody), width)
	output.KeyValue("parse indent", models.FormatValue(cfg.HTTP.ParseIndent), width)
	output.KeyValue("timeout", cfg.RequestTimeout().String(), width)

	fmt.Println()
	output.PrintNotice("change a value with 'soar config set <key> <value>'; list keys with 'soar config keys'")
}

func runConfigSetup(cmd *cobra.Command, _ []string) error {
	local, _ := cmd.Flags().GetBool("local")
	link, _ := cmd.Flags().GetString("link")
	force, _ := cmd.Flags().GetBool("force")

	if local {
		return setupLocal(link, force)
	}
	if link != "" {
		return session.NewArgumentError("--link can only be used with --local")
	}
	return setupGlobal(force)
}

func setupLocal(link string, force bool) error {
	if config.LocalExists() {
		output.Info("existing local config file found")
		if force {
			output.Info("overwrite mode forced for local config")
		} else if ok, err := confirm("Do you want to overwrite this file?"); err != nil || !ok {
			return err
		}
	}

	var (
		cfg *config.Config
		err error
	)
	switch {
	case link != "":
		cfg, err = loadLinked(link)
	case !config.GlobalExists():
		output.Warning("no global config found; the local config starts from defaults")
		cfg = config.Default()
	default:
		cfg, err = loadScoped(false)
	}
	if err != nil {
		return err
	}

	if err := config.SaveLocal(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	path, _ := config.GetLocalConfigPath()
	output.Success("setup a new local config at: " + path)
	return nil
}

func loadLinked(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &session.NotFoundError{Resource: "config file", ID: path}
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf(errFailedToLoadConfiguration, err)
	}
	return cfg, nil
}

func setupGlobal(force bool) error {
	cfg, err := loadScoped(false)
	if err != nil {
		return err
	}

	if config.GlobalExists() && !force {
		ok, err := confirm("A global config already exists. Update it?")
		if err != nil || !ok {
			return err
		}
	}

	check := func(key string) func(string) error {
		return func(v string) error { return config.Set(config.Default(), key, v) }
	}
	fields := []field{
		{title: "Application API URL", value: &cfg.Application.URL, check: check("application.url")},
		{title: "Application API key", value: &cfg.Application.Key, secret: true},
		{title: "Client API URL", value: &cfg.Client.URL, check: check("client.url")},
		{title: "Client API key", value: &cfg.Client.Key, secret: true},
	}
	if err := askFields(fields); err != nil {
		return err
	}

	cfg.Version = config.CurrentVersion
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	path, _ := config.GetConfigPath()
	output.Success("saved global config at: " + path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	local, _ := cmd.Flags().GetBool("local")

	if err := config.Set(config.Default(), key, value); err != nil {
		return session.NewArgumentError(err.Error(), "you can view all config keys with the 'soar config keys' command")
	}

	if local {
		if err := config.SetLocal(key, value); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
	} else {
		cfg, err := loadScoped(false)
		if err != nil {
			return err
		}
		if err := config.Set(cfg, key, value); err != nil {
			return session.NewArgumentError(err.Error())
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
	}

	shown := value
	if strings.HasSuffix(key, ".key") {
		shown = strings.Repeat("•", len([]rune(value)))
	}
	output.Success(fmt.Sprintf("updated %s config: %s = %s", strings.ToLower(scopeName(local)), key, shown))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	for _, key := range config.Keys() {
		def, _ := config.Get(cfg, key)
		if def == "" {
			fmt.Println(key)
			continue
		}
		fmt.Printf("%s (default: %s)\n", key, def)
	}
	return nil
}
