package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/client"
	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/output"
)

// Set via -ldflags "-X github.com/pteropackages/soar/cmd.Version=..."
var (
	Version   = "0.0.1"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the client version, build details, and the User-Agent sent to the panel.",
	Args:  exactArgs(0),
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	f := versionCmd.Flags()
	f.Bool("short", false, "print only the version number")
	f.Bool("json", false, "print version information as JSON")
	f.Bool("yaml", false, "print version information as YAML")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json", "yaml")
}

// buildInfo lists version fields in display order.
func buildInfo() [][2]string {
	return [][2]string{
		{"version", Version},
		{"commit", Commit},
		{"built", BuildDate},
		{"go", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
		{"user_agent", client.UserAgent(Version)},
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Println(Version)
		return nil
	}

	info := buildInfo()
	format := models.FormatText
	switch {
	case flagSet(cmd, "json"):
		format = models.FormatJSON
	case flagSet(cmd, "yaml"):
		format = models.FormatYAML
	}

	if format != models.FormatText {
		fields := make(map[string]any, len(info))
		for _, kv := range info {
			fields[kv[0]] = kv[1]
		}
		text, err := output.Render(fields, format, output.RenderOptions{Indent: true})
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	output.Heading("Soar Client")
	for _, kv := range info {
		output.KeyValue(kv[0], kv[1], 10)
	}
	return nil
}
