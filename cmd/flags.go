package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/query"
)

// autoOutputFile is the --output value used when the flag is given without a
// file name; it is replaced by a timestamped name.
const autoOutputFile = "soar_log"

var now = time.Now

// addRequestFlags registers the flags shared by every request command.
func addRequestFlags(cmd *cobra.Command, defaultFormat models.Format) {
	f := cmd.Flags()
	f.Bool("json", defaultFormat == models.FormatJSON, "send the response output as JSON")
	f.Bool("yaml", defaultFormat == models.FormatYAML, "send the response output as YAML")
	f.Bool("text", defaultFormat == models.FormatText, "send the response output as formatted text")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml", "text")

	addSilentFlag(cmd)
	f.BoolP("no-prompt", "n", false, "don't prompt for user response after the request")
	f.StringP("output", "o", "", "write the output to a file (soar_log_<timestamp> when no name is given)")
	f.Lookup("output").NoOptDefVal = autoOutputFile
}

// joinOutputArgs rewrites "-o file" and "--output file" to "--output=file".
// The flag has a no-argument default, so pflag never reads the following
// word as its value on its own. A following word starting with "-" leaves
// the flag bare. Short clusters of boolean flags ending in "o" ("-so file")
// are split. Nothing after "--" is touched.
func joinOutputArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		prefix, ok := outputFlagPrefix(arg)
		if !ok || i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
			out = append(out, arg)
			continue
		}
		if prefix != "" {
			out = append(out, prefix)
		}
		out = append(out, "--output="+args[i+1])
		i++
	}
	return out
}

// outputFlagPrefix reports whether arg is a bare output flag, returning any
// boolean shorthands that precede "o" in a cluster.
func outputFlagPrefix(arg string) (string, bool) {
	switch {
	case arg == "-o" || arg == "--output":
		return "", true
	case len(arg) > 2 && arg[0] == '-' && arg[1] != '-' && strings.HasSuffix(arg, "o"):
		cluster := arg[1 : len(arg)-1]
		if strings.Trim(cluster, "sn") != "" {
			return "", false
		}
		return "-" + cluster, true
	}
	return "", false
}

func addSilentFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("silent", "s", false, "don't log request messages")
}

func addPayloadFlags(cmd *cobra.Command, what string) {
	cmd.Flags().StringP("data", "d", "", fmt.Sprintf("the json data to %s with", what))
	cmd.Flags().StringP("file", "f", "", "read the payload from a JSON or YAML file")
	cmd.Flags().Bool("strict", false, "treat unknown payload keys as errors")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	registerPayloadCompletion(cmd, "file")
}

func addUserFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("id", "", "the user ID to fetch")
	f.String("external", "", "the external user ID to fetch")
	f.String("email", "", "the email to query")
	f.String("username", "", "the user name to query")
	f.String("uuid", "", "the UUID to query")
}

// parseFlagOptions reads the shared request flags once per action.
func parseFlagOptions(cmd *cobra.Command, defaultFormat models.Format) models.FlagOptions {
	f := cmd.Flags()
	opts := models.FlagOptions{Format: defaultFormat}

	switch {
	case flagSet(cmd, "text"):
		opts.Format = models.FormatText
	case flagSet(cmd, "yaml"):
		opts.Format = models.FormatYAML
	case flagSet(cmd, "json"):
		opts.Format = models.FormatJSON
	}

	opts.Silent, _ = f.GetBool("silent")
	noPrompt, _ := f.GetBool("no-prompt")
	opts.PromptUser = !noPrompt

	if file, _ := f.GetString("output"); file != "" {
		opts.WriteFile = outputFileName(file, opts.Format)
	}
	return opts
}

// flagSet reports whether a format flag was turned on explicitly.
func flagSet(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return false
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func outputFileName(file string, format models.Format) string {
	if file == autoOutputFile {
		file = fmt.Sprintf("%s_%d", autoOutputFile, now().UnixMilli())
	}
	if filepath.Ext(file) == "" {
		file += format.Extension()
	}
	return file
}

func userFilter(cmd *cobra.Command) query.UserFilter {
	f := cmd.Flags()
	var uf query.UserFilter
	uf.ID, _ = f.GetString("id")
	uf.External, _ = f.GetString("external")
	uf.Email, _ = f.GetString("email")
	uf.Username, _ = f.GetString("username")
	uf.UUID, _ = f.GetString("uuid")
	return uf
}
