package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/query"
	"github.com/pteropackages/soar/pkg/session"
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Commands for interacting with the Application API",
}

var (
	getServersCmd = &cobra.Command{
		Use:   "get-servers",
		Short: "Fetches servers from the panel",
		Args:  exactArgs(0),
		RunE:  runGetServers,
	}

	getNodesCmd = &cobra.Command{
		Use:   "get-nodes",
		Short: "Fetches nodes from the panel",
		Args:  exactArgs(0),
		RunE:  runGetNodes,
	}

	getLocationsCmd = &cobra.Command{
		Use:   "get-locations",
		Short: "Fetches node locations from the panel",
		Args:  exactArgs(0),
		RunE:  runGetLocations,
	}

	getNestsCmd = &cobra.Command{
		Use:   "get-nests",
		Short: "Fetches nests from the panel",
		Long:  `Fetches nests from the panel. With --id and --eggs, lists the eggs of that nest.`,
		Example: `  soar app get-nests
  soar app get-nests --id 1 --eggs --text`,
		Args: exactArgs(0),
		RunE: runGetNests,
	}
)

func init() {
	rootCmd.AddCommand(appCmd)
	appCmd.AddCommand(getServersCmd, getNodesCmd, getLocationsCmd, getNestsCmd)

	addRequestFlags(getServersCmd, models.FormatJSON)
	getServersCmd.Flags().String("id", "", "the server ID to fetch")
	getServersCmd.Flags().String("external", "", "the external server ID to fetch")

	addRequestFlags(getNodesCmd, models.FormatJSON)
	getNodesCmd.Flags().String("id", "", "the node ID to fetch")

	addRequestFlags(getLocationsCmd, models.FormatJSON)
	getLocationsCmd.Flags().String("id", "", "the location ID to fetch")

	addRequestFlags(getNestsCmd, models.FormatJSON)
	getNestsCmd.Flags().String("id", "", "the nest ID to fetch")
	getNestsCmd.Flags().Bool("eggs", false, "list the eggs of the nest given by --id")
	getNestsCmd.Flags().String("egg", "", "the egg ID to fetch from the nest given by --id")
}

func runGetServers(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")
	external, _ := cmd.Flags().GetString("external")

	path, err := query.Servers(id, external)
	if err != nil {
		return filterError(err)
	}
	return request(cmd, session.ScopeApplication, models.FormatJSON, http.MethodGet, path)
}

func runGetNodes(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")
	return request(cmd, session.ScopeApplication, models.FormatJSON, http.MethodGet, query.Nodes(id))
}

func runGetLocations(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")
	return request(cmd, session.ScopeApplication, models.FormatJSON, http.MethodGet, query.Locations(id))
}

func runGetNests(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")
	eggs, _ := cmd.Flags().GetBool("eggs")
	egg, _ := cmd.Flags().GetString("egg")

	path := query.Nests(id)
	if eggs || egg != "" {
		if id == "" {
			return session.NewArgumentError("--eggs and --egg need a nest --id")
		}
		path = query.Eggs(id, egg)
	}
	return request(cmd, session.ScopeApplication, models.FormatJSON, http.MethodGet, path)
}
