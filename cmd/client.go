package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/query"
	"github.com/pteropackages/soar/pkg/session"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Commands for interacting with the Client API",
}

var (
	getAccountCmd = &cobra.Command{
		Use:   "get-account",
		Short: "Fetches the account of the client API key",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return request(cmd, session.ScopeClient, models.FormatJSON, http.MethodGet, query.Account())
		},
	}

	getPermissionsCmd = &cobra.Command{
		Use:   "get-permissions",
		Short: "Fetches the system permission keys",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return request(cmd, session.ScopeClient, models.FormatJSON, http.MethodGet, query.Permissions())
		},
	}

	getClientServersCmd = &cobra.Command{
		Use:   "get-servers",
		Short: "Fetches the servers the client API key can access",
		Args:  exactArgs(0),
		RunE:  runGetClientServers,
	}
)

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.AddCommand(getAccountCmd, getPermissionsCmd, getClientServersCmd)

	addRequestFlags(getAccountCmd, models.FormatJSON)
	addRequestFlags(getPermissionsCmd, models.FormatJSON)
	addRequestFlags(getClientServersCmd, models.FormatJSON)
	getClientServersCmd.Flags().String("id", "", "the server identifier to fetch")
}

func runGetClientServers(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")
	return request(cmd, session.ScopeClient, models.FormatJSON, http.MethodGet, query.ClientServers(id))
}
