package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/output"
	"github.com/pteropackages/soar/pkg/query"
	"github.com/pteropackages/soar/pkg/session"
	"github.com/pteropackages/soar/pkg/validator"
)

// userFillKeys are copied from the current account when an update omits them.
var userFillKeys = []string{"username", "email", "first_name", "last_name", "language"}

var (
	getUsersCmd = &cobra.Command{
		Use:   "get-users",
		Short: "Fetches accounts from the panel",
		Long:  `Fetches all accounts from the panel (can specify or query with flags).`,
		Example: `  soar app get-users
  soar app get-users --id 4 --yaml
  soar app get-users --email bob@example.com -o`,
		Args: exactArgs(0),
		RunE: runGetUsers,
	}

	createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Creates a new account on the panel",
		Example: `  soar app create-user -d '{"username":"bob","email":"bob@example.com","first_name":"Bob","last_name":"Builder","language":"en"}'
  soar app create-user -f bob.yaml`,
		Args: exactArgs(0),
		RunE: runCreateUser,
	}

	updateUserCmd = &cobra.Command{
		Use:   "update-user <id>",
		Short: "Updates an account on the panel",
		Long:  `Updates a specified user account and shows the properties that changed.`,
		Example: `  soar app update-user 4 -d '{"language":"fr"}'
  soar app update-user 4 -f changes.yml --no-diff`,
		Args: exactArgs(1),
		RunE: runUpdateUser,
	}

	deleteUserCmd = &cobra.Command{
		Use:   "delete-user <id>",
		Short: "Deletes an account on the panel",
		Args:  exactArgs(1),
		RunE:  runDeleteUser,
	}
)

func init() {
	appCmd.AddCommand(getUsersCmd, createUserCmd, updateUserCmd, deleteUserCmd)

	addRequestFlags(getUsersCmd, models.FormatJSON)
	addUserFilterFlags(getUsersCmd)

	addRequestFlags(createUserCmd, models.FormatJSON)
	addPayloadFlags(createUserCmd, "create the user")

	addRequestFlags(updateUserCmd, models.FormatYAML)
	addPayloadFlags(updateUserCmd, "update the user")
	updateUserCmd.Flags().Bool("no-diff", false, "don't show the properties changed in the request")

	addSilentFlag(deleteUserCmd)
	deleteUserCmd.Flags().BoolP("no-prompt", "n", false, "don't ask for confirmation")
}

func runGetUsers(cmd *cobra.Command, _ []string) error {
	path, err := query.Users(userFilter(cmd))
	if err != nil {
		return filterError(err)
	}
	return request(cmd, session.ScopeApplication, models.FormatJSON, http.MethodGet, path)
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	flags := parseFlagOptions(cmd, models.FormatJSON)

	payload, err := readPayload(cmd, flags.Silent, validator.UserCreateRules())
	if err != nil {
		return err
	}

	s, err := newSession(session.ScopeApplication, flags)
	if err != nil {
		return err
	}

	ctx, cancel := getOperationContext(cmd, s, 2)
	defer cancel()

	base, _ := query.Users(query.UserFilter{})
	res, err := s.Request(ctx, http.MethodPost, base, payload)
	if err != nil {
		return wrapTimeoutError(err)
	}

	if _, empty := res.(session.NoContent); empty {
		email, _ := payload["email"].(string)
		path, err := query.Users(query.UserFilter{Email: email})
		if err != nil {
			return filterError(err)
		}
		if res, err = s.Request(ctx, http.MethodGet, path, nil); err != nil {
			return wrapTimeoutError(err)
		}
	}

	out, err := s.Close(res)
	if err != nil {
		return err
	}
	printResult(flags, "account created! request result:", out)
	return nil
}

func runUpdateUser(cmd *cobra.Command, args []string) error {
	id := args[0]
	flags := parseFlagOptions(cmd, models.FormatYAML)
	noDiff, _ := cmd.Flags().GetBool("no-diff")

	payload, err := readPayload(cmd, flags.Silent, validator.UserUpdateRules())
	if err != nil {
		return err
	}

	s, err := newSession(session.ScopeApplication, flags)
	if err != nil {
		return err
	}

	ctx, cancel := getOperationContext(cmd, s, 2)
	defer cancel()

	path, _ := query.Users(query.UserFilter{ID: id})
	current, err := s.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return wrapTimeoutError(err)
	}
	user, ok := current.(session.JSONBody)
	if !ok {
		return &session.NotFoundError{Resource: "user", ID: id}
	}
	before := output.Attributes(user.Value)
	fillUserPayload(payload, before)

	updated, err := s.Request(ctx, http.MethodPatch, path, payload)
	if err != nil {
		return wrapTimeoutError(err)
	}

	out, err := s.Close(updated)
	if err != nil {
		return err
	}

	if out == "" || noDiff {
		if !flags.Silent {
			output.Success(fmt.Sprintf("updated user account: %s", id))
		}
		return nil
	}

	after := before
	if body, ok := updated.(session.JSONBody); ok {
		after = output.Attributes(body.Value)
	}
	view := output.ComputeDiff(before, after, flags.Format)
	output.Success(output.DiffSummary(view))

	diff := view.Output
	if s.Colour() {
		diff = output.HighlightDiff(diff)
	}
	fmt.Println("\n" + diff)
	return nil
}

// fillUserPayload copies identity fields the panel requires on every update
// from the current account, and sends password as null when absent.
func fillUserPayload(payload, current map[string]any) {
	for _, key := range userFillKeys {
		if v, ok := payload[key]; ok && v != nil && v != "" {
			continue
		}
		if v, ok := current[key]; ok {
			payload[key] = v
		}
	}
	if _, ok := payload["password"]; !ok {
		payload["password"] = nil
	}
}

func runDeleteUser(cmd *cobra.Command, args []string) error {
	id := args[0]
	silent, _ := cmd.Flags().GetBool("silent")
	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	flags := models.FlagOptions{Silent: silent, PromptUser: !noPrompt, Format: models.FormatJSON}

	s, err := newSession(session.ScopeApplication, flags)
	if err != nil {
		return err
	}

	if flags.PromptUser {
		ok, err := confirm(fmt.Sprintf("Delete user account %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			output.Info("deletion canceled")
			return nil
		}
	}

	ctx, cancel := getOperationContext(cmd, s, 1)
	defer cancel()

	path, _ := query.Users(query.UserFilter{ID: id})
	if _, err := s.Request(ctx, http.MethodDelete, path, nil); err != nil {
		return wrapTimeoutError(err)
	}

	if !silent {
		output.Success(fmt.Sprintf("deleted user account: %s", id))
	}
	return nil
}
