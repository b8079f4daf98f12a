package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var credentialKeys []string

// credentialsCmd represents the credentials command
var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage backend credentials",
	Long: `Manage the credentials the backend uses to run agents.

Credentials are stored server-side and referenced by ID. Key values
are write-only: the backend reports which key names a credential
holds, never their values.`,
}

// credentialsListCmd represents the credentials list command
var credentialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		api := internal.NewCredentialsAPI(newClient())
		credentials, err := api.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list credentials: %w", err)
		}

		if len(credentials) == 0 {
			fmt.Println(headerStyle.Render("🔑 No credentials stored"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("🔑 Found %d credential(s)", len(credentials))))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Type")+"\t"+titleStyle.Render("Keys")+"\t"+titleStyle.Render("Updated"))
		for _, cred := range credentials {
			keys := strings.Join(cred.KeyNames, ", ")
			if keys == "" {
				keys = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				idStyle.Render(cred.CredentialID),
				cred.CredentialType,
				keys,
				dateStyle.Render(formatWhen(cred.UpdatedAt)))
		}
		_ = w.Flush()
		return nil
	},
}

// credentialsGetCmd represents the credentials get command
var credentialsGetCmd = &cobra.Command{
	Use:   "get <credential-id>",
	Short: "Show one credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := internal.NewCredentialsAPI(newClient())
		cred, err := api.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get credential: %w", err)
		}

		fmt.Printf("ID:      %s\n", cred.CredentialID)
		fmt.Printf("Type:    %s\n", cred.CredentialType)
		fmt.Printf("Keys:    %s\n", strings.Join(cred.KeyNames, ", "))
		fmt.Printf("Created: %s\n", cred.CreatedAt)
		fmt.Printf("Updated: %s\n", cred.UpdatedAt)
		return nil
	},
}

// credentialsSaveCmd represents the credentials save command
var credentialsSaveCmd = &cobra.Command{
	Use:   "save <credential-id>",
	Short: "Create or update a credential",
	Long: `Create or update a credential on the backend.

Key values are passed as repeated --key name=value flags:

  hive-session credentials save openai --key api_key=sk-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := make(map[string]string, len(credentialKeys))
		for _, pair := range credentialKeys {
			name, value, found := strings.Cut(pair, "=")
			if !found || name == "" {
				return fmt.Errorf("invalid --key %q (expected name=value)", pair)
			}
			keys[name] = value
		}
		if len(keys) == 0 {
			return fmt.Errorf("no keys given (use --key name=value)")
		}

		api := internal.NewCredentialsAPI(newClient())
		savedID, err := api.Save(cmd.Context(), args[0], keys)
		if err != nil {
			return fmt.Errorf("failed to save credential: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Saved credential %s", savedID))
		return nil
	},
}

// credentialsDeleteCmd represents the credentials delete command
var credentialsDeleteCmd = &cobra.Command{
	Use:   "delete <credential-id>",
	Short: "Delete a credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := internal.NewCredentialsAPI(newClient())
		deleted, err := api.Delete(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}
		if !deleted {
			internal.PrintWarning(fmt.Sprintf("Credential %s was not deleted", args[0]))
			return nil
		}

		internal.PrintSuccess(fmt.Sprintf("Deleted credential %s", args[0]))
		return nil
	},
}

// credentialsCheckCmd represents the credentials check command
var credentialsCheckCmd = &cobra.Command{
	Use:   "check <agent-path>",
	Short: "Check which credentials an agent needs",
	Long: `Check which credentials an agent definition requires and whether
each one is already available on the backend.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := internal.NewCredentialsAPI(newClient())
		requirements, err := api.CheckAgent(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to check agent credentials: %w", err)
		}

		if len(requirements) == 0 {
			internal.PrintSuccess("Agent requires no credentials")
			return nil
		}

		missing := 0
		for _, req := range requirements {
			status := "✅"
			if !req.Available {
				status = "❌"
				missing++
			}
			fmt.Printf("%s %s (%s)", status, req.CredentialName, req.CredentialID)
			if req.EnvVar != "" {
				fmt.Printf(" (env %s)", req.EnvVar)
			}
			fmt.Println()
			if req.Description != "" {
				fmt.Printf("   %s\n", req.Description)
			}
			if !req.Available && req.HelpURL != "" {
				fmt.Printf("   Get one at: %s\n", req.HelpURL)
			}
		}

		fmt.Println()
		if missing == 0 {
			internal.PrintSuccess(fmt.Sprintf("All %d required credential(s) available", len(requirements)))
		} else {
			internal.PrintWarning(fmt.Sprintf("%d of %d required credential(s) missing", missing, len(requirements)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(credentialsCmd)
	credentialsCmd.AddCommand(credentialsListCmd)
	credentialsCmd.AddCommand(credentialsGetCmd)
	credentialsCmd.AddCommand(credentialsSaveCmd)
	credentialsCmd.AddCommand(credentialsDeleteCmd)
	credentialsCmd.AddCommand(credentialsCheckCmd)

	credentialsSaveCmd.Flags().StringArrayVar(&credentialKeys, "key", nil, "Credential key as name=value (repeatable)")
}
