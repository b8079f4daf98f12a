package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

// agentsCmd represents the agents command
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the agents the backend knows about",
	Long: `List the agents registered on the backend.

The Name column shows the agent's configured display name, or a name
derived from its ID when none is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := internal.NewSessionsAPI(newClient())
		agents, err := api.Agents(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list agents: %w", err)
		}

		if len(agents) == 0 {
			fmt.Println(headerStyle.Render("📋 No agents registered"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("📋 Found %d agent(s)", len(agents))))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Status")+"\t"+titleStyle.Render("Path"))
		for _, agent := range agents {
			name := agent.Name
			if name == "" {
				name = internal.FormatAgentDisplayName(agent.ID)
			}
			path := agent.Path
			if path == "" {
				path = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				idStyle.Render(agent.ID),
				name,
				renderStatus(agent.Status),
				dateStyle.Render(path))
		}
		_ = w.Flush()

		fmt.Println()
		fmt.Println(idStyle.Render("💡 Tip: Pass an ID via --agent or " + internal.EnvAgent + " to browse its sessions"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
