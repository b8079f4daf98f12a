package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

// checkpointsCmd represents the checkpoints command
var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints <session-id>",
	Short: "List the checkpoints of a session",
	Long: `List the checkpoints the backend has recorded for a session.

Checkpoints mark restorable points in a session's history. Use
"checkpoints restore" to resume execution from one of them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		api := internal.NewSessionsAPI(newClient())
		checkpoints, err := api.Checkpoints(cmd.Context(), agentID, sessionID)
		if err != nil {
			return fmt.Errorf("failed to list checkpoints: %w", err)
		}

		if len(checkpoints) == 0 {
			fmt.Println(headerStyle.Render("🔖 No checkpoints found"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("🔖 Found %d checkpoint(s)", len(checkpoints))))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Label")+"\t"+titleStyle.Render("Created"))
		for _, cp := range checkpoints {
			label := cp.Label
			if label == "" {
				label = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
				idStyle.Render(cp.ID),
				label,
				dateStyle.Render(formatWhen(cp.CreatedAt)))
		}
		_ = w.Flush()
		return nil
	},
}

// checkpointsRestoreCmd represents the checkpoints restore command
var checkpointsRestoreCmd = &cobra.Command{
	Use:   "restore <session-id> <checkpoint-id>",
	Short: "Restore a session to a checkpoint",
	Long: `Restore a session to one of its checkpoints and resume execution
from there. The backend starts a new execution and returns its ID.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, checkpointID := args[0], args[1]

		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		api := internal.NewSessionsAPI(newClient())

		var executionID string
		err = internal.ShowProgress(cmd.Context(), "Restoring checkpoint", func() error {
			var restoreErr error
			executionID, restoreErr = api.Restore(cmd.Context(), agentID, sessionID, checkpointID)
			return restoreErr
		})
		if err != nil {
			return fmt.Errorf("failed to restore checkpoint: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Restored %s to checkpoint %s (execution %s)", sessionID, checkpointID, executionID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkpointsCmd)
	checkpointsCmd.AddCommand(checkpointsRestoreCmd)
}
