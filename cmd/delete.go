package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	deleteForce   bool
	deleteArchive bool
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session from the backend",
	Long: `Delete a session and its stored messages from the backend.

Deletion is permanent on the server side. Use --archive to save the
transcript into the local archive first, or --force to skip the
confirmation prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		if !deleteForce {
			fmt.Printf("Delete session %s? This cannot be undone. [y/N] ", sessionID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted")
				return nil
			}
		}

		client := newClient()

		if deleteArchive {
			if err := archiveSession(cmd, client, agentID, sessionID); err != nil {
				return fmt.Errorf("failed to archive before delete: %w", err)
			}
		}

		api := internal.NewSessionsAPI(client)

		var deletedID string
		err = internal.ShowProgress(cmd.Context(), "Deleting session", func() error {
			var deleteErr error
			deletedID, deleteErr = api.Delete(cmd.Context(), agentID, sessionID)
			return deleteErr
		})
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Deleted session %s", deletedID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without asking for confirmation")
	deleteCmd.Flags().BoolVar(&deleteArchive, "archive", false, "Archive the transcript locally before deleting")
}
