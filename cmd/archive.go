package cmd

import (
	"fmt"

	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the local session archive",
	Long: `Manage the local archive of session transcripts.

Archived transcripts live in a SQLite database under your home
directory and survive deletion of the session on the server. Use
"list --offline" and "show --offline" to browse them.`,
}

// archiveSaveCmd represents the archive save command
var archiveSaveCmd = &cobra.Command{
	Use:   "save <session-id>",
	Short: "Archive a session transcript locally",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agentID, err := requireAgent()
		if err != nil {
			return err
		}
		return archiveSession(cmd, newClient(), agentID, args[0])
	},
}

// archiveDeleteCmd represents the archive delete command
var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Remove a session from the local archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		path, err := internal.ArchivePath()
		if err != nil {
			return err
		}
		archive, err := internal.OpenArchive(path)
		if err != nil {
			return err
		}
		defer func() { _ = archive.Close() }()

		deleted, err := archive.DeleteSession(sessionID)
		if err != nil {
			return fmt.Errorf("failed to delete from archive: %w", err)
		}
		if !deleted {
			internal.PrintWarning(fmt.Sprintf("Session %s is not in the archive", sessionID))
			return nil
		}

		internal.PrintSuccess(fmt.Sprintf("Removed session %s from the archive", sessionID))
		return nil
	},
}

// archiveSession fetches a session transcript from the backend and
// stores it in the local archive
func archiveSession(cmd *cobra.Command, client *internal.Client, agentID, sessionID string) error {
	source := internal.NewAPISource(client, "")

	var transcript *internal.Transcript
	err := internal.ShowProgress(cmd.Context(), "Fetching transcript", func() error {
		var loadErr error
		transcript, loadErr = source.LoadTranscript(cmd.Context(), agentID, sessionID)
		return loadErr
	})
	if err != nil {
		return err
	}

	path, err := internal.ArchivePath()
	if err != nil {
		return err
	}
	archive, err := internal.OpenArchive(path)
	if err != nil {
		return err
	}
	defer func() { _ = archive.Close() }()

	if err := archive.SaveTranscript(transcript); err != nil {
		return err
	}

	internal.PrintSuccess(fmt.Sprintf("Archived session %s (%d messages)", sessionID, len(transcript.Messages)))
	return nil
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveSaveCmd)
	archiveCmd.AddCommand(archiveDeleteCmd)
}
