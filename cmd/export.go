package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/hive-session/internal"
	"github.com/iksnae/hive-session/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportDir     string
	exportAll     bool
	exportOffline bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [session-id...]",
	Short: "Export session transcripts to files",
	Long: `Export chat transcripts to various formats (jsonl, md, yaml, json).

Pass one or more session IDs, or use --all to export every session of
the configured agent. Each transcript is written to its own file in
the output directory. Use 'hive-session list' to see session IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !exportAll {
			return fmt.Errorf("no sessions given (pass session IDs or use --all)")
		}

		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		source, closeSource, err := openSource(exportOffline)
		if err != nil {
			return err
		}
		defer closeSource()

		sessionIDs := args
		if exportAll {
			summaries, err := source.ListSessions(cmd.Context(), agentID)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			sessionIDs = make([]string, 0, len(summaries))
			for _, summary := range summaries {
				sessionIDs = append(sessionIDs, summary.ID)
			}
		}

		// Ensure output directory exists
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		err = internal.ShowProgress(cmd.Context(), fmt.Sprintf("Exporting %d session(s) to %s", len(sessionIDs), exportDir), func() error {
			for _, sessionID := range sessionIDs {
				transcript, err := source.LoadTranscript(cmd.Context(), agentID, sessionID)
				if err != nil {
					internal.LogError("Failed to load session %s: %v", sessionID, err)
					continue
				}

				filename := fmt.Sprintf("session_%s.%s", sessionID, exporter.Extension())
				outPath := filepath.Join(exportDir, filename)

				file, err := os.Create(outPath)
				if err != nil {
					internal.LogError("Failed to create file %s: %v", outPath, err)
					continue
				}

				if err := exporter.Export(transcript, file); err != nil {
					_ = file.Close()
					internal.LogError("Failed to export session %s: %v", sessionID, err)
					continue
				}

				if err := file.Close(); err != nil {
					internal.LogWarn("Failed to close file %s: %v", outPath, err)
				}
				exported++
			}
			return nil
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %d session(s) exported to %s", exported, exportDir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every session of the agent")
	exportCmd.Flags().BoolVar(&exportOffline, "offline", false, "Export from the local archive instead of the server")
}
