package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	serverFlag  string
	agentFlag   string
	timeoutSecs int
	cfg         internal.Config
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hive-session",
	Short: "Browse, stream and export Hive agent sessions",
	Long: `A CLI client for the Hive agent platform's session API.

hive-session talks to a running backend server and turns stored
sessions and live agent events into chat transcripts you can read,
watch, export and archive.

Features:
  • List stored sessions for an agent with metadata
  • Show full session transcripts with chat formatting
  • Watch live agent events as they stream in
  • Export transcripts in multiple formats (JSONL, Markdown, YAML, JSON)
  • Archive transcripts locally so they survive session deletion
  • Manage backend credentials

Quick Start:
  hive-session list --agent my-agent       # List sessions
  hive-session show <session-id>           # View a transcript
  hive-session watch                       # Stream live events
  hive-session export --all --format md    # Export as Markdown

For detailed usage, see: https://github.com/iksnae/hive-session`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
		cfg = internal.ResolveConfig(serverFlag, agentFlag)
		internal.LogDebug("Using server %s", cfg.ServerURL)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient creates an API client from the resolved configuration
func newClient() *internal.Client {
	client := internal.NewClient(cfg.ServerURL)
	if timeoutSecs > 0 {
		client.SetTimeout(time.Duration(timeoutSecs) * time.Second)
	}
	return client
}

// requireAgent returns the configured agent ID or an error telling the
// user how to set one
func requireAgent() (string, error) {
	if cfg.AgentID == "" {
		return "", fmt.Errorf("no agent configured (use --agent, %s or the config file)", internal.EnvAgent)
	}
	return cfg.AgentID, nil
}

// openSource returns the session source commands read from: the live
// backend, or the local archive when offline is set
func openSource(offline bool) (internal.SessionSource, func(), error) {
	if offline {
		path, err := internal.ArchivePath()
		if err != nil {
			return nil, nil, err
		}
		archive, err := internal.OpenArchive(path)
		if err != nil {
			return nil, nil, err
		}
		return internal.NewArchiveSource(archive), func() { _ = archive.Close() }, nil
	}
	return internal.NewAPISource(newClient(), ""), func() {}, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", fmt.Sprintf("Backend server URL (default %s)", internal.DefaultServerURL))
	rootCmd.PersistentFlags().StringVarP(&agentFlag, "agent", "a", "", "Agent ID to operate on")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 0, "Request timeout in seconds (0 uses the default)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
