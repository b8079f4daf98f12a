package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	watchJSON      bool
	watchExecution string
	watchName      string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch live agent events as a chat stream",
	Long: `Watch the agent's event stream and render it as a live chat.

Worker output is streamed incrementally as it is produced. Input
requests and execution failures show up as system messages. Press
Ctrl-C to stop watching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		displayName := watchName
		if displayName == "" {
			displayName = internal.FormatAgentDisplayName(agentID)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client := newClient()
		reader, err := client.OpenEvents(ctx, agentID)
		if err != nil {
			return fmt.Errorf("failed to open event stream: %w", err)
		}
		defer func() { _ = reader.Close() }()

		if !watchJSON {
			fmt.Println(headerStyle.Render(fmt.Sprintf("🔍 Watching events for %s (Ctrl-C to stop)", agentID)))
		}

		normalizer := internal.NewNormalizer()
		thread := internal.NewChatThread(agentID)
		// Bytes of each message already written to the terminal, so
		// stream updates only print the new suffix
		printed := make(map[string]int)

		for {
			frame, err := reader.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					fmt.Println()
					internal.PrintInfo("Event stream closed by server")
					return nil
				}
				if ctx.Err() != nil {
					fmt.Println()
					internal.PrintInfo("Stopped")
					return nil
				}
				return fmt.Errorf("event stream failed: %w", err)
			}

			ev, err := internal.DecodeAgentEvent(frame)
			if err != nil {
				internal.LogDebug("Skipping undecodable event: %v", err)
				continue
			}
			if watchExecution != "" && ev.ExecutionID != watchExecution {
				continue
			}

			msg := normalizer.EventToChat(*ev, agentID, displayName, nil)
			if msg == nil {
				continue
			}

			if watchJSON {
				line, err := json.Marshal(msg)
				if err != nil {
					internal.LogDebug("Failed to encode message: %v", err)
					continue
				}
				fmt.Println(string(line))
				continue
			}

			if thread.Upsert(*msg) {
				fmt.Println()
				fmt.Println(renderMessageLabel(*msg))
			}
			if n := printed[msg.ID]; len(msg.Content) > n {
				fmt.Print(msg.Content[n:])
				printed[msg.ID] = len(msg.Content)
			} else if len(msg.Content) < n {
				fmt.Println()
				fmt.Print(msg.Content)
				printed[msg.ID] = len(msg.Content)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Print each chat message as a JSON line")
	watchCmd.Flags().StringVar(&watchExecution, "execution", "", "Only show events from this execution")
	watchCmd.Flags().StringVar(&watchName, "name", "", "Display name to use for the agent")
}
