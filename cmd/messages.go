package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	messagesNode string
	messagesJSON bool
)

// messagesCmd represents the messages command
var messagesCmd = &cobra.Command{
	Use:   "messages <session-id>",
	Short: "Print the raw client messages of a session",
	Long: `Print the backend's stored client messages for a session without
transcript formatting.

Only client-visible messages are returned. Use --node to restrict the
output to messages produced by a single worker node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		api := internal.NewSessionsAPI(newClient())
		messages, err := api.Messages(cmd.Context(), agentID, sessionID, messagesNode)
		if err != nil {
			return fmt.Errorf("failed to fetch messages: %w", err)
		}

		if messagesJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(messages)
		}

		for _, msg := range messages {
			label := msg.Role
			if msg.NodeID != "" {
				label = fmt.Sprintf("%s/%s", msg.Role, msg.NodeID)
			}
			fmt.Printf("%4d  %-24s %s\n", msg.Seq, label, msg.Content)
		}
		if len(messages) == 0 {
			fmt.Println("No messages")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.Flags().StringVar(&messagesNode, "node", "", "Only show messages from this worker node")
	messagesCmd.Flags().BoolVar(&messagesJSON, "json", false, "Print messages as JSON")
}
