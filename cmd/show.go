package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	showLimit   int
	showRender  bool
	showRaw     bool
	showOffline bool
)

var (
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true)

	userMessageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	workerMessageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	systemMessageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	messageContentStyle = lipgloss.NewStyle().
				PaddingLeft(2)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session transcript",
	Long: `Show the full chat transcript of a session.

Messages are fetched from the backend and rendered as a conversation
between you and the agent's workers. Use --render to format message
content as Markdown, or --raw to dump the transcript without styling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		source, closeSource, err := openSource(showOffline)
		if err != nil {
			return err
		}
		defer closeSource()

		var transcript *internal.Transcript
		err = internal.ShowProgress(cmd.Context(), "Loading transcript", func() error {
			var loadErr error
			transcript, loadErr = source.LoadTranscript(cmd.Context(), agentID, sessionID)
			return loadErr
		})
		if err != nil {
			return fmt.Errorf("failed to load transcript: %w", err)
		}

		if !showOffline {
			saveTranscriptToCache(transcript)
		}

		return displayTranscript(transcript)
	},
}

// saveTranscriptToCache writes a freshly fetched transcript into the
// local cache so later offline reads can find it
func saveTranscriptToCache(transcript *internal.Transcript) {
	cacheDir, err := internal.CacheDir()
	if err != nil {
		internal.LogDebug("Skipping transcript cache: %v", err)
		return
	}
	cacheManager := internal.NewCacheManager(cacheDir)
	if err := cacheManager.SaveTranscript(transcript); err != nil {
		internal.LogWarn("Failed to cache transcript: %v", err)
	}
}

func displayTranscript(transcript *internal.Transcript) error {
	if showRaw {
		for _, msg := range transcript.Messages {
			label := msg.Agent
			if msg.Role != "" {
				label = fmt.Sprintf("%s (%s)", msg.Agent, msg.Role)
			}
			fmt.Printf("[%s] %s: %s\n", msg.ID, label, msg.Content)
		}
		return nil
	}

	title := transcript.Session.Title
	if title == "" {
		title = transcript.Session.ID
	}
	fmt.Println(sessionHeaderStyle.Render("💬 " + title))

	meta := fmt.Sprintf("Session %s", transcript.Session.ID)
	if transcript.Session.Status != "" {
		meta += fmt.Sprintf(" • %s", transcript.Session.Status)
	}
	meta += fmt.Sprintf(" • %d message(s)", len(transcript.Messages))
	fmt.Println(sessionMetaStyle.Render(meta))
	fmt.Println()

	messages := transcript.Messages
	if showLimit > 0 && len(messages) > showLimit {
		skipped := len(messages) - showLimit
		messages = messages[skipped:]
		fmt.Println(sessionMetaStyle.Render(fmt.Sprintf("(showing last %d of %d messages)", showLimit, showLimit+skipped)))
		fmt.Println()
	}

	var renderer *glamour.TermRenderer
	if showRender {
		var err error
		renderer, err = glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
	}

	for _, msg := range messages {
		fmt.Println(renderMessageLabel(msg))

		content := msg.Content
		if renderer != nil {
			rendered, err := renderer.Render(content)
			if err != nil {
				internal.LogDebug("Markdown render failed: %v", err)
			} else {
				content = strings.TrimRight(rendered, "\n")
			}
		}
		fmt.Println(messageContentStyle.Render(content))
		fmt.Println()
	}

	return nil
}

// renderMessageLabel picks the speaker label and style for a chat
// message based on its type and role
func renderMessageLabel(msg internal.ChatMessage) string {
	switch {
	case msg.Type == "user":
		return userMessageStyle.Render("👤 " + msg.Agent)
	case msg.Agent == "System":
		return systemMessageStyle.Render("⚠️  " + msg.Agent)
	case msg.Role != "":
		return workerMessageStyle.Render(fmt.Sprintf("🤖 %s (%s)", msg.Agent, msg.Role))
	default:
		return workerMessageStyle.Render("🤖 " + msg.Agent)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Show only the last N messages")
	showCmd.Flags().BoolVar(&showRender, "render", false, "Render message content as Markdown")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the transcript without styling")
	showCmd.Flags().BoolVar(&showOffline, "offline", false, "Load the transcript from the local archive")
}
