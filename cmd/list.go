package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	listOffline    bool
	listClearCache bool
	listNoCache    bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions stored for an agent",
	Long: `List the sessions the backend has stored for the configured agent.

Results are cached locally for a few minutes so repeated listings do
not hit the server. Use --no-cache to force a fresh fetch, or
--offline to list locally archived sessions instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agentID, err := requireAgent()
		if err != nil {
			return err
		}

		if listOffline {
			source, closeSource, err := openSource(true)
			if err != nil {
				return err
			}
			defer closeSource()

			summaries, err := source.ListSessions(cmd.Context(), agentID)
			if err != nil {
				return fmt.Errorf("failed to list archived sessions: %w", err)
			}
			displaySessionTable(summaries)
			return nil
		}

		cacheDir, err := internal.CacheDir()
		if err != nil {
			return fmt.Errorf("failed to locate cache directory: %w", err)
		}
		cacheManager := internal.NewCacheManager(cacheDir)

		if listClearCache {
			if err := cacheManager.ClearCache(); err != nil {
				internal.LogWarn("Failed to clear cache: %v", err)
			} else {
				internal.LogInfo("Cache cleared")
			}
		}

		// Serve from cache while it is still fresh for this server and agent
		if !listNoCache {
			if fresh, _ := cacheManager.IsFresh(cfg.ServerURL, agentID, internal.DefaultCacheTTL); fresh {
				index, err := cacheManager.LoadIndex()
				if err == nil {
					internal.LogInfo("Loaded %d session(s) from cache", len(index.Sessions))
					displaySessionTable(index.Sessions)
					return nil
				}
				internal.LogWarn("Failed to load cache: %v, fetching from server...", err)
			}
		}

		api := internal.NewSessionsAPI(newClient())

		var summaries []internal.SessionSummary
		err = internal.ShowProgress(cmd.Context(), "Fetching sessions", func() error {
			var fetchErr error
			summaries, fetchErr = api.List(cmd.Context(), agentID)
			return fetchErr
		})
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if err := cacheManager.SaveSummaries(summaries, cfg.ServerURL, agentID); err != nil {
			internal.LogWarn("Failed to save cache: %v", err)
		}

		displaySessionTable(summaries)
		return nil
	},
}

func displaySessionTable(summaries []internal.SessionSummary) {
	if len(summaries) == 0 {
		fmt.Println(headerStyle.Render("📋 No sessions found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d session(s)", len(summaries)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Status")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Updated"))
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, summary := range summaries {
		title := summary.Title
		if title == "" {
			title = "Untitled"
		}
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		titleCell := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Render(title)

		shortID := summary.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			idStyle.Render(shortID),
			titleCell,
			renderStatus(summary.Status),
			countStyle.Render(strconv.Itoa(summary.MessageCount)),
			dateStyle.Render(formatWhen(summary.UpdatedAt)))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the full ID (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(summaries[0].ID) +
		idStyle.Render(") with `hive-session show <id>`"))
}

func renderStatus(status string) string {
	switch status {
	case "active":
		return countStyle.Render(status)
	case "failed":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(status)
	case "":
		return dateStyle.Render("-")
	default:
		return dateStyle.Render(status)
	}
}

// formatWhen renders an RFC3339 timestamp relative to now, falling
// back to the raw date portion when it does not parse
func formatWhen(ts string) string {
	if ts == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}

	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listOffline, "offline", false, "List locally archived sessions instead of asking the server")
	listCmd.Flags().BoolVar(&listClearCache, "clear-cache", false, "Clear the session cache before running")
	listCmd.Flags().BoolVar(&listNoCache, "no-cache", false, "Skip the cache and always fetch from the server")
}
