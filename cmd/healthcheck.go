package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/hive-session/internal"
	"github.com/spf13/cobra"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if hive-session can reach the backend and its local data",
	Long: `Check the health of hive-session by verifying:
  • Configuration resolution
  • Backend server connectivity
  • Session cache state
  • Local archive accessibility

This command is useful for debugging connection issues, especially in
CI/CD environments. Run with --verbose for detailed diagnostics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Hive Session Health Check"))
		fmt.Println()

		// Step 1: Resolve configuration
		fmt.Println(infoStyle.Render("Step 1: Resolving configuration..."))
		fmt.Println(okStyle.Render("✅ Configuration resolved"))
		if verbose {
			fmt.Printf("   Server: %s\n", cfg.ServerURL)
			if configPath, err := internal.ConfigPath(); err == nil {
				fmt.Printf("   Config file: %s\n", configPath)
			}
		}
		if cfg.AgentID != "" {
			fmt.Printf("   Agent: %s\n", cfg.AgentID)
		} else {
			fmt.Println(warnStyle.Render("⚠️  No agent configured (set --agent or " + internal.EnvAgent + ")"))
		}
		fmt.Println()

		// Step 2: Check server connectivity
		fmt.Println(infoStyle.Render("Step 2: Checking server connectivity..."))
		api := internal.NewSessionsAPI(newClient())
		serverOK := false
		agents, err := api.Agents(cmd.Context())
		if err != nil {
			fmt.Println(failStyle.Render("❌ Server unreachable:"), err)
		} else {
			serverOK = true
			fmt.Println(okStyle.Render(fmt.Sprintf("✅ Server reachable, %d agent(s) registered", len(agents))))
			if verbose {
				for i, agent := range agents {
					if i < 5 { // Show first 5
						fmt.Printf("   [%d] %s\n", i+1, agent.ID)
					}
				}
				if len(agents) > 5 {
					fmt.Printf("   ... and %d more\n", len(agents)-5)
				}
			}
		}
		fmt.Println()

		// Step 3: Check session cache
		fmt.Println(infoStyle.Render("Step 3: Checking session cache..."))
		cacheDir, err := internal.CacheDir()
		if err != nil {
			fmt.Println(warnStyle.Render("⚠️  Cannot locate cache directory:"), err)
		} else {
			cacheManager := internal.NewCacheManager(cacheDir)
			files, bytes, err := cacheManager.Stats()
			if err != nil {
				fmt.Println(warnStyle.Render("⚠️  Error reading cache:"), err)
			} else if files == 0 {
				fmt.Println(okStyle.Render("✅ Cache is empty"))
			} else {
				fmt.Println(okStyle.Render(fmt.Sprintf("✅ Cache holds %d file(s), %d bytes", files, bytes)))
			}
			if verbose {
				fmt.Printf("   Directory: %s\n", cacheDir)
				if cfg.AgentID != "" {
					fresh, _ := cacheManager.IsFresh(cfg.ServerURL, cfg.AgentID, internal.DefaultCacheTTL)
					fmt.Printf("   Session index fresh: %t\n", fresh)
				}
			}
		}
		fmt.Println()

		// Step 4: Check local archive
		fmt.Println(infoStyle.Render("Step 4: Checking local archive..."))
		archivedCount := 0
		archivePath, err := internal.ArchivePath()
		if err != nil {
			fmt.Println(warnStyle.Render("⚠️  Cannot locate archive:"), err)
		} else {
			archive, err := internal.OpenArchive(archivePath)
			if err != nil {
				fmt.Println(failStyle.Render("❌ Failed to open archive:"), err)
			} else {
				archived, err := archive.ListSessions()
				if err != nil {
					fmt.Println(warnStyle.Render("⚠️  Error reading archive:"), err)
				} else {
					archivedCount = len(archived)
					fmt.Println(okStyle.Render(fmt.Sprintf("✅ Archive open, %d session(s) stored", archivedCount)))
				}
				_ = archive.Close()
			}
			if verbose {
				fmt.Printf("   Database: %s\n", archivePath)
			}
		}
		fmt.Println()

		// Step 5: Check agent sessions
		sessionCount := 0
		if serverOK && cfg.AgentID != "" {
			fmt.Println(infoStyle.Render("Step 5: Loading agent sessions..."))
			sessions, err := api.List(cmd.Context(), cfg.AgentID)
			if err != nil {
				fmt.Println(warnStyle.Render("⚠️  Failed to list sessions:"), err)
			} else {
				sessionCount = len(sessions)
				if sessionCount > 0 {
					fmt.Println(okStyle.Render(fmt.Sprintf("✅ Found %d session(s)", sessionCount)))
					if verbose {
						for i, session := range sessions {
							if i < 5 { // Show first 5
								title := session.Title
								if title == "" {
									title = "Untitled"
								}
								fmt.Printf("   [%d] %s (ID: %s)\n", i+1, title, session.ID)
							}
						}
						if len(sessions) > 5 {
							fmt.Printf("   ... and %d more\n", len(sessions)-5)
						}
					}
				} else {
					fmt.Println(warnStyle.Render("⚠️  No sessions found for this agent"))
				}
			}
			fmt.Println()
		}

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()

		if serverOK && cfg.AgentID != "" {
			fmt.Println(okStyle.Render("✅ Health check passed!"))
			fmt.Println(okStyle.Render("   • Server: Reachable"))
			fmt.Println(okStyle.Render(fmt.Sprintf("   • Sessions: %d found", sessionCount)))
			fmt.Println(okStyle.Render(fmt.Sprintf("   • Archive: %d session(s)", archivedCount)))
			return nil
		} else if serverOK {
			fmt.Println(warnStyle.Render("⚠️  Server reachable but no agent configured"))
			fmt.Println("   • Pick an agent with 'hive-session agents'")
			fmt.Println("   • Then set it via --agent or " + internal.EnvAgent)
			return nil
		}

		fmt.Println(failStyle.Render("❌ Health check failed"))
		fmt.Println("   • Backend server is unreachable")
		fmt.Println("   • Check the server URL and that the backend is running")
		return fmt.Errorf("health check failed: server unreachable")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
