// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/7blacky7/ranobe/envconfig"
	"github.com/7blacky7/ranobe/logutil"
	_ "github.com/7blacky7/ranobe/provider/readlightnovel"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "ranobe",
		Short:         "A scraper to read/download light novels with glow in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
			slog.Debug("configuration", "command", cmd.Name(), "env", envconfig.Values())
		},
		RunE: ReadHandler,
	}

	registerGlobalFlags(rootCmd)

	// Commands erstellen
	readCmd := newReadCmd()
	listCmd := newListCmd()
	downloadCmd := newDownloadCmd()
	pickCmd := newPickCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	common := []envconfig.EnvVar{
		envVars["RANOBE_PROVIDER"],
		envVars["RANOBE_BASE_URL"],
		envVars["RANOBE_TIMEOUT"],
		envVars["RANOBE_USER_AGENT"],
		envVars["RANOBE_DEBUG"],
	}
	display := []envconfig.EnvVar{
		envVars["RANOBE_SIZE"],
		envVars["RANOBE_THEME"],
		envVars["NO_COLOR"],
	}

	for _, cmd := range []*cobra.Command{rootCmd, readCmd, listCmd, downloadCmd, pickCmd} {
		switch cmd {
		case rootCmd, readCmd:
			appendEnvDocs(cmd, append(append(common, display...), envVars["RANOBE_WRAP"], envVars["RANOBE_PAGER"]))
		case downloadCmd:
			appendEnvDocs(cmd, append(common, display...))
		case pickCmd:
			appendEnvDocs(cmd, display)
		default:
			appendEnvDocs(cmd, common)
		}
	}

	rootCmd.AddCommand(
		readCmd,
		listCmd,
		downloadCmd,
		pickCmd,
	)

	return rootCmd
}

// registerGlobalFlags - Flags, die fuer alle Commands gelten
func registerGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("provider", "r", envconfig.Provider(), "Provider for light novels")
	flags.IntP("size", "s", int(envconfig.Size()), "Size of the list. Please only send in positive number")
	flags.String("theme", envconfig.Theme(), "Selector theme (plain, colorful)")
	flags.Int("wrap", int(envconfig.Wrap()), "Maximum text width")
	flags.Int("pages", 1, "Number of listing pages to load")
}
