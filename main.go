package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/infra/config"
	"github.com/CrestNiraj12/ideaboard/infra/editor"
	"github.com/CrestNiraj12/ideaboard/infra/ideaapi"
	"github.com/CrestNiraj12/ideaboard/infra/logging"
	"github.com/CrestNiraj12/ideaboard/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)

	cmd := &cobra.Command{
		Use:           "ideaboard",
		Short:         "Browse, upvote and discuss app ideas from the terminal",
		Args:          cobra.NoArgs,
		Version:       v,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("Idea Board %s\ncommit: %s\nbuilt: %s\n", v, c, d))

	flags := cmd.Flags()
	flags.String("api-url", "", "board API base URL (default http://localhost:8000)")
	flags.Duration("timeout", 0, "per-request timeout, e.g. 10s (default none)")
	flags.String("log-file", "", "log file path")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	return cmd
}

func run(cmd *cobra.Command) error {
	// 1. Load config from defaults, file, environment and flags.
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Build infrastructure.
	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting", zap.String("version", version), zap.String("api_url", cfg.APIURL))

	client := ideaapi.NewClient(cfg.APIURL, cfg.Timeout, log)

	// 3. Wire root TUI model; services satisfy the app.* interfaces.
	rootModel := tui.NewApp(tui.Deps{
		Ideas:    ideaapi.NewIdeaService(client),
		Comments: ideaapi.NewCommentService(client),
		Editor:   editor.NewEnvEditor(),
		Log:      log,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ideaboard: %w", err)
	}
	return nil
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
