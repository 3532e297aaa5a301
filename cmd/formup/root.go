package main

import (
	"fmt"
	"strings"

	"formup/internal/di"
	"formup/internal/domain/entity"
	"formup/internal/infrastructure/config"
	"formup/internal/infrastructure/env"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:          "formup",
		Short:        "Fill web forms with plausible synthetic values",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", defaults.LogLevel, "Logging level (debug, info, warn, error)")
	pf.Bool("log-json", defaults.LogJSON, "Write logs as JSON")
	pf.String("log-dir", defaults.LogDir, "Directory for per-run JSON log files")
	pf.Bool("headless", defaults.Headless, "Run the browser without a window")
	pf.Bool("no-sandbox", defaults.NoSandbox, "Disable the browser sandbox")
	pf.String("browser-bin", defaults.BrowserBin, "Browser binary to launch")
	pf.Duration("timeout", defaults.Timeout, "Timeout for page operations")
	pf.Duration("focus-delay", defaults.FocusDelay, "Delay before the first visible field is focused")
	pf.String("sample-data", defaults.SampleData, "YAML file overriding the sample data tables")
	pf.BoolP("verbose", "v", defaults.Verbose, "Print a per-field report")

	root.AddCommand(
		newFillCmd(),
		newFillHTMLCmd(),
		newServeCmd(),
		newPanelCmd(),
	)
	return root
}

// setup loads the environment and configuration and wires the container.
func setup(cmd *cobra.Command) (*di.Container, error) {
	envService := env.NewEnvService("")

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	container, err := di.NewContainer(cfg, cmd.Name())
	if err != nil {
		return nil, err
	}

	container.Logger.Debug("Environment loaded", "app_env", envService.AppEnv(), "files", envService.Loaded())
	return container, nil
}

func printReport(cmd *cobra.Command, summary *entity.FillSummary) {
	out := cmd.OutOrStdout()
	dim := color.New(color.Faint)
	for _, r := range summary.Results {
		line := fmt.Sprintf("%3d  %-28s %-22s", r.Index, r.Label, r.Status)
		if r.Intent != "" {
			line += " " + string(r.Intent)
		}
		if r.Value != "" {
			line += " = " + truncate(r.Value, 40)
		}
		if r.Err != nil {
			line += " (" + r.Err.Error() + ")"
		}
		dim.Fprintln(out, strings.TrimRight(line, " "))
	}
}

func printSummary(cmd *cobra.Command, summary *entity.FillSummary) {
	green := color.New(color.FgGreen)
	green.Fprintln(cmd.OutOrStdout(), summary.Message())
}

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
