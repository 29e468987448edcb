package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/internal/config"
	"github.com/phanxgames/bramble/internal/demo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var demoCmd = &cobra.Command{
	Use:   "demo <name>",
	Short: "Open a demo window",
	Long: `Open one of the bundled demos. Run "bramble list" for the names.

Examples:
  # Overlapping boxes with exclusive hover
  bramble demo stack

  # Replay a recorded script, save its screenshots and exit
  bramble demo row --script row.json --exit`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDemoNames,
	RunE:              runDemo,
}

var (
	demoScript string
	demoExit   bool
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoScript, "script", "", "JSON input script to replay")
	demoCmd.Flags().BoolVar(&demoExit, "exit", false, "close the window when the script finishes")
	demoCmd.Flags().Bool("fps", false, "show the FPS overlay")
	demoCmd.Flags().Bool("debug", false, "draw widget bounds and log frame stats")
	_ = viper.BindPFlag("show_fps", demoCmd.Flags().Lookup("fps"))
	_ = viper.BindPFlag("debug", demoCmd.Flags().Lookup("debug"))
}

func runDemo(_ *cobra.Command, args []string) error {
	d, ok := demo.Find(args[0])
	if !ok {
		return fmt.Errorf("unknown demo %q (try: %s)", args[0], strings.Join(demoNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bramble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	run := cfg.RunConfig("bramble: " + d.Name)
	if demoScript != "" {
		script, err := os.ReadFile(demoScript)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		run.Script = script
		run.ExitAfterScript = demoExit
	}
	return d.Run(bramble.NewApplication(run))
}

func demoNames() []string {
	var names []string
	for _, d := range demo.All() {
		names = append(names, d.Name)
	}
	return names
}

func completeDemoNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return demoNames(), cobra.ShellCompDirectiveNoFileComp
}
