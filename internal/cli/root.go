package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deskentry/internal/config"
	"deskentry/internal/paths"
)

var (
	configPath string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deskentry",
		Short: "Generate desktop launcher entries for scripts and programs",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newCategoriesCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadConfig reads the effective configuration, honoring the --config
// override, and reports the path it used.
func loadConfig(dirs paths.Dirs) (config.Config, string, error) {
	path := configPath
	if path == "" {
		path = dirs.ConfigFile()
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}
