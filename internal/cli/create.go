package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deskentry/internal/history"
	"deskentry/internal/installer"
	"deskentry/internal/launcher"
	"deskentry/internal/logx"
	"deskentry/internal/paths"
	"deskentry/internal/tui"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a launcher entry interactively",
		RunE:  runCreate,
	}
}

func runCreate(cmd *cobra.Command, _ []string) error {
	if !tui.Interactive(os.Stdout) {
		return fmt.Errorf("create needs an interactive terminal; use 'deskentry install' with flags instead")
	}

	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(dirs)
	if err != nil {
		return err
	}

	store := history.DefaultStore(dirs)
	ins := installer.Installer{History: store}
	if logger, closer, err := logx.New(dirs); err == nil {
		defer closer.Close()
		ins.Logger = logger
	}

	// A broken history file should not block the form; it only feeds the
	// interpreter suggestions.
	entries, _ := store.Load()
	defaults := interpreterDefaults(cfg)

	install := func(req launcher.Request) (installer.Outcome, error) {
		req.ScriptPath = expandPath(req.ScriptPath)
		req.IconPath = expandPath(req.IconPath)
		token := launcher.Sanitize(req.Name)
		plan := paths.Plan(dirs, token, req.ScriptPath, req.IconPath, req.CopyToDesktop)
		builder := launcher.Builder{Defaults: defaults}
		execCmd := builder.Build(req.Method, req.Interpreter, plan.ScriptFile)
		return ins.Install(req, plan, execCmd)
	}

	form := tui.NewForm(cfg, entries, install)
	return tui.Run(cmd.OutOrStdout(), form)
}
