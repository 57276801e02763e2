package cli

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"deskentry/internal/config"
	"deskentry/internal/history"
	"deskentry/internal/installer"
	"deskentry/internal/launcher"
	"deskentry/internal/logx"
	"deskentry/internal/paths"
)

var (
	installFlags  entryFlags
	installDryRun bool
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a launcher entry for a script or program",
		RunE:  runInstall,
	}

	addEntryFlags(cmd, &installFlags)
	cmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Validate and show the plan without touching the filesystem")

	return cmd
}

type installResult struct {
	Name  string `json:"name"`
	Token string `json:"token"`
	installer.Outcome
}

func runInstall(cmd *cobra.Command, _ []string) error {
	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(dirs)
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, installFlags, cfg)
	if err != nil {
		return err
	}

	token := launcher.Sanitize(req.Name)
	plan := paths.Plan(dirs, token, req.ScriptPath, req.IconPath, req.CopyToDesktop)
	builder := launcher.Builder{Defaults: interpreterDefaults(cfg)}
	execCmd := builder.Build(req.Method, req.Interpreter, plan.ScriptFile)

	if installDryRun {
		if errs := launcher.ValidateRequest(req); len(errs) > 0 {
			return errs
		}
		return writePlan(cmd, req.Name, token, plan, execCmd)
	}

	ins := installer.Installer{History: history.DefaultStore(dirs)}
	if logger, closer, err := logx.New(dirs); err == nil {
		defer closer.Close()
		ins.Logger = logger
	}
	out, err := ins.Install(req, plan, execCmd)
	if err != nil {
		return err
	}

	return writeInstallResult(cmd, installResult{Name: req.Name, Token: token, Outcome: out}, cfg)
}

func writePlan(cmd *cobra.Command, name, token string, plan paths.InstallPlan, execCmd launcher.ExecCommand) error {
	if outputJSON {
		payload := installResult{
			Name:    name,
			Token:   token,
			Outcome: installer.Outcome{Plan: plan, Exec: execCmd},
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	fmt.Fprintln(out, bold.Render("PLAN:")+" "+name)

	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "  Script:\t%s\n", plan.ScriptFile)
	fmt.Fprintf(w, "  Icon:\t%s\n", plan.IconFile)
	fmt.Fprintf(w, "  Shortcut:\t%s\n", plan.DescriptorFile)
	if plan.DesktopFile != "" {
		fmt.Fprintf(w, "  Desktop:\t%s\n", plan.DesktopFile)
	}
	fmt.Fprintf(w, "  Exec:\t%s\n", execCmd.Line)
	w.Flush()
	return nil
}

func writeInstallResult(cmd *cobra.Command, result installResult, cfg config.Config) error {
	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, green.Render("Successfully created shortcut for")+" "+bold.Render(result.Name))

	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "  Script copied to:\t%s\n", result.Plan.ScriptFile)
	fmt.Fprintf(w, "  Primary shortcut:\t%s\n", result.Plan.DescriptorFile)
	fmt.Fprintf(w, "  Icon copied to:\t%s\n", result.Plan.IconFile)
	if result.DesktopCopied {
		fmt.Fprintf(w, "  Desktop shortcut:\t%s\n", result.Plan.DesktopFile)
	}
	fmt.Fprintf(w, "  Exec command:\t%s\n", result.Exec.Line)
	w.Flush()

	for _, warning := range result.Warnings {
		fmt.Fprintln(out, "  "+yellow.Render("WARN")+" "+warning.Message)
	}

	if cfg.HintsEnabled() {
		if _, err := exec.LookPath("update-desktop-database"); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run 'update-desktop-database' or log out/in for the shortcut to appear in menus.")
		}
	}
	return nil
}
