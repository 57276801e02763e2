package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"deskentry/internal/installer"
	"deskentry/internal/launcher"
	"deskentry/internal/paths"
)

var previewFlags entryFlags

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the descriptor an install would write, without installing",
		RunE:  runPreview,
	}

	addEntryFlags(cmd, &previewFlags)

	return cmd
}

func runPreview(cmd *cobra.Command, _ []string) error {
	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(dirs)
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, previewFlags, cfg)
	if err != nil {
		return err
	}
	if req.ScriptPath == "" {
		return fmt.Errorf("--script is required")
	}

	token := launcher.Sanitize(req.Name)
	plan := paths.Plan(dirs, token, req.ScriptPath, req.IconPath, req.CopyToDesktop)
	builder := launcher.Builder{Defaults: interpreterDefaults(cfg)}
	execCmd := builder.Build(req.Method, req.Interpreter, plan.ScriptFile)

	descriptor := installer.Descriptor(req, plan, execCmd)

	if outputJSON {
		payload := struct {
			Token      string               `json:"token"`
			Plan       paths.InstallPlan    `json:"plan"`
			Exec       launcher.ExecCommand `json:"exec"`
			Descriptor string               `json:"descriptor"`
		}{token, plan, execCmd, string(descriptor.Marshal())}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(descriptor.Marshal()))
	return nil
}
