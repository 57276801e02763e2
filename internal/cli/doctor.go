package cli

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"deskentry/internal/config"
	"deskentry/internal/history"
	"deskentry/internal/launcher"
	"deskentry/internal/paths"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment launcher installs depend on",
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	checks := []healthCheck{
		checkApplicationsDir(dirs),
		checkDesktopDir(dirs),
		checkInterpreters(),
		checkMenuRefresh(),
	}

	cfg, cfgPath, cfgErr := loadConfig(dirs)
	checks = append(checks, checkConfigFile(cfgPath, cfg, cfgErr))
	checks = append(checks, checkHistory(dirs))

	return writeDoctorResult(cmd, dirs.Home, checks)
}

func checkApplicationsDir(dirs paths.Dirs) healthCheck {
	exists, err := paths.DirExists(dirs.Applications)
	if err != nil {
		return healthCheck{Name: "Applications", Status: "error", Summary: err.Error()}
	}
	if !exists {
		return healthCheck{
			Name:    "Applications",
			Status:  "warning",
			Summary: fmt.Sprintf("%s missing; created on first install", dirs.Applications),
		}
	}
	return healthCheck{Name: "Applications", Status: "ok", Summary: dirs.Applications}
}

func checkDesktopDir(dirs paths.Dirs) healthCheck {
	if dirs.Desktop == "" {
		return healthCheck{
			Name:    "Desktop",
			Status:  "warning",
			Summary: "no desktop folder found; desktop copies unavailable",
		}
	}
	return healthCheck{Name: "Desktop", Status: "ok", Summary: dirs.Desktop}
}

func checkInterpreters() healthCheck {
	var found, missing []string
	for _, method := range launcher.Methods() {
		name := method.DefaultInterpreter()
		if name == "" {
			continue
		}
		if path, err := exec.LookPath(name); err == nil {
			found = append(found, name+" ("+path+")")
		} else {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return healthCheck{
			Name:    "Interpreters",
			Status:  "warning",
			Summary: "not on PATH: " + strings.Join(missing, ", "),
		}
	}
	return healthCheck{Name: "Interpreters", Status: "ok", Summary: strings.Join(found, ", ")}
}

func checkMenuRefresh() healthCheck {
	path, err := exec.LookPath("update-desktop-database")
	if err != nil {
		return healthCheck{
			Name:    "Menu refresh",
			Status:  "warning",
			Summary: "update-desktop-database not found; menus refresh on next login",
		}
	}
	return healthCheck{Name: "Menu refresh", Status: "ok", Summary: path}
}

func checkConfigFile(path string, cfg config.Config, cfgErr error) healthCheck {
	if cfgErr != nil {
		return healthCheck{Name: "Config", Status: "error", Summary: cfgErr.Error()}
	}

	summary := fmt.Sprintf("default method %s", cfg.DefaultMethod)
	if n := len(cfg.ExtraCategories); n > 0 {
		summary += fmt.Sprintf(", %d extra categories", n)
	}
	if exists, err := paths.FileExists(path); err == nil && !exists {
		summary += " (built-in defaults; no file)"
	}
	return healthCheck{Name: "Config", Status: "ok", Summary: summary}
}

func checkHistory(dirs paths.Dirs) healthCheck {
	entries, err := history.DefaultStore(dirs).Load()
	if err != nil {
		return healthCheck{Name: "History", Status: "warning", Summary: err.Error()}
	}
	if len(entries) == 0 {
		return healthCheck{Name: "History", Status: "ok", Summary: "no interpreters remembered"}
	}
	return healthCheck{Name: "History", Status: "ok", Summary: fmt.Sprintf("%d interpreters remembered", len(entries))}
}

func writeDoctorResult(cmd *cobra.Command, home string, checks []healthCheck) error {
	if outputJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("ENVIRONMENT HEALTH:")+" "+home)

	for _, c := range checks {
		var statusStr string
		switch c.Status {
		case "ok":
			statusStr = green.Render("OK")
		case "warning":
			statusStr = yellow.Render("WARN")
		case "error":
			statusStr = red.Render("ERROR")
		}
		fmt.Fprintf(out, "  %-14s %s    %s\n", c.Name+":", statusStr, c.Summary)
	}

	return nil
}
