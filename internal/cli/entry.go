package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"deskentry/internal/config"
	"deskentry/internal/launcher"
)

// entryFlags holds the flag values shared by install and preview.
type entryFlags struct {
	name        string
	script      string
	icon        string
	method      string
	interpreter string
	terminal    bool
	comment     string
	categories  []string
	desktopCopy bool
}

func addEntryFlags(cmd *cobra.Command, flags *entryFlags) {
	cmd.Flags().StringVar(&flags.name, "name", "", "Application name shown in menus (default derived from the script filename)")
	cmd.Flags().StringVar(&flags.script, "script", "", "Path to the script or program to install")
	cmd.Flags().StringVar(&flags.icon, "icon", "", "Path to the icon file (png, svg, or xpm)")
	cmd.Flags().StringVar(&flags.method, "method", "", "Execution method: direct, python, java, bash, or custom")
	cmd.Flags().StringVar(&flags.interpreter, "interpreter", "", "Interpreter or command prefix; blank uses the method default from PATH")
	cmd.Flags().BoolVar(&flags.terminal, "terminal", false, "Run the application in a terminal window")
	cmd.Flags().StringVar(&flags.comment, "comment", "", "Tooltip comment stored in the entry")
	cmd.Flags().StringSliceVar(&flags.categories, "categories", nil, "Menu categories (repeat or comma-separate)")
	cmd.Flags().BoolVar(&flags.desktopCopy, "desktop-copy", false, "Also copy the launcher onto the Desktop")
}

// buildRequest combines flags with configured defaults. Flags that were not
// set on the command line fall back to the configuration.
func buildRequest(cmd *cobra.Command, flags entryFlags, cfg config.Config) (launcher.Request, error) {
	methodValue := flags.method
	if methodValue == "" {
		methodValue = cfg.DefaultMethod
	}
	method, err := launcher.ParseMethod(methodValue)
	if err != nil {
		return launcher.Request{}, err
	}

	script := expandPath(flags.script)
	name := strings.TrimSpace(flags.name)
	if name == "" && script != "" {
		name = launcher.SuggestName(script)
	}

	terminal := flags.terminal
	if !cmd.Flags().Changed("terminal") {
		terminal = cfg.Terminal
	}
	desktopCopy := flags.desktopCopy
	if !cmd.Flags().Changed("desktop-copy") {
		desktopCopy = cfg.CopyToDesktop
	}

	if errs := launcher.ValidateCategories(flags.categories, cfg.ExtraCategories); len(errs) > 0 {
		return launcher.Request{}, errs
	}

	return launcher.Request{
		Name:          name,
		ScriptPath:    script,
		IconPath:      expandPath(flags.icon),
		Method:        method,
		Interpreter:   flags.interpreter,
		Terminal:      terminal,
		Comment:       flags.comment,
		Categories:    flags.categories,
		CopyToDesktop: desktopCopy,
	}, nil
}

// interpreterDefaults converts the configured per-method overrides into the
// builder's keyed form, dropping entries that do not name a known method.
func interpreterDefaults(cfg config.Config) map[launcher.Method]string {
	if len(cfg.Interpreters) == 0 {
		return nil
	}
	defaults := make(map[launcher.Method]string, len(cfg.Interpreters))
	for name, command := range cfg.Interpreters {
		method, err := launcher.ParseMethod(name)
		if err != nil {
			continue
		}
		defaults[method] = command
	}
	return defaults
}

// expandPath turns a relative path absolute so descriptors never capture the
// invocation directory.
func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
