package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dirs captures the standard per-user directories the generator installs
// into. Desktop is empty when no desktop folder could be determined; every
// other field is always set.
type Dirs struct {
	Home         string
	DataHome     string
	ConfigHome   string
	StateHome    string
	Applications string
	IconBase     string
	Desktop      string
}

// Resolve determines the standard user directories from the environment.
// A missing home directory is fatal; a missing desktop folder is not and
// leaves Desktop empty.
func Resolve() (Dirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dirs{}, fmt.Errorf("detect user home: %w", err)
	}

	dataHome := xdgDir("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	return Dirs{
		Home:         home,
		DataHome:     dataHome,
		ConfigHome:   xdgDir("XDG_CONFIG_HOME", filepath.Join(home, ".config")),
		StateHome:    xdgDir("XDG_STATE_HOME", filepath.Join(home, ".local", "state")),
		Applications: filepath.Join(dataHome, "applications"),
		IconBase:     dataHome,
		Desktop:      resolveDesktop(home),
	}, nil
}

// xdgDir returns the environment override when it is an absolute path, per
// the basedir spec, and the fallback otherwise.
func xdgDir(env, fallback string) string {
	value := strings.TrimSpace(os.Getenv(env))
	if value != "" && filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return fallback
}

// resolveDesktop locates the user's Desktop folder. An explicit
// XDG_DESKTOP_DIR is trusted as long as it is not the home directory itself;
// without one, ~/Desktop counts only when it already exists. Anything else
// means desktop copies are unavailable.
func resolveDesktop(home string) string {
	if value := strings.TrimSpace(os.Getenv("XDG_DESKTOP_DIR")); value != "" && filepath.IsAbs(value) {
		value = filepath.Clean(value)
		if value == filepath.Clean(home) {
			return ""
		}
		return value
	}

	candidate := filepath.Join(home, "Desktop")
	exists, err := DirExists(candidate)
	if err != nil || !exists {
		return ""
	}
	return candidate
}

// ConfigFile returns the configuration file location.
func (d Dirs) ConfigFile() string {
	return filepath.Join(d.ConfigHome, "deskentry", "config.yaml")
}

// StateDir returns the per-user state directory for history and logs.
func (d Dirs) StateDir() string {
	return filepath.Join(d.StateHome, "deskentry")
}

// LogsDir returns the directory for per-run log files.
func (d Dirs) LogsDir() string {
	return filepath.Join(d.StateDir(), "logs")
}

// InstallPlan lists every target path one installation will touch. It is a
// pure function of the token, the source file names, and the standard
// directories: identical inputs always produce identical plans, and
// computing a plan never touches the filesystem.
type InstallPlan struct {
	// Token is the sanitized identifier namespacing all targets.
	Token string `json:"token"`
	// ScriptDir is the per-app directory the script is copied into.
	ScriptDir string `json:"script_dir"`
	// ScriptFile is the copied script path; the source file name is kept so
	// apps reusing a generic name like run.sh cannot collide.
	ScriptFile string `json:"script_file"`
	// IconFile is the icon target path, token-named with the source
	// extension lower-cased.
	IconFile string `json:"icon_file"`
	// DescriptorFile is the .desktop file committed into the applications
	// directory.
	DescriptorFile string `json:"descriptor_file"`
	// DesktopFile is the optional duplicate on the Desktop folder; empty
	// when no copy is requested or no desktop folder is available.
	DesktopFile string `json:"desktop_file,omitempty"`
}

// Plan computes all target paths for one installation.
func Plan(dirs Dirs, token, scriptSource, iconSource string, copyToDesktop bool) InstallPlan {
	scriptDir := filepath.Join(dirs.Home, ".local", "bin", token)
	plan := InstallPlan{
		Token:          token,
		ScriptDir:      scriptDir,
		ScriptFile:     filepath.Join(scriptDir, filepath.Base(scriptSource)),
		IconFile:       filepath.Join(dirs.IconBase, "icons", token+strings.ToLower(filepath.Ext(iconSource))),
		DescriptorFile: filepath.Join(dirs.Applications, token+".desktop"),
	}
	if copyToDesktop && dirs.Desktop != "" {
		plan.DesktopFile = filepath.Join(dirs.Desktop, token+".desktop")
	}
	return plan
}

// EnsureDir creates a directory and its parents; existing directories are
// fine.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
