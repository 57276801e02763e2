// Package desktopfile renders Freedesktop desktop entry descriptors for
// application launchers. It emits exactly the key order menu systems are
// tested against and performs no escaping beyond verbatim UTF-8 insertion;
// callers must keep Name and Comment free of line breaks.
package desktopfile

import (
	"bytes"
	"fmt"
	"strings"
)

// Entry is the in-memory form of one [Desktop Entry] block.
type Entry struct {
	// Name is the menu display name.
	Name string
	// Exec is the full launch command line.
	Exec string
	// Icon is the absolute icon target path, never the source path.
	Icon string
	// Terminal runs the application inside a terminal window.
	Terminal bool
	// Comment is the optional tooltip text; omitted when empty.
	Comment string
	// Categories are the menu categories; omitted when none are selected.
	Categories []string
	// Path is the working directory the application starts in.
	Path string
}

// Marshal renders the entry as LF-separated UTF-8 with a trailing newline.
// The field order is fixed: Version, Type, Name, Exec, Icon, Terminal,
// optional Comment, optional Categories (trailing semicolon enforced), Path,
// StartupNotify.
func (e Entry) Marshal() []byte {
	var b bytes.Buffer
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Version=1.1\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Exec=%s\n", e.Exec)
	fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	fmt.Fprintf(&b, "Terminal=%t\n", e.Terminal)
	if e.Comment != "" {
		fmt.Fprintf(&b, "Comment=%s\n", e.Comment)
	}
	if cats := joinCategories(e.Categories); cats != "" {
		fmt.Fprintf(&b, "Categories=%s\n", cats)
	}
	fmt.Fprintf(&b, "Path=%s\n", e.Path)
	b.WriteString("StartupNotify=true\n")
	return b.Bytes()
}

// joinCategories joins the selected categories with semicolons, skipping
// empties and enforcing the trailing semicolon the format requires.
func joinCategories(categories []string) string {
	var b strings.Builder
	for _, cat := range categories {
		if cat == "" {
			continue
		}
		b.WriteString(cat)
		b.WriteByte(';')
	}
	return b.String()
}
