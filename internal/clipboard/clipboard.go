// Package clipboard provides platform-specific clipboard operations.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Tool is an external command that reads clipboard content from stdin.
type Tool []string

// linuxTools are tried in order of preference.
var linuxTools = []Tool{
	{"wl-copy"},                          // Wayland
	{"xclip", "-selection", "clipboard"}, // X11
	{"xsel", "--clipboard", "--input"},   // X11 alternative
}

// ToolsFor returns the clipboard commands to try on the given platform.
func ToolsFor(goos string) []Tool {
	switch goos {
	case "linux", "freebsd", "openbsd":
		return linuxTools
	case "darwin":
		return []Tool{{"pbcopy"}}
	case "windows":
		return []Tool{{"clip"}}
	default:
		return nil
	}
}

// CopyText copies plain text to the system clipboard, such as a generated
// CSV report ready to paste into a spreadsheet.
func CopyText(text string) error {
	tools := ToolsFor(runtime.GOOS)
	if len(tools) == 0 {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	var tried []string
	for _, tool := range tools {
		tried = append(tried, tool[0])
		if !isCommandAvailable(tool[0]) {
			continue
		}
		cmd := exec.Command(tool[0], tool[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no suitable clipboard tool found (tried: %s)", strings.Join(tried, ", "))
}

func isCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
