// Package report assembles grouped work into ordered, formatted report rows.
package report

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bullet prefixes every formatted task line.
const Bullet = "• "

// FormatTasks deduplicates task labels by their raw value, keeping the first
// occurrence, and renders each as a bulleted sentence on its own line.
func FormatTasks(tasks []string) string {
	seen := make(map[string]bool, len(tasks))
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if seen[task] {
			continue
		}
		seen[task] = true
		lines = append(lines, Bullet+FormatTask(task))
	}
	return strings.Join(lines, "\n")
}

// FormatTask turns a raw label such as "fix_login_bug" into "Fix login bug.".
func FormatTask(task string) string {
	s := strings.TrimSpace(strings.ReplaceAll(task, "_", " "))
	if r, size := utf8.DecodeRuneInString(s); size > 0 && r != utf8.RuneError {
		s = string(unicode.ToUpper(r)) + s[size:]
	}
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

// SplitTasks reverses the joining done by FormatTasks, returning the task
// sentences without their bullets.
func SplitTasks(formatted string) []string {
	if formatted == "" {
		return nil
	}
	lines := strings.Split(formatted, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, Bullet)
	}
	return lines
}
