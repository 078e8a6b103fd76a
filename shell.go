package dbg

import (
	"os/exec"
	"strings"
)

// Call runs command through the shell and returns its standard output as
// right-trimmed lines. Standard error and the exit status are discarded: a
// failing command yields whatever lines it produced before failing, usually
// none. Callers that need to observe failure should use os/exec directly.
func Call(command string) []string {
	out, _ := exec.Command("sh", "-c", command).Output()
	if len(out) == 0 {
		return nil
	}
	raw := strings.Split(string(out), "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimRight(line, " \t\r\n")
	}
	return lines
}
