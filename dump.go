package dbg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-runewidth"
)

// projectMarkers are the directory entries that identify a project root when
// computing the call-site-relative file path: version control metadata, IDE
// metadata, and the Go module marker.
var projectMarkers = []string{".git", ".idea", "go.mod"}

// FormatAt renders values behind a call-site prefix. It walks the current
// stack, drops the skip innermost frames, and attributes the output to the
// next frame out; skip counts FormatAt itself, so a wrapper that wants to
// attribute to its own caller passes 2. The prefix is the project-relative
// file path and line of the attributed frame followed by one space per
// remaining stack frame, a crude nesting indicator for recursive calls.
//
// Each value is serialized with [JSONEncode] and appended space-separated.
// Lines after the first are re-indented to align under the prefix, and a
// final line consisting of a lone closing quote, an artifact of multi-line
// string rendering, is merged onto the line before it.
//
// FormatAt is a pure formatting function; [Dump], [Err], [Fdump], and [Log]
// attach destinations.
func FormatAt(skip int, values ...any) string {
	pcs := make([]uintptr, 128)
	n := runtime.Callers(1, pcs)
	var stack []runtime.Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		stack = append(stack, f)
		if !more {
			break
		}
	}
	if skip < 1 {
		skip = 1
	}
	if skip >= len(stack) {
		skip = len(stack) - 1
	}
	frame := stack[skip]
	depth := len(stack) - skip

	prefix := fmt.Sprintf("%s:%d", relPath(frame.File), frame.Line) + strings.Repeat(" ", depth)
	out := prefix
	for _, v := range values {
		out += " " + JSONEncode(v)
	}

	lines := strings.Split(out, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == `"` {
		lines[len(lines)-2] += `"`
		lines = lines[:len(lines)-1]
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix)+2)
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// relPath strips the nearest ancestor directory containing a project marker
// from file. Without a marked ancestor the absolute path is kept.
func relPath(file string) string {
	dir := filepath.Dir(file)
	for {
		for _, m := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				root := dir + string(filepath.Separator)
				if rest, ok := strings.CutPrefix(file, root); ok {
					return rest
				}
				return file
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return file
		}
		dir = parent
	}
}

// Dump prints the formatted values to standard output.
func Dump(values ...any) {
	fmt.Println(FormatAt(2, values...))
}

// Err prints the formatted values to standard error.
func Err(values ...any) {
	fmt.Fprintln(os.Stderr, FormatAt(2, values...))
}

// Fdump writes the formatted values and a trailing newline to w.
func Fdump(w io.Writer, values ...any) error {
	_, err := fmt.Fprintln(w, FormatAt(2, values...))
	return err
}

// Log appends the formatted values to log.txt in the current working
// directory, creating it if absent. No trailing newline is added; any
// newline structure comes from embedded multi-line values. Concurrent
// appenders rely on the platform's atomic-append guarantee for small
// writes.
func Log(values ...any) error {
	return appendTo("log.txt", FormatAt(2, values...))
}

// LogTo is [Log] with an explicit file path.
func LogTo(path string, values ...any) error {
	return appendTo(path, FormatAt(2, values...))
}

func appendTo(path, record string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(record)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
