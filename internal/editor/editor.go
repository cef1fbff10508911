// Package editor launches the user's external editor, suspending the
// terminal UI for the duration of the child process.
package editor

import (
	"os"
	"os/exec"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultEditor = "vi"

// Command builds the external editor invocation for path at line (0 means
// no line hint). It honors the EDITOR environment variable, falling back
// to a conventional vi-like editor. Only a handful of common editors
// understand a "+N" line argument; others simply ignore an unrecognized
// flag, which is an acceptable degraded experience.
func Command(path string, line int) *exec.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	args := []string{}
	if line > 0 {
		args = append(args, "+"+strconv.Itoa(line))
	}
	args = append(args, path)

	return exec.Command(editor, args...)
}

// OpenMsg is returned by the tea.Cmd wrapping tea.ExecProcess once the
// editor process exits, carrying any error and the moment to re-issue a
// synthetic refresh.
type OpenMsg struct {
	Err error
}

// Open returns a tea.Cmd that suspends the TUI, runs the editor, and
// restores the TUI. The caller is responsible for pausing the event
// source before issuing this command and resuming it (and firing a
// synthetic refresh) when the returned OpenMsg arrives.
func Open(path string, line int) tea.Cmd {
	cmd := Command(path, line)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return OpenMsg{Err: err}
	})
}
