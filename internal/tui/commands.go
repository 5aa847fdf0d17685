package tui

import (
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// openCmd hands a file to the desktop opener. The opener runs detached
// so the terminal UI keeps control.
func (m *Model) openCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var c *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			c = exec.Command("open", path)
		case "windows":
			c = exec.Command("cmd", "/c", "start", "", path)
		default:
			c = exec.Command("xdg-open", path)
		}
		if err := c.Start(); err != nil {
			return editorFinishedMsg{err: err}
		}
		go c.Wait() // reap, outcome is the opener's business
		return nil
	}
}

// editCmd suspends the UI and runs $EDITOR on the file.
func (m *Model) editCmd(path string) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}
