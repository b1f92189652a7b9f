package execute

import (
	"os/exec"
	"syscall"

	"github.com/ThatOtherAndrew/sigil/internal/models"
)

// Starter launches a shell command without waiting for it.
type Starter func(command string) error

// Command starts command under sh in its own session, detached from ours.
func Command(command string) error {
	if command == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd.Start()
}

// Lookup returns the command bound to label, or "".
func Lookup(label string, gestures []models.GestureConfig) string {
	for _, g := range gestures {
		if g.Label == label {
			return g.Command
		}
	}
	return ""
}

// Dispatch starts the command bound to the recognized label when the score
// reaches minScore. It returns the command it started, or "" when nothing
// qualified.
func Dispatch(result models.Result, gestures []models.GestureConfig, minScore float64, start Starter) (string, error) {
	if result.TooShort() || result.Score < minScore {
		return "", nil
	}
	command := Lookup(result.Label, gestures)
	if command == "" {
		return "", nil
	}
	if start == nil {
		start = Command
	}
	if err := start(command); err != nil {
		return "", err
	}
	return command, nil
}
