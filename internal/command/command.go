package command

//go:generate go run go.uber.org/mock/mockgen -source=command.go -destination=mocks/mock.go

import (
	"context"
	"fmt"
	"strings"
)

// Output is what an external tool printed.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// ExitError is returned when a tool ran but exited non-zero. Stderr is kept so
// the diagnostic reaches the user.
type ExitError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.ExitCode, msg)
}

// Runner starts external tools. Every yt-dlp, ffmpeg, whisper and summarize call goes
// through it so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Output, error)
	LookPath(name string) (string, error)
}
