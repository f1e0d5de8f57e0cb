package commandimpl

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/orgball2608/social-media-reader/internal/command"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

// maxStderr bounds how much diagnostic output is carried in errors.
const maxStderr = 2000

type Opts struct {
	fx.In

	Logger logger.Logger
}

type CommandImpl struct {
	Logger logger.Logger
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Logger: opts.Logger.WithComponent("command"),
	}
}

var _ command.Runner = (*CommandImpl)(nil)

func (c *CommandImpl) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeToolUnavailable, name+" is not installed")
	}
	return path, nil
}

func (c *CommandImpl) Run(ctx context.Context, name string, args ...string) (*command.Output, error) {
	if _, err := c.LookPath(name); err != nil {
		return nil, err
	}

	c.Logger.Debug("Running command", "name", name, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &command.Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, apperrors.Wrap(ctxErr, name+" did not finish in time")
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		diag := stderr.String()
		if len(diag) > maxStderr {
			diag = diag[len(diag)-maxStderr:]
		}
		return out, &command.ExitError{Name: name, ExitCode: exitErr.ExitCode(), Stderr: diag}
	}

	return out, apperrors.Wrap(err, "failed to start "+name)
}
