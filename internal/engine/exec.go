package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Result is the captured outcome of one external process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs an external program to completion. A non-zero exit is
// reported in Result.ExitCode; err is reserved for launch failures.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecExecutor runs real processes via os/exec.
type ExecExecutor struct {
	Env map[string]string // additional env vars
	Dir string            // working directory
}

func (e ExecExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.Dir != "" {
		cmd.Dir = e.Dir
	}
	if len(e.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range e.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitCode()
			return res, nil
		}
		return res, dependencyUnavailableError{what: name, err: err}
	}
	return res, nil
}
