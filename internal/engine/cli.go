package engine

import (
	"context"
	"strconv"
	"strings"

	"llmtools/pkg/types"
)

// CLI drives the engine through its command-line binary.
type CLI struct {
	bin  string
	exec Executor
}

// NewCLI returns an engine that runs bin through ex. A nil ex runs real processes.
func NewCLI(bin string, ex Executor) *CLI {
	if ex == nil {
		ex = ExecExecutor{}
	}
	return &CLI{bin: bin, exec: ex}
}

// Bin is the engine binary every command is prefixed with.
func (c *CLI) Bin() string { return c.bin }

// Executor exposes the process runner for free-text commands.
func (c *CLI) Executor() Executor { return c.exec }

func (c *CLI) run(ctx context.Context, op string, args ...string) (Result, error) {
	res, err := c.exec.Run(ctx, c.bin, args...)
	if err == nil && res.ExitCode != 0 {
		err = processFailedError{op: op, exitCode: res.ExitCode, stderr: res.Stderr}
	}
	observe(op, err)
	return res, err
}

func (c *CLI) ListContainers(ctx context.Context, all bool) ([]types.ContainerRecord, error) {
	args := []string{"ps"}
	if all {
		args = append(args, "-a")
	}
	args = append(args, "--format", "{{json .}}")
	res, err := c.run(ctx, "ps", args...)
	if err != nil {
		return nil, err
	}
	return ParseContainers(res.Stdout), nil
}

func (c *CLI) Stats(ctx context.Context, id string) (*types.ContainerMetrics, error) {
	res, err := c.run(ctx, "stats", "stats", id, "--no-stream")
	if err != nil {
		return nil, err
	}
	return ParseStats(res.Stdout)
}

// Logs returns stdout followed by stderr; containers commonly log to both.
func (c *CLI) Logs(ctx context.Context, name string, tail int) (string, error) {
	args := []string{"logs", name}
	if tail > 0 {
		args = append(args, "--tail", strconv.Itoa(tail))
	}
	res, err := c.run(ctx, "logs", args...)
	if err != nil {
		return "", err
	}
	if res.Stderr == "" {
		return res.Stdout, nil
	}
	if res.Stdout == "" || strings.HasSuffix(res.Stdout, "\n") {
		return res.Stdout + res.Stderr, nil
	}
	return res.Stdout + "\n" + res.Stderr, nil
}

func (c *CLI) Do(ctx context.Context, action Action, name string) error {
	if _, err := ParseAction(string(action)); err != nil {
		return err
	}
	_, err := c.run(ctx, string(action), action.cliVerb(), name)
	return err
}

func (c *CLI) Ping(ctx context.Context) error {
	_, err := c.run(ctx, "version", "version", "--format", "{{.Server.Version}}")
	return err
}

func (c *CLI) Close() error { return nil }
