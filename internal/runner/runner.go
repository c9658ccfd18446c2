// Package runner forwards operator-typed commands to the container engine CLI.
package runner

import (
	"context"
	"errors"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"llmtools/internal/engine"
	"llmtools/pkg/types"
)

// Options configures a Runner.
type Options struct {
	// QuotedArgs splits with shell-style quoting instead of plain whitespace.
	QuotedArgs bool
	// Allowed restricts the first argument; empty forwards anything.
	Allowed []string
	// ServerContainer is the target of the quick actions.
	ServerContainer string
	Logger          *zerolog.Logger
}

// Runner executes free-text engine commands and returns raw output.
type Runner struct {
	bin     string
	exec    engine.Executor
	quoted  bool
	allowed map[string]struct{}
	presets []types.RunPreset
	log     zerolog.Logger
}

// New returns a Runner prefixing every command with bin.
func New(bin string, ex engine.Executor, opts Options) *Runner {
	if ex == nil {
		ex = engine.ExecExecutor{}
	}
	r := &Runner{bin: bin, exec: ex, quoted: opts.QuotedArgs, log: zerolog.Nop()}
	if len(opts.Allowed) > 0 {
		r.allowed = make(map[string]struct{}, len(opts.Allowed))
		for _, a := range opts.Allowed {
			r.allowed[a] = struct{}{}
		}
	}
	if opts.Logger != nil {
		r.log = *opts.Logger
	}
	server := opts.ServerContainer
	if server == "" {
		server = "localai"
	}
	r.presets = []types.RunPreset{
		{Name: "restart", Label: "Restart LLM server", Command: "restart " + server},
		{Name: "logs", Label: "LLM server logs", Command: "logs " + server},
		{Name: "gpu", Label: "GPU status", Command: "exec -i " + server + " nvidia-smi"},
	}
	return r
}

// Split breaks a command into arguments. Plain mode splits on runs of
// whitespace; quoted mode honours shell-style quotes and escapes.
func Split(command string, quoted bool) ([]string, error) {
	if !quoted {
		return strings.Fields(command), nil
	}
	args, err := shlex.Split(command)
	if err != nil {
		return nil, invalidCommandError{msg: err.Error()}
	}
	return args, nil
}

// Run splits command, prefixes the engine binary and executes it. Output is
// returned verbatim; a non-zero exit shows up only through Stderr. err is
// set when the command is rejected or the binary cannot be launched.
func (r *Runner) Run(ctx context.Context, command string) (types.RunResponse, error) {
	resp := types.RunResponse{Command: command}
	args, err := Split(command, r.quoted)
	if err != nil {
		return resp, err
	}
	if r.allowed != nil {
		if len(args) == 0 {
			return resp, notAllowedError{sub: ""}
		}
		if _, ok := r.allowed[args[0]]; !ok {
			return resp, notAllowedError{sub: args[0]}
		}
	}
	return r.exec1(ctx, resp, args)
}

func (r *Runner) exec1(ctx context.Context, resp types.RunResponse, args []string) (types.RunResponse, error) {
	resp.Args = append([]string{r.bin}, args...)
	res, err := r.exec.Run(ctx, r.bin, args...)
	resp.Stdout = res.Stdout
	resp.Stderr = res.Stderr
	ev := r.log.Info().Strs("args", args).Int("exit", res.ExitCode)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("runner command")
	return resp, err
}

// Presets lists the quick actions.
func (r *Runner) Presets() []types.RunPreset {
	return append([]types.RunPreset(nil), r.presets...)
}

// RunPreset executes a quick action by name. Presets bypass the allow-list.
func (r *Runner) RunPreset(ctx context.Context, name string) (types.RunResponse, error) {
	for _, p := range r.presets {
		if p.Name == name {
			return r.exec1(ctx, types.RunResponse{Command: p.Command}, strings.Fields(p.Command))
		}
	}
	return types.RunResponse{}, presetNotFoundError{name: name}
}

type notAllowedError struct{ sub string }

func (e notAllowedError) Error() string {
	if e.sub == "" {
		return "empty command is not allowed"
	}
	return "subcommand not allowed: " + e.sub
}

// IsNotAllowed reports whether the allow-list rejected the command.
func IsNotAllowed(err error) bool {
	var na notAllowedError
	return errors.As(err, &na)
}

type invalidCommandError struct{ msg string }

func (e invalidCommandError) Error() string { return "invalid command: " + e.msg }

// IsInvalidCommand reports whether the command could not be split.
func IsInvalidCommand(err error) bool {
	var ic invalidCommandError
	return errors.As(err, &ic)
}

type presetNotFoundError struct{ name string }

func (e presetNotFoundError) Error() string { return "unknown preset: " + e.name }

// IsNotFound reports whether a preset name is unknown.
func IsNotFound(err error) bool {
	var pn presetNotFoundError
	return errors.As(err, &pn)
}
