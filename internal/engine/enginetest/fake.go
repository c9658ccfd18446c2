// Package enginetest provides a stateful in-memory stand-in for the
// container engine CLI.
package enginetest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"llmtools/internal/engine"
)

// Container is one fake container.
type Container struct {
	ID      string
	Name    string
	Image   string
	Running bool
	Ports   string
	Logs    string
	// StatsFail makes `stats` exit non-zero for this container.
	StatsFail bool
}

// Docker implements engine.Executor by emulating the subset of the engine
// CLI used by llmtools.
type Docker struct {
	mu         sync.Mutex
	containers []*Container
	calls      [][]string

	// Junk is appended to every ps listing as extra lines.
	Junk []string
	// StatsHook runs before each stats reply, outside the lock.
	StatsHook func(id string)
	// LaunchErr makes every call fail to launch.
	LaunchErr error
}

var _ engine.Executor = (*Docker)(nil)

// New returns a fake engine holding the given containers.
func New(cs ...Container) *Docker {
	d := &Docker{}
	for i := range cs {
		c := cs[i]
		d.containers = append(d.containers, &c)
	}
	return d
}

// Calls returns the argument vectors received so far.
func (d *Docker) Calls() [][]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]string, len(d.calls))
	copy(out, d.calls)
	return out
}

func (d *Docker) Run(ctx context.Context, name string, args ...string) (engine.Result, error) {
	if d.LaunchErr != nil {
		return engine.Result{}, d.LaunchErr
	}
	d.mu.Lock()
	d.calls = append(d.calls, append([]string(nil), args...))
	d.mu.Unlock()
	if len(args) == 0 {
		return engine.Result{Stdout: "Usage:  docker [OPTIONS] COMMAND\n"}, nil
	}
	switch args[0] {
	case "ps":
		return d.ps(args[1:]), nil
	case "stats":
		if len(args) < 2 {
			return fail("\"docker stats\" requires at least 1 argument"), nil
		}
		if d.StatsHook != nil {
			d.StatsHook(args[1])
		}
		return d.stats(args[1]), nil
	case "logs":
		if len(args) < 2 {
			return fail("\"docker logs\" requires exactly 1 argument"), nil
		}
		return d.logs(args[1]), nil
	case "start", "stop", "restart", "rm":
		if len(args) < 2 {
			return fail(fmt.Sprintf("%q requires at least 1 argument", args[0])), nil
		}
		return d.lifecycle(args[0], args[1]), nil
	case "version":
		return engine.Result{Stdout: "25.0.6\n"}, nil
	case "exec":
		return engine.Result{Stdout: "exec " + strings.Join(args[1:], " ") + "\n"}, nil
	}
	return fail(fmt.Sprintf("docker: '%s' is not a docker command.", args[0])), nil
}

func fail(msg string) engine.Result {
	return engine.Result{Stderr: msg + "\n", ExitCode: 1}
}

func status(c *Container) string {
	if c.Running {
		return "Up 5 minutes"
	}
	return "Exited (0) 2 minutes ago"
}

func (d *Docker) find(ref string) (int, *Container) {
	for i, c := range d.containers {
		if c.Name == ref || c.ID == ref {
			return i, c
		}
	}
	return -1, nil
}

func (d *Docker) ps(args []string) engine.Result {
	all := false
	for _, a := range args {
		if a == "-a" || a == "--all" {
			all = true
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	for _, c := range d.containers {
		if !all && !c.Running {
			continue
		}
		line, _ := json.Marshal(map[string]string{
			"ID":     c.ID,
			"Names":  c.Name,
			"Image":  c.Image,
			"Status": status(c),
			"Ports":  c.Ports,
		})
		b.Write(line)
		b.WriteByte('\n')
	}
	for _, j := range d.Junk {
		b.WriteString(j)
		b.WriteByte('\n')
	}
	return engine.Result{Stdout: b.String()}
}

func (d *Docker) stats(ref string) engine.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, c := d.find(ref)
	if c == nil {
		return fail("Error response from daemon: No such container: " + ref)
	}
	if c.StatsFail {
		return fail("Error response from daemon: cannot get stats for " + ref)
	}
	cpu, mem := "0.00%", "0B / 0B"
	if c.Running {
		cpu, mem = "1.25%", "512MiB / 31.26GiB"
	}
	out := "CONTAINER ID   NAME      CPU %     MEM USAGE / LIMIT     MEM %     NET I/O         BLOCK I/O     PIDS\n" +
		fmt.Sprintf("%s   %s   %s   %s   1.60%%   1.2kB / 648B   0B / 8.19kB   12\n", c.ID, c.Name, cpu, mem)
	return engine.Result{Stdout: out}
}

func (d *Docker) logs(ref string) engine.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, c := d.find(ref)
	if c == nil {
		return fail("Error response from daemon: No such container: " + ref)
	}
	return engine.Result{Stdout: c.Logs}
}

func (d *Docker) lifecycle(verb, ref string) engine.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, c := d.find(ref)
	if c == nil {
		return fail("Error response from daemon: No such container: " + ref)
	}
	switch verb {
	case "start", "restart":
		c.Running = true
	case "stop":
		c.Running = false
	case "rm":
		if c.Running {
			return fail("Error response from daemon: cannot remove container \"/" + c.Name + "\": container is running: stop the container before removing or force remove")
		}
		d.containers = append(d.containers[:i], d.containers[i+1:]...)
	}
	return engine.Result{Stdout: ref + "\n"}
}
