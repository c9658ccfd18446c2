package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	dockertypes "github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	units "github.com/docker/go-units"

	"llmtools/pkg/types"
)

// API drives the engine through the daemon socket instead of the CLI.
type API struct {
	cli *client.Client
}

// NewAPI connects using DOCKER_HOST and friends; host overrides the socket when set.
func NewAPI(host string) (*API, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}
	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, dependencyUnavailableError{what: "engine api", err: err}
	}
	return &API{cli: cli}, nil
}

func (a *API) ListContainers(ctx context.Context, all bool) ([]types.ContainerRecord, error) {
	list, err := a.cli.ContainerList(ctx, container.ListOptions{All: all})
	observe("ps", err)
	if err != nil {
		return nil, err
	}
	recs := make([]types.ContainerRecord, 0, len(list))
	for _, c := range list {
		id := c.ID
		if len(id) > 12 {
			id = id[:12]
		}
		recs = append(recs, types.ContainerRecord{
			ID:     id,
			Name:   selectName(c.Names),
			Image:  c.Image,
			Status: c.Status,
			State:  StateOf(c.Status),
			Ports:  formatPorts(c.Ports),
		})
	}
	return recs, nil
}

// selectName returns the first name with the leading slash removed.
func selectName(names []string) string {
	for _, n := range names {
		if n = strings.TrimPrefix(n, "/"); n != "" {
			return n
		}
	}
	return ""
}

// formatPorts renders ports like the CLI: 0.0.0.0:8080->8080/tcp.
func formatPorts(ports []dockertypes.Port) string {
	out := make([]string, 0, len(ports))
	for _, p := range ports {
		if p.PublicPort != 0 {
			out = append(out, fmt.Sprintf("%s:%d->%d/%s", p.IP, p.PublicPort, p.PrivatePort, p.Type))
		} else {
			out = append(out, fmt.Sprintf("%d/%s", p.PrivatePort, p.Type))
		}
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}

func (a *API) Stats(ctx context.Context, id string) (*types.ContainerMetrics, error) {
	resp, err := a.cli.ContainerStats(ctx, id, false)
	if err != nil {
		observe("stats", err)
		return nil, err
	}
	defer resp.Body.Close()
	var s dockertypes.StatsJSON
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		err = malformedOutputError{op: "stats", detail: err.Error()}
		observe("stats", err)
		return nil, err
	}
	observe("stats", nil)
	return metricsFromStats(&s), nil
}

// metricsFromStats renders a stats sample the way the CLI table does.
func metricsFromStats(s *dockertypes.StatsJSON) *types.ContainerMetrics {
	var cpu float64
	cpuDelta := float64(s.CPUStats.CPUUsage.TotalUsage) - float64(s.PreCPUStats.CPUUsage.TotalUsage)
	sysDelta := float64(s.CPUStats.SystemUsage) - float64(s.PreCPUStats.SystemUsage)
	online := float64(s.CPUStats.OnlineCPUs)
	if online == 0 {
		online = float64(len(s.CPUStats.CPUUsage.PercpuUsage))
	}
	if sysDelta > 0 && cpuDelta > 0 {
		cpu = cpuDelta / sysDelta * online * 100
	}

	mem := float64(s.MemoryStats.Usage)
	if v, ok := s.MemoryStats.Stats["inactive_file"]; ok && float64(v) < mem {
		mem -= float64(v)
	}

	var rx, tx float64
	for _, n := range s.Networks {
		rx += float64(n.RxBytes)
		tx += float64(n.TxBytes)
	}
	var rd, wr float64
	for _, e := range s.BlkioStats.IoServiceBytesRecursive {
		switch strings.ToLower(e.Op) {
		case "read":
			rd += float64(e.Value)
		case "write":
			wr += float64(e.Value)
		}
	}
	return &types.ContainerMetrics{
		CPUPercent: fmt.Sprintf("%.2f%%", cpu),
		MemUsage:   units.BytesSize(mem) + " / " + units.BytesSize(float64(s.MemoryStats.Limit)),
		NetIO:      units.HumanSizeWithPrecision(rx, 3) + " / " + units.HumanSizeWithPrecision(tx, 3),
		BlockIO:    units.HumanSizeWithPrecision(rd, 3) + " / " + units.HumanSizeWithPrecision(wr, 3),
	}
}

func (a *API) Logs(ctx context.Context, name string, tail int) (string, error) {
	info, err := a.cli.ContainerInspect(ctx, name)
	if err != nil {
		observe("logs", err)
		return "", err
	}
	opts := container.LogsOptions{ShowStdout: true, ShowStderr: true}
	if tail > 0 {
		opts.Tail = strconv.Itoa(tail)
	}
	rc, err := a.cli.ContainerLogs(ctx, name, opts)
	if err != nil {
		observe("logs", err)
		return "", err
	}
	defer rc.Close()
	var buf bytes.Buffer
	// TTY containers stream raw output; others are multiplexed.
	if info.Config != nil && info.Config.Tty {
		_, err = io.Copy(&buf, rc)
	} else {
		_, err = stdcopy.StdCopy(&buf, &buf, rc)
	}
	observe("logs", err)
	return buf.String(), err
}

func (a *API) Do(ctx context.Context, action Action, name string) error {
	var err error
	switch action {
	case ActionStart:
		err = a.cli.ContainerStart(ctx, name, container.StartOptions{})
	case ActionStop:
		err = a.cli.ContainerStop(ctx, name, container.StopOptions{})
	case ActionRestart:
		err = a.cli.ContainerRestart(ctx, name, container.StopOptions{})
	case ActionRemove:
		err = a.cli.ContainerRemove(ctx, name, container.RemoveOptions{})
	default:
		return unknownActionError{action: string(action)}
	}
	observe(string(action), err)
	return err
}

func (a *API) Ping(ctx context.Context) error {
	_, err := a.cli.Ping(ctx)
	observe("version", err)
	if err != nil {
		return dependencyUnavailableError{what: "engine api", err: err}
	}
	return nil
}

func (a *API) Close() error { return a.cli.Close() }
