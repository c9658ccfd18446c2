// Package dashboard assembles the container status view: listings, a
// bounded concurrent metrics pass, and lifecycle actions.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"llmtools/internal/engine"
	"llmtools/pkg/types"
)

// Options tunes a Service. Zero values use defaults.
type Options struct {
	Workers        int
	LogTail        int
	RefreshSeconds int
	Host           HostSampler
	Events         EventPublisher
	Logger         *zerolog.Logger
	Now            func() time.Time
}

// Service renders dashboard snapshots against an engine.
type Service struct {
	eng     engine.Engine
	workers int
	logTail int
	refresh int
	host    HostSampler
	events  EventPublisher
	log     zerolog.Logger
	now     func() time.Time
}

// New returns a dashboard over eng.
func New(eng engine.Engine, opts Options) *Service {
	s := &Service{
		eng:     eng,
		workers: opts.Workers,
		logTail: opts.LogTail,
		refresh: opts.RefreshSeconds,
		host:    opts.Host,
		events:  opts.Events,
		log:     zerolog.Nop(),
		now:     opts.Now,
	}
	if s.workers <= 0 {
		s.workers = 8
	}
	if s.logTail <= 0 {
		s.logTail = 100
	}
	if s.events == nil {
		s.events = noopPublisher{}
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// DefaultRefresh is the configured auto-refresh interval in seconds.
func (s *Service) DefaultRefresh() int { return s.refresh }

// LogTail is the default number of log lines shown by the logs action.
func (s *Service) LogTail() int { return s.logTail }

// Snapshot lists running and all containers, fetches metrics for each
// through the bounded pool, and partitions the result. Failures are
// collected as inline errors; Snapshot itself never fails.
func (s *Service) Snapshot(ctx context.Context) types.DashboardResponse {
	resp := types.DashboardResponse{
		Running:        []types.ContainerCard{},
		Stopped:        []types.ContainerCard{},
		RefreshSeconds: s.refresh,
		GeneratedAt:    s.now().Unix(),
	}

	running, err := s.eng.ListContainers(ctx, false)
	if err != nil {
		resp.Errors = append(resp.Errors, fmt.Sprintf("list running containers: %v", err))
	}
	all, err := s.eng.ListContainers(ctx, true)
	if err != nil {
		resp.Errors = append(resp.Errors, fmt.Sprintf("list all containers: %v", err))
	}
	var stopped []types.ContainerRecord
	for _, c := range all {
		if engine.IsStopped(c.Status) {
			stopped = append(stopped, c)
		}
	}

	recs := append(append([]types.ContainerRecord(nil), running...), stopped...)
	results := fanOut(ctx, recs, s.workers, func(ctx context.Context, c types.ContainerRecord) (*types.ContainerMetrics, error) {
		return s.eng.Stats(ctx, c.ID)
	})
	for i, c := range recs {
		card := types.ContainerCard{Container: c, Metrics: results[i].Value}
		if err := results[i].Err; err != nil {
			card.MetricsError = err.Error()
			s.log.Debug().Str("container", c.Name).Err(err).Msg("metrics fetch failed")
		}
		if i < len(running) {
			resp.Running = append(resp.Running, card)
		} else {
			resp.Stopped = append(resp.Stopped, card)
		}
	}

	if s.host != nil {
		if h, err := s.host.Sample(ctx); err == nil {
			resp.Host = h
		} else {
			s.log.Debug().Err(err).Msg("host sample failed")
		}
	}
	return resp
}

// Act applies a lifecycle action. The call is detached from ctx
// cancellation: once issued it runs to completion. The outcome is
// reported in the response; the next Snapshot re-reads ground truth.
func (s *Service) Act(ctx context.Context, name, action string) types.ActionResponse {
	resp := types.ActionResponse{Name: name, Action: action}
	a, err := engine.ParseAction(action)
	if err != nil {
		resp.Message = err.Error()
		return resp
	}
	resp.Action = string(a)
	err = s.eng.Do(context.WithoutCancel(ctx), a, name)
	ev := Event{Name: "container_" + string(a), Container: name, Fields: map[string]any{"ok": err == nil}}
	if err != nil {
		ev.Fields["error"] = err.Error()
		resp.Message = err.Error()
		s.log.Info().Str("container", name).Str("action", string(a)).Err(err).Msg("container action failed")
	} else {
		resp.OK = true
		resp.Message = fmt.Sprintf("%s: %s succeeded", name, a)
		s.log.Info().Str("container", name).Str("action", string(a)).Msg("container action")
	}
	s.events.Publish(ev)
	return resp
}

// Logs fetches the tail of a container's logs; tail <= 0 uses the default.
func (s *Service) Logs(ctx context.Context, name string, tail int) types.LogsResponse {
	if tail <= 0 {
		tail = s.logTail
	}
	resp := types.LogsResponse{Name: name, Tail: tail}
	logs, err := s.eng.Logs(ctx, name, tail)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Logs = logs
	return resp
}

// Ready reports whether the engine answers.
func (s *Service) Ready(ctx context.Context) bool {
	return s.eng.Ping(ctx) == nil
}
