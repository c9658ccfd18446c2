package engine

import (
	"context"
	"testing"

	dockertypes "github.com/docker/docker/api/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type scriptedExecutor struct{ res Result }

func (s scriptedExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	return s.res, nil
}

func TestObserve_CountsByResult(t *testing.T) {
	ok := testutil.ToFloat64(engineCalls.WithLabelValues("version", "ok"))
	bad := testutil.ToFloat64(engineCalls.WithLabelValues("version", "error"))

	_ = NewCLI("docker", scriptedExecutor{res: Result{Stdout: "25.0.6"}}).Ping(context.Background())
	_ = NewCLI("docker", scriptedExecutor{res: Result{ExitCode: 1, Stderr: "Cannot connect to the Docker daemon"}}).Ping(context.Background())

	if got := testutil.ToFloat64(engineCalls.WithLabelValues("version", "ok")); got != ok+1 {
		t.Fatalf("ok counter=%v want %v", got, ok+1)
	}
	if got := testutil.ToFloat64(engineCalls.WithLabelValues("version", "error")); got != bad+1 {
		t.Fatalf("error counter=%v want %v", got, bad+1)
	}
}

func TestMetricsFromStats_NoSamples(t *testing.T) {
	m := metricsFromStats(new(dockertypes.StatsJSON))
	if m.CPUPercent != "0.00%" {
		t.Fatalf("cpu=%q", m.CPUPercent)
	}
	if m.NetIO != "0B / 0B" {
		t.Fatalf("net=%q", m.NetIO)
	}
}
