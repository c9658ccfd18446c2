package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"llmtools/internal/engine"
	"llmtools/internal/engine/enginetest"
)

func newFake() *enginetest.Docker {
	return enginetest.New(
		enginetest.Container{ID: "aaa111", Name: "localai", Image: "localai/localai", Running: true, Logs: "line1\nline2\n"},
		enginetest.Container{ID: "bbb222", Name: "old", Image: "redis", Running: false},
	)
}

func TestCLI_ListContainers(t *testing.T) {
	fake := newFake()
	fake.Junk = []string{"garbage", "{\"broken\":"}
	cli := engine.NewCLI("docker", fake)
	ctx := context.Background()

	running, err := cli.ListContainers(ctx, false)
	if err != nil { t.Fatalf("ps: %v", err) }
	if len(running) != 1 || running[0].Name != "localai" { t.Fatalf("running=%+v", running) }

	all, err := cli.ListContainers(ctx, true)
	if err != nil { t.Fatalf("ps -a: %v", err) }
	if len(all) != 2 { t.Fatalf("all=%+v", all) }

	calls := fake.Calls()
	if got := strings.Join(calls[1], " "); got != "ps -a --format {{json .}}" {
		t.Fatalf("unexpected argv: %q", got)
	}
}

func TestCLI_StatsAndLogs(t *testing.T) {
	fake := newFake()
	cli := engine.NewCLI("docker", fake)
	m, err := cli.Stats(context.Background(), "aaa111")
	if err != nil || m == nil { t.Fatalf("stats m=%v err=%v", m, err) }
	if m.CPUPercent != "1.25%" { t.Fatalf("cpu=%q", m.CPUPercent) }

	logs, err := cli.Logs(context.Background(), "localai", 100)
	if err != nil { t.Fatalf("logs: %v", err) }
	if logs != "line1\nline2\n" { t.Fatalf("logs=%q", logs) }
	last := fake.Calls()[len(fake.Calls())-1]
	if strings.Join(last, " ") != "logs localai --tail 100" { t.Fatalf("argv=%v", last) }
}

func TestCLI_NonZeroExitIsProcessFailed(t *testing.T) {
	cli := engine.NewCLI("docker", newFake())
	err := cli.Do(context.Background(), engine.ActionStop, "missing")
	if !engine.IsProcessFailed(err) { t.Fatalf("expected process failure, got %v", err) }
	if !strings.Contains(err.Error(), "No such container") { t.Fatalf("stderr not surfaced: %v", err) }
}

func TestCLI_LaunchFailureIsDependencyUnavailable(t *testing.T) {
	cli := engine.NewCLI("definitely-not-a-real-binary-12345", nil)
	_, err := cli.ListContainers(context.Background(), false)
	if !engine.IsDependencyUnavailable(err) { t.Fatalf("expected dependency unavailable, got %v", err) }
}

func TestCLI_FakeLaunchErrorPropagates(t *testing.T) {
	fake := newFake()
	fake.LaunchErr = errors.New("boom")
	cli := engine.NewCLI("docker", fake)
	if err := cli.Ping(context.Background()); err == nil { t.Fatalf("expected error") }
}

func TestCLI_LifecycleTogglesListing(t *testing.T) {
	fake := newFake()
	cli := engine.NewCLI("docker", fake)
	ctx := context.Background()

	if err := cli.Do(ctx, engine.ActionStop, "localai"); err != nil { t.Fatalf("stop: %v", err) }
	all, _ := cli.ListContainers(ctx, true)
	for _, r := range all {
		if r.Name == "localai" && !engine.IsStopped(r.Status) { t.Fatalf("expected stopped status, got %q", r.Status) }
	}

	if err := cli.Do(ctx, engine.ActionStart, "localai"); err != nil { t.Fatalf("start: %v", err) }
	running, _ := cli.ListContainers(ctx, false)
	if len(running) != 1 || running[0].State != engine.StateRunning { t.Fatalf("running=%+v", running) }

	if err := cli.Do(ctx, engine.ActionRemove, "old"); err != nil { t.Fatalf("rm: %v", err) }
	all, _ = cli.ListContainers(ctx, true)
	for _, r := range all {
		if r.Name == "old" { t.Fatalf("removed container still listed") }
	}
	last := fake.Calls()[len(fake.Calls())-2]
	if strings.Join(last, " ") != "rm old" { t.Fatalf("argv=%v", last) }
}
