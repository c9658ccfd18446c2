package engine

import (
	"testing"
)

func TestParseContainers_SkipsMalformedLines(t *testing.T) {
	out := `{"ID":"aaa111","Names":"localai","Image":"localai/localai:latest","Status":"Up 3 hours","Ports":"0.0.0.0:8080->8080/tcp"}
not json at all
{"ID":"bbb222","Names":"/redis,redis-alias","Image":"redis:7","Status":"Exited (0) 2 days ago"}
["an","array"]
{"Names":"no-id"}
{"ID":"ccc333","Names":"web","Image":"nginx","Status":"Created"}
{"ID":"truncated",
`
	recs := ParseContainers(out)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(recs), recs)
	}
	if recs[0].Name != "localai" || recs[0].State != StateRunning || recs[0].Ports == "" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Name != "redis" || recs[1].State != StateStopped {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
	if recs[2].State != StateUnknown {
		t.Fatalf("created container should be unknown: %+v", recs[2])
	}
}

func TestParseContainers_Empty(t *testing.T) {
	if recs := ParseContainers(""); len(recs) != 0 {
		t.Fatalf("expected none, got %d", len(recs))
	}
}

func TestParseStats_Docker(t *testing.T) {
	out := "CONTAINER ID   NAME      CPU %     MEM USAGE / LIMIT     MEM %     NET I/O         BLOCK I/O     PIDS\n" +
		"3f2a9c1b7d4e   localai   12.50%    1.2GiB / 31.3GiB      3.84%     1.5kB / 0B      8.19kB / 0B   27\n"
	m, err := ParseStats(out)
	if err != nil || m == nil {
		t.Fatalf("m=%v err=%v", m, err)
	}
	if m.CPUPercent != "12.50%" || m.MemUsage != "1.2GiB / 31.3GiB" || m.NetIO != "1.5kB / 0B" || m.BlockIO != "8.19kB / 0B" {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestParseStats_PodmanHeader(t *testing.T) {
	out := "ID            NAME        CPU %       MEM USAGE / LIMIT  MEM %       NET IO      BLOCK IO    PIDS        CPU TIME    AVG CPU %\n" +
		"aaa111        localai     0.40%       2GB / 16GB         12.5%       10kB / 2kB  0B / 0B     5           1.2s        0.10%\n"
	m, err := ParseStats(out)
	if err != nil || m == nil {
		t.Fatalf("m=%v err=%v", m, err)
	}
	if m.NetIO != "10kB / 2kB" || m.BlockIO != "0B / 0B" {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestParseStats_PositionalFallback(t *testing.T) {
	out := "C0  C1  C2  C3  C4  C5  C6  C7\n" +
		"abc  localai  7.00%  1GiB / 2GiB  50.0%  3kB / 4kB  5MB / 6MB  9\n"
	m, err := ParseStats(out)
	if err != nil || m == nil {
		t.Fatalf("m=%v err=%v", m, err)
	}
	if m.CPUPercent != "7.00%" || m.MemUsage != "1GiB / 2GiB" || m.NetIO != "3kB / 4kB" || m.BlockIO != "5MB / 6MB" {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestParseStats_ShortRowHasNoMetrics(t *testing.T) {
	m, err := ParseStats("CONTAINER ID   NAME   CPU %   MEM USAGE / LIMIT   MEM %   NET I/O   BLOCK I/O   PIDS\nabc   x\n")
	if err != nil || m != nil {
		t.Fatalf("expected nil metrics without error, got m=%v err=%v", m, err)
	}
}

func TestParseStats_NoDataRow(t *testing.T) {
	_, err := ParseStats("CONTAINER ID   NAME\n")
	if !IsMalformedOutput(err) {
		t.Fatalf("expected malformed output error, got %v", err)
	}
}

func TestStateOf(t *testing.T) {
	cases := map[string]string{
		"Up 2 minutes":             StateRunning,
		"Up 1 hour (healthy)":      StateRunning,
		"Exited (137) 5 hours ago": StateStopped,
		"Created":                  StateUnknown,
		"":                         StateUnknown,
	}
	for in, want := range cases {
		if got := StateOf(in); got != want {
			t.Fatalf("StateOf(%q)=%q want %q", in, got, want)
		}
	}
	if !IsStopped("Exited (0) 1 second ago") || IsStopped("Up 1 second") {
		t.Fatalf("IsStopped mismatch")
	}
}

func TestParseAction(t *testing.T) {
	for in, want := range map[string]Action{"start": ActionStart, "STOP": ActionStop, "restart": ActionRestart, "delete": ActionRemove, "rm": ActionRemove} {
		got, err := ParseAction(in)
		if err != nil || got != want {
			t.Fatalf("ParseAction(%q)=%q,%v", in, got, err)
		}
	}
	if _, err := ParseAction("kill"); !IsUnknownAction(err) {
		t.Fatalf("expected unknown action, got %v", err)
	}
	if ActionRemove.cliVerb() != "rm" || ActionStop.cliVerb() != "stop" {
		t.Fatalf("cli verbs wrong")
	}
}
