package engine

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"llmtools/pkg/types"
)

// ParseContainers decodes `ps --format {{json .}}` output, one JSON object
// per line. Lines that are not JSON objects with an ID are skipped.
func ParseContainers(out string) []types.ContainerRecord {
	var recs []types.ContainerRecord
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !gjson.Valid(line) {
			continue
		}
		r := gjson.Parse(line)
		if !r.IsObject() {
			continue
		}
		id := r.Get("ID").String()
		if id == "" {
			continue
		}
		status := r.Get("Status").String()
		recs = append(recs, types.ContainerRecord{
			ID:     id,
			Name:   firstName(r.Get("Names").String()),
			Image:  r.Get("Image").String(),
			Status: status,
			State:  StateOf(status),
			Ports:  r.Get("Ports").String(),
		})
	}
	return recs
}

// firstName picks the primary name from a comma-separated Names field.
func firstName(names string) string {
	if i := strings.IndexByte(names, ','); i >= 0 {
		names = names[:i]
	}
	return strings.TrimPrefix(strings.TrimSpace(names), "/")
}

// The stats table pads columns with at least two spaces while values such
// as "10MiB / 1GiB" contain single spaces.
var statsColumnSep = regexp.MustCompile(`\s{2,}`)

// Positional fallbacks for the stats table when the header is unrecognised.
const (
	statsColCPU   = 2
	statsColMem   = 3
	statsColNet   = 5
	statsColBlock = 6
)

// ParseStats decodes the `stats <id> --no-stream` table. A missing data row
// is malformed output; a data row without the metric columns yields nil
// metrics and no error.
func ParseStats(out string) (*types.ContainerMetrics, error) {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	if len(lines) < 2 {
		return nil, malformedOutputError{op: "stats", detail: "no data row"}
	}
	header := statsColumnSep.Split(lines[0], -1)
	row := statsColumnSep.Split(lines[1], -1)
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[normalizeHeader(h)] = i
	}
	col := func(name string, fallback int) (string, bool) {
		i, ok := index[name]
		if !ok {
			i = fallback
		}
		if i >= len(row) {
			return "", false
		}
		return row[i], true
	}
	var m types.ContainerMetrics
	var ok [4]bool
	m.CPUPercent, ok[0] = col("CPU%", statsColCPU)
	m.MemUsage, ok[1] = col("MEMUSAGELIMIT", statsColMem)
	m.NetIO, ok[2] = col("NETIO", statsColNet)
	m.BlockIO, ok[3] = col("BLOCKIO", statsColBlock)
	for _, v := range ok {
		if !v {
			return nil, nil
		}
	}
	return &m, nil
}

// normalizeHeader folds "NET I/O" and podman's "NET IO" to the same key.
func normalizeHeader(h string) string {
	h = strings.ToUpper(h)
	h = strings.ReplaceAll(h, " ", "")
	return strings.ReplaceAll(h, "/", "")
}
