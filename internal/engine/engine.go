// Package engine talks to the local container engine, either by shelling out
// to its CLI or through the daemon API.
package engine

import (
	"context"
	"strings"

	"llmtools/pkg/types"
)

// Engine is the set of container operations the dashboard and runner need.
type Engine interface {
	// ListContainers returns running containers, or all of them when all is true.
	ListContainers(ctx context.Context, all bool) ([]types.ContainerRecord, error)
	// Stats returns a single metrics snapshot for the container.
	Stats(ctx context.Context, id string) (*types.ContainerMetrics, error)
	// Logs returns the last tail lines of the container's output; tail <= 0 means all.
	Logs(ctx context.Context, name string, tail int) (string, error)
	// Do applies a lifecycle action to the named container.
	Do(ctx context.Context, action Action, name string) error
	// Ping reports whether the engine is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Action is a container lifecycle transition.
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
	ActionRemove  Action = "delete"
)

// ParseAction accepts the UI and CLI spellings of an action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return ActionStart, nil
	case "stop":
		return ActionStop, nil
	case "restart":
		return ActionRestart, nil
	case "delete", "rm", "remove":
		return ActionRemove, nil
	}
	return "", unknownActionError{action: s}
}

// cliVerb is the engine CLI subcommand for the action.
func (a Action) cliVerb() string {
	if a == ActionRemove {
		return "rm"
	}
	return string(a)
}

// Group labels derived from the engine's status text.
const (
	StateRunning = "running"
	StateStopped = "stopped"
	StateUnknown = "unknown"
)

// StateOf maps a human-readable status ("Up 3 hours", "Exited (0) ...")
// to a group label.
func StateOf(status string) string {
	switch {
	case strings.Contains(status, "Up"):
		return StateRunning
	case strings.Contains(status, "Exited"):
		return StateStopped
	default:
		return StateUnknown
	}
}

// IsStopped reports whether a container belongs to the stopped group.
func IsStopped(status string) bool { return strings.HasPrefix(status, "Exited") }
