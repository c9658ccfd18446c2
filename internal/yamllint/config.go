package yamllint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Levels a problem can carry.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

type ruleConf struct {
	enabled bool
	level   string
	opts    map[string]any
}

// Config is a rule set. The zero value has every rule disabled; use
// DefaultConfig or ParseConfig.
type Config struct {
	rules map[string]*ruleConf
}

// defaultRules mirrors the "default" preset. Rules listed as disabled are
// known but not implemented; enabling them is a configuration error.
var defaultRules = map[string]ruleConf{
	"braces":                  {true, LevelError, map[string]any{"min-spaces-inside": 0, "max-spaces-inside": 0, "min-spaces-inside-empty": -1, "max-spaces-inside-empty": -1}},
	"brackets":                {true, LevelError, map[string]any{"min-spaces-inside": 0, "max-spaces-inside": 0, "min-spaces-inside-empty": -1, "max-spaces-inside-empty": -1}},
	"colons":                  {true, LevelError, map[string]any{"max-spaces-before": 0, "max-spaces-after": 1}},
	"commas":                  {true, LevelError, map[string]any{"max-spaces-before": 0, "min-spaces-after": 1, "max-spaces-after": 1}},
	"comments":                {true, LevelWarning, map[string]any{"require-starting-space": true, "ignore-shebangs": true, "min-spaces-from-content": 2}},
	"comments-indentation":    {true, LevelWarning, map[string]any{}},
	"document-start":          {true, LevelWarning, map[string]any{"present": true}},
	"empty-lines":             {true, LevelError, map[string]any{"max": 2, "max-start": 0, "max-end": 0}},
	"hyphens":                 {true, LevelError, map[string]any{"max-spaces-after": 1}},
	"indentation":             {true, LevelError, map[string]any{"spaces": "consistent", "indent-sequences": true}},
	"key-duplicates":          {true, LevelError, map[string]any{}},
	"line-length":             {true, LevelError, map[string]any{"max": 80, "allow-non-breakable-words": true}},
	"new-line-at-end-of-file": {true, LevelError, map[string]any{}},
	"new-lines":               {true, LevelError, map[string]any{"type": "unix"}},
	"trailing-spaces":         {true, LevelError, map[string]any{}},
	"truthy":                  {true, LevelWarning, map[string]any{"allowed-values": []any{"true", "false"}, "check-keys": true}},

	"document-end":   {false, LevelError, nil},
	"empty-values":   {false, LevelError, nil},
	"float-values":   {false, LevelError, nil},
	"key-ordering":   {false, LevelError, nil},
	"octal-values":   {false, LevelError, nil},
	"quoted-strings": {false, LevelError, nil},
}

// DefaultConfig returns the "extends: default" rule set.
func DefaultConfig() *Config {
	c := &Config{rules: make(map[string]*ruleConf, len(defaultRules))}
	for name, r := range defaultRules {
		var opts map[string]any
		if r.opts != nil {
			opts = make(map[string]any, len(r.opts))
			for k, v := range r.opts {
				opts[k] = v
			}
		}
		c.rules[name] = &ruleConf{enabled: r.enabled, level: r.level, opts: opts}
	}
	return c
}

// ParseConfig reads a yamllint-style configuration. Only the "default"
// preset can be extended; rules may be set to enable, disable or a mapping
// of options (including "level").
func ParseConfig(src string) (*Config, error) {
	var raw struct {
		Extends string               `yaml:"extends"`
		Rules   map[string]yaml.Node `yaml:"rules"`
	}
	if err := yaml.Unmarshal([]byte(src), &raw); err != nil {
		return nil, fmt.Errorf("lint config: %w", err)
	}
	if raw.Extends != "" && raw.Extends != "default" {
		return nil, fmt.Errorf("lint config: unsupported preset %q", raw.Extends)
	}
	c := DefaultConfig()
	if raw.Extends == "" {
		for _, r := range c.rules {
			r.enabled = false
		}
	}
	for name, node := range raw.Rules {
		r, ok := c.rules[name]
		if !ok {
			return nil, fmt.Errorf("lint config: unknown rule %q", name)
		}
		if node.Kind == yaml.ScalarNode {
			switch node.Value {
			case "enable":
				r.enabled = true
			case "disable":
				r.enabled = false
			default:
				return nil, fmt.Errorf("lint config: rule %q: want enable, disable or options", name)
			}
		} else {
			var opts map[string]any
			if err := node.Decode(&opts); err != nil {
				return nil, fmt.Errorf("lint config: rule %q: %w", name, err)
			}
			r.enabled = true
			for k, v := range opts {
				if k == "level" {
					lvl := fmt.Sprint(v)
					if lvl != LevelError && lvl != LevelWarning {
						return nil, fmt.Errorf("lint config: rule %q: invalid level %q", name, lvl)
					}
					r.level = lvl
					continue
				}
				if _, known := r.opts[k]; !known {
					return nil, fmt.Errorf("lint config: rule %q: unknown option %q", name, k)
				}
				r.opts[k] = v
			}
		}
		if r.enabled && r.opts == nil {
			return nil, fmt.Errorf("lint config: rule %q is not supported", name)
		}
	}
	return c, nil
}

func (c *Config) rule(name string) (*ruleConf, bool) {
	r, ok := c.rules[name]
	if !ok || !r.enabled {
		return nil, false
	}
	return r, true
}

func (r *ruleConf) int(key string) int {
	switch v := r.opts[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (r *ruleConf) bool(key string) bool {
	b, _ := r.opts[key].(bool)
	return b
}

func (r *ruleConf) strings(key string) []string {
	var out []string
	switch v := r.opts[key].(type) {
	case []any:
		for _, s := range v {
			out = append(out, fmt.Sprint(s))
		}
	case []string:
		out = append(out, v...)
	case string:
		out = strings.Split(v, ",")
	}
	return out
}
