package yamllint

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var truthyValues = map[string]bool{
	"YES": true, "Yes": true, "yes": true, "NO": true, "No": true, "no": true,
	"TRUE": true, "True": true, "true": true, "FALSE": true, "False": true, "false": true,
	"ON": true, "On": true, "on": true, "OFF": true, "Off": true, "off": true,
}

// checkTree runs the structural rules. Only called on content that parses.
func (l *linter) checkTree(content string) {
	dec := yaml.NewDecoder(strings.NewReader(content))
	unit := 0
	if r, ok := l.cfg.rule("indentation"); ok {
		if n, ok := r.opts["spaces"].(int); ok {
			unit = n
		}
	}
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			return
		}
		l.walk(&doc, false, &unit)
	}
}

func (l *linter) walk(n *yaml.Node, isKey bool, unit *int) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			l.walk(c, false, unit)
		}
	case yaml.ScalarNode:
		l.checkTruthy(n, isKey)
	case yaml.SequenceNode:
		for _, c := range n.Content {
			l.walk(c, false, unit)
		}
	case yaml.MappingNode:
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value != "<<" {
				if seen[k.Value] {
					l.report("key-duplicates", k.Line, k.Column, fmt.Sprintf("duplication of key %q in mapping", k.Value))
				}
				seen[k.Value] = true
			}
			if n.Style&yaml.FlowStyle == 0 {
				l.checkIndent(k, v, unit)
			}
			l.walk(k, true, unit)
			l.walk(v, false, unit)
		}
	}
}

func (l *linter) checkTruthy(n *yaml.Node, isKey bool) {
	r, ok := l.cfg.rule("truthy")
	if !ok || n.Style != 0 || !truthyValues[n.Value] {
		return
	}
	if isKey && !r.bool("check-keys") {
		return
	}
	allowed := r.strings("allowed-values")
	for _, a := range allowed {
		if a == n.Value {
			return
		}
	}
	sort.Strings(allowed)
	l.report("truthy", n.Line, n.Column, "truthy value should be one of ["+strings.Join(allowed, ", ")+"]")
}

// checkIndent compares the indentation of a block collection nested under
// key against the key's own column.
func (l *linter) checkIndent(key, child *yaml.Node, unit *int) {
	r, ok := l.cfg.rule("indentation")
	if !ok {
		return
	}
	if (child.Kind != yaml.MappingNode && child.Kind != yaml.SequenceNode) || child.Style&yaml.FlowStyle != 0 || child.Line <= key.Line {
		return
	}
	base, found := key.Column-1, child.Column-1
	if *unit == 0 && found > base {
		*unit = found - base
	}
	step := *unit
	if step == 0 {
		step = 2
	}
	expected := base + step
	if child.Kind == yaml.SequenceNode {
		switch r.opts["indent-sequences"] {
		case false:
			expected = base
		case "whatever", "consistent":
			if found == base {
				return
			}
		}
	}
	if found != expected {
		l.report("indentation", child.Line, found+1, fmt.Sprintf("wrong indentation: expected %d but found %d", expected, found))
	}
}
