package configedit

import (
	"llmtools/internal/yamllint"
	"llmtools/pkg/types"
)

// Lint checks content against the default rule set. Findings come back in
// document order; no findings means clean.
func Lint(content string) types.LintResponse {
	return LintWith(content, nil)
}

// LintWith uses cfg instead of the default rule set.
func LintWith(content string, cfg *yamllint.Config) types.LintResponse {
	problems := yamllint.Lint(content, cfg)
	out := types.LintResponse{Clean: len(problems) == 0, Findings: make([]types.LintFinding, 0, len(problems))}
	for _, p := range problems {
		out.Findings = append(out.Findings, types.LintFinding{
			Line:    p.Line,
			Column:  p.Column,
			Level:   p.Level,
			Message: p.Message,
			Rule:    p.Rule,
		})
	}
	return out
}

// LintFile reads name from the store and lints it.
func (s *Store) LintFile(name string) (types.LintResponse, error) {
	content, err := s.Read(name)
	if err != nil {
		return types.LintResponse{}, err
	}
	return Lint(content), nil
}
