// Package patch applies deterministic text substitutions to materialized
// skill files so the output tree is self-contained: no paths into the
// generator's internal directory layout and no unresolved template
// placeholder tokens.
package patch

import "strings"

// Rule is an exact literal substring substitution. It is not a pattern:
// every occurrence of Search is replaced with Replace, and a rule whose
// Search text is absent is a no-op.
type Rule struct {
	Search  string
	Replace string
}

// RuleSet is an ordered sequence of rules. Order is part of the contract:
// each rule is applied fully (all occurrences) before the next rule runs,
// so the output of rule i is the input to rule i+1.
type RuleSet []Rule

// Apply runs every rule in order over text and returns the result.
func (rs RuleSet) Apply(text string) string {
	for _, r := range rs {
		text = strings.ReplaceAll(text, r.Search, r.Replace)
	}
	return text
}
