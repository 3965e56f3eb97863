package patch

import (
	"os"

	"github.com/pkg/errors"
)

// Precedence controls the order skill-scoped and common rules apply in.
type Precedence int

const (
	// SkillSpecificFirst applies skill and path scoped rules before common
	// rules, letting a skill override a common rewrite. This is the default.
	SkillSpecificFirst Precedence = iota
	// CommonFirst applies common rules before skill and path scoped rules.
	// Kept for downstream consumers pinned to the historical ordering.
	CommonFirst
)

// Engine computes the effective rule set for each materialized file and
// applies it. The engine holds no mutable state; it is a pure function of
// its tables and precedence.
type Engine struct {
	tables     Tables
	precedence Precedence
}

// Option configures an Engine
type Option func(*Engine)

// WithPrecedence overrides the default skill-specific-first rule ordering
func WithPrecedence(p Precedence) Option {
	return func(e *Engine) {
		e.precedence = p
	}
}

// NewEngine creates an Engine over the given rule tables
func NewEngine(tables Tables, opts ...Option) *Engine {
	e := &Engine{
		tables:     tables,
		precedence: SkillSpecificFirst,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EffectiveRules returns the ordered rule set governing the file at relPath
// within the named skill's output directory: rules keyed to (skill, relPath),
// then rules keyed to relPath alone, then common rules. A rule keyed to a
// different path never leaks into the set, so a rule scoped to a reference
// file cannot run against a skill document or a script.
func (e *Engine) EffectiveRules(skill, relPath string) RuleSet {
	var scoped RuleSet
	if byPath, ok := e.tables.Skill[skill]; ok {
		scoped = append(scoped, byPath[relPath]...)
	}
	scoped = append(scoped, e.tables.Path[relPath]...)

	rules := make(RuleSet, 0, len(scoped)+len(e.tables.Common))
	if e.precedence == CommonFirst {
		rules = append(rules, e.tables.Common...)
		return append(rules, scoped...)
	}
	rules = append(rules, scoped...)
	return append(rules, e.tables.Common...)
}

// PatchFile applies the effective rule set for (skill, relPath) to the file
// at path, writing back only when the content changed. Returns whether the
// file was rewritten.
func (e *Engine) PatchFile(path, skill, relPath string) (bool, error) {
	return rewriteFile(path, e.EffectiveRules(skill, relPath).Apply)
}

// StripMetadataFile removes the frontmatter metadata block from the file at
// path, writing back only on change. Applied to primary skill documents only.
func StripMetadataFile(path string) (bool, error) {
	return rewriteFile(path, StripMetadata)
}

// rewriteFile runs transform over the file's content and writes the result
// back, preserving the file mode. The write is skipped when the transform
// is a no-op so unchanged files keep their modification time.
func rewriteFile(path string, transform func(string) string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrap(err, "failed to stat file")
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, "failed to read file")
	}

	patched := transform(string(original))
	if patched == string(original) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode()); err != nil {
		return false, errors.Wrap(err, "failed to write patched file")
	}
	return true, nil
}
