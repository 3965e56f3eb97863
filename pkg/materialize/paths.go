package materialize

import "path/filepath"

// Paths holds every source and destination location the pipeline touches.
// Components receive a Paths value at construction instead of consulting
// process-wide state, so a run is a pure function of (catalog, rules, paths).
type Paths struct {
	// Root is the repository root the generator ran in.
	Root string
	// GeneratedDir holds the generator's per-skill output (<skill>/SKILL.md).
	GeneratedDir string
	// TemplatesDir holds the reference templates.
	TemplatesDir string
	// ScriptsDir holds the scripts for the selected dialect.
	ScriptsDir string
	// OutputDir is the distributable skill tree, wiped on every run.
	OutputDir string
}

// NewPaths derives the layout contract from the repository root and the
// script dialect the generator was invoked with.
func NewPaths(root, dialect string) Paths {
	return Paths{
		Root:         root,
		GeneratedDir: filepath.Join(root, ".generator", "skills"),
		TemplatesDir: filepath.Join(root, ".config", "templates"),
		ScriptsDir:   filepath.Join(root, ".config", "scripts", dialect),
		OutputDir:    filepath.Join(root, "skills"),
	}
}
