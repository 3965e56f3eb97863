// Package catalog defines which files make up each distributable skill
// package. The catalog is the single source of truth for skill contents:
// the materializer copies exactly what the catalog lists, nothing else.
package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SkillDefinition describes one skill package: its name (also the output
// directory name) and the reference and script files it bundles.
type SkillDefinition struct {
	Name       string   `yaml:"name"`
	References []string `yaml:"references,omitempty"`
	Scripts    []string `yaml:"scripts,omitempty"`
}

// Catalog is an ordered collection of skill definitions. Order matters:
// skills are materialized in catalog order.
type Catalog []SkillDefinition

// DefinitionFor returns the definition for the named skill, or false if the
// catalog does not contain it.
func (c Catalog) DefinitionFor(name string) (SkillDefinition, bool) {
	for _, def := range c {
		if def.Name == name {
			return def, true
		}
	}
	return SkillDefinition{}, false
}

// Names returns the skill names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, def := range c {
		names = append(names, def.Name)
	}
	return names
}

// Load reads a catalog override from a YAML file. The file is a sequence of
// skill definitions; order in the file is preserved.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog file")
	}

	for _, def := range c {
		if def.Name == "" {
			return nil, errors.New("catalog entry is missing a name")
		}
	}

	return c, nil
}

// Default returns the built-in catalog of speckit skills.
func Default() Catalog {
	return Catalog{
		{
			Name:       "speckit-specify",
			References: []string{"spec-template.md"},
			Scripts:    []string{"common.sh", "create-new-feature.sh"},
		},
		{
			Name:    "speckit-clarify",
			Scripts: []string{"common.sh", "check-prerequisites.sh"},
		},
		{
			Name:       "speckit-constitution",
			References: []string{"constitution-template.md"},
		},
		{
			Name:       "speckit-plan",
			References: []string{"plan-template.md", "agent-file-template.md"},
			Scripts:    []string{"common.sh", "setup-plan.sh", "update-agent-context.sh"},
		},
		{
			Name:       "speckit-tasks",
			References: []string{"tasks-template.md"},
			Scripts:    []string{"common.sh", "check-prerequisites.sh"},
		},
		{
			Name:       "speckit-checklist",
			References: []string{"checklist-template.md"},
			Scripts:    []string{"common.sh", "check-prerequisites.sh"},
		},
		{
			Name:    "speckit-implement",
			Scripts: []string{"common.sh", "check-prerequisites.sh"},
		},
		{
			Name:    "speckit-analyze",
			Scripts: []string{"common.sh", "check-prerequisites.sh"},
		},
		{
			Name:    "speckit-taskstoissues",
			Scripts: []string{"common.sh", "check-prerequisites.sh"},
		},
	}
}
