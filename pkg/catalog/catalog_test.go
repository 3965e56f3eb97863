package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionFor(t *testing.T) {
	c := Default()

	def, ok := c.DefinitionFor("speckit-plan")
	require.True(t, ok)
	assert.Equal(t, []string{"plan-template.md", "agent-file-template.md"}, def.References)
	assert.Equal(t, []string{"common.sh", "setup-plan.sh", "update-agent-context.sh"}, def.Scripts)

	_, ok = c.DefinitionFor("no-such-skill")
	assert.False(t, ok)
}

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"speckit-specify",
		"speckit-clarify",
		"speckit-constitution",
		"speckit-plan",
		"speckit-tasks",
		"speckit-checklist",
		"speckit-implement",
		"speckit-analyze",
		"speckit-taskstoissues",
	}, c.Names())
}

func TestLoad(t *testing.T) {
	content := `- name: alpha
  references:
    - tmpl.md
  scripts:
    - run.sh
- name: beta
  scripts:
    - run.sh
`
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, c.Names())

	def, ok := c.DefinitionFor("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"tmpl.md"}, def.References)
	assert.Equal(t, []string{"run.sh"}, def.Scripts)
}

func TestLoad_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- references: [tmpl.md]\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
