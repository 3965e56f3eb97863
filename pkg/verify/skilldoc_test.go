package verify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSkillDocs_Valid(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", "SKILL.md"),
		"---\nname: alpha\ndescription: Does alpha things.\n---\n\n# Alpha\n")

	assert.NoError(t, ValidateSkillDocs(root))
}

func TestValidateSkillDocs_MissingFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", "SKILL.md"), "# Alpha without frontmatter\n")

	err := ValidateSkillDocs(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha/SKILL.md")
	assert.Contains(t, err.Error(), "missing frontmatter")
}

func TestValidateSkillDocs_MissingDescription(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", "SKILL.md"),
		"---\nname: alpha\n---\n\n# Alpha\n")

	err := ValidateSkillDocs(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

func TestValidateSkillDocs_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", "SKILL.md"),
		"---\nname: alpha\ndescription: Does alpha things.\n---\n")
	writeFile(t, filepath.Join(root, "alpha", "references", "tmpl.md"),
		"no frontmatter, not a skill document\n")

	assert.NoError(t, ValidateSkillDocs(root))
}

func TestValidateSkillDocs_CollectsAllProblems(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", "SKILL.md"), "no frontmatter\n")
	writeFile(t, filepath.Join(root, "beta", "SKILL.md"),
		"---\ndescription: Has no name.\n---\n")

	err := ValidateSkillDocs(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha/SKILL.md")
	assert.Contains(t, err.Error(), "beta/SKILL.md")
}
