package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMetadata_RemovesBlock(t *testing.T) {
	input := `---
name: speckit-plan
description: Plan a feature.
metadata:
  author: spec-kit
  source: generated
---

# Plan
`
	want := `---
name: speckit-plan
description: Plan a feature.
---

# Plan
`

	assert.Equal(t, want, StripMetadata(input))
}

func TestStripMetadata_SurroundingContentUntouched(t *testing.T) {
	input := "before\nmetadata:\n  a: 1\n  b: 2\nafter\n"

	assert.Equal(t, "before\nafter\n", StripMetadata(input))
}

func TestStripMetadata_NoBlockIsNoop(t *testing.T) {
	input := "---\nname: speckit-plan\n---\n\n# Plan\n"

	assert.Equal(t, input, StripMetadata(input))
}

func TestStripMetadata_Idempotent(t *testing.T) {
	input := "metadata:\n  author: spec-kit\nbody\n"

	once := StripMetadata(input)
	assert.Equal(t, once, StripMetadata(once))
}

func TestStripMetadata_RequiresIndentedSubEntries(t *testing.T) {
	// A bare marker line with no indented sub-entries is not a block.
	input := "metadata:\nnot indented\n"

	assert.Equal(t, input, StripMetadata(input))
}

func TestStripMetadata_InlineMentionUntouched(t *testing.T) {
	// Only a marker at the start of a line introduces a block.
	input := "see the metadata:\n  field for details\n"

	assert.Equal(t, input, StripMetadata(input))
}
