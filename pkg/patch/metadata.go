package patch

import "regexp"

// metadataBlock matches a frontmatter `metadata:` marker line followed by
// one or more two-space-indented sub-entry lines. The sub-entry content
// varies per file (author, source, version), so this is structural rather
// than a literal rule: the whole span, marker included, is removed.
var metadataBlock = regexp.MustCompile(`(?m)^metadata:\n(?:  [^\n]+\n)+`)

// StripMetadata removes the frontmatter metadata block from text, leaving
// surrounding content byte-identical. Text without such a block is returned
// unchanged, which makes the operation idempotent.
func StripMetadata(text string) string {
	return metadataBlock.ReplaceAllString(text, "")
}
