package verify

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const skillFileName = "SKILL.md"

// ValidateSkillDocs checks that every emitted SKILL.md still parses as
// markdown with YAML frontmatter carrying name and description. The metadata
// stripper rewrites frontmatter structurally, so this guards against a strip
// that ate more than the metadata block.
func ValidateSkillDocs(outputRoot string) error {
	var result *multierror.Error

	err := filepath.WalkDir(outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != skillFileName {
			return nil
		}

		rel, relErr := filepath.Rel(outputRoot, path)
		if relErr != nil {
			return relErr
		}

		if err := validateSkillDoc(path); err != nil {
			result = multierror.Append(result, errors.Wrap(err, filepath.ToSlash(rel)))
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to scan skill documents")
	}

	return result.ErrorOrNil()
}

func validateSkillDoc(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read skill document")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return errors.New("missing frontmatter")
	}

	if name, _ := metaData["name"].(string); name == "" {
		return errors.New("skill name is required in frontmatter")
	}
	if description, _ := metaData["description"].(string); description == "" {
		return errors.New("skill description is required in frontmatter")
	}

	return nil
}
