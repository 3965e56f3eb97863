// Package materialize copies each skill's files from the generator's output
// and the template and script source trees into a fresh output tree, then
// runs the metadata stripper and patch engine over every copied file.
package materialize

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jingkaihe/skillgen/pkg/catalog"
	"github.com/jingkaihe/skillgen/pkg/logger"
	"github.com/jingkaihe/skillgen/pkg/patch"
)

// skillFileName is each skill's primary document.
const skillFileName = "SKILL.md"

// MissingSourceError reports an expected source file that was absent. It is
// recoverable: the file is skipped with a warning and the run continues.
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("source file %s not found", e.Path)
}

// SkillResult summarizes what was materialized for one skill.
type SkillResult struct {
	Name       string
	References int
	Scripts    int
	Patched    []string
	Missing    []string
	Skipped    bool
}

// Result summarizes a full materialization pass, in catalog order.
type Result struct {
	Skills []SkillResult
}

// Materializer copies catalog-listed files into the output tree and applies
// the text transformations in place.
type Materializer struct {
	paths   Paths
	catalog catalog.Catalog
	engine  *patch.Engine
}

// New creates a Materializer over the given paths, catalog, and patch engine.
func New(paths Paths, cat catalog.Catalog, engine *patch.Engine) *Materializer {
	return &Materializer{
		paths:   paths,
		catalog: cat,
		engine:  engine,
	}
}

// Materialize wipes and recreates the output root, then materializes every
// catalog entry in order. A missing source file never aborts the run: the
// skill (or single file) is skipped with a warning so removed upstream files
// cannot linger from a previous run.
func (m *Materializer) Materialize(ctx context.Context) (*Result, error) {
	log := logger.G(ctx)

	if err := os.RemoveAll(m.paths.OutputDir); err != nil {
		return nil, errors.Wrap(err, "failed to remove stale output directory")
	}
	if err := os.MkdirAll(m.paths.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	result := &Result{}
	for _, def := range m.catalog {
		skillResult, err := m.materializeSkill(ctx, def)
		if err != nil {
			var missing *MissingSourceError
			if errors.As(err, &missing) {
				log.WithField("skill", def.Name).WithField("path", missing.Path).
					Warn("skill document not found, skipping skill")
				result.Skills = append(result.Skills, SkillResult{
					Name:    def.Name,
					Missing: []string{missing.Path},
					Skipped: true,
				})
				continue
			}
			return nil, errors.Wrapf(err, "failed to materialize skill %s", def.Name)
		}
		result.Skills = append(result.Skills, *skillResult)
	}

	return result, nil
}

func (m *Materializer) materializeSkill(ctx context.Context, def catalog.SkillDefinition) (*SkillResult, error) {
	log := logger.G(ctx).WithField("skill", def.Name)
	result := &SkillResult{Name: def.Name}

	srcDoc := filepath.Join(m.paths.GeneratedDir, def.Name, skillFileName)
	if _, err := os.Stat(srcDoc); err != nil {
		return nil, &MissingSourceError{Path: srcDoc}
	}

	outDir := filepath.Join(m.paths.OutputDir, def.Name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create skill directory")
	}

	if err := copyFile(srcDoc, filepath.Join(outDir, skillFileName)); err != nil {
		return nil, errors.Wrap(err, "failed to copy skill document")
	}
	log.Debug("copied skill document")

	copied := []string{skillFileName}
	for _, ref := range def.References {
		// Rule table keys are slash-separated relative paths.
		relPath := "references/" + ref
		ok, err := m.copyResource(ctx, filepath.Join(m.paths.TemplatesDir, ref), outDir, relPath)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Missing = append(result.Missing, ref)
			continue
		}
		result.References++
		copied = append(copied, relPath)
	}

	for _, script := range def.Scripts {
		relPath := "scripts/" + script
		ok, err := m.copyResource(ctx, filepath.Join(m.paths.ScriptsDir, script), outDir, relPath)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Missing = append(result.Missing, script)
			continue
		}
		result.Scripts++
		copied = append(copied, relPath)
	}

	if _, err := patch.StripMetadataFile(filepath.Join(outDir, skillFileName)); err != nil {
		return nil, errors.Wrap(err, "failed to strip metadata block")
	}

	for _, relPath := range copied {
		changed, err := m.engine.PatchFile(filepath.Join(outDir, relPath), def.Name, relPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to patch %s", relPath)
		}
		if changed {
			result.Patched = append(result.Patched, relPath)
			log.WithField("path", relPath).Debug("patched file")
		}
	}

	return result, nil
}

// copyResource copies src into outDir/relPath, creating the parent
// directory. A missing source is reported as a warning, not an error.
func (m *Materializer) copyResource(ctx context.Context, src, outDir, relPath string) (bool, error) {
	if _, err := os.Stat(src); err != nil {
		logger.G(ctx).WithField("path", src).Warn("source file not found, skipping")
		return false, nil
	}

	dst := filepath.Join(outDir, relPath)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, errors.Wrap(err, "failed to create resource directory")
	}
	if err := copyFile(src, dst); err != nil {
		return false, errors.Wrapf(err, "failed to copy %s", relPath)
	}
	return true, nil
}

// copyFile copies src to dst byte-identically, preserving the file mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
