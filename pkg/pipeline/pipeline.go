// Package pipeline sequences a full skill generation run: external
// generation, materialization with patching, and verification. Stages run
// single-threaded and fail fast; only per-file missing sources are tolerated.
package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jingkaihe/skillgen/pkg/generator"
	"github.com/jingkaihe/skillgen/pkg/logger"
	"github.com/jingkaihe/skillgen/pkg/materialize"
	"github.com/jingkaihe/skillgen/pkg/verify"
)

// Pipeline runs the generation stages in order.
type Pipeline struct {
	gen          generator.Generator
	materializer *materialize.Materializer
	verifier     *verify.Verifier
	outputDir    string
}

// New creates a Pipeline. A nil generator skips the generation stage and
// reuses whatever the input tree already holds.
func New(gen generator.Generator, m *materialize.Materializer, v *verify.Verifier, outputDir string) *Pipeline {
	return &Pipeline{
		gen:          gen,
		materializer: m,
		verifier:     v,
		outputDir:    outputDir,
	}
}

// Run executes generation, materialization, and verification. The returned
// result is the materialization summary; it is non-nil whenever
// materialization completed, even if verification failed afterwards.
func (p *Pipeline) Run(ctx context.Context) (*materialize.Result, error) {
	log := logger.G(ctx)

	if p.gen != nil {
		log.Info("running external generator")
		if err := p.gen.Run(ctx); err != nil {
			return nil, err
		}
	} else {
		log.Debug("generation skipped, reusing existing input tree")
	}

	log.Info("materializing and patching skills")
	result, err := p.materializer.Materialize(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("verifying output")
	violations, err := p.verifier.Verify(p.outputDir)
	if err != nil {
		return result, err
	}
	if err := verify.AsError(violations); err != nil {
		return result, err
	}

	if err := verify.ValidateSkillDocs(p.outputDir); err != nil {
		return result, errors.Wrap(err, "skill document validation failed")
	}

	return result, nil
}
