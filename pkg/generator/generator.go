// Package generator invokes the external skill generator as an opaque
// subprocess. The pipeline only cares about the exit status: generated
// content lands in the input tree that the materializer reads from.
package generator

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/jingkaihe/skillgen/pkg/logger"
)

// Generator produces skill sources into the well-known input directory.
type Generator interface {
	Run(ctx context.Context) error
}

// SpecifyRunner runs `specify init` non-interactively in the repository
// root, overwriting any existing generated output.
type SpecifyRunner struct {
	root    string
	dialect string
	binary  string
}

// Option configures a SpecifyRunner
type Option func(*SpecifyRunner)

// WithBinary overrides the generator binary name
func WithBinary(binary string) Option {
	return func(r *SpecifyRunner) {
		r.binary = binary
	}
}

// NewSpecifyRunner creates a runner for the given repository root and
// script dialect selector.
func NewSpecifyRunner(root, dialect string, opts ...Option) *SpecifyRunner {
	r := &SpecifyRunner{
		root:    root,
		dialect: dialect,
		binary:  "specify",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run invokes the generator synchronously and waits for completion. There is
// no timeout or retry: a non-zero exit is fatal to the run, with the captured
// stderr surfaced in the returned error.
func (r *SpecifyRunner) Run(ctx context.Context) error {
	args := []string{
		"init",
		"--here",
		"--ai", "codex",
		"--ai-skills",
		"--force",
		"--ignore-agent-tools",
		"--script", r.dialect,
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := logger.G(ctx).WithField("binary", r.binary)
	log.Debug("running generator")

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "generator failed: %s", strings.TrimSpace(stderr.String()))
	}

	if out := strings.TrimSpace(stdout.String()); out != "" {
		log.WithField("output", out).Debug("generator completed")
	}
	return nil
}
