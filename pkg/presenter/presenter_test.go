package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestSuccess(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("generated 9 skills")

	assert.Contains(t, out.String(), "✓ generated 9 skills")
}

func TestWarning(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Warning("template spec-template.md not found")

	assert.Contains(t, out.String(), "⚠ template spec-template.md not found")
}

func TestError_WithContext(t *testing.T) {
	p, _, errOut := newTestPresenter()

	p.Error(errors.New("exit status 1"), "generator failed")

	assert.Contains(t, errOut.String(), "[ERROR] generator failed: exit status 1")
}

func TestError_NilIsNoop(t *testing.T) {
	p, _, errOut := newTestPresenter()

	p.Error(nil, "ignored")

	assert.Empty(t, errOut.String())
}

func TestQuietSuppressesAllButErrors(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)

	p.Success("hidden")
	p.Warning("hidden")
	p.Info("hidden")
	p.Section("hidden")
	p.Separator()
	p.Error(errors.New("boom"), "")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
	assert.True(t, p.IsQuiet())
}

func TestSection(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Section("Summary")

	assert.Contains(t, out.String(), "Summary\n-------\n")
}
