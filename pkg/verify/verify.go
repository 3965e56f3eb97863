// Package verify scans the materialized output tree for forbidden residue:
// paths into the generator's internal input tree and unresolved template
// placeholder tokens. It is a post-condition check only and never mutates
// the tree; its job is to catch template content no patch rule covers yet.
package verify

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Violation is a single forbidden-pattern occurrence in an output file.
type Violation struct {
	// Path is relative to the output root.
	Path string
	// Match is the matched text.
	Match string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: found %q", v.Path, v.Match)
}

// DefaultPatterns returns the forbidden patterns for the built-in pipeline:
// the generator's input root prefix and the template placeholder token.
func DefaultPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`\.config/`),
		regexp.MustCompile(`\$ARGUMENTS`),
	}
}

// Verifier scans files for forbidden patterns.
type Verifier struct {
	patterns []*regexp.Regexp
}

// NewVerifier creates a Verifier. With no patterns it uses DefaultPatterns.
func NewVerifier(patterns ...*regexp.Regexp) *Verifier {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Verifier{patterns: patterns}
}

// Verify walks every regular file under outputRoot and records one Violation
// per pattern match. Files that are not valid text are skipped silently:
// binary artifacts are out of scope for pattern scanning. All violations are
// collected so a single run surfaces the complete list of unpatched residue.
func (v *Verifier) Verify(outputRoot string) ([]Violation, error) {
	var violations []Violation

	err := filepath.WalkDir(outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		if !utf8.Valid(content) {
			return nil
		}

		rel, err := filepath.Rel(outputRoot, path)
		if err != nil {
			return err
		}

		for _, pattern := range v.patterns {
			for _, match := range pattern.FindAllString(string(content), -1) {
				violations = append(violations, Violation{
					Path:  filepath.ToSlash(rel),
					Match: match,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan output tree")
	}

	return violations, nil
}

// AsError converts a violation list into a single aggregated error, or nil
// when the list is empty.
func AsError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}

	var result *multierror.Error
	for _, v := range violations {
		result = multierror.Append(result, errors.New(v.String()))
	}
	return errors.Wrap(result.ErrorOrNil(), "forbidden patterns found in output")
}
