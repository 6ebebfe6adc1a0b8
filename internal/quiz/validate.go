package quiz

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the bank format major version this build reads.
const SupportedMajor = "v1"

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledBankSchema compiles bankSchema once and caches the result.
func compiledBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, bankSchema); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(bankSchemaURL)
	})
	return schemaCompiled, schemaErr
}

// validateDocument checks a decoded JSON document against the bank schema.
func validateDocument(doc any) error {
	sch, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return &ValidationError{Problems: []string{fmt.Sprintf("schema: %v", err)}}
	}
	return nil
}

// Validate checks the rules the schema cannot express: a readable version
// with a supported major, and every correct answer present (exactly once)
// among its question's options.
func (b *Bank) Validate() error {
	var problems []string

	switch v := canonicalVersion(b.Version); {
	case !semver.IsValid(v):
		problems = append(problems, fmt.Sprintf("version %q is not a semantic version", b.Version))
	case semver.Major(v) != SupportedMajor:
		problems = append(problems, fmt.Sprintf("version %q unsupported: want major %s", b.Version, SupportedMajor))
	}

	if len(b.Questions) == 0 {
		problems = append(problems, "bank has no questions")
	}

	for i, q := range b.Questions {
		n := i + 1
		if q.Prompt == "" {
			problems = append(problems, fmt.Sprintf("question %d: empty prompt", n))
		}
		if len(q.AnswerOptions) == 0 {
			problems = append(problems, fmt.Sprintf("question %d: no answer options", n))
			continue
		}
		seen := make(map[string]bool, len(q.AnswerOptions))
		for _, opt := range q.AnswerOptions {
			if opt == "" {
				problems = append(problems, fmt.Sprintf("question %d: empty answer option", n))
			}
			if seen[opt] {
				problems = append(problems, fmt.Sprintf("question %d: duplicate answer option %q", n, opt))
			}
			seen[opt] = true
		}
		if !seen[q.CorrectAnswer] {
			problems = append(problems, fmt.Sprintf("question %d: correct answer %q is not one of the options", n, q.CorrectAnswer))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// canonicalVersion adds the "v" prefix semver expects, so "1.0.0" and
// "v1.0.0" name the same version.
func canonicalVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
