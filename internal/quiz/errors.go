package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBank is returned (wrapped) when a question bank fails validation.
var ErrInvalidBank = errors.New("invalid question bank")

// ValidationError lists every problem found in a question bank.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidBank }
