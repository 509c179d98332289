package contagiongo

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error message formats, in the teacher's format-string-constant
// convention (errors.go in kentwait-contagion).
const (
	IntKeyNotFoundError = "key %d not found"
	IntKeyExists        = "key %d already exists"

	InvalidFloatParameterError  = "invalid %s %f, %s"
	InvalidIntParameterError    = "invalid %s %d, %s"
	InvalidStringParameterError = "invalid %s %s, %s"

	UnequalFloatParameterError  = "expected %s %f, instead got %f"
	UnequalIntParameterError    = "expected %s %d, instead got %d"
	UnequalStringParameterError = "expected %s %s, instead got %s"
	UnexpectedErrorWhileError   = "encountered error while %s: %s"
	ExpectedErrorWhileError     = "expected an error while %s, instead got none"

	// EmptyContactLogError is fatal: a run must reject an empty id set
	// or empty contact log before simulation start.
	EmptyContactLogError = "contact log at %s contains no usable rows"
	EmptyIDSetError      = "contact log id set is empty"

	FileParsingError         = "error parsing line %d: %s"
	UnrecognizedKeywordError = "%s is not a recognized value for %s"
)

func invalidFloatError(name string, v float64, reason string) error {
	return fmt.Errorf(InvalidFloatParameterError, name, v, reason)
}

func invalidIntError(name string, v int, reason string) error {
	return fmt.Errorf(InvalidIntParameterError, name, v, reason)
}

func errEmptyIDSet() error {
	return errors.New(EmptyIDSetError)
}
