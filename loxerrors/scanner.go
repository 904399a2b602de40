package loxerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

// ScanError is a recoverable lexical diagnostic: the line it occurred on,
// the sentinel cause, and optional details such as the offending character.
type ScanError struct {
	line    int
	cause   error
	details string
}

func NewScanError(line int, cause error, details string) *ScanError {
	return &ScanError{line, cause, details}
}

// Line returns the 1-based source line the diagnostic refers to.
func (s *ScanError) Line() int {
	return s.line
}

// Error implements error.
func (s *ScanError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d] Error: %v%s", s.line, s.cause, details)
}

func (s *ScanError) Unwrap() error {
	return s.cause
}

var _ error = (*ScanError)(nil)
var _ unwrapInterface = (*ScanError)(nil)
