package loxerrors

import (
	"fmt"
	"io"
)

// ErrReporter is the sink scan diagnostics are forwarded to. The scanner
// itself never prints; whether accumulated diagnostics abort downstream
// compilation is the caller's policy.
type ErrReporter interface {
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR %v\n", err)
}

var _ ErrReporter = (*errReporter)(nil)
