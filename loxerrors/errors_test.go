package loxerrors_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxtools/loxscan/loxerrors"
)

func TestScanErrorFormat(t *testing.T) {
	t.Parallel()

	err := loxerrors.NewScanError(3, loxerrors.ErrScanUnexpectedCharacter, "'⌘'")
	assert.EqualError(t, err, "[line 3] Error: Unexpected character. '⌘'")
	assert.Equal(t, 3, err.Line())
	assert.True(t, errors.Is(err, loxerrors.ErrScanUnexpectedCharacter))

	err = loxerrors.NewScanError(1, loxerrors.ErrScanUnterminatedString, "")
	assert.EqualError(t, err, "[line 1] Error: Unterminated string.")
	assert.True(t, errors.Is(err, loxerrors.ErrScanUnterminatedString))
}

func TestErrReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reporter := loxerrors.NewErrReporter(&buf)

	reporter.ReportError(loxerrors.NewScanError(1, loxerrors.ErrScanUnterminatedString, ""))
	reporter.ReportError(loxerrors.NewScanError(2, loxerrors.ErrScanUnexpectedCharacter, "'@'"))

	assert.Equal(t,
		"ERROR [line 1] Error: Unterminated string.\n"+
			"ERROR [line 2] Error: Unexpected character. '@'\n",
		buf.String())
}
