package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{
	Message: "activity %q is invalid",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt("colosseum")

	assert.Equal(t, `activity "colosseum" is invalid`, err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrap(t *testing.T) {
	err := errSample.Fmt("trevi").Wrap(io.EOF)

	assert.Equal(t, `activity "trevi" is invalid: EOF`, err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errSample)
	assert.False(t, errors.Is(err, &Error{Message: "other"}))
}
