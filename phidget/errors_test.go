package phidget_test

import (
	"errors"
	"testing"

	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
	"github.com/stretchr/testify/assert"
)

func TestResultMapsCodes(t *testing.T) {
	cases := []struct {
		name string
		code phidget22.Code
		want error
	}{
		{"success", 0, nil},
		{"timeout", 3, phidget.ErrTimeout},
		{"invalid arg", 21, phidget.ErrInvalidArg},
		{"not attached", 52, phidget.ErrNotAttached},
		{"closed", 56, phidget.ErrClosed},
		{"not configured", 57, phidget.ErrNotConfigured},
		{"nack", 67, phidget.ErrNACK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := phidget.Result(tc.code)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResultUnknownCode(t *testing.T) {
	err := phidget.Result(9999)
	assert.ErrorIs(t, err, phidget.ErrUnexpected)
}

func TestErrorStringsWithoutLibrary(t *testing.T) {
	// No library loaded: Error must still produce a usable message.
	assert.Contains(t, phidget.ErrNotAttached.Error(), "not attached")
	assert.Contains(t, phidget.ErrNotAttached.Error(), "code 52")
}

func TestReturnCodesAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(phidget.ErrClosed, phidget.ErrNotAttached))
	assert.False(t, errors.Is(phidget.ErrTimeout, phidget.ErrClosed))
}
