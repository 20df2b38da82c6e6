package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: ErrorNone},
		{name: "timeout", err: ErrTimeout, want: ErrorTimeout},
		{name: "wrapped timeout", err: fmt.Errorf("create session: %w", ErrTimeout), want: ErrorTimeout},
		{name: "session invalid", err: ErrSessionInvalid, want: ErrorSessionInvalid},
		{name: "unavailable", err: ErrServiceUnavailable, want: ErrorServiceUnavailable},
		{name: "unclassified defaults to unavailable", err: errors.New("socket gone"), want: ErrorServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestErrorKindDescription(t *testing.T) {
	assert.Empty(t, ErrorNone.Description())
	assert.NotEmpty(t, ErrorTimeout.Description())
	assert.NotEmpty(t, ErrorServiceUnavailable.Description())
	assert.NotEmpty(t, ErrorSessionInvalid.Description())
}
