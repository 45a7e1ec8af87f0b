package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := NotFound("user %d not found", 7)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidOperation))
	assert.Equal(t, "NOT_FOUND: user 7 not found", err.Error())
}

func TestErrorIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("add friend: %w", InvalidOperation("cannot friend oneself"))

	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Equal(t, KindInvalidOperation, KindOf(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, KindInternal, "load films")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("x"), KindNotFound},
		{"argument", InvalidArgument("count must be positive"), KindInvalidArgument},
		{"validation", Validation("bad", map[string]string{"Email": "Invalid email format"}), KindValidation},
		{"plain", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
