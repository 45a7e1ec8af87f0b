package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Login string `validate:"required,nowhitespace"`
	Name  string `validate:"notblank"`
	Email string `validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name  string
		input sample
		want  map[string]string
	}{
		{
			name:  "valid",
			input: sample{Login: "neo", Name: "Thomas", Email: "neo@matrix.io"},
			want:  nil,
		},
		{
			name:  "login with space",
			input: sample{Login: "neo one", Name: "Thomas", Email: "neo@matrix.io"},
			want:  map[string]string{"Login": "Must not contain whitespace"},
		},
		{
			name:  "blank name and bad email",
			input: sample{Login: "neo", Name: "   ", Email: "matrix"},
			want: map[string]string{
				"Name":  "Must not be blank",
				"Email": "Invalid email format",
			},
		},
		{
			name:  "missing login",
			input: sample{Name: "Thomas", Email: "neo@matrix.io"},
			want:  map[string]string{"Login": "This field is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStruct(tt.input))
		})
	}
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"Name":  "Must not be blank",
		"Email": "Invalid email format",
	})

	assert.Equal(t, "Email: Invalid email format; Name: Must not be blank", got)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("", 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = ParseInt("-5", 10)
	assert.NoError(t, err)
	assert.Equal(t, -5, n)

	_, err = ParseInt("ten", 10)
	assert.Error(t, err)
}
