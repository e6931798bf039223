package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{name: "invalid class", class: ErrorInvalid, expected: "invalid"},
		{name: "fatal class", class: ErrorFatal, expected: "fatal"},
		{name: "unknown class", class: ErrorClass(42), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		invalid bool
		fatal   bool
	}{
		{
			name:    "foreign identifier is invalid",
			err:     ErrForeignID,
			invalid: true,
		},
		{
			name:    "unknown literal type is invalid",
			err:     ErrUnknownLiteralType,
			invalid: true,
		},
		{
			name:    "empty language tag is invalid",
			err:     ErrEmptyLanguageTag,
			invalid: true,
		},
		{
			name:  "counter exhaustion is fatal",
			err:   ErrCounterExhausted,
			fatal: true,
		},
		{
			name: "nil error is neither",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, IsInvalid(tt.err))
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestWrapFormat(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrap(base, "Vocabulary", "InsertIRI", "arena append")

	require.Error(t, wrapped)
	assert.Equal(t, "Vocabulary.InsertIRI: arena append failed: boom", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "C", "M", "a"))
	assert.NoError(t, WrapInvalid(nil, "C", "M", "a"))
	assert.NoError(t, WrapFatal(nil, "C", "M", "a"))
}

func TestWrapPreservesClassification(t *testing.T) {
	err := WrapInvalid(ErrForeignID, "Vocabulary", "ExportQuad", "object resolution")

	assert.True(t, IsInvalid(err))
	assert.False(t, IsFatal(err))
	assert.True(t, errors.Is(err, ErrForeignID))

	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrorInvalid, ce.Class)
	assert.Equal(t, "Vocabulary", ce.Component)
	assert.Equal(t, "ExportQuad", ce.Operation)
}

func TestWrapFatal(t *testing.T) {
	err := WrapFatal(ErrCounterExhausted, "Blank", "Next", "counter increment")

	assert.True(t, IsFatal(err))
	assert.False(t, IsInvalid(err))
	assert.True(t, errors.Is(err, ErrCounterExhausted))
}

func TestClassifyDefaultsToInvalid(t *testing.T) {
	assert.Equal(t, ErrorInvalid, Classify(fmt.Errorf("some unknown error")))
	assert.Equal(t, ErrorFatal, Classify(ErrCounterExhausted))
}
