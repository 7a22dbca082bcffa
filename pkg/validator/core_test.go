package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asciikit/pkg/ascii"
	"github.com/dmitrymomot/asciikit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "subject",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: subject: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "subject", Message: "bad"})
		errs.Add(validator.ValidationError{Field: "code", Message: "too short"})

		assert.Equal(t, "validation failed: subject: bad; code: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "code", Message: "first"})
	errs.Add(validator.ValidationError{Field: "name", Message: "second"})
	errs.Add(validator.ValidationError{Field: "code", Message: "third"})

	assert.True(t, errs.Has("code"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, []string{"first", "third"}, errs.Get("code"))
	assert.Nil(t, errs.Get("missing"))
	assert.Equal(t, []string{"code", "name"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.PrintableASCII("subject", "hello"),
			validator.Digits("pin", "1234"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil for no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.PrintableASCII("subject", "foo\tbar"),
			validator.Digits("pin", "12a4"),
			validator.Letters("name", "Ada"),
		)
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		assert.Len(t, verrs, 2)
		assert.Equal(t, []string{"subject", "pin"}, verrs.Fields())
	})

	t.Run("exposes ascii sentinels", func(t *testing.T) {
		err := validator.Apply(validator.PrintableASCII("subject", "foo€bar"))

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorIs(t, err, ascii.ErrNonASCII)
		assert.NotErrorIs(t, err, ascii.ErrControlCharacter)

		var nerr *ascii.NonASCIIError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, '€', nerr.Char)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("foreign error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})
}
