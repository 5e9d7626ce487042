package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("entity specific errors match their generic class", func(t *testing.T) {
		t.Parallel()

		for _, err := range []error{ErrCompanyNotFound, ErrJobNotFound, ErrCVNotFound, ErrCityNotFound} {
			assert.True(t, IsNotFoundError(err), "%v should classify as not found", err)
			assert.False(t, IsDuplicateError(err))
		}

		assert.True(t, IsDuplicateError(ErrEmailExists))
		assert.False(t, IsNotFoundError(ErrEmailExists))
	})

	t.Run("wrapped errors keep their classification", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("loading job: %w", ErrJobNotFound)
		assert.True(t, IsNotFoundError(wrapped))
		assert.True(t, errors.Is(wrapped, ErrJobNotFound))
	})

	t.Run("unrelated errors do not classify", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection refused")
		assert.False(t, IsNotFoundError(err))
		assert.False(t, IsDuplicateError(err))
	})
}
