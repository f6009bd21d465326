package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

func TestValidationBuilder(t *testing.T) {
	t.Run("no problems builds nil", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		vb.Range("level", 50, 1, 100)
		assert.NoError(t, vb.Build())
	})

	t.Run("collects fields in stable order", func(t *testing.T) {
		vb := errors.NewValidationBuilder().
			RequiredField("Repository").
			InvalidField("Level", "negative").
			Range("Seed", 200, 0, 100)

		err := vb.Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t,
			"validation failed: Level: is invalid: negative; Repository: is required; Seed: must be between 0 and 100",
			errors.GetMessage(err))

		var e *errors.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "is required", e.Meta["Repository"])
	})
}
