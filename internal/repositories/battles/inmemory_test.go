package battles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	clk := &clock.Fixed{At: created}
	repo := battles.NewInMemory(clk)

	b := newBattle("battle_1")
	_, err := repo.Create(ctx, &battles.CreateInput{Battle: b})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &battles.CreateInput{Battle: b})
	assert.True(t, errors.IsAlreadyExists(err))

	t.Run("stored state is isolated from the caller", func(t *testing.T) {
		b.Player.HP = 1

		got, err := repo.Get(ctx, &battles.GetInput{ID: "battle_1"})
		require.NoError(t, err)
		assert.Equal(t, got.Record.Battle.Player.MaxHP, got.Record.Battle.Player.HP)

		got.Record.Battle.Turn = 99
		again, err := repo.Get(ctx, &battles.GetInput{ID: "battle_1"})
		require.NoError(t, err)
		assert.Equal(t, 0, again.Record.Battle.Turn)
	})

	t.Run("update", func(t *testing.T) {
		clk.At = later
		b.Turn = 2

		out, err := repo.Update(ctx, &battles.UpdateInput{Battle: b})
		require.NoError(t, err)
		assert.True(t, out.Record.CreatedAt.Equal(created))
		assert.True(t, out.Record.UpdatedAt.Equal(later))
		assert.Equal(t, 2, out.Record.Battle.Turn)

		_, err = repo.Update(ctx, &battles.UpdateInput{Battle: newBattle("other")})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		_, err := repo.Delete(ctx, &battles.DeleteInput{ID: "battle_1"})
		require.NoError(t, err)

		_, err = repo.Get(ctx, &battles.GetInput{ID: "battle_1"})
		assert.True(t, errors.IsNotFound(err))

		_, err = repo.Delete(ctx, &battles.DeleteInput{ID: "battle_1"})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := repo.Get(ctx, nil)
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = repo.Create(ctx, &battles.CreateInput{})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
