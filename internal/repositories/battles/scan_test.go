package battles_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

func encode(t *testing.T, record *battles.Record) []byte {
	t.Helper()
	data, err := json.Marshal(record)
	require.NoError(t, err)
	return data
}

func TestDecodeRecord(t *testing.T) {
	good := &battles.Record{Battle: newBattle("battle_1"), CreatedAt: created, UpdatedAt: created}

	record, err := battles.DecodeRecord(encode(t, good))
	require.NoError(t, err)
	assert.Equal(t, "battle_1", record.Battle.ID)
	assert.Equal(t, good.Battle.Player.HP, record.Battle.Player.HP)

	tests := []struct {
		name   string
		mutate func(r *battles.Record)
	}{
		{"no battle", func(r *battles.Record) { r.Battle = nil }},
		{"no opponent", func(r *battles.Record) { r.Battle.Opponent = nil }},
		{"negative HP", func(r *battles.Record) { r.Battle.Player.HP = -1 }},
		{"HP above max", func(r *battles.Record) { r.Battle.Opponent.HP = r.Battle.Opponent.MaxHP + 1 }},
		{"no moves", func(r *battles.Record) { r.Battle.Player.Moves = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bad := &battles.Record{Battle: newBattle("battle_2"), CreatedAt: created}
			tc.mutate(bad)

			_, err := battles.DecodeRecord(encode(t, bad))
			assert.True(t, errors.IsInternal(err), "got %v", err)
		})
	}

	_, err = battles.DecodeRecord([]byte("{not json"))
	assert.True(t, errors.IsInternal(err))
}

func TestFindCorrupt(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()

	good := &battles.Record{Battle: newBattle("battle_1"), CreatedAt: created}
	require.NoError(t, mr.Set("battle:battle_1", string(encode(t, good))))
	require.NoError(t, mr.Set("battle:battle_2", "{not json"))
	require.NoError(t, mr.Set("character:old", "{not json"))

	fainted := &battles.Record{Battle: newBattle("battle_3"), CreatedAt: created}
	fainted.Battle.Player.HP = -4
	require.NoError(t, mr.Set("battle:battle_3", string(encode(t, fainted))))
	mr.SetTTL("battle:battle_3", time.Hour)

	result, err := battles.FindCorrupt(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Checked)
	assert.Len(t, result.Corrupt, 2)
	assert.Contains(t, result.Corrupt, "battle_2")
	assert.Contains(t, result.Corrupt, "battle_3")
	assert.NotContains(t, result.Corrupt, "battle_1")
}
