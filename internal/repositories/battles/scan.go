package battles

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

// KeyPattern matches every stored battle key
const KeyPattern = keyPrefix + "*"

// DecodeRecord parses a stored record and checks that the battle in it can
// still be loaded and played
func DecodeRecord(data []byte) (*Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal battle")
	}

	b := record.Battle
	switch {
	case b == nil:
		return nil, errors.Internal("record has no battle")
	case b.Player == nil || b.Opponent == nil:
		return nil, errors.Internal("battle is missing a side")
	}
	for _, c := range []struct {
		side string
		hp   int
		max  int
		n    int
	}{
		{"player", b.Player.HP, b.Player.MaxHP, len(b.Player.Moves)},
		{"opponent", b.Opponent.HP, b.Opponent.MaxHP, len(b.Opponent.Moves)},
	} {
		if c.max <= 0 || c.hp < 0 || c.hp > c.max {
			return nil, errors.Internalf("%s HP %d/%d out of range", c.side, c.hp, c.max)
		}
		if c.n == 0 {
			return nil, errors.Internalf("%s has no moves", c.side)
		}
	}
	return &record, nil
}

// ScanResult lists what FindCorrupt checked
type ScanResult struct {
	Checked int
	// Corrupt maps battle IDs to why they failed to decode
	Corrupt map[string]string
}

// FindCorrupt walks every stored battle and reports the ones DecodeRecord
// rejects. Keys that expire mid-scan are skipped.
func FindCorrupt(ctx context.Context, client redisclient.Client) (*ScanResult, error) {
	result := &ScanResult{Corrupt: make(map[string]string)}

	iter := client.Scan(ctx, 0, KeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redisclient.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		result.Checked++

		if _, err := DecodeRecord(raw); err != nil {
			result.Corrupt[strings.TrimPrefix(key, keyPrefix)] = err.Error()
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan battles")
	}
	return result, nil
}
