package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/engine/ai"
	movesmock "github.com/KirkDiggler/rpg-battle/internal/engine/moves/mock"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

func TestFirstUsable(t *testing.T) {
	self := builders.NewCombatant("pikachu").
		WithMoves(testutils.ThunderWave(), testutils.Thunderbolt(), testutils.QuickAttack()).
		Build()
	opponent := builders.NewCombatant("squirtle").Build()

	name, ok := ai.FirstUsable{}.ChooseMove(self, opponent)
	require.True(t, ok)
	assert.Equal(t, "thunder-wave", name)

	slot, _ := self.Slot("thunder-wave")
	slot.PP = 0
	name, ok = ai.FirstUsable{}.ChooseMove(self, opponent)
	require.True(t, ok)
	assert.Equal(t, "thunderbolt", name)

	for _, slot := range self.Moves {
		slot.PP = 0
	}
	_, ok = ai.FirstUsable{}.ChooseMove(self, opponent)
	assert.False(t, ok)
}

func TestScoredPicksBestAgainstOpponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := movesmock.NewMockTypeChart(ctrl)
	chart.EXPECT().Effectiveness(gomock.Any(), gomock.Any()).DoAndReturn(
		func(attacking, defending combat.ElementType) (float64, bool) {
			if attacking == "electric" && defending == "water" {
				return 2, true
			}
			return 1, true
		}).AnyTimes()

	self := builders.NewCombatant("pikachu").
		WithMoves(testutils.Growl(), testutils.DoubleEdge(), testutils.Thunderbolt()).
		Build()
	opponent := builders.NewCombatant("squirtle").WithTypes("water").Build()

	src := rng.NewScripted().QueueFloats(0.5)
	name, ok := ai.NewScored(chart, src).ChooseMove(self, opponent)

	require.True(t, ok)
	// 90 x 2 beats 120 x 1
	assert.Equal(t, "thunderbolt", name)
}

func TestScoredSometimesPicksRandomly(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := movesmock.NewMockTypeChart(ctrl)

	self := builders.NewCombatant("pikachu").
		WithMoves(testutils.Growl(), testutils.DoubleEdge(), testutils.Thunderbolt()).
		Build()
	opponent := builders.NewCombatant("squirtle").WithTypes("water").Build()

	src := rng.NewScripted().QueueFloats(0.9).QueueInts(0)
	name, ok := ai.NewScored(chart, src).ChooseMove(self, opponent)

	require.True(t, ok)
	assert.Equal(t, "growl", name)
}

func TestScoredWithNothingUsable(t *testing.T) {
	self := builders.NewCombatant("pikachu").Build()
	for _, slot := range self.Moves {
		slot.PP = 0
	}
	src := rng.NewScripted()

	_, ok := ai.NewScored(nil, src).ChooseMove(self, builders.NewCombatant("squirtle").Build())

	assert.False(t, ok)
	assert.Equal(t, 0, src.Draws)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := movesmock.NewMockTypeChart(ctrl)
	src := rng.NewScripted()

	s, err := ai.New(ai.StrategyFirstUsable, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, ai.FirstUsable{}, s)

	s, err = ai.New("", chart, src)
	require.NoError(t, err)
	assert.IsType(t, &ai.Scored{}, s)

	_, err = ai.New(ai.StrategyScored, nil, src)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = ai.New("minimax", chart, src)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestScoredTieGoesToFirstLearnedMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := movesmock.NewMockTypeChart(ctrl)
	chart.EXPECT().Effectiveness(gomock.Any(), gomock.Any()).Return(1.0, true).AnyTimes()

	self := builders.NewCombatant("pikachu").
		WithMoves(testutils.Thunderbolt(), testutils.Tackle(), testutils.DoubleEdge()).
		Build()
	// double-edge is spent and tackle now ties thunderbolt
	self.Moves["double-edge"].PP = 0
	self.Moves["tackle"].Move.Power = testutils.Thunderbolt().Power
	opponent := builders.NewCombatant("squirtle").Build()

	name, ok := ai.NewScored(chart, rng.NewScripted().QueueFloats(0.1)).ChooseMove(self, opponent)

	require.True(t, ok)
	assert.Equal(t, "thunderbolt", name)
}
