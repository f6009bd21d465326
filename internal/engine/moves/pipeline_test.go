package moves_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/engine/moves"
	movesmock "github.com/KirkDiggler/rpg-battle/internal/engine/moves/mock"
	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type chart map[[2]combat.ElementType]float64

func (c chart) Effectiveness(attacking, defending combat.ElementType) (float64, bool) {
	v, ok := c[[2]combat.ElementType{attacking, defending}]
	return v, ok
}

var testChart = chart{
	{"electric", "water"}:  2,
	{"electric", "ground"}: 0,
	{"water", "fire"}:      2,
	{"fire", "water"}:      0.5,
	{"normal", "ghost"}:    0,
}

func stats(hp, atk, def, spa, spd, spe int) combat.Stats {
	return combat.Stats{HP: hp, Attack: atk, Defense: def, SpecialAttack: spa, SpecialDefense: spd, Speed: spe}
}

type PipelineTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	rng      *rng.Scripted
	status   *status.Engine
	pipeline *moves.Pipeline
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rng = rng.NewScripted()
	s.status = status.NewEngine(s.rng)

	var err error
	s.pipeline, err = moves.NewPipeline(&moves.Config{Chart: testChart, Random: s.rng})
	s.Require().NoError(err)
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PipelineTestSuite) fighter(b *builders.CombatantBuilder) *engine.Fighter {
	return engine.NewFighter(b.Build(), s.status)
}

// attacker is a fire type with Attack 150; defender a psychic type with
// Defense 100 so neither STAB nor the chart applies to normal moves.
func (s *PipelineTestSuite) duel() (*engine.Fighter, *engine.Fighter) {
	attacker := s.fighter(builders.NewCombatant("charmander").
		WithTypes("fire").
		WithStats(stats(300, 150, 100, 100, 100, 100)))
	defender := s.fighter(builders.NewCombatant("abra").
		WithTypes("psychic").
		WithStats(stats(300, 100, 100, 100, 100, 100)))
	return attacker, defender
}

func (s *PipelineTestSuite) TestNewPipelineValidatesConfig() {
	_, err := moves.NewPipeline(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = moves.NewPipeline(&moves.Config{Random: s.rng})
	s.Require().Error(err)
	s.Contains(err.Error(), "Chart")
}

func (s *PipelineTestSuite) TestDamageFormula() {
	testCases := []struct {
		name     string
		floats   []float64
		types    []combat.ElementType
		expected int
		crit     bool
	}{
		{name: "neutral, no STAB, no crit, max variance", expected: 52},
		{name: "same type bonus", types: []combat.ElementType{"normal"}, expected: 78},
		{name: "critical hit", floats: []float64{0.01, 1.0}, expected: 78, crit: true},
		{name: "minimum variance", floats: []float64{0.5, 0.0}, expected: 44},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.rng.QueueFloats(tc.floats...)
			attacker, defender := s.duel()
			if tc.types != nil {
				attacker.State().Types = tc.types
			}

			out := s.pipeline.Use(testutils.Tackle(), attacker, defender)

			s.Equal(tc.expected, out.Damage)
			s.Equal(300-tc.expected, defender.HP())
			s.Equal(tc.crit, out.Critical)
			s.Equal(1, out.Hits)
			if tc.crit {
				s.Equal("A critical hit!", out.EffectivenessMessage)
			} else {
				s.Empty(out.EffectivenessMessage)
			}
		})
	}
}

func (s *PipelineTestSuite) TestMinimumDamageIsOne() {
	attacker := s.fighter(builders.NewCombatant("magikarp").WithTypes("water").WithStats(stats(50, 1, 1, 1, 1, 1)))
	defender := s.fighter(builders.NewCombatant("shuckle").WithTypes("bug").WithStats(stats(50, 1, 999, 1, 999, 1)))
	s.rng.QueueFloats(0.5, 0.0)

	out := s.pipeline.Use(testutils.Tackle(), attacker, defender)
	s.Equal(1, out.Damage)
}

func (s *PipelineTestSuite) TestSuperEffectiveSpecialWithSecondaryStatus() {
	attacker := s.fighter(builders.NewCombatant("pikachu").WithTypes("fire").WithStats(stats(200, 100, 100, 100, 100, 100)))
	defender := s.fighter(builders.NewCombatant("squirtle").WithTypes("water").WithStats(stats(400, 100, 100, 100, 100, 100)))

	out := s.pipeline.Use(testutils.Thunderbolt(), attacker, defender)

	// trunc(42*90/50 + 2) = 77, doubled
	s.Equal(154, out.Damage)
	s.Equal(2.0, out.Effectiveness)
	s.Equal("It's super effective!", out.EffectivenessMessage)
	s.Equal(combat.StatusParalysis, out.StatusApplied)
	s.Equal("Squirtle is paralyzed! It may be unable to move!", out.SecondaryMessage)
}

func (s *PipelineTestSuite) TestNotVeryEffective() {
	attacker := s.fighter(builders.NewCombatant("vulpix").WithTypes("normal").WithStats(stats(200, 100, 100, 100, 100, 100)))
	defender := s.fighter(builders.NewCombatant("psyduck").WithTypes("water").WithStats(stats(200, 100, 100, 100, 100, 100)))
	ember := combat.Move{Name: "ember", Type: "fire", Category: combat.CategorySpecial, Power: 40, PP: 25, Accuracy: 100}

	out := s.pipeline.Use(ember, attacker, defender)

	// trunc(42*40/50 + 2) = 35, halved and truncated
	s.Equal(17, out.Damage)
	s.Equal("It's not very effective...", out.EffectivenessMessage)
}

func (s *PipelineTestSuite) TestNoEffectStopsEverything() {
	attacker := s.fighter(builders.NewCombatant("pikachu").WithTypes("electric"))
	defender := s.fighter(builders.NewCombatant("diglett").WithTypes("ground"))
	before := defender.HP()

	out := s.pipeline.Use(testutils.Thunderbolt(), attacker, defender)

	s.True(out.NoEffect)
	s.Equal(0, out.Damage)
	s.Equal("It had no effect!", out.EffectivenessMessage)
	s.Empty(out.SecondaryMessage)
	s.Equal(before, defender.HP())
	s.Equal(combat.StatusNone, defender.State().Status.Major)
}

func (s *PipelineTestSuite) TestEffectivenessIsProductOfEachType() {
	mockChart := movesmock.NewMockTypeChart(s.ctrl)
	pipeline, err := moves.NewPipeline(&moves.Config{Chart: mockChart, Random: s.rng})
	s.Require().NoError(err)

	mockChart.EXPECT().Effectiveness(combat.ElementType("fire"), combat.ElementType("grass")).Return(2.0, true).Times(2)
	mockChart.EXPECT().Effectiveness(combat.ElementType("fire"), combat.ElementType("water")).Return(0.5, true).Times(2)
	s.Equal(1.0, pipeline.Effectiveness("fire", []combat.ElementType{"grass", "water"}))
	s.Equal(1.0, pipeline.Effectiveness("fire", []combat.ElementType{"water", "grass"}))

	mockChart.EXPECT().Effectiveness(combat.ElementType("ice"), combat.ElementType("dragon")).Return(2.0, true)
	mockChart.EXPECT().Effectiveness(combat.ElementType("ice"), combat.ElementType("flying")).Return(2.0, true)
	s.Equal(4.0, pipeline.Effectiveness("ice", []combat.ElementType{"dragon", "flying"}))

	mockChart.EXPECT().Effectiveness(combat.ElementType("odd"), combat.ElementType("normal")).Return(1.0/3, true)
	mockChart.EXPECT().Effectiveness(combat.ElementType("odd"), combat.ElementType("unknown")).Return(0.0, false)
	s.Equal(0.33, pipeline.Effectiveness("odd", []combat.ElementType{"normal", "unknown"}))
}

func (s *PipelineTestSuite) TestMissAppliesNothing() {
	testCases := []struct {
		name     string
		accuracy int
		roll     int
	}{
		{name: "zero accuracy misses even the best roll", accuracy: 0, roll: 0},
		{name: "roll above accuracy", accuracy: 70, roll: 70},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.rng.QueueInts(tc.roll)
			attacker, defender := s.duel()
			move := combat.Move{
				Name: "poison-fang", Type: "poison", Category: combat.CategoryPhysical, Power: 50, PP: 15, Accuracy: tc.accuracy,
				Effects: combat.Effects{
					Status:      &combat.StatusEffect{Kind: combat.StatusToxic},
					StatChanges: []combat.StatChange{{Stat: combat.StatDefense, Delta: -1, Target: combat.TargetOpponent}},
					Drain:       0.5,
				},
			}
			attacker.TakeDamage(100)

			out := s.pipeline.Use(move, attacker, defender)

			s.True(out.Missed)
			s.Equal(0, out.Damage)
			s.Equal("Charmander's attack missed!", out.Summary)
			s.Empty(out.SecondaryMessage)
			s.Equal(300, defender.HP())
			s.Equal(200, attacker.HP())
			s.Equal(combat.StatusNone, defender.State().Status.Major)
			s.Equal(0, defender.State().Stages.Get(combat.StatDefense))
		})
	}
}

func (s *PipelineTestSuite) TestStatusMoveSkipsDamage() {
	attacker, defender := s.duel()

	out := s.pipeline.Use(testutils.Growl(), attacker, defender)

	s.Equal(0, out.Damage)
	s.Equal("Charmander used Growl!", out.Summary)
	s.Equal("Abra's Attack fell!", out.SecondaryMessage)
	s.Equal(-1, defender.State().Stages.Get(combat.StatAttack))
	s.Equal(300, defender.HP())
}

func (s *PipelineTestSuite) TestSelfStageChangeClamps() {
	attacker, defender := s.duel()

	out := s.pipeline.Use(testutils.SwordsDance(), attacker, defender)
	s.Equal("Charmander's Attack rose sharply!", out.SecondaryMessage)

	attacker.ShiftStage(combat.StatAttack, 6)
	out = s.pipeline.Use(testutils.SwordsDance(), attacker, defender)
	s.Empty(out.SecondaryMessage, "no message once the stage is maxed")
}

func (s *PipelineTestSuite) TestSecondMajorStatusIsNoop() {
	attacker, defender := s.duel()
	s.Require().NotEmpty(defender.ApplyStatus(combat.StatusBurn))

	out := s.pipeline.Use(testutils.ThunderWave(), attacker, defender)

	s.Empty(out.SecondaryMessage)
	s.Equal(combat.StatusNone, out.StatusApplied)
	s.Equal(combat.StatusBurn, defender.State().Status.Major)
}

func (s *PipelineTestSuite) TestDrainHealsFractionOfDamage() {
	drain := combat.Move{
		Name: "leech", Type: "grass", Category: combat.CategorySpecial, Power: 46, PP: 10, Accuracy: 100,
		Effects: combat.Effects{Drain: 0.5},
	}
	testCases := []struct {
		name     string
		hp       int
		expected int
	}{
		{name: "heals half of forty", hp: 10, expected: 20},
		{name: "capped at max HP", hp: 95, expected: 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			attacker := s.fighter(builders.NewCombatant("oddish").WithTypes("poison").
				WithStats(stats(100, 100, 100, 100, 100, 100)).WithHP(tc.hp))
			defender := s.fighter(builders.NewCombatant("rattata").WithTypes("normal").
				WithStats(stats(200, 100, 100, 100, 100, 100)))

			out := s.pipeline.Use(drain, attacker, defender)

			// trunc(42*46/50 + 2) = 40
			s.Equal(40, out.Damage)
			s.Equal(tc.expected, out.Healed)
			s.Equal(tc.hp+tc.expected, attacker.HP())
			s.LessOrEqual(attacker.HP(), attacker.MaxHP())
		})
	}
}

func (s *PipelineTestSuite) TestFlatHeal() {
	attacker, defender := s.duel()

	out := s.pipeline.Use(testutils.Recover(), attacker, defender)
	s.Equal("Charmander's HP is already full!", out.SecondaryMessage)
	s.Equal(0, s.rng.Draws, "never-miss status move draws nothing")

	attacker.TakeDamage(250)
	out = s.pipeline.Use(testutils.Recover(), attacker, defender)
	s.Equal(150, out.Healed)
	s.Equal("Charmander recovered 150 HP!", out.SecondaryMessage)
	s.Equal(200, attacker.HP())
}

func (s *PipelineTestSuite) TestRecoil() {
	attacker := s.fighter(builders.NewCombatant("tauros").WithTypes("fire").WithStats(stats(200, 100, 100, 100, 100, 100)))
	defender := s.fighter(builders.NewCombatant("chansey").WithTypes("psychic").WithStats(stats(500, 100, 100, 100, 100, 100)))

	out := s.pipeline.Use(testutils.DoubleEdge(), attacker, defender)

	// trunc(42*120/50 + 2) = 102
	s.Equal(102, out.Damage)
	s.Equal(34, out.Recoil)
	s.Equal(166, attacker.HP())
	s.Equal("Tauros is damaged by recoil!", out.SecondaryMessage)
}

func (s *PipelineTestSuite) TestSecondaryOrder() {
	attacker := s.fighter(builders.NewCombatant("scyther").WithTypes("fire").
		WithStats(stats(200, 100, 100, 100, 100, 100)).WithHP(100))
	defender := s.fighter(builders.NewCombatant("onix").WithTypes("psychic").WithStats(stats(500, 100, 100, 100, 100, 100)))
	move := combat.Move{
		Name: "everything", Type: "bug", Category: combat.CategoryPhysical, Power: 50, PP: 5, Accuracy: 100,
		Effects: combat.Effects{
			Status:      &combat.StatusEffect{Kind: combat.StatusBurn},
			StatChanges: []combat.StatChange{{Stat: combat.StatSpeed, Delta: 1, Target: combat.TargetSelf}},
			Drain:       0.5,
			Recoil:      0.25,
		},
	}

	out := s.pipeline.Use(move, attacker, defender)

	// trunc(42*50/50 + 2) = 44
	s.Equal(44, out.Damage)
	s.Equal("Onix was burned! Scyther's Speed rose! Scyther drained 22 HP from Onix! Scyther is damaged by recoil!",
		out.SecondaryMessage)
	s.Equal(100+22-11, attacker.HP())
}

func (s *PipelineTestSuite) TestMultiHit() {
	s.Run("weighted two to five", func() {
		s.SetupTest()
		s.rng.QueueFloats(0.5)
		attacker, defender := s.duel()
		attacker.State().Stats.Attack = 100

		out := s.pipeline.Use(testutils.BulletSeed(), attacker, defender)

		// trunc(42*25/50 + 2) = 23 per hit
		s.Equal(3, out.Hits)
		s.Equal(69, out.Damage)
		s.Equal("Hit 3 time(s)!", out.EffectivenessMessage)
	})

	s.Run("each hit rechecks accuracy", func() {
		s.SetupTest()
		// first hit lands, second rolls 100 against 90, third lands
		s.rng.QueueInts(0, 99)
		attacker, defender := s.duel()
		attacker.State().Stats.Attack = 100
		move := combat.Move{
			Name: "triple-jab", Type: "fighting", Category: combat.CategoryPhysical, Power: 25, PP: 10, Accuracy: 90,
			Effects: combat.Effects{MultiHit: &combat.MultiHit{Min: 3, Max: 3}},
		}

		out := s.pipeline.Use(move, attacker, defender)

		s.Equal(2, out.Hits)
		s.Equal(46, out.Damage)
	})

	s.Run("stops once the target faints", func() {
		s.SetupTest()
		attacker, defender := s.duel()
		attacker.State().Stats.Attack = 100
		defender.State().HP = 30
		move := testutils.BulletSeed()
		move.Effects.MultiHit = &combat.MultiHit{Min: 5, Max: 5}

		out := s.pipeline.Use(move, attacker, defender)

		s.Equal(2, out.Hits)
		s.Equal(0, defender.HP())
	})

	s.Run("uniform for other ranges", func() {
		s.SetupTest()
		s.rng.QueueInts(0, 2)
		attacker, defender := s.duel()
		attacker.State().Stats.Attack = 100
		move := testutils.BulletSeed()
		move.Effects.MultiHit = &combat.MultiHit{Min: 1, Max: 4}

		out := s.pipeline.Use(move, attacker, defender)
		s.Equal(3, out.Hits)
	})
}

func (s *PipelineTestSuite) TestPreventedAttackerDrawsNothing() {
	s.Run("asleep", func() {
		s.SetupTest()
		attacker, defender := s.duel()
		attacker.State().Status.Install(&combat.Condition{Kind: combat.StatusSleep, SleepTurns: 2})

		out := s.pipeline.Use(testutils.Tackle(), attacker, defender)

		s.True(out.Prevented)
		s.Equal("Charmander is fast asleep.", out.Summary)
		s.Equal(0, s.rng.Draws)
		s.Equal(300, defender.HP())
	})

	s.Run("fainted", func() {
		s.SetupTest()
		attacker, defender := s.duel()
		attacker.TakeDamage(1000)

		out := s.pipeline.Use(testutils.Tackle(), attacker, defender)

		s.True(out.Prevented)
		s.Equal(0, s.rng.Draws)
	})
}

func (s *PipelineTestSuite) TestFaintedTargetTakesNoDamage() {
	attacker, defender := s.duel()
	defender.TakeDamage(1000)

	out := s.pipeline.Use(testutils.Tackle(), attacker, defender)

	s.Equal(0, out.Damage)
	s.Equal(0, defender.HP())
}
