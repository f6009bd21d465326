package status_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type EngineTestSuite struct {
	suite.Suite
	rng    *rng.Scripted
	engine *status.Engine
	target *combat.Combatant
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.rng = rng.NewScripted()
	s.engine = status.NewEngine(s.rng)
	// max HP 160 at level 50 with base 100
	s.target = builders.NewCombatant("pikachu").Build()
}

func (s *EngineTestSuite) TestApply() {
	msg := s.engine.Apply(s.target, combat.StatusBurn)

	s.Equal("Pikachu was burned!", msg)
	s.Equal(combat.StatusBurn, s.target.Status.Major)
	s.True(s.target.Status.Has(combat.StatusBurn))
}

func (s *EngineTestSuite) TestApplySecondMajorIsNoop() {
	s.Require().NotEmpty(s.engine.Apply(s.target, combat.StatusParalysis))
	before := s.target.Status

	s.Empty(s.engine.Apply(s.target, combat.StatusBurn))
	s.Empty(s.engine.Apply(s.target, combat.StatusParalysis))
	s.Equal(before.Major, s.target.Status.Major)
	s.Equal([]combat.StatusKind{combat.StatusParalysis}, s.target.Status.Kinds())
}

func (s *EngineTestSuite) TestToxicRefusedWhilePoisoned() {
	// poison recorded without the major reference to exercise the extra guard
	s.target.Status.Install(&combat.Condition{Kind: combat.StatusPoison})
	s.target.Status.Major = combat.StatusNone

	s.False(s.engine.CanApply(s.target, combat.StatusToxic))
	s.Empty(s.engine.Apply(s.target, combat.StatusToxic))
}

func (s *EngineTestSuite) TestApplyToFaintedIsNoop() {
	s.target.HP = 0
	s.Empty(s.engine.Apply(s.target, combat.StatusSleep))
	s.Equal(combat.StatusNone, s.target.Status.Major)
}

func (s *EngineTestSuite) TestSleepCountsDown() {
	s.rng.QueueInts(1) // two turns
	s.Equal("Pikachu fell asleep!", s.engine.Apply(s.target, combat.StatusSleep))

	cond, ok := s.target.Status.Get(combat.StatusSleep)
	s.Require().True(ok)
	s.Equal(2, cond.SleepTurns)

	s.Empty(s.engine.ProcessTurnStart(s.target))
	prevented, msg := s.engine.AffectsMoveUsage(s.target)
	s.True(prevented)
	s.Equal("Pikachu is fast asleep.", msg)

	ticks := s.engine.ProcessTurnStart(s.target)
	s.Require().Len(ticks, 1)
	s.Equal("Pikachu woke up!", ticks[0].Text)
	s.True(ticks[0].Recovered)
	s.Equal(combat.StatusNone, s.target.Status.Major)
	s.False(s.target.Status.Has(combat.StatusSleep))
}

func (s *EngineTestSuite) TestFreezeThaw() {
	s.engine.Apply(s.target, combat.StatusFreeze)

	s.rng.QueueFloats(0.5)
	s.Empty(s.engine.ProcessTurnStart(s.target), "0.5 does not thaw")

	s.rng.QueueFloats(0.19)
	ticks := s.engine.ProcessTurnStart(s.target)
	s.Require().Len(ticks, 1)
	s.Equal("Pikachu thawed out!", ticks[0].Text)
	s.Equal(combat.StatusNone, s.target.Status.Major)
}

func (s *EngineTestSuite) TestParalysisRollsEveryCall() {
	s.engine.Apply(s.target, combat.StatusParalysis)
	s.rng.QueueFloats(0.1, 0.9)

	prevented, msg := s.engine.AffectsMoveUsage(s.target)
	s.True(prevented)
	s.Equal("Pikachu is paralyzed! It can't move!", msg)

	prevented, msg = s.engine.AffectsMoveUsage(s.target)
	s.False(prevented)
	s.Empty(msg)

	held, _ := s.engine.Holds(s.target)
	s.False(held, "paralysis never holds unconditionally")
}

func (s *EngineTestSuite) TestTurnEndDamage() {
	testCases := []struct {
		name     string
		kind     combat.StatusKind
		hp       int
		expected int
		message  string
	}{
		{name: "burn takes a sixteenth", kind: combat.StatusBurn, hp: 160, expected: 10, message: "Pikachu is hurt by its burn!"},
		{name: "burn can faint", kind: combat.StatusBurn, hp: 4, expected: 4, message: "Pikachu is hurt by its burn!"},
		{name: "poison takes an eighth", kind: combat.StatusPoison, hp: 160, expected: 20, message: "Pikachu is hurt by poison!"},
		{name: "poison leaves one HP", kind: combat.StatusPoison, hp: 5, expected: 4, message: "Pikachu is hurt by poison!"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.target.HP = tc.hp
			s.engine.Apply(s.target, tc.kind)

			ticks := s.engine.ProcessTurnEnd(s.target)
			s.Require().Len(ticks, 1)
			s.Equal(tc.expected, ticks[0].Damage)
			s.Equal(tc.message, ticks[0].Text)
			s.Equal(tc.hp-tc.expected, s.target.HP)
		})
	}
}

func (s *EngineTestSuite) TestPoisonAtOneHPDealsNothing() {
	s.target.HP = 1
	s.engine.Apply(s.target, combat.StatusPoison)

	s.Empty(s.engine.ProcessTurnEnd(s.target))
	s.Equal(1, s.target.HP)
}

func (s *EngineTestSuite) TestToxicEscalates() {
	s.Equal("Pikachu was badly poisoned!", s.engine.Apply(s.target, combat.StatusToxic))

	var damages []int
	for range 5 {
		ticks := s.engine.ProcessTurnEnd(s.target)
		if len(ticks) == 0 {
			damages = append(damages, 0)
			continue
		}
		damages = append(damages, ticks[0].Damage)
		s.GreaterOrEqual(s.target.HP, 1)
	}

	// 160*k/16 for k = 1..5, clamped to leave 1 HP
	s.Equal([]int{10, 20, 30, 40, 50}, damages)
	s.Equal(10, s.target.HP)

	ticks := s.engine.ProcessTurnEnd(s.target)
	s.Require().Len(ticks, 1)
	s.Equal(9, ticks[0].Damage, "clamped to keep one HP")
	s.Equal(1, s.target.HP)
}

func (s *EngineTestSuite) TestFaintedSkipsTicks() {
	s.engine.Apply(s.target, combat.StatusBurn)
	s.target.HP = 0

	s.Empty(s.engine.ProcessTurnEnd(s.target))
	s.Empty(s.engine.ProcessTurnStart(s.target))
}

func (s *EngineTestSuite) TestModifyStat() {
	s.Equal(100, status.ModifyStat(&s.target.Status, combat.StatAttack, 100))

	s.engine.Apply(s.target, combat.StatusBurn)
	s.Equal(50, status.ModifyStat(&s.target.Status, combat.StatAttack, 100))
	s.Equal(100, status.ModifyStat(&s.target.Status, combat.StatSpeed, 100))

	s.engine.Cure(s.target)
	s.engine.Apply(s.target, combat.StatusParalysis)
	s.Equal(45, status.ModifyStat(&s.target.Status, combat.StatSpeed, 91))
	s.Equal(100, status.ModifyStat(&s.target.Status, combat.StatAttack, 100))
}

func (s *EngineTestSuite) TestRemoveClearsMajor() {
	s.engine.Apply(s.target, combat.StatusFreeze)
	held, msg := s.engine.Holds(s.target)
	s.True(held)
	s.Equal("Pikachu is frozen solid!", msg)

	s.engine.Remove(s.target, combat.StatusFreeze)
	s.Equal(combat.StatusNone, s.target.Status.Major)
	s.Empty(s.target.Status.Kinds())
}
