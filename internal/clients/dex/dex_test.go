package dex_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/clients/dex"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

type DexTestSuite struct {
	suite.Suite
	ctx context.Context
	dex dex.Client
}

func TestDexSuite(t *testing.T) {
	suite.Run(t, new(DexTestSuite))
}

func (s *DexTestSuite) SetupSuite() {
	s.ctx = context.Background()

	var err error
	s.dex, err = dex.New(&dex.Config{})
	s.Require().NoError(err)
}

func (s *DexTestSuite) TestEmbeddedChart() {
	testCases := []struct {
		attacking, defending combat.ElementType
		expected             float64
		ok                   bool
	}{
		{"electric", "water", 2, true},
		{"electric", "ground", 0, true},
		{"fire", "water", 0.5, true},
		{"normal", "ghost", 0, true},
		{"normal", "normal", 1, true},
		{"dragon", "fairy", 0, true},
		{"fire", "shadow", 0, false},
	}

	for _, tc := range testCases {
		s.Run(string(tc.attacking)+"-"+string(tc.defending), func() {
			mult, ok := s.dex.Effectiveness(tc.attacking, tc.defending)
			s.Equal(tc.ok, ok)
			s.Equal(tc.expected, mult)
		})
	}
	s.Len(s.dex.Types(), 18)
}

func (s *DexTestSuite) TestMoveAnnotations() {
	bolt, ok := s.dex.GetMove("thunderbolt")
	s.Require().True(ok)
	s.Equal(combat.CategorySpecial, bolt.Category)
	s.Equal(90, bolt.Power)
	s.Require().NotNil(bolt.Effects.Status)
	s.Equal(combat.StatusParalysis, bolt.Effects.Status.Kind)
	s.Equal(10, bolt.Effects.Status.Chance)

	heal, ok := s.dex.GetMove("Recover")
	s.Require().True(ok)
	s.True(heal.NeverMisses())
	s.Equal(0.5, heal.Effects.Heal)

	punch, ok := s.dex.GetMove("Sucker Punch")
	s.Require().True(ok)
	s.Require().NotNil(punch.Effects.Counter)
	s.Equal(1, punch.Effects.Counter.PriorityOnSuccess)
	s.True(punch.Effects.Counter.Succeeds(combat.CategoryPhysical))
	s.False(punch.Effects.Counter.Succeeds(combat.CategoryStatus))

	seed, ok := s.dex.GetMove("bullet-seed")
	s.Require().True(ok)
	s.Equal(&combat.MultiHit{Min: 2, Max: 5}, seed.Effects.MultiHit)

	cc, ok := s.dex.GetMove("close-combat")
	s.Require().True(ok)
	s.Len(cc.Effects.StatChanges, 2)
	s.Equal(combat.TargetSelf, cc.Effects.StatChanges[0].Target)
}

func (s *DexTestSuite) TestMoveOrDefault() {
	move := s.dex.MoveOrDefault("Splash Mountain")

	s.Equal("splash-mountain", move.Name)
	s.Equal(combat.ElementType("normal"), move.Type)
	s.Equal(combat.CategoryPhysical, move.Category)
	s.Equal(40, move.Power)
	s.Equal(35, move.PP)
	s.Equal(100, move.Accuracy)
	s.Equal(combat.Effects{}, move.Effects)
}

func (s *DexTestSuite) TestTypeAdvantages() {
	adv, err := s.dex.GetTypeAdvantages("Electric")
	s.Require().NoError(err)

	s.Equal([]combat.ElementType{"water", "flying"}, adv.StrongAgainst)
	s.Equal([]combat.ElementType{"electric", "grass", "dragon"}, adv.WeakAgainst)
	s.Equal([]combat.ElementType{"ground"}, adv.NoEffectAgainst)

	_, err = s.dex.GetTypeAdvantages("shadow")
	s.True(errors.IsNotFound(err))
}

func (s *DexTestSuite) TestSpecies() {
	pikachu, err := s.dex.GetSpecies(s.ctx, "Pikachu")
	s.Require().NoError(err)
	s.Equal([]combat.ElementType{"electric"}, pikachu.Types)
	s.Equal(90, pikachu.BaseStats[combat.StatSpeed])
	s.Len(pikachu.Moves, 4)

	_, err = s.dex.GetSpecies(s.ctx, "missingno")
	s.True(errors.IsNotFound(err))

	all, err := s.dex.ListSpecies(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 20)
	s.Equal("pikachu", all[0].Name)
}

func (s *DexTestSuite) TestRandomSpecies() {
	picked, err := s.dex.RandomSpecies(s.ctx, rng.NewScripted().QueueInts(0), "pikachu")
	s.Require().NoError(err)
	s.Equal("charizard", picked.Name)

	all, err := s.dex.ListSpecies(s.ctx)
	s.Require().NoError(err)
	names := make([]string, 0, len(all))
	for _, sp := range all {
		names = append(names, sp.Name)
	}
	_, err = s.dex.RandomSpecies(s.ctx, rng.NewScripted(), names...)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *DexTestSuite) TestBuildCombatant() {
	c, err := s.dex.BuildCombatant(s.ctx, &dex.BuildCombatantInput{
		ID:       "p1",
		Species:  "pikachu",
		Nickname: "sparky",
	})
	s.Require().NoError(err)

	s.Equal("sparky", c.Name)
	s.Equal("pikachu", c.Species)
	s.Equal(combat.DefaultLevel, c.Level)
	// 35*2*50/100 + 50 + 10
	s.Equal(95, c.MaxHP)
	s.Equal(95, c.HP)
	s.Equal(95, c.Stats.Speed)
	s.Equal([]string{"thunderbolt", "quick-attack", "iron-tail", "thunder-wave"}, c.MoveOrder)

	slot, ok := c.Slot("quick-attack")
	s.Require().True(ok)
	s.Equal(30, slot.PP)
}

func (s *DexTestSuite) TestBuildCombatantWithMoveOverride() {
	c, err := s.dex.BuildCombatant(s.ctx, &dex.BuildCombatantInput{
		Species: "absol",
		Level:   100,
		Moves:   []string{"sucker-punch", "made-up-move"},
	})
	s.Require().NoError(err)

	s.Equal(100, c.Level)
	s.Equal([]string{"sucker-punch", "made-up-move"}, c.MoveOrder)
	slot, _ := c.Slot("made-up-move")
	s.Equal(40, slot.Move.Power)
}

func (s *DexTestSuite) TestBuildCombatantErrors() {
	_, err := s.dex.BuildCombatant(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.dex.BuildCombatant(s.ctx, &dex.BuildCombatantInput{Species: "agumon"})
	s.True(errors.IsNotFound(err))

	_, err = s.dex.BuildCombatant(s.ctx, &dex.BuildCombatantInput{Species: "pikachu", Level: 101})
	s.True(errors.IsInvalidArgument(err))
}

const validTypes = `
types: [normal, fire]
chart:
  fire: {fire: 0.5}
`

const validMoves = `
moves:
  - {name: tackle, type: normal, category: physical, power: 40, pp: 35, accuracy: 100}
`

const validSpecies = `
species:
  - name: rattata
    types: [normal]
    base_stats: {hp: 30, attack: 56, defense: 35, special-attack: 25, special-defense: 35, speed: 72}
    moves: [tackle]
`

func dataset(types, moves, species string) fstest.MapFS {
	return fstest.MapFS{
		dex.TypesFile:   {Data: []byte(types)},
		dex.MovesFile:   {Data: []byte(moves)},
		dex.SpeciesFile: {Data: []byte(species)},
	}
}

func (s *DexTestSuite) TestCustomDataset() {
	d, err := dex.New(&dex.Config{FS: dataset(validTypes, validMoves, validSpecies)})
	s.Require().NoError(err)

	mult, ok := d.Effectiveness("fire", "fire")
	s.True(ok)
	s.Equal(0.5, mult)

	all, err := d.ListSpecies(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *DexTestSuite) TestMalformedDatasetFailsFast() {
	testCases := []struct {
		name    string
		fs      fstest.MapFS
		message string
	}{
		{
			name:    "missing file",
			fs:      fstest.MapFS{dex.TypesFile: {Data: []byte(validTypes)}},
			message: "moves.yaml",
		},
		{
			name:    "unknown chart type",
			fs:      dataset("types: [normal]\nchart:\n  fire: {normal: 2}\n", validMoves, validSpecies),
			message: "unknown type",
		},
		{
			name: "bad accuracy",
			fs: dataset(validTypes,
				"moves:\n  - {name: tackle, type: normal, category: physical, power: 40, pp: 35, accuracy: sometimes}\n",
				validSpecies),
			message: "accuracy",
		},
		{
			name: "unknown category",
			fs: dataset(validTypes,
				"moves:\n  - {name: tackle, type: normal, category: magic, power: 40, pp: 35, accuracy: 100}\n",
				validSpecies),
			message: "category",
		},
		{
			name: "missing base stat",
			fs: dataset(validTypes, validMoves, `
species:
  - name: rattata
    types: [normal]
    base_stats: {hp: 30, attack: 56, defense: 35, special-attack: 25, special-defense: 35}
    moves: [tackle]
`),
			message: "speed",
		},
		{
			name: "unknown species move",
			fs: dataset(validTypes, validMoves, `
species:
  - name: rattata
    types: [normal]
    base_stats: {hp: 30, attack: 56, defense: 35, special-attack: 25, special-defense: 35, speed: 72}
    moves: [hyper-fang]
`),
			message: "hyper-fang",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := dex.New(&dex.Config{FS: tc.fs})
			s.Require().Error(err)
			s.Contains(err.Error(), tc.message)
		})
	}
}
