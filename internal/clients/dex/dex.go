// Package dex is the read-only battle dataset: the type chart, move
// definitions and species. It is loaded once and shared.
package dex

//go:generate mockgen -destination=mock/mock_client.go -package=dexmock github.com/KirkDiggler/rpg-battle/internal/clients/dex Client

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/engine/moves"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

//go:embed data/*.yaml
var embedded embed.FS

// Dataset file names inside Config.FS
const (
	TypesFile   = "data/types.yaml"
	MovesFile   = "data/moves.yaml"
	SpeciesFile = "data/species.yaml"
)

// Client looks up battle data
type Client interface {
	// Effectiveness implements moves.TypeChart. ok is false for a type the
	// chart does not know.
	Effectiveness(attacking, defending combat.ElementType) (float64, bool)

	// Types lists every charted type in dataset order
	Types() []combat.ElementType

	// GetMove returns the named move
	GetMove(name string) (combat.Move, bool)

	// MoveOrDefault returns the named move, or a plain physical move with the
	// same name when the dataset does not have it
	MoveOrDefault(name string) combat.Move

	// GetTypeAdvantages lists what attacking is strong and weak against
	GetTypeAdvantages(attacking combat.ElementType) (*TypeAdvantages, error)

	GetSpecies(ctx context.Context, name string) (*Species, error)
	ListSpecies(ctx context.Context) ([]*Species, error)

	// RandomSpecies picks uniformly among species not named in exclude
	RandomSpecies(ctx context.Context, src rng.Source, exclude ...string) (*Species, error)

	// BuildCombatant creates a full HP combatant of a species
	BuildCombatant(ctx context.Context, input *BuildCombatantInput) (*combat.Combatant, error)
}

// Species is one entry of the species list
type Species struct {
	Name      string               `json:"name"`
	Types     []combat.ElementType `json:"types"`
	BaseStats map[combat.Stat]int  `json:"base_stats"`
	Moves     []string             `json:"moves"`
}

// DisplayName is the species name as shown in battle text
func (s *Species) DisplayName() string {
	return combat.DisplayName(s.Name)
}

// TypeAdvantages is the answer to a type matchup query
type TypeAdvantages struct {
	Type            combat.ElementType   `json:"type"`
	StrongAgainst   []combat.ElementType `json:"strong_against"`
	WeakAgainst     []combat.ElementType `json:"weak_against"`
	NoEffectAgainst []combat.ElementType `json:"no_effect_against"`
}

// BuildCombatantInput names what to build
type BuildCombatantInput struct {
	ID      string
	Species string
	// Nickname replaces the species name in battle text when set
	Nickname string
	Level    int
	// Moves overrides the species default move set
	Moves []string
}

// Config configures the dataset source
type Config struct {
	// FS holds the three dataset files. Defaults to the embedded dataset.
	FS fs.FS
}

// Validate validates the config and sets defaults
func (cfg *Config) Validate() error {
	if cfg.FS == nil {
		cfg.FS = embedded
	}
	return nil
}

type dex struct {
	types   []combat.ElementType
	known   map[combat.ElementType]bool
	chart   map[combat.ElementType]map[combat.ElementType]float64
	moves   map[string]combat.Move
	species []*Species
	byName  map[string]*Species
}

var (
	_ Client          = (*dex)(nil)
	_ moves.TypeChart = (*dex)(nil)
)

// New loads and validates the dataset. Malformed data fails here.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	d := &dex{
		known:  make(map[combat.ElementType]bool),
		moves:  make(map[string]combat.Move),
		byName: make(map[string]*Species),
	}
	if err := d.loadTypes(cfg.FS); err != nil {
		return nil, err
	}
	if err := d.loadMoves(cfg.FS); err != nil {
		return nil, err
	}
	if err := d.loadSpecies(cfg.FS); err != nil {
		return nil, err
	}

	slog.Debug("dex loaded",
		"types", len(d.types),
		"moves", len(d.moves),
		"species", len(d.species))
	return d, nil
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("failed to parse %s", name))
	}
	return nil
}

func (d *dex) loadTypes(fsys fs.FS) error {
	var file typesFile
	if err := decode(fsys, TypesFile, &file); err != nil {
		return err
	}
	if len(file.Types) == 0 {
		return errors.InvalidArgumentf("%s lists no types", TypesFile)
	}

	for _, t := range file.Types {
		d.known[t] = true
	}
	for attacking, row := range file.Chart {
		if !d.known[attacking] {
			return errors.InvalidArgumentf("%s: chart row for unknown type %q", TypesFile, attacking)
		}
		for defending, mult := range row {
			if !d.known[defending] || mult < 0 {
				return errors.InvalidArgumentf("%s: bad entry %s -> %s", TypesFile, attacking, defending)
			}
		}
	}
	d.types = file.Types
	d.chart = file.Chart
	return nil
}

func (d *dex) loadMoves(fsys fs.FS) error {
	var file movesFile
	if err := decode(fsys, MovesFile, &file); err != nil {
		return err
	}
	for i := range file.Moves {
		move, err := file.Moves[i].toMove(d.known)
		if err != nil {
			return errors.Wrapf(err, "%s", MovesFile)
		}
		if _, dup := d.moves[move.Name]; dup {
			return errors.InvalidArgumentf("%s: duplicate move %q", MovesFile, move.Name)
		}
		d.moves[move.Name] = move
	}
	return nil
}

func (d *dex) loadSpecies(fsys fs.FS) error {
	var file speciesFile
	if err := decode(fsys, SpeciesFile, &file); err != nil {
		return err
	}
	for _, r := range file.Species {
		vb := errors.NewValidationBuilder()
		if r.Name == "" {
			vb.RequiredField("name")
		}
		if len(r.Types) == 0 || len(r.Types) > 2 {
			vb.InvalidField("types", "a species has one or two types")
		}
		for _, t := range r.Types {
			if !d.known[t] {
				vb.InvalidField("types", fmt.Sprintf("unknown type %q", t))
			}
		}
		for _, stat := range combat.AllStats {
			if r.BaseStats[stat] <= 0 {
				vb.InvalidField("base_stats", "missing or non-positive "+string(stat))
			}
		}
		if len(r.Moves) == 0 {
			vb.RequiredField("moves")
		}
		for _, m := range r.Moves {
			if _, ok := d.moves[m]; !ok {
				vb.InvalidField("moves", fmt.Sprintf("unknown move %q", m))
			}
		}
		if _, dup := d.byName[r.Name]; dup {
			vb.InvalidField("name", "duplicate species")
		}
		if err := vb.Build(); err != nil {
			return errors.Wrapf(err, "%s: species %q", SpeciesFile, r.Name)
		}

		s := &Species{Name: r.Name, Types: r.Types, BaseStats: r.BaseStats, Moves: r.Moves}
		d.species = append(d.species, s)
		d.byName[s.Name] = s
	}
	return nil
}

// normalize folds user input such as "Sucker Punch" to a dataset key
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (d *dex) Effectiveness(attacking, defending combat.ElementType) (float64, bool) {
	if !d.known[attacking] || !d.known[defending] {
		return 0, false
	}
	if mult, ok := d.chart[attacking][defending]; ok {
		return mult, true
	}
	return 1, true
}

func (d *dex) Types() []combat.ElementType {
	return append([]combat.ElementType(nil), d.types...)
}

func (d *dex) GetMove(name string) (combat.Move, bool) {
	move, ok := d.moves[normalize(name)]
	return move, ok
}

func (d *dex) MoveOrDefault(name string) combat.Move {
	if move, ok := d.GetMove(name); ok {
		return move
	}
	slog.Warn("move missing from dex, using default", "move", name)
	return combat.DefaultMove(normalize(name))
}

func (d *dex) GetTypeAdvantages(attacking combat.ElementType) (*TypeAdvantages, error) {
	attacking = combat.ElementType(normalize(string(attacking)))
	if !d.known[attacking] {
		return nil, errors.NotFoundf("type %q not found", attacking)
	}

	out := &TypeAdvantages{Type: attacking}
	for _, defending := range d.types {
		mult, _ := d.Effectiveness(attacking, defending)
		switch {
		case mult == 0:
			out.NoEffectAgainst = append(out.NoEffectAgainst, defending)
		case mult < 1:
			out.WeakAgainst = append(out.WeakAgainst, defending)
		case mult > 1:
			out.StrongAgainst = append(out.StrongAgainst, defending)
		}
	}
	return out, nil
}

func (d *dex) GetSpecies(_ context.Context, name string) (*Species, error) {
	s, ok := d.byName[normalize(name)]
	if !ok {
		return nil, errors.NotFoundf("species %q not found", name)
	}
	return s, nil
}

func (d *dex) ListSpecies(_ context.Context) ([]*Species, error) {
	return append([]*Species(nil), d.species...), nil
}

func (d *dex) RandomSpecies(_ context.Context, src rng.Source, exclude ...string) (*Species, error) {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[normalize(name)] = true
	}

	var pool []*Species
	for _, s := range d.species {
		if !skip[s.Name] {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return nil, errors.FailedPrecondition("no species left to choose from")
	}
	return pool[src.Intn(len(pool))], nil
}

func (d *dex) BuildCombatant(ctx context.Context, input *BuildCombatantInput) (*combat.Combatant, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	species, err := d.GetSpecies(ctx, input.Species)
	if err != nil {
		return nil, err
	}

	names := species.Moves
	if len(input.Moves) > 0 {
		names = input.Moves
	}
	moveList := make([]combat.Move, 0, len(names))
	for _, name := range names {
		moveList = append(moveList, d.MoveOrDefault(name))
	}

	name := species.Name
	if input.Nickname != "" {
		name = input.Nickname
	}

	c, err := combat.New(combat.Spec{
		ID:        input.ID,
		Name:      name,
		Species:   species.Name,
		Level:     input.Level,
		Types:     species.Types,
		BaseStats: species.BaseStats,
		Moves:     moveList,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s", species.Name)
	}
	return c, nil
}
