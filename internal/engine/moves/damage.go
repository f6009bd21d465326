package moves

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Damage formula constants
const (
	// FixedLevel is the level every attacker is treated as
	FixedLevel = 100

	STABMultiplier     = 1.5
	CriticalMultiplier = 1.5
	CriticalChance     = 1.0 / 16

	MinVariance = 0.85
	MaxVariance = 1.0
)

// Effectiveness is ChartEffectiveness against the pipeline's chart
func (p *Pipeline) Effectiveness(attacking combat.ElementType, defending []combat.ElementType) float64 {
	return ChartEffectiveness(p.chart, attacking, defending)
}

// ChartEffectiveness multiplies the chart value of attacking against each
// defending type and rounds to two decimals. Uncharted pairs count as
// neutral.
func ChartEffectiveness(chart TypeChart, attacking combat.ElementType, defending []combat.ElementType) float64 {
	eff := 1.0
	for _, t := range defending {
		v, ok := chart.Effectiveness(attacking, t)
		if !ok {
			continue
		}
		eff *= v
	}
	return math.Round(eff*100) / 100
}

// Damage computes one hit. It draws the critical roll then the variance
// roll, and never returns less than 1.
func (p *Pipeline) Damage(move combat.Move, attacker, target engine.Combatant, effectiveness float64) (int, bool) {
	atkStat, defStat := combat.StatAttack, combat.StatDefense
	if move.Category == combat.CategorySpecial {
		atkStat, defStat = combat.StatSpecialAttack, combat.StatSpecialDefense
	}
	atk := float64(attacker.EffectiveStat(atkStat))
	def := float64(max(target.EffectiveStat(defStat), 1))

	levelFactor := float64(2*FixedLevel)/5 + 2
	base := int(levelFactor*float64(move.Power)*atk/def/50 + 2)

	dmg := float64(int(float64(base) * effectiveness))
	if hasType(attacker.Types(), move.Type) {
		dmg *= STABMultiplier
	}

	crit := rng.Probability(p.rng, CriticalChance)
	if crit {
		dmg *= CriticalMultiplier
	}

	dmg *= MinVariance + p.rng.Float64()*(MaxVariance-MinVariance)
	return max(int(dmg), 1), crit
}

func hasType(types []combat.ElementType, t combat.ElementType) bool {
	for _, own := range types {
		if own == t {
			return true
		}
	}
	return false
}

// canonical 2-5 hit weights: 35% two, 35% three, 15% four, 15% five
var twoToFive = []struct {
	below float64
	hits  int
}{
	{0.35, 2},
	{0.70, 3},
	{0.85, 4},
}

func (p *Pipeline) hitCount(mh *combat.MultiHit) int {
	if mh.Fixed() {
		return max(mh.Min, 1)
	}
	if mh.Min == 2 && mh.Max == 5 {
		roll := p.rng.Float64()
		for _, bucket := range twoToFive {
			if roll < bucket.below {
				return bucket.hits
			}
		}
		return 5
	}
	return rng.Between(p.rng, max(mh.Min, 1), mh.Max)
}
