package moves

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// secondary applies status, stat stages, healing and recoil in that order
// and joins their messages.
func (p *Pipeline) secondary(move combat.Move, attacker, target engine.Combatant, out *Outcome) {
	var msgs []string
	add := func(msg string) {
		if msg != "" {
			msgs = append(msgs, msg)
		}
	}

	add(p.inflictStatus(move, target, out))
	for _, change := range move.Effects.StatChanges {
		add(p.shiftStage(change, attacker, target))
	}
	add(heal(move, attacker, target, out))
	add(recoil(move, attacker, out))

	out.SecondaryMessage = strings.Join(msgs, " ")
}

func (p *Pipeline) inflictStatus(move combat.Move, target engine.Combatant, out *Outcome) string {
	effect := move.Effects.Status
	if effect == nil || target.Fainted() {
		return ""
	}
	if !rng.Chance(p.rng, effect.Percent()) {
		return ""
	}
	msg := target.ApplyStatus(effect.Kind)
	if msg != "" {
		out.StatusApplied = effect.Kind
	}
	return msg
}

func (p *Pipeline) shiftStage(change combat.StatChange, attacker, target engine.Combatant) string {
	recipient := target
	if change.Target == combat.TargetSelf {
		recipient = attacker
	}
	if recipient.Fainted() {
		return ""
	}
	if change.Chance > 0 && !rng.Chance(p.rng, change.Chance) {
		return ""
	}

	applied := recipient.ShiftStage(change.Stat, change.Delta)
	if applied == 0 {
		return ""
	}
	return fmt.Sprintf("%s's %s %s!", recipient.Name(), change.Stat.Label(), stageVerb(applied))
}

func stageVerb(delta int) string {
	switch {
	case delta >= 3:
		return "rose drastically"
	case delta == 2:
		return "rose sharply"
	case delta > 0:
		return "rose"
	case delta <= -3:
		return "severely fell"
	case delta == -2:
		return "harshly fell"
	default:
		return "fell"
	}
}

func heal(move combat.Move, attacker, target engine.Combatant, out *Outcome) string {
	switch {
	case move.Effects.Heal > 0:
		if attacker.HP() >= attacker.MaxHP() {
			return fmt.Sprintf("%s's HP is already full!", attacker.Name())
		}
		out.Healed = attacker.Heal(max(int(float64(attacker.MaxHP())*move.Effects.Heal), 1))
		return fmt.Sprintf("%s recovered %d HP!", attacker.Name(), out.Healed)

	case move.Effects.Drain > 0 && out.Damage > 0:
		out.Healed = attacker.Heal(max(int(float64(out.Damage)*move.Effects.Drain), 1))
		if out.Healed == 0 {
			return ""
		}
		return fmt.Sprintf("%s drained %d HP from %s!", attacker.Name(), out.Healed, target.Name())
	}
	return ""
}

func recoil(move combat.Move, attacker engine.Combatant, out *Outcome) string {
	if move.Effects.Recoil <= 0 || out.Damage <= 0 || attacker.Fainted() {
		return ""
	}
	out.Recoil = attacker.TakeDamage(max(int(float64(out.Damage)*move.Effects.Recoil), 1))
	return fmt.Sprintf("%s is damaged by recoil!", attacker.Name())
}
