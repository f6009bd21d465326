package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/clients/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/history"
)

func convertBattle(b *turn.Battle) *Battle {
	if b == nil {
		return nil
	}
	return &Battle{
		Id:       b.ID,
		Turn:     int32(b.Turn),
		Over:     b.IsOver(),
		Result:   b.Result(),
		Winner:   b.Winner(),
		Player:   convertCombatant(b.Player),
		Opponent: convertCombatant(b.Opponent),
	}
}

func convertCombatant(c *combat.Combatant) *Combatant {
	if c == nil {
		return nil
	}
	out := &Combatant{
		Id:      c.ID,
		Name:    c.DisplayName(),
		Species: c.Species,
		Level:   int32(c.Level),
		Types:   typeNames(c.Types),
		Hp:      int32(c.HP),
		MaxHp:   int32(c.MaxHP),
		Status:  string(c.Status.Major),
	}
	for _, stat := range combat.AllStats {
		if stage := c.Stages.Get(stat); stage != 0 {
			if out.Stages == nil {
				out.Stages = make(map[string]int32)
			}
			out.Stages[string(stat)] = int32(stage)
		}
	}
	for _, name := range c.MoveOrder {
		slot, ok := c.Moves[name]
		if !ok {
			continue
		}
		out.Moves = append(out.Moves, convertMoveSlot(slot))
	}
	return out
}

func convertMoveSlot(slot *combat.MoveSlot) *MoveSlot {
	m := slot.Move
	return &MoveSlot{
		Name:     m.Name,
		Display:  m.DisplayName(),
		Type:     string(m.Type),
		Category: string(m.Category),
		Power:    int32(m.Power),
		Accuracy: int32(m.Accuracy),
		Priority: int32(m.Priority),
		Pp:       int32(slot.PP),
		MaxPp:    int32(m.PP),
	}
}

func convertReport(r *turn.Report) *TurnReport {
	if r == nil {
		return nil
	}
	out := &TurnReport{
		Turn:           int32(r.Turn),
		First:          string(r.First),
		PlayerDamage:   int32(r.PlayerDamage),
		OpponentDamage: int32(r.OpponentDamage),
		BattleOver:     r.BattleOver,
		Result:         r.Result,
		Events:         make([]*Event, 0, len(r.Events)),
	}
	for _, e := range r.Events {
		out.Events = append(out.Events, &Event{
			Type:    string(e.Type),
			Side:    string(e.Side),
			Message: e.Message,
			Damage:  int32(e.Damage),
		})
	}
	return out
}

func convertSpecies(s *dex.Species) *Species {
	out := &Species{
		Name:      s.Name,
		Display:   combat.DisplayName(s.Name),
		Types:     typeNames(s.Types),
		BaseStats: make(map[string]int32, len(s.BaseStats)),
		Moves:     append([]string(nil), s.Moves...),
	}
	for stat, v := range s.BaseStats {
		out.BaseStats[string(stat)] = int32(v)
	}
	return out
}

func convertHistoryEntry(e *history.Entry) *HistoryEntry {
	return &HistoryEntry{
		BattleId:        e.BattleID,
		PlayerName:      e.PlayerName,
		PlayerSpecies:   e.PlayerSpecies,
		OpponentName:    e.OpponentName,
		OpponentSpecies: e.OpponentSpecies,
		Winner:          e.Winner,
		Result:          e.Result,
		Turns:           int32(e.Turns),
		FinishedAt:      e.FinishedAt.UTC().Format(time.RFC3339),
	}
}

func typeNames(types []combat.ElementType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}
