package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
)

// Event types published on the bus
const (
	EventBattleStarted = "battle.started"
	EventTurnPlayed    = "battle.turn_played"
)

// Context keys carried by published events
const (
	ContextKeyBattleID = "battle_id"
	ContextKeyTurn     = "turn"
	ContextKeyReport   = "report"
	ContextKeyBattle   = "battle"
)

// BattleID reads the battle ID from a published event
func BattleID(e events.Event) string {
	v, ok := e.Context().Get(ContextKeyBattleID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// ReportFrom reads the turn report from a turn event
func ReportFrom(e events.Event) (*turn.Report, bool) {
	v, ok := e.Context().Get(ContextKeyReport)
	if !ok {
		return nil, false
	}
	r, ok := v.(*turn.Report)
	return r, ok
}

// BattleFrom reads the battle snapshot from a published event
func BattleFrom(e events.Event) (*turn.Battle, bool) {
	v, ok := e.Context().Get(ContextKeyBattle)
	if !ok {
		return nil, false
	}
	b, ok := v.(*turn.Battle)
	return b, ok
}

func (o *orchestrator) publish(ctx context.Context, eventType string, b *turn.Battle, report *turn.Report) {
	if o.eventBus == nil {
		return
	}

	e := events.NewGameEvent(eventType, b.Player, b.Opponent)
	e.Context().Set(ContextKeyBattleID, b.ID)
	e.Context().Set(ContextKeyTurn, b.Turn)
	e.Context().Set(ContextKeyBattle, b)
	if report != nil {
		e.Context().Set(ContextKeyReport, report)
	}

	if err := o.eventBus.Publish(ctx, e); err != nil {
		slog.WarnContext(ctx, "failed to publish battle event",
			"battle_id", b.ID,
			"event", eventType,
			"error", err)
	}
}
