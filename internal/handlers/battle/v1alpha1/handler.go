// Package v1alpha1 handles the BattleService grpc interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler implements BattleServiceServer
type Handler struct {
	UnimplementedBattleServiceServer
	battleService battle.Service
}

var _ BattleServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{battleService: cfg.BattleService}, nil
}

// StartBattle starts a new battle
func (h *Handler) StartBattle(ctx context.Context, req *StartBattleRequest) (*StartBattleResponse, error) {
	if req.PlayerSpecies == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_species is required"))
	}

	output, err := h.battleService.StartBattle(ctx, &battle.StartBattleInput{
		PlayerSpecies:   req.PlayerSpecies,
		PlayerNickname:  req.PlayerNickname,
		PlayerMoves:     req.PlayerMoves,
		OpponentSpecies: req.OpponentSpecies,
		Level:           int(req.Level),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartBattleResponse{Battle: convertBattle(output.Battle)}, nil
}

// PlayTurn resolves the next turn
func (h *Handler) PlayTurn(ctx context.Context, req *PlayTurnRequest) (*PlayTurnResponse, error) {
	vb := errors.NewValidationBuilder()
	if req.BattleId == "" {
		vb.RequiredField("battle_id")
	}
	if req.Move == "" {
		vb.RequiredField("move")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.PlayTurn(ctx, &battle.PlayTurnInput{
		BattleID: req.BattleId,
		Move:     req.Move,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PlayTurnResponse{
		Battle: convertBattle(output.Battle),
		Turn:   convertReport(output.Report),
	}, nil
}

// GetBattle returns the current battle state
func (h *Handler) GetBattle(ctx context.Context, req *GetBattleRequest) (*GetBattleResponse, error) {
	if req.BattleId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	output, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: req.BattleId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBattleResponse{Battle: convertBattle(output.Battle)}, nil
}

// ListSpecies lists the selectable species
func (h *Handler) ListSpecies(ctx context.Context, _ *ListSpeciesRequest) (*ListSpeciesResponse, error) {
	output, err := h.battleService.ListSpecies(ctx, &battle.ListSpeciesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListSpeciesResponse{Species: make([]*Species, 0, len(output.Species))}
	for _, s := range output.Species {
		resp.Species = append(resp.Species, convertSpecies(s))
	}
	return resp, nil
}

// GetTypeAdvantages lists what a type is strong and weak against
func (h *Handler) GetTypeAdvantages(ctx context.Context, req *GetTypeAdvantagesRequest) (*GetTypeAdvantagesResponse, error) {
	if req.Type == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("type is required"))
	}

	output, err := h.battleService.GetTypeAdvantages(ctx, &battle.GetTypeAdvantagesInput{
		Type: combat.ElementType(req.Type),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	adv := output.Advantages
	return &GetTypeAdvantagesResponse{
		Type:            string(adv.Type),
		StrongAgainst:   typeNames(adv.StrongAgainst),
		WeakAgainst:     typeNames(adv.WeakAgainst),
		NoEffectAgainst: typeNames(adv.NoEffectAgainst),
	}, nil
}

// ListHistory lists finished battles
func (h *Handler) ListHistory(ctx context.Context, req *ListHistoryRequest) (*ListHistoryResponse, error) {
	output, err := h.battleService.ListHistory(ctx, &battle.ListHistoryInput{
		Species: req.Species,
		Limit:   int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListHistoryResponse{Battles: make([]*HistoryEntry, 0, len(output.Entries))}
	for _, e := range output.Entries {
		resp.Battles = append(resp.Battles, convertHistoryEntry(e))
	}
	return resp, nil
}
