package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/KirkDiggler/rpg-battle/internal/clients/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine/priority"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/history"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *battlemock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = battlemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{BattleService: s.mockService})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) sampleBattle() *turn.Battle {
	player := builders.NewCombatant("pikachu").
		WithTypes("electric").
		WithMoves(testutils.Thunderbolt(), testutils.QuickAttack()).
		Build()
	player.Stages.Shift(combat.StatSpeed, 1)
	player.Status.Install(&combat.Condition{Kind: combat.StatusParalysis})
	b, err := turn.NewBattle(player, builders.NewCombatant("snorlax").Build())
	s.Require().NoError(err)
	b.ID = "battle_1"
	b.Turn = 2
	return b
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)

	_, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestStartBattle() {
	b := s.sampleBattle()
	s.mockService.EXPECT().
		StartBattle(s.ctx, &battle.StartBattleInput{
			PlayerSpecies:   "pikachu",
			PlayerMoves:     []string{"thunderbolt"},
			OpponentSpecies: "snorlax",
			Level:           40,
		}).
		Return(&battle.StartBattleOutput{Battle: b}, nil)

	resp, err := s.handler.StartBattle(s.ctx, &v1alpha1.StartBattleRequest{
		PlayerSpecies:   "pikachu",
		PlayerMoves:     []string{"thunderbolt"},
		OpponentSpecies: "snorlax",
		Level:           40,
	})
	s.Require().NoError(err)

	got := resp.Battle
	s.Equal("battle_1", got.Id)
	s.Equal(int32(2), got.Turn)
	s.Equal(turn.ResultOngoing, got.Result)
	s.Equal("Pikachu", got.Player.Name)
	s.Equal([]string{"electric"}, got.Player.Types)
	s.Equal("paralysis", got.Player.Status)
	s.Equal(map[string]int32{"speed": 1}, got.Player.Stages)
	s.Require().Len(got.Player.Moves, 2)
	s.Equal("thunderbolt", got.Player.Moves[0].Name)
	s.Equal("Quick Attack", got.Player.Moves[1].Display)
	s.Equal(int32(1), got.Player.Moves[1].Priority)
}

func (s *HandlerTestSuite) TestStartBattleValidation() {
	_, err := s.handler.StartBattle(s.ctx, &v1alpha1.StartBattleRequest{})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestPlayTurn() {
	b := s.sampleBattle()
	report := &turn.Report{
		Turn:         2,
		First:        priority.SidePlayer,
		PlayerDamage: 35,
		Result:       turn.ResultOngoing,
		Events: []turn.Event{
			{Type: turn.EventMoveUsed, Side: priority.SidePlayer, Message: "Pikachu used Thunderbolt!", Damage: 35},
		},
	}
	s.mockService.EXPECT().
		PlayTurn(s.ctx, &battle.PlayTurnInput{BattleID: "battle_1", Move: "thunderbolt"}).
		Return(&battle.PlayTurnOutput{Battle: b, Report: report}, nil)

	resp, err := s.handler.PlayTurn(s.ctx, &v1alpha1.PlayTurnRequest{BattleId: "battle_1", Move: "thunderbolt"})
	s.Require().NoError(err)
	s.Equal("player", resp.Turn.First)
	s.Equal(int32(35), resp.Turn.PlayerDamage)
	s.Require().Len(resp.Turn.Events, 1)
	s.Equal("move_used", resp.Turn.Events[0].Type)
	s.Equal(int32(35), resp.Turn.Events[0].Damage)
}

func (s *HandlerTestSuite) TestPlayTurnErrors() {
	_, err := s.handler.PlayTurn(s.ctx, &v1alpha1.PlayTurnRequest{Move: "tackle"})
	s.requireCode(err, codes.InvalidArgument)

	s.mockService.EXPECT().
		PlayTurn(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("battle is over"))
	_, err = s.handler.PlayTurn(s.ctx, &v1alpha1.PlayTurnRequest{BattleId: "battle_1", Move: "tackle"})
	s.requireCode(err, codes.FailedPrecondition)

	s.mockService.EXPECT().
		PlayTurn(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("battle not found"))
	_, err = s.handler.PlayTurn(s.ctx, &v1alpha1.PlayTurnRequest{BattleId: "battle_2", Move: "tackle"})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestGetBattle() {
	_, err := s.handler.GetBattle(s.ctx, &v1alpha1.GetBattleRequest{})
	s.requireCode(err, codes.InvalidArgument)

	s.mockService.EXPECT().
		GetBattle(s.ctx, &battle.GetBattleInput{BattleID: "battle_1"}).
		Return(&battle.GetBattleOutput{Battle: s.sampleBattle()}, nil)
	resp, err := s.handler.GetBattle(s.ctx, &v1alpha1.GetBattleRequest{BattleId: "battle_1"})
	s.Require().NoError(err)
	s.Equal("snorlax", resp.Battle.Opponent.Species)
}

func (s *HandlerTestSuite) TestListSpecies() {
	s.mockService.EXPECT().
		ListSpecies(s.ctx, &battle.ListSpeciesInput{}).
		Return(&battle.ListSpeciesOutput{Species: []*dex.Species{{
			Name:      "mr-mime",
			Types:     []combat.ElementType{"psychic", "fairy"},
			BaseStats: map[combat.Stat]int{combat.StatSpeed: 90},
			Moves:     []string{"psychic"},
		}}}, nil)

	resp, err := s.handler.ListSpecies(s.ctx, &v1alpha1.ListSpeciesRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Species, 1)
	s.Equal("Mr Mime", resp.Species[0].Display)
	s.Equal(int32(90), resp.Species[0].BaseStats["speed"])
}

func (s *HandlerTestSuite) TestGetTypeAdvantages() {
	_, err := s.handler.GetTypeAdvantages(s.ctx, &v1alpha1.GetTypeAdvantagesRequest{})
	s.requireCode(err, codes.InvalidArgument)

	s.mockService.EXPECT().
		GetTypeAdvantages(s.ctx, &battle.GetTypeAdvantagesInput{Type: "electric"}).
		Return(&battle.GetTypeAdvantagesOutput{Advantages: &dex.TypeAdvantages{
			Type:            "electric",
			StrongAgainst:   []combat.ElementType{"water", "flying"},
			NoEffectAgainst: []combat.ElementType{"ground"},
		}}, nil)

	resp, err := s.handler.GetTypeAdvantages(s.ctx, &v1alpha1.GetTypeAdvantagesRequest{Type: "electric"})
	s.Require().NoError(err)
	s.Equal([]string{"water", "flying"}, resp.StrongAgainst)
	s.Empty(resp.WeakAgainst)
	s.Equal([]string{"ground"}, resp.NoEffectAgainst)
}

func (s *HandlerTestSuite) TestListHistory() {
	finished := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockService.EXPECT().
		ListHistory(s.ctx, &battle.ListHistoryInput{Species: "pikachu", Limit: 3}).
		Return(&battle.ListHistoryOutput{Entries: []*history.Entry{{
			BattleID: "battle_1", Winner: "pikachu", Result: turn.ResultPlayerWon, Turns: 4, FinishedAt: finished,
		}}}, nil)

	resp, err := s.handler.ListHistory(s.ctx, &v1alpha1.ListHistoryRequest{Species: "pikachu", Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(resp.Battles, 1)
	s.Equal(int32(4), resp.Battles[0].Turns)
	s.Equal("2026-03-01T12:00:00Z", resp.Battles[0].FinishedAt)
}

// dial serves the handler on an in-memory listener and returns a client
// connection to it
func (s *HandlerTestSuite) dial() *grpc.ClientConn {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterBattleServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *HandlerTestSuite) TestOverTheWire() {
	client := v1alpha1.NewBattleServiceClient(s.dial())

	s.mockService.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle_1"}).
		Return(&battle.GetBattleOutput{Battle: s.sampleBattle()}, nil)
	resp, err := client.GetBattle(s.ctx, &v1alpha1.GetBattleRequest{BattleId: "battle_1"})
	s.Require().NoError(err)
	s.Equal("battle_1", resp.Battle.Id)
	s.Equal(int32(2), resp.Battle.Turn)
	s.Equal(map[string]int32{"speed": 1}, resp.Battle.Player.Stages)
	s.Require().Len(resp.Battle.Player.Moves, 2)
	s.Equal("quick-attack", resp.Battle.Player.Moves[1].Name)

	s.mockService.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle_9"}).
		Return(nil, errors.NotFound("battle not found").WithMeta("battle_id", "battle_9"))
	_, err = client.GetBattle(s.ctx, &v1alpha1.GetBattleRequest{BattleId: "battle_9"})
	s.requireCode(err, codes.NotFound)

	converted := errors.FromGRPCError(err)
	var e *errors.Error
	s.Require().True(errors.As(converted, &e))
	s.Equal("battle_9", e.Meta["battle_id"])
}

func (s *HandlerTestSuite) TestPlayTurnOverTheWire() {
	client := v1alpha1.NewBattleServiceClient(s.dial())

	report := &turn.Report{
		Turn:       3,
		First:      priority.SideOpponent,
		BattleOver: true,
		Result:     turn.ResultPlayerLost,
		Events: []turn.Event{
			{Type: turn.EventMoveUsed, Side: priority.SideOpponent, Message: "Snorlax used Tackle!", Damage: 40},
			{Type: turn.EventFaint, Side: priority.SidePlayer, Message: "Pikachu fainted!"},
		},
	}
	s.mockService.EXPECT().
		PlayTurn(gomock.Any(), &battle.PlayTurnInput{BattleID: "battle_1", Move: "Quick Attack"}).
		Return(&battle.PlayTurnOutput{Battle: s.sampleBattle(), Report: report}, nil)

	resp, err := client.PlayTurn(s.ctx, &v1alpha1.PlayTurnRequest{BattleId: "battle_1", Move: "Quick Attack"})
	s.Require().NoError(err)
	s.True(resp.Turn.BattleOver)
	s.Equal("opponent", resp.Turn.First)
	s.Equal(turn.ResultPlayerLost, resp.Turn.Result)
	s.Require().Len(resp.Turn.Events, 2)
	s.Equal(int32(40), resp.Turn.Events[0].Damage)
	s.Equal("Pikachu fainted!", resp.Turn.Events[1].Message)
}

// TestPlainProtobufClient calls the service with messages built only from
// the registered descriptors, the way grpcurl does
func (s *HandlerTestSuite) TestPlainProtobufClient() {
	conn := s.dial()
	_, err := v1alpha1.File()
	s.Require().NoError(err)

	find := func(name string) protoreflect.MessageDescriptor {
		d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName("rpgbattle.api.v1alpha1." + name))
		s.Require().NoError(err)
		md, ok := d.(protoreflect.MessageDescriptor)
		s.Require().True(ok)
		return md
	}

	reqDesc := find("GetBattleRequest")
	req := dynamicpb.NewMessage(reqDesc)
	req.Set(reqDesc.Fields().ByName("battle_id"), protoreflect.ValueOfString("battle_1"))
	resp := dynamicpb.NewMessage(find("GetBattleResponse"))

	s.mockService.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle_1"}).
		Return(&battle.GetBattleOutput{Battle: s.sampleBattle()}, nil)
	s.Require().NoError(conn.Invoke(s.ctx, v1alpha1.BattleService_GetBattle_FullMethodName, req, resp))

	b := resp.Get(resp.Descriptor().Fields().ByName("battle")).Message()
	s.Equal("battle_1", b.Get(b.Descriptor().Fields().ByName("id")).String())
	s.Equal(int64(2), b.Get(b.Descriptor().Fields().ByName("turn")).Int())
}

func TestDescriptorMatchesServiceDesc(t *testing.T) {
	fd, err := v1alpha1.File()
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.ProtoPath, fd.Path())

	svc := fd.Services().ByName("BattleService")
	require.NotNil(t, svc)
	assert.Equal(t, protoreflect.FullName(v1alpha1.ServiceName), svc.FullName())

	desc := v1alpha1.BattleService_ServiceDesc
	require.Equal(t, svc.Methods().Len(), len(desc.Methods))
	for _, m := range desc.Methods {
		method := svc.Methods().ByName(protoreflect.Name(m.MethodName))
		require.NotNil(t, method, m.MethodName)
		assert.Equal(t, protoreflect.Name(m.MethodName+"Request"), method.Input().Name())
		assert.Equal(t, protoreflect.Name(m.MethodName+"Response"), method.Output().Name())
	}

	again, err := v1alpha1.File()
	require.NoError(t, err)
	assert.Same(t, fd, again)
}
