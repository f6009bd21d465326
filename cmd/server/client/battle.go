package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/handlers/battle/v1alpha1"
)

var (
	species   string
	nickname  string
	opponent  string
	level     int32
	moveNames []string
	battleID  string
	moveName  string
)

var startBattleCmd = &cobra.Command{
	Use:   "start-battle",
	Short: "Start a new battle",
	RunE:  runStartBattle,
}

var playTurnCmd = &cobra.Command{
	Use:   "play-turn",
	Short: "Play one turn of a battle",
	RunE:  runPlayTurn,
}

var getBattleCmd = &cobra.Command{
	Use:   "get-battle",
	Short: "Show the current state of a battle",
	RunE:  runGetBattle,
}

func init() {
	startBattleCmd.Flags().StringVar(&species, "species", "", "Your species (required)")
	startBattleCmd.Flags().StringVar(&nickname, "nickname", "", "Nickname for your combatant")
	startBattleCmd.Flags().StringVar(&opponent, "opponent", "", "Opponent species (random when empty)")
	startBattleCmd.Flags().Int32Var(&level, "level", 0, "Level for both sides")
	startBattleCmd.Flags().StringSliceVar(&moveNames, "moves", nil, "Override your move set")
	_ = startBattleCmd.MarkFlagRequired("species") // nolint:errcheck // safe to ignore in init

	playTurnCmd.Flags().StringVar(&battleID, "battle-id", "", "Battle ID (required)")
	playTurnCmd.Flags().StringVar(&moveName, "move", "", "Move to use (required)")
	_ = playTurnCmd.MarkFlagRequired("battle-id") // nolint:errcheck // safe to ignore in init
	_ = playTurnCmd.MarkFlagRequired("move")      // nolint:errcheck // safe to ignore in init

	getBattleCmd.Flags().StringVar(&battleID, "battle-id", "", "Battle ID (required)")
	_ = getBattleCmd.MarkFlagRequired("battle-id") // nolint:errcheck // safe to ignore in init
}

func runStartBattle(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartBattle(ctx, &v1alpha1.StartBattleRequest{
		PlayerSpecies:   species,
		PlayerNickname:  nickname,
		PlayerMoves:     moveNames,
		OpponentSpecies: opponent,
		Level:           level,
	})
	if err != nil {
		return callError("start battle", err)
	}
	if asJSON {
		return printJSON(resp)
	}

	fmt.Printf("Battle ID: %s\n\n", resp.Battle.Id)
	printBattle(resp.Battle)
	fmt.Printf("\nNext: rpg-battle client play-turn --battle-id %s --move %s\n",
		resp.Battle.Id, resp.Battle.Player.Moves[0].Name)
	return nil
}

func runPlayTurn(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PlayTurn(ctx, &v1alpha1.PlayTurnRequest{BattleId: battleID, Move: moveName})
	if err != nil {
		return callError("play turn", err)
	}
	if asJSON {
		return printJSON(resp)
	}

	fmt.Printf("-- Turn %d --\n", resp.Turn.Turn)
	for _, e := range resp.Turn.Events {
		fmt.Println(e.Message)
	}
	fmt.Println()
	printBattle(resp.Battle)
	return nil
}

func runGetBattle(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBattle(ctx, &v1alpha1.GetBattleRequest{BattleId: battleID})
	if err != nil {
		return callError("get battle", err)
	}
	if asJSON {
		return printJSON(resp)
	}
	printBattle(resp.Battle)
	return nil
}

func printBattle(b *v1alpha1.Battle) {
	printCombatant("Opponent", b.Opponent)
	printCombatant("You", b.Player)
	for i, m := range b.Player.Moves {
		fmt.Printf("  %d. %-14s %-8s PP %d/%d\n", i+1, m.Display, m.Type, m.Pp, m.MaxPp)
	}
	if b.Over {
		fmt.Printf("\n%s\n", b.Result)
	}
}

func printCombatant(label string, c *v1alpha1.Combatant) {
	status := ""
	if c.Status != "" {
		status = " [" + strings.ToUpper(c.Status) + "]"
	}
	fmt.Printf("%-8s %s (Lv %d, %s) HP %d/%d%s\n", label+":", c.Name, c.Level,
		strings.Join(c.Types, "/"), c.Hp, c.MaxHp, status)
}
