package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/engine/turn"
	"github.com/KirkDiggler/rpg-battle/internal/entities/combat"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
)

var (
	playSpecies  string
	playOpponent string
	playNickname string
	playLevel    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a battle in the terminal",
	Long:  `Play a battle against the computer without starting a server. Choose moves by number or name.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playSpecies, "species", "pikachu", "your species")
	playCmd.Flags().StringVar(&playOpponent, "opponent", "", "opponent species (random when empty)")
	playCmd.Flags().StringVar(&playNickname, "nickname", "", "nickname for your combatant")
	playCmd.Flags().IntVar(&playLevel, "level", 0, "level for both sides")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return playLoop(cmd.Context(), a.service, &battle.StartBattleInput{
		PlayerSpecies:   playSpecies,
		PlayerNickname:  playNickname,
		OpponentSpecies: playOpponent,
		Level:           playLevel,
	}, os.Stdin, os.Stdout)
}

// playLoop runs one battle, reading a move per turn from in until the
// battle ends, input runs out, or the player types quit
func playLoop(ctx context.Context, svc battle.Service, start *battle.StartBattleInput, in io.Reader, out io.Writer) error {
	started, err := svc.StartBattle(ctx, start)
	if err != nil {
		return err
	}
	b := started.Battle
	fmt.Fprintf(out, "%s (Lv %d) vs %s (Lv %d)\n", b.Player.DisplayName(), b.Player.Level,
		b.Opponent.DisplayName(), b.Opponent.Level)

	scanner := bufio.NewScanner(in)
	for !b.IsOver() {
		printState(out, b)
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "q" {
			fmt.Fprintln(out, "You fled the battle.")
			return nil
		}

		played, err := svc.PlayTurn(ctx, &battle.PlayTurnInput{BattleID: b.ID, Move: pickMove(b.Player, line)})
		if err != nil {
			if errors.IsInvalidArgument(err) || errors.IsFailedPrecondition(err) {
				fmt.Fprintf(out, "%s\n", errors.GetMessage(err))
				continue
			}
			return err
		}
		b = played.Battle
		printReport(out, played.Report)
	}

	fmt.Fprintln(out, b.Result())
	return nil
}

// pickMove resolves a 1-based menu number to a move name
func pickMove(c *combat.Combatant, choice string) string {
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(c.MoveOrder) {
		return c.MoveOrder[n-1]
	}
	return choice
}

func printState(out io.Writer, b *turn.Battle) {
	fmt.Fprintf(out, "\n%s HP %d/%d%s\n", b.Opponent.DisplayName(), b.Opponent.HP, b.Opponent.MaxHP, statusTag(b.Opponent))
	fmt.Fprintf(out, "%s HP %d/%d%s\n", b.Player.DisplayName(), b.Player.HP, b.Player.MaxHP, statusTag(b.Player))
	for i, name := range b.Player.MoveOrder {
		slot := b.Player.Moves[name]
		fmt.Fprintf(out, "  %d. %-14s %-8s PP %d/%d\n", i+1, slot.Move.DisplayName(), slot.Move.Type, slot.PP, slot.Move.PP)
	}
}

func statusTag(c *combat.Combatant) string {
	if c.Status.Major == combat.StatusNone {
		return ""
	}
	return " [" + strings.ToUpper(string(c.Status.Major)) + "]"
}

func printReport(out io.Writer, r *turn.Report) {
	fmt.Fprintf(out, "\n-- Turn %d --\n", r.Turn)
	for _, msg := range r.Messages() {
		fmt.Fprintln(out, msg)
	}
}
