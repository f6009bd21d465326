package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/handlers/battle/v1alpha1"
)

var typeName string

var listSpeciesCmd = &cobra.Command{
	Use:   "list-species",
	Short: "List the selectable species",
	RunE:  runListSpecies,
}

var typeAdvantagesCmd = &cobra.Command{
	Use:   "type-advantages",
	Short: "Show what a type is strong and weak against",
	RunE:  runTypeAdvantages,
}

func init() {
	typeAdvantagesCmd.Flags().StringVar(&typeName, "type", "", "Attacking type (required)")
	_ = typeAdvantagesCmd.MarkFlagRequired("type") // nolint:errcheck // safe to ignore in init
}

func runListSpecies(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListSpecies(ctx, &v1alpha1.ListSpeciesRequest{})
	if err != nil {
		return callError("list species", err)
	}
	if asJSON {
		return printJSON(resp)
	}

	fmt.Printf("Found %d species:\n\n", len(resp.Species))
	for _, s := range resp.Species {
		fmt.Printf("%-12s %-16s spd %-4d %s\n", s.Display, strings.Join(s.Types, "/"),
			s.BaseStats["speed"], strings.Join(s.Moves, ", "))
	}
	return nil
}

func runTypeAdvantages(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetTypeAdvantages(ctx, &v1alpha1.GetTypeAdvantagesRequest{Type: typeName})
	if err != nil {
		return callError("get type advantages", err)
	}
	if asJSON {
		return printJSON(resp)
	}

	fmt.Printf("%s\n", resp.Type)
	fmt.Printf("  strong against:    %s\n", orNone(resp.StrongAgainst))
	fmt.Printf("  weak against:      %s\n", orNone(resp.WeakAgainst))
	fmt.Printf("  no effect against: %s\n", orNone(resp.NoEffectAgainst))
	return nil
}

func orNone(types []string) string {
	if len(types) == 0 {
		return "-"
	}
	return strings.Join(types, ", ")
}
