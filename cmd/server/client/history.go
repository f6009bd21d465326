package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/handlers/battle/v1alpha1"
)

var (
	historySpecies string
	historyLimit   int32
)

var listHistoryCmd = &cobra.Command{
	Use:   "list-history",
	Short: "List finished battles, newest first",
	RunE:  runListHistory,
}

func init() {
	listHistoryCmd.Flags().StringVar(&historySpecies, "species", "", "Only battles with this species on either side")
	listHistoryCmd.Flags().Int32Var(&historyLimit, "limit", 0, "Maximum number of battles")
}

func runListHistory(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListHistory(ctx, &v1alpha1.ListHistoryRequest{Species: historySpecies, Limit: historyLimit})
	if err != nil {
		return callError("list history", err)
	}
	if asJSON {
		return printJSON(resp)
	}

	if len(resp.Battles) == 0 {
		fmt.Println("No finished battles yet.")
		return nil
	}
	for _, b := range resp.Battles {
		fmt.Printf("%s  %s vs %s  %-9s winner %-12s turns %d\n",
			b.FinishedAt, b.PlayerSpecies, b.OpponentSpecies, b.Result, b.Winner, b.Turns)
	}
	return nil
}
