// Package main is the entry point for the battle server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-battle",
	Short: "Turn-based battle server",
	Long:  `rpg-battle resolves two-combatant turn-based battles over gRPC, locally, or as a client.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
