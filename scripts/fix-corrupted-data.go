package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted battles...")

	result, err := battles.FindCorrupt(ctx, client)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d battles, found %d corrupted entries\n", result.Checked, len(result.Corrupt))
	if len(result.Corrupt) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	ids := make([]string, 0, len(result.Corrupt))
	for id := range result.Corrupt {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("\nCorrupted battles:")
	for _, id := range ids {
		fmt.Printf("  - %s: %s\n", id, result.Corrupt[id])
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	repo, err := battles.NewRedisRepository(&battles.Config{Client: client, Clock: clock.New()})
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}
	for _, id := range ids {
		if _, err := repo.Delete(ctx, &battles.DeleteInput{ID: id}); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", id, err)
		} else {
			fmt.Printf("Deleted %s\n", id)
		}
	}
	fmt.Println("\nCleanup complete!")
}
