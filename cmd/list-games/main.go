package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Quick ops tool: dump the stored keys so a stuck session or orphaned
// character can be found without opening redis-cli.
func main() {
	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	for _, prefix := range []string{"gamestate", "character", "campaign", "profile"} {
		keys, err := client.Keys(ctx, prefix+":*").Result()
		if err != nil {
			log.Fatalf("Failed to list %s keys: %v", prefix, err)
		}

		fmt.Printf("Found %d %s entries:\n", len(keys), prefix)
		for _, key := range keys {
			data, getErr := client.Get(ctx, key).Result()
			if getErr != nil {
				fmt.Printf("  %s: ERROR - %v\n", key, getErr)
				continue
			}
			fmt.Printf("  %s: %d bytes\n", key, len(data))
		}
		fmt.Println()
	}
}
