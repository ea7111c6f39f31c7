package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"sint-message-service/internal/config"
	"sint-message-service/internal/heygen"
)

// Lists the avatars available on the configured HeyGen account, for picking
// a HEYGEN_AVATAR_ID.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.HeyGen.APIKey == "" {
		log.Fatal("HEYGEN_API_KEY is required")
	}

	client := heygen.NewClient(cfg.HeyGen)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	avatars, err := client.ListAvatars(ctx)
	if err != nil {
		log.Fatalf("Failed to list avatars: %v", err)
	}

	var pretty json.RawMessage = avatars
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		log.Fatalf("Failed to format avatar list: %v", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
}
