package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dotadash/internal/cache"
	"dotadash/internal/collector"
	"dotadash/internal/db"
	"dotadash/internal/match"
	"dotadash/internal/opendota"
	"dotadash/internal/refdata"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			break
		}
	}

	teamIDStr := os.Getenv("TEAM_ID")
	if teamIDStr == "" {
		log.Fatal("TEAM_ID environment variable not set")
	}
	teamID, err := strconv.ParseInt(teamIDStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid TEAM_ID %q: %v", teamIDStr, err)
	}

	ctx := context.Background()

	database, err := db.New(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	refDB, err := refdata.Open(os.Getenv("REFDATA_DB"))
	if err != nil {
		log.Fatalf("Failed to open reference data: %v", err)
	}
	defer refDB.Close()

	matchCache, err := cache.New(256)
	if err != nil {
		log.Fatalf("Failed to create match cache: %v", err)
	}

	var strategy match.ScoringStrategy = match.WardCountStrategy{}
	if os.Getenv("ROLE_STRATEGY") == "purchase_log" {
		strategy = match.PurchaseLogStrategy{}
	}
	fmt.Printf("[Collector] Role strategy: %s\n", strategy.Name())

	maxMatches := 0
	if v := os.Getenv("MAX_MATCHES"); v != "" {
		maxMatches, _ = strconv.Atoi(v)
	}

	crawler := collector.NewCrawler(
		opendota.NewClient(), database, refDB, strategy, matchCache,
		collector.Config{MaxMatches: maxMatches},
	)

	saved, err := crawler.Run(ctx, teamID)
	if err != nil {
		log.Fatalf("Crawl failed: %v", err)
	}
	fmt.Printf("[Collector] Stored %d new matches for team %d\n", saved, teamID)

	publishToTurso(ctx, database)
}

// publishToTurso pushes the hero aggregates to the edge database when one
// is configured
func publishToTurso(ctx context.Context, database *db.DB) {
	tursoURL := os.Getenv("TURSO_DATABASE_URL")
	if tursoURL == "" {
		fmt.Println("[Collector] TURSO_DATABASE_URL not set, skipping publish")
		return
	}

	turso, err := db.NewTursoClient(tursoURL, os.Getenv("TURSO_AUTH_TOKEN"))
	if err != nil {
		log.Printf("Turso connection failed: %v", err)
		return
	}
	defer turso.Close()

	if err := turso.CreateTables(ctx); err != nil {
		log.Printf("Turso schema failed: %v", err)
		return
	}

	stats, err := database.GetHeroStats(ctx)
	if err != nil {
		log.Printf("Hero stats query failed: %v", err)
		return
	}
	matchCount, err := database.GetMatchCount(ctx)
	if err != nil {
		log.Printf("Match count query failed: %v", err)
		return
	}

	if err := turso.PublishHeroStats(ctx, stats, matchCount); err != nil {
		log.Printf("Turso publish failed: %v", err)
		return
	}
	fmt.Printf("[Collector] Published %d hero aggregates to Turso\n", len(stats))
}
