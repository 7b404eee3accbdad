package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"dotadash/internal/db"
	"dotadash/internal/refdata"
)

var (
	database *db.DB
	refDB    *refdata.DB
	hub      *liveHub
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			envLoaded = true
			break
		}
	}
	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	var err error
	database, err = db.New(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	refDB, err = refdata.Open(os.Getenv("REFDATA_DB"))
	if err != nil {
		log.Fatalf("Failed to open reference data: %v", err)
	}
	defer refDB.Close()

	hub = newLiveHub()
	go hub.run()
	go watchForNewMatches(ctx)

	// API routes
	http.HandleFunc("/api/stats", handleStats)
	http.HandleFunc("/api/matches", handleMatches)
	http.HandleFunc("/api/match/", handleMatchDetail)
	http.HandleFunc("/api/heroes", handleHeroStats)
	http.HandleFunc("/ws/live", hub.handleWS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

// watchForNewMatches polls the store and pushes newly stored match ids to
// connected dashboard clients
func watchForNewMatches(ctx context.Context) {
	lastSeen, err := database.GetMaxMatchID(ctx)
	if err != nil {
		log.Printf("Live feed disabled, initial poll failed: %v", err)
		return
	}

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		maxID, err := database.GetMaxMatchID(ctx)
		if err != nil {
			log.Printf("Live feed poll failed: %v", err)
			continue
		}
		if maxID > lastSeen {
			lastSeen = maxID
			hub.broadcast(liveUpdate{Type: "match_stored", MatchID: maxID})
		}
	}
}

func handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matchCount, err := database.GetMatchCount(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"matches": matchCount,
		"clients": hub.clientCount(),
	})
}

func handleMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matches, err := database.GetRecentMatches(ctx, 50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}

func handleMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := strings.TrimPrefix(r.URL.Path, "/api/match/")
	matchID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	m, err := database.GetMatch(ctx, matchID)
	if err != nil {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// heroStatView joins the aggregate row with its display descriptor
type heroStatView struct {
	db.HeroStat
	Name string `json:"name"`
	Img  string `json:"img"`
}

func handleHeroStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := database.GetHeroStats(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]heroStatView, 0, len(stats))
	for _, s := range stats {
		hero, ok := refDB.Hero(s.HeroID)
		if !ok {
			hero = refdata.PlaceholderHero(s.HeroID)
		}
		views = append(views, heroStatView{HeroStat: s, Name: hero.LocalizedName, Img: hero.Img})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}
