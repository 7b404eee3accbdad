// Package collector pulls a team's raw match history from the provider,
// runs each record through the normalization engine and persists the
// result. One bad match never aborts a crawl.
package collector

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"

	"dotadash/internal/cache"
	"dotadash/internal/match"
	"dotadash/internal/opendota"
	"dotadash/internal/refdata"
)

const (
	DefaultWorkerCount = 4
	JobChannelBuffer   = 64
)

// Fetcher is the slice of the provider client the crawler needs
type Fetcher interface {
	GetTeamMatches(ctx context.Context, teamID int64) ([]opendota.TeamMatchSummary, error)
	GetMatch(ctx context.Context, matchID int64) (*opendota.RawMatch, error)
}

// Store is the slice of the match store the crawler needs
type Store interface {
	SaveMatch(ctx context.Context, m *match.Match) error
	HasMatch(ctx context.Context, matchID int64) (bool, error)
}

// Config holds crawler tuning knobs
type Config struct {
	WorkerCount int
	MaxMatches  int // 0 means the whole team history
}

// Crawler fetches and normalizes a team's matches with a small worker pool
type Crawler struct {
	fetcher  Fetcher
	store    Store
	resolver refdata.Resolver
	strategy match.ScoringStrategy
	cache    *cache.MatchCache // optional

	workerCount int
	maxMatches  int

	// Deduplication across a crawl (bloom filter, same trick the match
	// spider uses for visited ids)
	visited   *bloom.BloomFilter
	visitedMu sync.Mutex

	jobs chan int64

	// Stats (atomic for thread safety)
	saved     int64
	skipped   int64
	failed    int64
	startTime time.Time

	wg sync.WaitGroup
}

// NewCrawler creates a crawler. The resolver, strategy and cache may be
// nil; normalization then falls back to placeholders and the default
// scoring strategy.
func NewCrawler(fetcher Fetcher, store Store, resolver refdata.Resolver,
	strategy match.ScoringStrategy, matchCache *cache.MatchCache, cfg Config) *Crawler {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}

	return &Crawler{
		fetcher:     fetcher,
		store:       store,
		resolver:    resolver,
		strategy:    strategy,
		cache:       matchCache,
		workerCount: cfg.WorkerCount,
		maxMatches:  cfg.MaxMatches,
		visited:     bloom.NewWithEstimates(100000, 0.001),
		jobs:        make(chan int64, JobChannelBuffer),
	}
}

// Run crawls one team's match history. It returns the number of newly
// stored matches.
func (c *Crawler) Run(ctx context.Context, teamID int64) (int, error) {
	c.startTime = time.Now()

	summaries, err := c.fetcher.GetTeamMatches(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to list team %d matches: %w", teamID, err)
	}
	fmt.Printf("[Crawler] Team %d has %d recorded matches\n", teamID, len(summaries))

	for i := 0; i < c.workerCount; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}

	dispatched := 0
	for _, s := range summaries {
		if c.maxMatches > 0 && dispatched >= c.maxMatches {
			break
		}
		if !c.markVisited(s.MatchID) {
			continue
		}

		exists, err := c.store.HasMatch(ctx, s.MatchID)
		if err != nil {
			fmt.Printf("[Crawler] Store check failed for %d: %v\n", s.MatchID, err)
			atomic.AddInt64(&c.failed, 1)
			continue
		}
		if exists {
			atomic.AddInt64(&c.skipped, 1)
			continue
		}

		select {
		case <-ctx.Done():
			close(c.jobs)
			c.wg.Wait()
			return int(atomic.LoadInt64(&c.saved)), ctx.Err()
		case c.jobs <- s.MatchID:
			dispatched++
		}
	}

	close(c.jobs)
	c.wg.Wait()

	c.printSummary()
	return int(atomic.LoadInt64(&c.saved)), nil
}

// markVisited records a match id, returning false when it was already seen
func (c *Crawler) markVisited(matchID int64) bool {
	key := strconv.FormatInt(matchID, 10)

	c.visitedMu.Lock()
	defer c.visitedMu.Unlock()

	if c.visited.TestString(key) {
		return false
	}
	c.visited.AddString(key)
	return true
}

func (c *Crawler) worker(ctx context.Context, id int) {
	defer c.wg.Done()

	for matchID := range c.jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := c.process(ctx, matchID); err != nil {
			fmt.Printf("[Worker %d] Match %d failed: %v\n", id, matchID, err)
			atomic.AddInt64(&c.failed, 1)
		}
	}
}

func (c *Crawler) process(ctx context.Context, matchID int64) error {
	raw, err := c.fetcher.GetMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	m, err := match.Assemble(raw, c.resolver, c.strategy)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	if err := c.store.SaveMatch(ctx, m); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.cache != nil {
		c.cache.Add(m)
	}

	atomic.AddInt64(&c.saved, 1)
	return nil
}

func (c *Crawler) printSummary() {
	elapsed := time.Since(c.startTime)
	fmt.Printf("[Crawler] Done in %s: %d saved, %d skipped, %d failed\n",
		elapsed.Round(time.Second),
		atomic.LoadInt64(&c.saved),
		atomic.LoadInt64(&c.skipped),
		atomic.LoadInt64(&c.failed))
}
