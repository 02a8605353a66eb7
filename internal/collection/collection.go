// Package collection accumulates parsed games, detects duplicates,
// and summarizes the set.
package collection

import (
	"hash/fnv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/chesskit-go/chesskit/internal/pgn"
)

// Record is one game admitted to a collection.
type Record struct {
	// ID uniquely identifies the record within all collections.
	ID uuid.UUID

	Game *pgn.Game

	// Signature is a hash of the normalized movetext. Two games with
	// the same signature and ply count are treated as duplicates.
	Signature uint64

	PlyCount int
}

// Collection is a deduplicating set of games. It is safe for
// concurrent use.
type Collection struct {
	mu         sync.RWMutex
	records    []*Record
	seen       map[uint64][]*Record
	duplicates int
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{
		seen: make(map[uint64][]*Record),
	}
}

// Signature hashes a game's main-line movetext. Annotations, comments,
// and variations do not participate, so the same game annotated two
// different ways still collides.
func Signature(game *pgn.Game) uint64 {
	h := fnv.New64a()
	for i, move := range game.Moves {
		if i > 0 {
			h.Write([]byte{' '})
		}
		h.Write([]byte(normalizeSAN(move.Text)))
	}
	return h.Sum64()
}

// normalizeSAN strips decorations that vary between sources of the
// same game: check suffixes and alternative castling spellings.
func normalizeSAN(text string) string {
	text = strings.TrimRight(text, "+#")
	text = strings.ReplaceAll(text, "0", "O")
	return strings.ReplaceAll(text, "o", "O")
}

// Add admits a game and reports whether it was a duplicate of an
// already admitted game. Duplicates are counted but not stored.
func (c *Collection) Add(game *pgn.Game) (*Record, bool) {
	signature := Signature(game)
	plyCount := game.PlyCount()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.seen[signature] {
		if existing.PlyCount == plyCount {
			c.duplicates++
			return existing, true
		}
	}

	record := &Record{
		ID:        uuid.New(),
		Game:      game,
		Signature: signature,
		PlyCount:  plyCount,
	}
	c.records = append(c.records, record)
	c.seen[signature] = append(c.seen[signature], record)
	return record, false
}

// Len returns the number of unique games admitted.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// DuplicateCount returns the number of rejected duplicates.
func (c *Collection) DuplicateCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.duplicates
}

// Records returns the admitted records in admission order.
func (c *Collection) Records() []*Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// Summary describes a collection's size and game-length distribution.
type Summary struct {
	Games      int
	Duplicates int

	MeanPlies   float64
	MedianPlies float64
	StdDevPlies float64

	// Results counts games per terminating marker.
	Results map[string]int
}

// Summarize computes distribution statistics over the admitted games.
func (c *Collection) Summarize() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := Summary{
		Games:      len(c.records),
		Duplicates: c.duplicates,
		Results:    make(map[string]int),
	}
	if len(c.records) == 0 {
		return summary
	}

	plies := make(stats.Float64Data, len(c.records))
	for i, record := range c.records {
		plies[i] = float64(record.PlyCount)
		result := record.Game.Result
		if result == "" {
			result = "*"
		}
		summary.Results[result]++
	}

	// The data is non-empty, so these cannot fail.
	summary.MeanPlies, _ = stats.Mean(plies)
	summary.MedianPlies, _ = stats.Median(plies)
	summary.StdDevPlies, _ = stats.StandardDeviation(plies)
	return summary
}
