package bench

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// runIDEntropy is the one monotonic entropy source every newRunID call
// draws from, guarded by runIDEntropyMu.
var (
	runIDEntropyMu sync.Mutex
	runIDEntropy   = ulid.Monotonic(rand.Reader, 0)
)

// newRunID mints a monotonic ulid for one fixture run: a crypto/rand
// entropy source wrapped in ulid.Monotonic so that run ids minted within
// the same benchmark sweep sort by generation order even when timestamps
// collide at millisecond resolution.
func newRunID() (string, error) {
	runIDEntropyMu.Lock()
	defer runIDEntropyMu.Unlock()
	t := time.Now().UTC()
	id, err := ulid.New(ulid.Timestamp(t), runIDEntropy)
	if err != nil {
		return "", fmt.Errorf("bench: minting run id: %w", err)
	}
	return id.String(), nil
}

// MuResult is one model-checking run's result record.
type MuResult struct {
	RunID            string
	FixtureName      string
	Algorithm        string
	SatisfyingStates int
	Elapsed          time.Duration
}

// GameResult is one parity-game solve's result record: size, non-Top
// count, timing. The per-vertex measure dump stays available via
// ProgressMeasure itself and is not duplicated into the summary record.
type GameResult struct {
	RunID            string
	FixtureName      string
	Strategy         string
	NumVertices      int
	WinningEvenCount int
	Elapsed          time.Duration
}
