// Package idx generates the identifiers used across the service: ULIDs for
// users and request ids, UUIDv7 for lists and items. Both are time ordered so
// ORDER BY id follows creation order.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type ID string

var (
	globalOnce sync.Once
	global     *generator
)

// generator is a tool to safely generate ULIDs concurrently using a monotonic
// source.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	src := ulid.Monotonic(rand.Reader, 0) // Max Monotonic Window
	global = &generator{entropy: src}
}

// New returns a new lexicographically sortable ULID-based ID using the
// current time in UTC and a monotonic entropy source.
func New() ID {
	globalOnce.Do(initGlobal)
	return global.newAt(time.Now().UTC())
}

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// NewUUID returns a version 7 UUID string. Version 7 embeds a millisecond
// timestamp and google/uuid keeps the sequence monotonic within the process,
// so ids generated later always sort after earlier ones.
func NewUUID() string {
	u, err := uuid.NewV7()
	if err != nil {
		// Only fails when the system random source is broken.
		return uuid.NewString()
	}
	return u.String()
}
