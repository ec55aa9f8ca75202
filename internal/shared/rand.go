package shared

import (
	"math/rand"
	"sync"
	"time"

	"tripbuddy/internal/domain"
)

// lockedRand makes a *rand.Rand safe for concurrent handlers. Tests bypass
// this and inject a bare seeded *rand.Rand through the domain.Rand port.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRand() domain.Rand {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
