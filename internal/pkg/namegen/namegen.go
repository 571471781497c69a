// Package namegen provides display-name utilities for debug characters
package namegen

import (
	"math/rand"
	"strings"
	"sync"
)

// Scrambler derives a display name with randomized casing from a base name.
type Scrambler interface {
	Scramble(name string) string
}

// Random implements Scrambler by flipping each rune's case with 50% probability.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random scrambler seeded from the given source.
// A nil source falls back to the global math/rand source.
func NewRandom(src rand.Source) *Random {
	if src == nil {
		return &Random{rng: rand.New(rand.NewSource(rand.Int63()))} // #nosec G404 // cosmetic casing only
	}
	return &Random{rng: rand.New(src)} // #nosec G404
}

// Scramble returns name with each rune independently upper- or lowercased.
func (r *Random) Scramble(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	b.Grow(len(name))
	for _, ch := range name {
		s := string(ch)
		if r.rng.Intn(2) == 0 {
			b.WriteString(strings.ToUpper(s))
		} else {
			b.WriteString(strings.ToLower(s))
		}
	}
	return b.String()
}

// Identity implements Scrambler without changing the name, for tests.
type Identity struct{}

// Scramble returns the name unchanged
func (Identity) Scramble(name string) string {
	return name
}
