// Package contact extends a population's household contact lists with
// randomly drawn external edges.
package contact

import (
	"math/rand"
	"time"

	"github.com/mkret/seihrd/internal/domain/population"
	"github.com/mkret/seihrd/pkg/metrics"
)

const daysPerWeek = 7

// Builder draws external contacts for every person in a population.
type Builder struct {
	maxContacts int
	maxFreq     int
	rng         *rand.Rand
}

// NewBuilder creates a graph builder. maxContacts bounds the number of
// external contacts a person initiates; maxFreq bounds the weekly encounter
// count per external contact.
func NewBuilder(maxContacts, maxFreq int, opts ...Option) *Builder {
	b := &Builder{
		maxContacts: maxContacts,
		maxFreq:     maxFreq,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation randomness, not security sensitive
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Assign adds external contact edges to the population in place and returns
// the number of directed edges created.
//
// Per person p it draws a contact count uniform on [0, maxContacts], then
// rejection-samples partners uniformly over the whole population. A candidate
// is accepted when it belongs to a different family and was not already
// accepted by p during this pass. Each accepted edge gets a weekly encounter
// count uniform on [1, maxFreq], stored as a daily frequency, and is
// reciprocated immediately. p's accept-set does not prevent p2 independently
// initiating a second edge pair to p later; such duplicates are kept.
func (b *Builder) Assign(pop *population.Population) int {
	n := pop.Len()

	// With maxFreq < 1 there is no valid weekly count to draw, so no
	// external contacts exist. Not an error.
	if b.maxContacts < 1 || b.maxFreq < 1 {
		return 0
	}

	// Rejection sampling needs at least one family other than the
	// initiator's own.
	if !hasMultipleFamilies(pop) {
		return 0
	}

	edges := 0
	for p := 0; p < n; p++ {
		// The average number of external contacts per person, initiated
		// plus received, ends up at maxContacts.
		nContacts := b.rng.Intn(b.maxContacts + 1)
		accepted := make(map[int]struct{}, nContacts)
		for len(accepted) < nContacts {
			p2 := b.rng.Intn(n)
			if pop.Persons[p2].Family == pop.Persons[p].Family {
				continue
			}
			if _, ok := accepted[p2]; ok {
				continue
			}
			accepted[p2] = struct{}{}

			freq := float64(b.rng.Intn(b.maxFreq)+1) / daysPerWeek
			pop.Persons[p].Contacts = append(pop.Persons[p].Contacts,
				population.Contact{Person: p2, Frequency: freq})
			pop.Persons[p2].Contacts = append(pop.Persons[p2].Contacts,
				population.Contact{Person: p, Frequency: freq})
			edges += 2
		}
	}

	metrics.RecordContactEdges(edges)
	return edges
}

func hasMultipleFamilies(pop *population.Population) bool {
	if pop.Len() == 0 {
		return false
	}
	first := pop.Persons[0].Family
	for _, person := range pop.Persons[1:] {
		if person.Family != first {
			return true
		}
	}
	return false
}
