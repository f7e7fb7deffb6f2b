// Package population builds the synthetic population: persons grouped into
// households ("families") whose members are mutual contacts.
package population

import (
	"fmt"
	"math"
)

// SaturatingFrequency is the contact frequency sentinel for household
// members: contact is certain, so the exposure pressure sum saturates.
var SaturatingFrequency = math.Inf(1) //nolint:gochecknoglobals // frequency sentinel, never reassigned

// Contact is one directed weighted edge of the contact graph.
type Contact struct {
	// Person is the index of the other endpoint.
	Person int

	// Frequency is the expected number of daily encounters, or
	// SaturatingFrequency for household members.
	Frequency float64
}

// Person is one member of the population, identified by its index.
type Person struct {
	// Family is the household ID, assigned at construction and immutable.
	Family int

	// Contacts holds the person's directed contact edges. Household edges
	// come first; external edges are appended by the graph builder.
	Contacts []Contact
}

// Population is the fixed set of persons for one simulation run.
type Population struct {
	Persons []Person
}

// CountPersons returns the total population size for a family size spec,
// where families[i] is the number of families of size i+1.
func CountPersons(families []int) int {
	n := 0
	for i, count := range families {
		n += (i + 1) * count
	}
	return n
}

// New builds a population from a family size spec. Family IDs are assigned
// sequentially and each person's contact list is seeded with edges to every
// household co-member at the saturating frequency. Deterministic.
func New(families []int) (*Population, error) {
	if len(families) == 0 {
		return nil, fmt.Errorf("%w: no family sizes given", ErrInvalidFamilies)
	}
	for i, count := range families {
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count %d for family size %d", ErrInvalidFamilies, count, i+1)
		}
	}

	n := CountPersons(families)
	if n == 0 {
		return nil, fmt.Errorf("%w: population is empty", ErrInvalidFamilies)
	}

	pop := &Population{Persons: make([]Person, n)}

	familyID := 0
	personID := 0
	for i, count := range families {
		size := i + 1
		for f := 0; f < count; f++ {
			for p := personID; p < personID+size; p++ {
				pop.Persons[p].Family = familyID
				for p2 := personID; p2 < personID+size; p2++ {
					if p2 == p {
						continue
					}
					pop.Persons[p].Contacts = append(pop.Persons[p].Contacts,
						Contact{Person: p2, Frequency: SaturatingFrequency})
				}
			}
			personID += size
			familyID++
		}
	}

	return pop, nil
}

// Len returns the number of persons.
func (p *Population) Len() int {
	return len(p.Persons)
}
