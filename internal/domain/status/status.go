// Package status defines the SEIHRD epidemiological stages and the legal
// transitions between them.
package status

// Status is one of the six SEIHRD stages of a person.
type Status int

// SEIHRD stages. The numeric values are part of the trajectory log format
// and must not be reordered.
const (
	// Susceptible to infection through exposure to an infected contact.
	Susceptible Status = iota

	// Exposed has been in contact with an infected person (but isn't
	// spreading).
	Exposed

	// Infected developed the infection after the incubation period
	// (is spreading).
	Infected

	// Hospitalised is infected and admitted to hospital.
	Hospitalised

	// Recovered from infection and immune.
	Recovered

	// Dead at hospital (only hospital cases can die).
	Dead
)

// All lists every stage in declaration order.
func All() []Status {
	return []Status{Susceptible, Exposed, Infected, Hospitalised, Recovered, Dead}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Susceptible:
		return "SUSCEPTIBLE"
	case Exposed:
		return "EXPOSED"
	case Infected:
		return "INFECTED"
	case Hospitalised:
		return "HOSPITALISED"
	case Recovered:
		return "RECOVERED"
	case Dead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the six defined stages.
func (s Status) Valid() bool {
	return s >= Susceptible && s <= Dead
}

// Terminal reports whether s can never change again.
func (s Status) Terminal() bool {
	return s == Recovered || s == Dead
}

// CanTransition reports whether the model permits moving from one stage to
// another on consecutive days. Staying in the same stage is always legal
// except that nothing leaves a terminal stage.
//
// Susceptible to Infected is a real edge: infection risk is evaluated
// against the exposure one incubation period earlier, so a person may have
// reverted to susceptible the day before becoming infected.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case Susceptible:
		return to == Exposed || to == Infected
	case Exposed:
		return to == Susceptible || to == Infected
	case Infected:
		return to == Hospitalised || to == Recovered
	case Hospitalised:
		return to == Recovered || to == Dead
	default:
		// Recovered and Dead are terminal.
		return false
	}
}
