// Package scenario defines the social-contact policy presets and the sweep
// runner that simulates each of them.
package scenario

// Scenario describes one social-contact policy through the two
// contact-graph density knobs.
type Scenario struct {
	// Name identifies the policy in logs and metrics.
	Name string

	// MaxContacts bounds the external contacts a person may initiate.
	MaxContacts int

	// MaxFreq bounds the weekly encounter count per external contact.
	MaxFreq int

	// Days overrides the sweep's day range when positive. The slowest
	// policies need longer horizons for the epidemic to play out.
	Days int
}

// Presets returns the policy ladder from no isolation to extreme isolation.
func Presets() []Scenario {
	return []Scenario{
		{Name: "no-isolation", MaxContacts: 5, MaxFreq: 5},
		{Name: "light-isolation", MaxContacts: 3, MaxFreq: 5},
		{Name: "moderate-isolation", MaxContacts: 3, MaxFreq: 1},
		{Name: "harsh-isolation", MaxContacts: 2, MaxFreq: 1},
		{Name: "extreme-isolation", MaxContacts: 1, MaxFreq: 1, Days: 1000},
	}
}
