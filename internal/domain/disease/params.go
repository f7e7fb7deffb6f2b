// Package disease holds the SEIHRD model parameter table and the weighted
// draw used for daily status transitions.
package disease

import (
	"fmt"
)

// Params is the SEIHRD transition parameter table. All probabilities are
// daily; all times are in days.
type Params struct {
	// EITime is the virus incubation time before infection risk is
	// evaluated.
	EITime int

	// EIProb is the probability of developing infection once the
	// incubation time has passed.
	EIProb float64

	// MinIRTime is the minimum infection time before natural recovery is
	// possible.
	MinIRTime int

	// IR is the daily probability of recovery without hospitalisation.
	IR float64

	// IH is the daily probability of an infected person going to hospital.
	IH float64

	// MinHRTime is the minimum time at hospital before recovery.
	MinHRTime int

	// HR is the daily probability of recovery at hospital.
	HR float64

	// MinHDTime is the minimum time at hospital before death.
	MinHDTime int

	// BaseHD is the daily probability of death at hospital under normal
	// load.
	BaseHD float64

	// NHSOverload is the hospitalised-person count above which hospitals
	// are overburdened, downscaled to the simulated population size.
	NHSOverload int

	// OverloadMultiplier scales BaseHD while hospitals are over capacity.
	OverloadMultiplier float64
}

// Default returns the reference parameter table.
func Default() Params {
	hr := 1.0 / 35
	return Params{
		EITime:             4,
		EIProb:             0.5,
		MinIRTime:          7,
		IR:                 1.0 / 21,
		IH:                 1.0 / 200,
		MinHRTime:          14,
		HR:                 hr,
		MinHDTime:          5,
		BaseHD:             hr * 0.16,
		NHSOverload:        2000,
		OverloadMultiplier: 3,
	}
}

// Validate checks that every probability is a probability and every time is
// at least one day.
func (p Params) Validate() error {
	for _, t := range []struct {
		name string
		days int
	}{
		{"EITime", p.EITime},
		{"MinIRTime", p.MinIRTime},
		{"MinHRTime", p.MinHRTime},
		{"MinHDTime", p.MinHDTime},
	} {
		if t.days < 1 {
			return fmt.Errorf("%w: %s must be at least 1 day, got %d", ErrInvalidParams, t.name, t.days)
		}
	}

	for _, pr := range []struct {
		name string
		val  float64
	}{
		{"EIProb", p.EIProb},
		{"IR", p.IR},
		{"IH", p.IH},
		{"HR", p.HR},
		{"BaseHD", p.BaseHD},
	} {
		if pr.val < 0 || pr.val > 1 {
			return fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalidParams, pr.name, pr.val)
		}
	}

	if p.NHSOverload < 0 {
		return fmt.Errorf("%w: NHSOverload must not be negative, got %d", ErrInvalidParams, p.NHSOverload)
	}
	if p.OverloadMultiplier < 1 {
		return fmt.Errorf("%w: OverloadMultiplier must be at least 1, got %g", ErrInvalidParams, p.OverloadMultiplier)
	}

	return nil
}

// HospitalDeathProb returns the daily hospital death probability given the
// previous day's hospitalised count, applying the overload penalty when
// hospitals are at or over capacity.
func (p Params) HospitalDeathProb(hospitalised int) float64 {
	if hospitalised < p.NHSOverload {
		return p.BaseHD
	}
	return p.OverloadMultiplier * p.BaseHD
}
