package disease_test

import (
	"errors"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mkret/seihrd/internal/domain/disease"
	"github.com/mkret/seihrd/internal/domain/status"
)

func TestDefaultParams(t *testing.T) {
	Convey("Given the reference parameter table", t, func() {
		p := disease.Default()

		Convey("Then it should validate", func() {
			So(p.Validate(), ShouldBeNil)
		})

		Convey("Then the values should match the model", func() {
			So(p.EITime, ShouldEqual, 4)
			So(p.EIProb, ShouldEqual, 0.5)
			So(p.MinIRTime, ShouldEqual, 7)
			So(p.IR, ShouldAlmostEqual, 1.0/21)
			So(p.IH, ShouldAlmostEqual, 1.0/200)
			So(p.MinHRTime, ShouldEqual, 14)
			So(p.HR, ShouldAlmostEqual, 1.0/35)
			So(p.MinHDTime, ShouldEqual, 5)
			So(p.BaseHD, ShouldAlmostEqual, (1.0/35)*0.16)
			So(p.NHSOverload, ShouldEqual, 2000)
			So(p.OverloadMultiplier, ShouldEqual, 3)
		})
	})

	Convey("Given broken parameter tables", t, func() {
		Convey("Then out-of-range probabilities should be rejected", func() {
			p := disease.Default()
			p.IH = 1.5
			So(errors.Is(p.Validate(), disease.ErrInvalidParams), ShouldBeTrue)
		})

		Convey("Then zero lookback times should be rejected", func() {
			p := disease.Default()
			p.EITime = 0
			So(errors.Is(p.Validate(), disease.ErrInvalidParams), ShouldBeTrue)
		})
	})
}

func TestHospitalDeathProb(t *testing.T) {
	Convey("Given the overload rule", t, func() {
		p := disease.Default()
		p.NHSOverload = 100

		Convey("Then below the threshold the base rate applies", func() {
			So(p.HospitalDeathProb(0), ShouldAlmostEqual, p.BaseHD)
			So(p.HospitalDeathProb(99), ShouldAlmostEqual, p.BaseHD)
		})

		Convey("Then at or above the threshold the penalty applies", func() {
			So(p.HospitalDeathProb(100), ShouldAlmostEqual, 3*p.BaseHD)
			So(p.HospitalDeathProb(5000), ShouldAlmostEqual, 3*p.BaseHD)
		})
	})
}

func TestChoose(t *testing.T) {
	Convey("Given a weighted status draw", t, func() {
		rng := rand.New(rand.NewSource(11))

		Convey("When one weight carries all the mass", func() {
			got, err := disease.Choose(rng,
				[]status.Status{status.Exposed, status.Susceptible},
				[]float64{1, 0})

			Convey("Then that candidate is always drawn", func() {
				So(err, ShouldBeNil)
				So(got, ShouldEqual, status.Exposed)
			})
		})

		Convey("When weights are split, frequencies should follow them", func() {
			counts := map[status.Status]int{}
			const n = 20000
			for i := 0; i < n; i++ {
				got, err := disease.Choose(rng,
					[]status.Status{status.Infected, status.Susceptible, status.Exposed},
					[]float64{0.5, 0.3, 0.2})
				So(err, ShouldBeNil)
				counts[got]++
			}
			So(float64(counts[status.Infected])/n, ShouldAlmostEqual, 0.5, 0.02)
			So(float64(counts[status.Susceptible])/n, ShouldAlmostEqual, 0.3, 0.02)
			So(float64(counts[status.Exposed])/n, ShouldAlmostEqual, 0.2, 0.02)
		})

		Convey("When weights are degenerate", func() {
			Convey("Then all-zero weights fail loudly", func() {
				_, err := disease.Choose(rng,
					[]status.Status{status.Recovered, status.Dead},
					[]float64{0, 0})
				So(errors.Is(err, disease.ErrZeroWeights), ShouldBeTrue)
			})

			Convey("Then a negative weight fails loudly", func() {
				_, err := disease.Choose(rng,
					[]status.Status{status.Recovered, status.Dead},
					[]float64{0.5, -0.1})
				So(errors.Is(err, disease.ErrNegativeWeight), ShouldBeTrue)
			})

			Convey("Then mismatched lengths fail loudly", func() {
				_, err := disease.Choose(rng,
					[]status.Status{status.Recovered},
					[]float64{0.5, 0.5})
				So(errors.Is(err, disease.ErrWeightMismatch), ShouldBeTrue)
			})
		})
	})
}
