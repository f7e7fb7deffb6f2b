package population_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mkret/seihrd/internal/domain/population"
)

func TestCountPersons(t *testing.T) {
	Convey("Given family size specs", t, func() {
		Convey("Then the population size should weight counts by size", func() {
			So(population.CountPersons([]int{2, 1, 0}), ShouldEqual, 4)
			So(population.CountPersons([]int{0, 0, 3}), ShouldEqual, 9)
			So(population.CountPersons([]int{1}), ShouldEqual, 1)
			So(population.CountPersons([]int{}), ShouldEqual, 0)
		})
	})
}

func TestNewPopulation(t *testing.T) {
	Convey("Given a spec with two singles, one pair, and one triple", t, func() {
		pop, err := population.New([]int{2, 1, 1})

		Convey("Then construction should succeed", func() {
			So(err, ShouldBeNil)
			So(pop.Len(), ShouldEqual, 7)
		})

		Convey("Then family IDs should be sequential and unique per family", func() {
			So(pop.Persons[0].Family, ShouldEqual, 0)
			So(pop.Persons[1].Family, ShouldEqual, 1)
			So(pop.Persons[2].Family, ShouldEqual, 2)
			So(pop.Persons[3].Family, ShouldEqual, 2)
			So(pop.Persons[4].Family, ShouldEqual, 3)
			So(pop.Persons[5].Family, ShouldEqual, 3)
			So(pop.Persons[6].Family, ShouldEqual, 3)
		})

		Convey("Then singles should have no household contacts", func() {
			So(pop.Persons[0].Contacts, ShouldBeEmpty)
			So(pop.Persons[1].Contacts, ShouldBeEmpty)
		})

		Convey("Then household edges should be mutual and saturating", func() {
			So(len(pop.Persons[2].Contacts), ShouldEqual, 1)
			So(pop.Persons[2].Contacts[0].Person, ShouldEqual, 3)
			So(math.IsInf(pop.Persons[2].Contacts[0].Frequency, 1), ShouldBeTrue)
			So(pop.Persons[3].Contacts[0].Person, ShouldEqual, 2)

			// Triple: each member linked to the other two.
			for p := 4; p <= 6; p++ {
				So(len(pop.Persons[p].Contacts), ShouldEqual, 2)
				for _, c := range pop.Persons[p].Contacts {
					So(c.Person, ShouldNotEqual, p)
					So(c.Person, ShouldBeBetweenOrEqual, 4, 6)
					So(math.IsInf(c.Frequency, 1), ShouldBeTrue)
				}
			}
		})

		Convey("Then construction should be deterministic", func() {
			pop2, err2 := population.New([]int{2, 1, 1})
			So(err2, ShouldBeNil)
			So(pop2, ShouldResemble, pop)
		})
	})

	Convey("Given invalid specs", t, func() {
		Convey("Then an empty spec should be rejected", func() {
			_, err := population.New([]int{})
			So(errors.Is(err, population.ErrInvalidFamilies), ShouldBeTrue)
		})

		Convey("Then negative counts should be rejected", func() {
			_, err := population.New([]int{3, -1})
			So(errors.Is(err, population.ErrInvalidFamilies), ShouldBeTrue)
		})

		Convey("Then an all-zero spec should be rejected", func() {
			_, err := population.New([]int{0, 0})
			So(errors.Is(err, population.ErrInvalidFamilies), ShouldBeTrue)
		})
	})
}
