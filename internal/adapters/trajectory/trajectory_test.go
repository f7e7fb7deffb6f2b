package trajectory_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mkret/seihrd/internal/adapters/trajectory"
	"github.com/mkret/seihrd/internal/domain/status"
)

func TestFilename(t *testing.T) {
	Convey("Given scenario contact-density parameters", t, func() {
		Convey("Then the log name should embed both knobs", func() {
			So(trajectory.Filename(5, 5), ShouldEqual, "simulate_contacts5_freq5.csv")
			So(trajectory.Filename(3, 1), ShouldEqual, "simulate_contacts3_freq1.csv")
		})

		Convey("Then distinct scenarios should get distinct names", func() {
			So(trajectory.Filename(5, 5), ShouldNotEqual, trajectory.Filename(1, 1))
		})
	})
}

func TestWriteAndRead(t *testing.T) {
	Convey("Given a trajectory writer in a temp dir", t, func() {
		dir := t.TempDir()

		w, err := trajectory.NewWriter(dir, 3, 5)
		So(err, ShouldBeNil)
		So(w.Path(), ShouldEqual, filepath.Join(dir, "simulate_contacts3_freq5.csv"))

		rows := [][]status.Status{
			{status.Susceptible, status.Exposed, status.Susceptible},
			{status.Exposed, status.Infected, status.Susceptible},
			{status.Exposed, status.Hospitalised, status.Dead},
		}

		Convey("When writing day rows and reading them back", func() {
			for d, row := range rows {
				So(w.WriteDay(d, row), ShouldBeNil)
			}
			So(w.Close(), ShouldBeNil)

			got, err := trajectory.Read(w.Path())

			Convey("Then the rows should round-trip exactly", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, rows)
			})
		})

		Convey("When inspecting the written format", func() {
			So(w.WriteDay(0, rows[0]), ShouldBeNil)
			So(w.Close(), ShouldBeNil)

			raw, err := os.ReadFile(w.Path())

			Convey("Then it should be whitespace-delimited integers", func() {
				So(err, ShouldBeNil)
				So(string(raw), ShouldEqual, "0 1 0\n")
			})
		})
	})

	Convey("Given failure cases", t, func() {
		Convey("When the log directory does not exist", func() {
			_, err := trajectory.NewWriter("/nonexistent-dir-for-sure", 1, 1)

			Convey("Then the open failure surfaces to the caller", func() {
				So(errors.Is(err, trajectory.ErrOpenLog), ShouldBeTrue)
			})
		})

		Convey("When reading a missing log", func() {
			_, err := trajectory.Read("/nonexistent-dir-for-sure/simulate_contacts1_freq1.csv")
			So(errors.Is(err, trajectory.ErrOpenLog), ShouldBeTrue)
		})

		Convey("When reading a log with a bad status value", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.csv")
			So(os.WriteFile(path, []byte("0 9 1\n"), 0o600), ShouldBeNil)

			_, err := trajectory.Read(path)
			So(errors.Is(err, trajectory.ErrMalformedLog), ShouldBeTrue)
		})

		Convey("When reading a log with ragged rows", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "ragged.csv")
			So(os.WriteFile(path, []byte("0 1\n0 1 2\n"), 0o600), ShouldBeNil)

			_, err := trajectory.Read(path)
			So(errors.Is(err, trajectory.ErrMalformedLog), ShouldBeTrue)
		})

		Convey("When reading a log with non-numeric entries", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "garbage.csv")
			So(os.WriteFile(path, []byte("0 x 1\n"), 0o600), ShouldBeNil)

			_, err := trajectory.Read(path)
			So(errors.Is(err, trajectory.ErrMalformedLog), ShouldBeTrue)
		})
	})
}
