package threshold_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/opsboard/internal/domain/threshold"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassifyRange(t *testing.T) {
	Convey("Given par level bands", t, func() {
		Convey("When current is below min", func() {
			status, err := threshold.ClassifyRange(12, 20, 40)

			Convey("Then it is Low", func() {
				So(err, ShouldBeNil)
				So(status, ShouldEqual, threshold.Low)
			})
		})

		Convey("When current is above max", func() {
			status, err := threshold.ClassifyRange(3.5, 1.0, 3.0)

			Convey("Then it is Overstock", func() {
				So(err, ShouldBeNil)
				So(status, ShouldEqual, threshold.Overstock)
			})
		})

		Convey("When current is inside the band", func() {
			status, err := threshold.ClassifyRange(15, 10, 25)

			Convey("Then it is Optimal", func() {
				So(err, ShouldBeNil)
				So(status, ShouldEqual, threshold.InRange)
				So(string(status), ShouldEqual, "Optimal")
			})
		})

		Convey("When current equals a bound", func() {
			Convey("Then the band is inclusive on both ends", func() {
				status, err := threshold.ClassifyRange(20, 20, 40)
				So(err, ShouldBeNil)
				So(status, ShouldEqual, threshold.InRange)

				status, err = threshold.ClassifyRange(40, 20, 40)
				So(err, ShouldBeNil)
				So(status, ShouldEqual, threshold.InRange)
			})
		})

		Convey("When min exceeds max", func() {
			_, err := threshold.ClassifyRange(5, 10, 2)

			Convey("Then ErrInvalidRange is returned", func() {
				So(errors.Is(err, threshold.ErrInvalidRange), ShouldBeTrue)
			})
		})

		Convey("When any input is NaN", func() {
			_, err := threshold.ClassifyRange(math.NaN(), 1, 2)

			Convey("Then ErrInvalidMetric is returned", func() {
				So(errors.Is(err, threshold.ErrInvalidMetric), ShouldBeTrue)
			})
		})
	})
}

func TestNewGauge(t *testing.T) {
	Convey("Given an inventory row", t, func() {
		Convey("When current is within max", func() {
			g, err := threshold.NewGauge(4.2, 2.0, 5.0)

			Convey("Then fill and marker are ratios of max", func() {
				So(err, ShouldBeNil)
				So(g.Status, ShouldEqual, threshold.InRange)
				So(g.Fill, ShouldAlmostEqual, 0.84, 1e-9)
				So(g.MinMarker, ShouldAlmostEqual, 0.4, 1e-9)
			})
		})

		Convey("When current exceeds max", func() {
			g, err := threshold.NewGauge(3.5, 1.0, 3.0)

			Convey("Then fill is clamped to one", func() {
				So(err, ShouldBeNil)
				So(g.Status, ShouldEqual, threshold.Overstock)
				So(g.Fill, ShouldEqual, 1.0)
			})
		})

		Convey("When current is negative", func() {
			g, err := threshold.NewGauge(-1, 0, 10)

			Convey("Then fill is clamped to zero", func() {
				So(err, ShouldBeNil)
				So(g.Status, ShouldEqual, threshold.Low)
				So(g.Fill, ShouldEqual, 0.0)
			})
		})

		Convey("When max is zero", func() {
			_, err := threshold.NewGauge(0, 0, 0)

			Convey("Then the geometry is undefined", func() {
				So(errors.Is(err, threshold.ErrInvalidRange), ShouldBeTrue)
			})
		})
	})
}
