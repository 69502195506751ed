package period_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/opsboard/internal/domain/model"
	"github.com/okian/opsboard/internal/domain/period"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Given valid ISO dates", t, func() {
		Convey("When formatting for en-US", func() {
			labels, err := period.Format("2026-10-17", "2026-10-24", period.EnUS)

			Convey("Then month comes before day", func() {
				So(err, ShouldBeNil)
				So(labels.Range, ShouldEqual, "Oct 17 - Oct 24, 2026")
				So(labels.End, ShouldEqual, "Oct 24, 2026")
				So(labels.EndShort, ShouldEqual, "Oct 24")
			})
		})

		Convey("When formatting for en-GB", func() {
			labels, err := period.Format("2026-12-29", "2027-01-05", period.EnGB)

			Convey("Then day comes before month and the year is the end's", func() {
				So(err, ShouldBeNil)
				So(labels.Range, ShouldEqual, "29 Dec - 5 Jan 2027")
				So(labels.End, ShouldEqual, "5 Jan 2027")
				So(labels.EndShort, ShouldEqual, "5 Jan")
			})
		})

		Convey("When formatting for id-ID", func() {
			labels, err := period.Format("2026-05-01", "2026-08-17", period.IdID)

			Convey("Then Indonesian month abbreviations are used", func() {
				So(err, ShouldBeNil)
				So(labels.Range, ShouldEqual, "1 Mei - 17 Agu 2026")
			})
		})

		Convey("When the locale is empty", func() {
			labels, err := period.Format("2026-01-02", "2026-01-09", "")

			Convey("Then en-US is used", func() {
				So(err, ShouldBeNil)
				So(labels.End, ShouldEqual, "Jan 9, 2026")
			})
		})

		Convey("When the range is inverted", func() {
			labels, err := period.Format("2026-03-10", "2026-03-01", period.EnUS)

			Convey("Then it is rendered as given", func() {
				So(err, ShouldBeNil)
				So(labels.Range, ShouldEqual, "Mar 10 - Mar 1, 2026")
			})
		})

		Convey("When a bound is an RFC 3339 timestamp", func() {
			labels, err := period.Format("2026-10-17T23:30:00+07:00", "2026-10-24", period.EnUS)

			Convey("Then the calendar date as written is used", func() {
				So(err, ShouldBeNil)
				So(labels.Range, ShouldStartWith, "Oct 17 - ")
			})
		})
	})

	Convey("Given malformed input", t, func() {
		Convey("When the start is not a date", func() {
			labels, err := period.Format("not-a-date", "2026-10-24", period.EnUS)

			Convey("Then the placeholder labels and ErrInvalidPeriod are returned", func() {
				So(errors.Is(err, period.ErrInvalidPeriod), ShouldBeTrue)
				So(labels, ShouldResemble, period.Invalid())
				So(labels.Range, ShouldEqual, "-")
			})
		})

		Convey("When both bounds are malformed", func() {
			labels, err := period.Format("not-a-date", "2026-02-30", period.EnUS)

			Convey("Then the result is still the placeholder", func() {
				So(errors.Is(err, period.ErrInvalidPeriod), ShouldBeTrue)
				So(labels, ShouldResemble, period.Invalid())
			})
		})

		Convey("When the end is empty", func() {
			_, err := period.Format("2026-10-17", "", period.EnUS)

			Convey("Then ErrInvalidPeriod is returned", func() {
				So(errors.Is(err, period.ErrInvalidPeriod), ShouldBeTrue)
			})
		})

		Convey("When the locale is unknown", func() {
			labels, err := period.Format("2026-10-17", "2026-10-24", "fr-FR")

			Convey("Then ErrUnknownLocale is returned", func() {
				So(errors.Is(err, period.ErrUnknownLocale), ShouldBeTrue)
				So(labels, ShouldResemble, period.Invalid())
			})
		})

		Convey("When a caller edits the returned placeholder", func() {
			labels, _ := period.Format("not-a-date", "2026-10-24", period.EnUS)
			labels.Range = "edited"
			again, _ := period.Format("not-a-date", "2026-10-24", period.EnUS)

			Convey("Then later calls still return the placeholder", func() {
				So(again.Range, ShouldEqual, "-")
				So(period.Invalid().Range, ShouldEqual, "-")
			})
		})
	})
}

func TestParseLocale(t *testing.T) {
	Convey("Given locale tags", t, func() {
		Convey("Then known tags resolve case-insensitively", func() {
			l, err := period.ParseLocale("en_gb")
			So(err, ShouldBeNil)
			So(l, ShouldEqual, period.EnGB)

			l, err = period.ParseLocale(" ID-id ")
			So(err, ShouldBeNil)
			So(l, ShouldEqual, period.IdID)

			l, err = period.ParseLocale("")
			So(err, ShouldBeNil)
			So(l, ShouldEqual, period.DefaultLocale)
		})

		Convey("And unknown tags fail", func() {
			_, err := period.ParseLocale("xx")
			So(errors.Is(err, period.ErrUnknownLocale), ShouldBeTrue)
		})
	})
}

func TestDefaultRange(t *testing.T) {
	Convey("Given a reference day", t, func() {
		now := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

		Convey("When the default range is built", func() {
			r := period.DefaultRange(now)

			Convey("Then it spans one week", func() {
				So(r, ShouldResemble, model.DateRange{Start: "2026-10-17", End: "2026-10-24"})
				days, err := period.Days(r)
				So(err, ShouldBeNil)
				So(days, ShouldEqual, 7)
			})
		})

		Convey("When counting an inverted range", func() {
			days, err := period.Days(model.DateRange{Start: "2026-10-24", End: "2026-10-17"})

			Convey("Then the count is negative", func() {
				So(err, ShouldBeNil)
				So(days, ShouldEqual, -7)
			})
		})

		Convey("When counting a range spanning a millennium", func() {
			days, err := period.Days(model.DateRange{Start: "1000-01-01", End: "2000-01-01"})

			Convey("Then every calendar day is counted", func() {
				So(err, ShouldBeNil)
				So(days, ShouldEqual, 365242)
			})
		})

		Convey("When counting a malformed range", func() {
			_, err := period.Days(model.DateRange{Start: "x", End: "2026-10-17"})

			Convey("Then ErrInvalidPeriod is returned", func() {
				So(errors.Is(err, period.ErrInvalidPeriod), ShouldBeTrue)
			})
		})
	})
}
