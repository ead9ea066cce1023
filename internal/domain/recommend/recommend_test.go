package recommend

import (
	"testing"

	"github.com/okian/practicedash/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFor(t *testing.T) {
	Convey("Given practices from the dashboard", t, func() {
		Convey("When the practice converts strongly", func() {
			recs := For(model.Practice{ConversionRate: 23.3, AppointmentRequests: 180})

			Convey("Then it gets the keep-going advice", func() {
				So(recs, ShouldResemble, []string{
					"Maintain current follow-up processes—performance is strong",
					"Consider expanding marketing reach to increase volume",
				})
			})
		})

		Convey("When the practice converts poorly with heavy demand", func() {
			recs := For(model.Practice{ConversionRate: 8.2, AppointmentRequests: 220})

			Convey("Then low conversion wins over booking friction", func() {
				So(recs, ShouldResemble, []string{
					"Improve follow-up speed to capture more appointment requests",
					"Review messaging and value proposition on landing pages",
				})
			})
		})

		Convey("When the practice sits between 15 and 20 percent", func() {
			recs := For(model.Practice{ConversionRate: 15.9, AppointmentRequests: 195})

			Convey("Then it falls through to monitoring", func() {
				So(recs, ShouldResemble, []string{
					"Continue monitoring conversion trends month-over-month",
					"Test A/B variations on appointment booking CTAs",
				})
			})
		})

		Convey("When conversion is 12 percent with 40 requests", func() {
			branch, recs := Select(model.Practice{ConversionRate: 12, AppointmentRequests: 40})

			Convey("Then booking friction is chosen before monitoring", func() {
				So(branch, ShouldEqual, BookingFriction)
				So(recs[0], ShouldEqual, "Optimize booking flow to reduce friction and increase conversions")
				So(recs[1], ShouldEqual, "Consider adding live chat support during business hours")
			})
		})
	})
}

func TestPickBoundaries(t *testing.T) {
	Convey("Given rates and request counts on the rule edges", t, func() {
		cases := []struct {
			rate     float64
			requests int
			want     Branch
		}{
			{9.999, 0, LowConversion},
			{10, 31, BookingFriction},
			{10, 30, Monitor},
			{14.999, 31, BookingFriction},
			{15, 500, Monitor},
			{19.999, 31, Monitor},
			{20, 31, Strong},
			{20, 0, Strong},
			{0, 1000, LowConversion},
		}

		for _, tc := range cases {
			So(Pick(model.Practice{ConversionRate: tc.rate, AppointmentRequests: tc.requests}), ShouldEqual, tc.want)
		}
	})
}

func TestSelectionSize(t *testing.T) {
	Convey("Given every branch", t, func() {
		for rate := -1.0; rate < 30; rate += 0.5 {
			for _, requests := range []int{0, 30, 31, 200} {
				recs := For(model.Practice{ConversionRate: rate, AppointmentRequests: requests})
				So(len(recs), ShouldEqual, 2)
			}
		}
	})

	Convey("Given a script longer than the cap", t, func() {
		long := []string{"a", "b", "c", "d"}

		Convey("Then truncate keeps the first two", func() {
			So(truncate(long), ShouldResemble, []string{"a", "b"})
		})

		Convey("Then shorter scripts pass through", func() {
			So(truncate([]string{"only"}), ShouldResemble, []string{"only"})
			So(truncate(nil), ShouldBeEmpty)
		})
	})

	Convey("Given a caller that mutates the result", t, func() {
		recs := For(model.Practice{ConversionRate: 25})
		recs[0] = "changed"

		Convey("Then the fixed scripts are unaffected", func() {
			So(For(model.Practice{ConversionRate: 25})[0], ShouldEqual, "Maintain current follow-up processes—performance is strong")
		})
	})
}
