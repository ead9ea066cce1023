package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/practicedash/internal/adapters/repository"
	"github.com/okian/practicedash/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog_Defaults(t *testing.T) {
	Convey("Given a catalog with the built-in practices", t, func() {
		ctx := context.Background()
		c, err := repository.NewCatalog(ctx)
		So(err, ShouldBeNil)

		Convey("Then it serves three practices in order", func() {
			all, err := c.All(ctx)
			So(err, ShouldBeNil)
			So(c.Count(ctx), ShouldEqual, 3)
			So(all[0].Name, ShouldEqual, "Downtown Dental Care")
			So(all[1].Name, ShouldEqual, "Bright Smiles Clinic")
			So(all[2].Name, ShouldEqual, "Elite Dental Studio")
		})

		Convey("Then the global max is the largest trend value", func() {
			So(c.GlobalMax(ctx), ShouldEqual, 42)
		})

		Convey("When fetching by id", func() {
			p, err := c.Get(ctx, "2")

			Convey("Then the record is returned", func() {
				So(err, ShouldBeNil)
				So(p.ConversionRate, ShouldEqual, 8.2)
				So(p.AppointmentRequests, ShouldEqual, 220)
			})
		})

		Convey("When fetching an unknown id", func() {
			_, err := c.Get(ctx, "nope")

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When a caller mutates a returned record", func() {
			all, _ := c.All(ctx)
			all[0].MonthlyTrend[0] = 1000
			all[0].Name = "Changed"

			Convey("Then the catalog is unaffected", func() {
				again, _ := c.Get(ctx, "1")
				So(again.MonthlyTrend[0], ShouldEqual, 28)
				So(again.Name, ShouldEqual, "Downtown Dental Care")
				So(c.GlobalMax(ctx), ShouldEqual, 42)
			})
		})
	})
}

func TestCatalog_WithPractices(t *testing.T) {
	Convey("Given custom practices", t, func() {
		ctx := context.Background()

		Convey("When the list is empty", func() {
			c, err := repository.NewCatalog(ctx, repository.WithPractices([]model.Practice{}))

			Convey("Then the catalog is empty with a zero max", func() {
				So(err, ShouldBeNil)
				So(c.Count(ctx), ShouldEqual, 0)
				So(c.GlobalMax(ctx), ShouldEqual, 0)
			})
		})

		Convey("When ids are padded", func() {
			c, err := repository.NewCatalog(ctx, repository.WithPractices([]model.Practice{
				{ID: " a ", Name: "A", MonthlyTrend: []float64{1, 90}},
			}))

			Convey("Then they are trimmed", func() {
				So(err, ShouldBeNil)
				p, err := c.Get(ctx, "a")
				So(err, ShouldBeNil)
				So(p.ID, ShouldEqual, "a")
				So(c.GlobalMax(ctx), ShouldEqual, 90)
			})
		})

		Convey("When an id is empty", func() {
			_, err := repository.NewCatalog(ctx, repository.WithPractices([]model.Practice{{Name: "No ID"}}))

			Convey("Then construction fails", func() {
				So(errors.Is(err, repository.ErrEmptyID), ShouldBeTrue)
			})
		})

		Convey("When ids repeat", func() {
			_, err := repository.NewCatalog(ctx, repository.WithPractices([]model.Practice{{ID: "1"}, {ID: "1"}}))

			Convey("Then construction fails", func() {
				So(errors.Is(err, repository.ErrDuplicateID), ShouldBeTrue)
			})
		})
	})
}
