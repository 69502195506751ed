package model_test

import (
	"testing"

	model "github.com/okian/opsboard/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestDatasetConversions(t *testing.T) {
	convey.Convey("Given dataset section records", t, func() {
		convey.Convey("When a menu item is converted to a point", func() {
			p := model.MenuItem{ID: "m1", Name: "Signature Matcha Latte", Margin: 95, Volume: 80, Revenue: 500}.Point()

			convey.Convey("Then margin is x, volume is y and revenue is the weight", func() {
				convey.So(p.ID, convey.ShouldEqual, "m1")
				convey.So(p.X, convey.ShouldEqual, 95.0)
				convey.So(p.Y, convey.ShouldEqual, 80.0)
				convey.So(p.Weight, convey.ShouldNotBeNil)
				convey.So(*p.Weight, convey.ShouldEqual, 500.0)
			})
		})

		convey.Convey("When a store is converted to a point", func() {
			p := model.Store{ID: "s1", Name: "Kemang", Rent: 320, Revenue: 900}.Point()

			convey.Convey("Then rent is x and revenue is y with no weight", func() {
				convey.So(p.X, convey.ShouldEqual, 320.0)
				convey.So(p.Y, convey.ShouldEqual, 900.0)
				convey.So(p.Weight, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a revenue line is converted to a contributor", func() {
			c := model.RevenueLine{ID: "r1", Name: "Sakura Tea", Revenue: 4_000_000}.Contributor()

			convey.Convey("Then the contribution is the revenue", func() {
				convey.So(c.Name, convey.ShouldEqual, "Sakura Tea")
				convey.So(c.Contribution, convey.ShouldEqual, 4_000_000.0)
			})
		})

		convey.Convey("When counting entities", func() {
			ds := model.Dataset{
				Waste:   []model.WasteItem{{ID: "w1"}, {ID: "w2"}},
				Menu:    []model.MenuItem{{ID: "m1"}},
				Revenue: []model.RevenueLine{{ID: "r1"}},
			}

			convey.Convey("Then every section is included", func() {
				convey.So(ds.Entities(), convey.ShouldEqual, 4)
				convey.So(model.Dataset{}.Entities(), convey.ShouldEqual, 0)
			})
		})
	})
}
