package dataset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/opsboard/internal/adapters/dataset"
	"github.com/okian/opsboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSample(t *testing.T) {
	Convey("Given the embedded sample", t, func() {
		ds := dataset.Sample()

		Convey("Then every section is populated", func() {
			So(ds.Outlet, ShouldEqual, "All Network")
			So(ds.Waste, ShouldHaveLength, 5)
			So(ds.Inventory, ShouldHaveLength, 5)
			So(ds.Menu, ShouldHaveLength, 8)
			So(ds.Stores, ShouldHaveLength, 4)
			So(ds.Revenue, ShouldHaveLength, 7)
			So(ds.TechImpact, ShouldHaveLength, 3)
			So(ds.Entities(), ShouldEqual, 32)
		})

		Convey("Then revenue is ranked highest first", func() {
			So(ds.Revenue[0].ID, ShouldEqual, "sig-matcha-latte")
			So(ds.Revenue[6].ID, ShouldEqual, "sakura-tea")
		})

		Convey("Then the raw YAML keeps its comments", func() {
			So(string(dataset.SampleYAML()), ShouldStartWith, "# Sample dataset")
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Given dataset documents", t, func() {
		Convey("When the document is JSON", func() {
			ds, err := dataset.Decode(strings.NewReader(
				`{"outlet":"Kemang","revenue":[{"id":"b","name":"B","revenue":10},{"id":"a","name":"A","revenue":30}]}`))

			Convey("Then it decodes and ranks revenue", func() {
				So(err, ShouldBeNil)
				So(ds.Outlet, ShouldEqual, "Kemang")
				So(ds.Revenue[0].ID, ShouldEqual, "a")
			})
		})

		Convey("When a key is unknown", func() {
			_, err := dataset.Decode(strings.NewReader("outlet: x\nwastes: []\n"))

			Convey("Then ErrInvalidDataset is returned", func() {
				So(errors.Is(err, dataset.ErrInvalidDataset), ShouldBeTrue)
			})
		})

		Convey("When the document is empty", func() {
			_, err := dataset.Decode(strings.NewReader(""))

			Convey("Then ErrInvalidDataset is returned", func() {
				So(errors.Is(err, dataset.ErrInvalidDataset), ShouldBeTrue)
			})
		})

		Convey("When two stores share an id", func() {
			_, err := dataset.Decode(strings.NewReader(`
stores:
  - {id: kemang, name: Kemang, rent: 1, revenue: 2}
  - {id: kemang, name: Kemang 2, rent: 3, revenue: 4}
`))

			Convey("Then ErrDuplicateID is returned", func() {
				So(errors.Is(err, dataset.ErrDuplicateID), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "stores")
			})
		})

		Convey("When a menu item has no name", func() {
			_, err := dataset.Decode(strings.NewReader("menu:\n  - {id: x, margin: 1, volume: 2}\n"))

			Convey("Then ErrInvalidDataset is returned", func() {
				So(errors.Is(err, dataset.ErrInvalidDataset), ShouldBeTrue)
			})
		})

		Convey("When a tech impact metric repeats", func() {
			_, err := dataset.Decode(strings.NewReader(`
tech_impact:
  - {metric: Prep Time, manual: 2, machine: 1}
  - {metric: Prep Time, manual: 3, machine: 1}
`))

			Convey("Then ErrDuplicateID is returned", func() {
				So(errors.Is(err, dataset.ErrDuplicateID), ShouldBeTrue)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a dataset file", t, func() {
		path := filepath.Join(t.TempDir(), "ops.yaml")
		So(os.WriteFile(path, dataset.SampleYAML(), 0o600), ShouldBeNil)

		Convey("When loaded", func() {
			ds, err := dataset.Load(context.Background(), path)

			Convey("Then it matches the sample", func() {
				So(err, ShouldBeNil)
				So(ds, ShouldResemble, dataset.Sample())
			})
		})

		Convey("When the file is missing", func() {
			_, err := dataset.Load(context.Background(), path+".missing")

			Convey("Then the os error is wrapped", func() {
				So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
			})
		})

		Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := dataset.Load(ctx, path)

			Convey("Then the context error is returned", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestRankByRevenue(t *testing.T) {
	Convey("Given unranked revenue lines with a tie", t, func() {
		in := []model.RevenueLine{
			{ID: "low", Revenue: 1},
			{ID: "tie-1", Revenue: 5},
			{ID: "high", Revenue: 9},
			{ID: "tie-2", Revenue: 5},
		}

		out := dataset.RankByRevenue(in)

		Convey("Then they are sorted descending and ties keep input order", func() {
			ids := make([]string, len(out))
			for i, l := range out {
				ids[i] = l.ID
			}
			So(ids, ShouldResemble, []string{"high", "tie-1", "tie-2", "low"})
		})

		Convey("Then the input is untouched", func() {
			So(in[0].ID, ShouldEqual, "low")
		})

		Convey("Then nil stays nil", func() {
			So(dataset.RankByRevenue(nil), ShouldBeNil)
		})
	})
}
