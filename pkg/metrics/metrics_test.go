package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating a manager with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options are applied", func() {
				So(manager.namespace, ShouldEqual, "test")
				So(manager.subsystem, ShouldEqual, "unit")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
				So(manager.customLabels["env"], ShouldEqual, "test")
			})
		})

		Convey("When options carry zero values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithCustomLabels(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the defaults survive", func() {
				So(manager.namespace, ShouldEqual, "opsboard")
				So(manager.subsystem, ShouldEqual, "engine")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
				So(manager.customLabels, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When classifications are recorded", func() {
			manager.RecordClassification("sell_through", "Optimal")
			manager.RecordClassification("sell_through", "Optimal")
			manager.RecordClassification("sell_through", "Critical")

			Convey("Then each label is counted separately", func() {
				So(testutil.ToFloat64(manager.classifications.WithLabelValues("sell_through", "Optimal")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.classifications.WithLabelValues("sell_through", "Critical")), ShouldEqual, 1)
			})
		})

		Convey("When errors and alerts are recorded", func() {
			manager.RecordClassificationError("range", "invalid_range")
			manager.RecordAlert("critical")

			Convey("Then they are counted", func() {
				So(testutil.ToFloat64(manager.classificationErrors.WithLabelValues("range", "invalid_range")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.alerts.WithLabelValues("critical")), ShouldEqual, 1)
			})
		})

		Convey("When an evaluation finishes", func() {
			manager.RecordEvaluation(0.002)
			manager.UpdateDatasetEntities("menu", 6)
			manager.UpdateParetoCoreItems(4)

			Convey("Then counters and gauges reflect it", func() {
				So(testutil.ToFloat64(manager.evaluations), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.datasetEntities.WithLabelValues("menu")), ShouldEqual, 6)
				So(testutil.ToFloat64(manager.paretoCoreItems), ShouldEqual, 4)
				So(testutil.CollectAndCount(manager.evaluationDuration), ShouldEqual, 1)
			})
		})
	})
}

func TestGlobalRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When package-level recorders are called", func() {
			So(func() {
				RecordClassification("quadrant", "Star")
				RecordClassificationError("pareto", "empty_distribution")
				RecordAlert("warning")
				RecordEvaluation(0.01)
				UpdateDatasetEntities("stores", 4)
				UpdateParetoCoreItems(3)
			}, ShouldNotPanic)

			Convey("Then the custom registry gathers them", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "opsboard_engine_classifications_total")
				So(names, ShouldContain, "opsboard_engine_evaluation_duration_seconds")
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a registry with one sample", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))
		manager.RecordClassification("range", "Low")

		Convey("When written to a textfile", func() {
			path := filepath.Join(t.TempDir(), "opsboard.prom")
			err := WriteTextfile(path, registry)

			Convey("Then the file holds the exposition format", func() {
				So(err, ShouldBeNil)
				raw, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(strings.Contains(string(raw), `opsboard_engine_classifications_total{classifier="range",label="Low"} 1`), ShouldBeTrue)
			})
		})

		Convey("When the directory does not exist", func() {
			err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), registry)

			Convey("Then ErrWriteTextfile is returned", func() {
				So(errors.Is(err, ErrWriteTextfile), ShouldBeTrue)
			})
		})
	})
}
