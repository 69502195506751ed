package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/opsboard/internal/domain/badge"
	"github.com/okian/opsboard/internal/domain/model"
	"github.com/okian/opsboard/internal/domain/pareto"
	"github.com/okian/opsboard/internal/domain/period"
	"github.com/okian/opsboard/internal/domain/quadrant"
	"github.com/okian/opsboard/internal/domain/ratio"
	"github.com/okian/opsboard/internal/domain/threshold"
	"github.com/okian/opsboard/internal/domain/types"
	"github.com/okian/opsboard/pkg/logger"
	"github.com/okian/opsboard/pkg/metrics"
)

// Classifier names used in metrics and logs.
const (
	classifierSellThrough = "sell_through"
	classifierRange       = "range"
	classifierMenu        = "menu"
	classifierStore       = "store"
	classifierPareto      = "pareto"
	classifierPeriod      = "period"
	classifierImpact      = "impact"
)

// Evaluate runs every classifier over ds and returns the report.
//
// A row the classifiers reject keeps its raw values, carries the error text
// and is counted in Summary.Errors; the run continues. Configuration errors
// and context cancellation abort the run.
func (s *Service) Evaluate(ctx context.Context, ds model.Dataset) (*types.Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	started := s.now()
	r := &types.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: started.UTC(),
		Outlet:      ds.Outlet,
		Locale:      string(s.locale),
	}
	log := s.logger.Named("evaluate")
	log.Debug(ctx, "evaluation started",
		logger.String("run_id", r.RunID),
		logger.Int("entities", ds.Entities()),
	)

	sections := []struct {
		name string
		size int
		run  func()
	}{
		{"period", 1, func() { s.period(r, ds.Period) }},
		{"waste", len(ds.Waste), func() { s.waste(r, ds.Waste) }},
		{"inventory", len(ds.Inventory), func() { s.inventory(r, ds.Inventory) }},
		{"menu", len(ds.Menu), func() { s.menuMatrix(r, ds.Menu) }},
		{"stores", len(ds.Stores), func() { s.storeMatrix(r, ds.Stores) }},
		{"revenue", len(ds.Revenue), func() { s.pareto(r, ds.Revenue) }},
		{"tech_impact", len(ds.TechImpact), func() { s.impact(r, ds.TechImpact) }},
	}
	for _, sec := range sections {
		if err := ctx.Err(); err != nil {
			log.Warn(ctx, "evaluation cancelled",
				logger.String("run_id", r.RunID),
				logger.String("section", sec.name),
			)
			return nil, err
		}
		sec.run()
		metrics.UpdateDatasetEntities(sec.name, sec.size)
		log.Debug(ctx, "section evaluated",
			logger.String("section", sec.name),
			logger.Int("rows", sec.size),
		)
	}

	r.Summary.Entities = ds.Entities()
	r.Summary.Alerts = len(r.Alerts)

	elapsed := s.now().Sub(started)
	metrics.RecordEvaluation(elapsed.Seconds())
	log.Info(ctx, "report evaluated",
		logger.String("run_id", r.RunID),
		logger.String("outlet", r.Outlet),
		logger.Int("entities", r.Summary.Entities),
		logger.Int("errors", r.Summary.Errors),
		logger.Int("alerts", r.Summary.Alerts),
		logger.Duration("took", elapsed),
	)
	return r, nil
}

func (s *Service) fail(r *types.Report, classifier string, err error) string {
	r.Summary.Errors++
	metrics.RecordClassificationError(classifier, errorKind(err))
	return err.Error()
}

func (s *Service) alert(r *types.Report, severity, section, id, msg string) {
	r.Alerts = append(r.Alerts, types.Alert{Severity: severity, Section: section, EntityID: id, Message: msg})
	metrics.RecordAlert(severity)
}

func (s *Service) period(r *types.Report, dr model.DateRange) {
	if dr.Start == "" && dr.End == "" {
		dr = period.DefaultRange(s.now())
	}
	sec := types.PeriodSection{Start: dr.Start, End: dr.End}
	labels, err := period.FormatRange(dr, s.locale)
	if err == nil {
		sec.Days, err = period.Days(dr)
	}
	if err != nil {
		sec.Error = s.fail(r, classifierPeriod, err)
	}
	sec.Range, sec.EndLabel, sec.EndShort = labels.Range, labels.End, labels.EndShort
	r.Period = sec
}

func (s *Service) waste(r *types.Report, items []model.WasteItem) {
	r.Waste = make([]types.WasteRow, 0, len(items))
	var sum float64
	var n int
	for _, it := range items {
		row := types.WasteRow{
			ID: it.ID, Name: it.Name, Category: it.Category,
			Produced: it.Produced, Sold: it.Sold, Wasted: it.Wasted,
		}
		if err := s.classifyWaste(&row); err != nil {
			row.Error = s.fail(r, classifierSellThrough, err)
			row.Tone = string(badge.Neutral)
			r.Waste = append(r.Waste, row)
			continue
		}
		metrics.RecordClassification(classifierSellThrough, row.Status)
		sum += row.SellThrough
		n++
		if row.Status == string(threshold.Critical) {
			r.Summary.CriticalWaste++
		}
		if row.WasteShare > s.wasteAlertLimit {
			s.alert(r, types.SeverityCritical, "waste", row.ID,
				fmt.Sprintf("%s waste at %.1f%% exceeds %.1f%%", row.Name, row.WasteShare, s.wasteAlertLimit))
		}
		r.Waste = append(r.Waste, row)
	}
	if n > 0 {
		r.Summary.AvgSellThrough = sum / float64(n)
	}
}

func (s *Service) classifyWaste(row *types.WasteRow) error {
	st, err := ratio.SellThrough(row.Sold, row.Produced)
	if err != nil {
		return err
	}
	ws, err := ratio.WasteShare(row.Wasted, row.Produced)
	if err != nil {
		return err
	}
	label, err := threshold.Classify(st, s.sellThrough)
	if err != nil {
		return err
	}
	row.SellThrough, row.WasteShare = st, ws
	row.Status = string(label)
	row.Tone = string(badge.ToneFor(row.Status))
	return nil
}

func (s *Service) inventory(r *types.Report, items []model.InventoryItem) {
	r.Inventory = make([]types.InventoryRow, 0, len(items))
	for _, it := range items {
		row := types.InventoryRow{
			ID: it.ID, Name: it.Name, Unit: it.Unit,
			Current: it.Current, Min: it.Min, Max: it.Max, Consumption: it.Consumption,
		}
		g, err := threshold.NewGauge(it.Current, it.Min, it.Max)
		if err != nil {
			row.Error = s.fail(r, classifierRange, err)
			row.Tone = string(badge.Neutral)
			r.Inventory = append(r.Inventory, row)
			continue
		}
		row.Status = string(g.Status)
		row.Tone = string(badge.ToneFor(row.Status))
		row.Fill, row.MinMarker = g.Fill, g.MinMarker
		metrics.RecordClassification(classifierRange, row.Status)

		switch g.Status {
		case threshold.Low:
			r.Summary.LowStock++
			s.alert(r, types.SeverityWarning, "inventory", row.ID,
				fmt.Sprintf("%s at %g %s is below par %g", row.Name, row.Current, row.Unit, row.Min))
		case threshold.Overstock:
			r.Summary.Overstock++
		}
		r.Inventory = append(r.Inventory, row)
	}
}

func (s *Service) menuMatrix(r *types.Report, items []model.MenuItem) {
	points := make([]model.QuadrantPoint, len(items))
	for i, it := range items {
		points[i] = it.Point()
	}
	r.Menu = s.matrix(r, points, s.menu, classifierMenu)
	for _, row := range r.Menu {
		if row.Error == "" && row.Quadrant == quadrant.HighHigh.String() {
			r.Summary.Stars++
		}
	}
}

func (s *Service) storeMatrix(r *types.Report, stores []model.Store) {
	points := make([]model.QuadrantPoint, len(stores))
	for i, st := range stores {
		points[i] = st.Point()
	}
	r.Stores = s.matrix(r, points, s.stores, classifierStore)
}

func (s *Service) matrix(r *types.Report, points []model.QuadrantPoint, sc quadrant.Scheme, classifier string) []types.MatrixRow {
	rows := make([]types.MatrixRow, 0, len(points))
	for _, p := range points {
		row := types.MatrixRow{ID: p.ID, Name: p.Name, X: p.X, Y: p.Y, Weight: p.Weight}
		tag, err := sc.Tag(p.X, p.Y)
		if err != nil {
			row.Error = s.fail(r, classifier, err)
			rows = append(rows, row)
			continue
		}
		row.Quadrant, row.Label, row.Color = tag.Quadrant.String(), tag.Name, tag.Color
		metrics.RecordClassification(classifier, tag.Name)
		rows = append(rows, row)
	}
	return rows
}

func (s *Service) pareto(r *types.Report, lines []model.RevenueLine) {
	items := make([]model.RankedContributor, len(lines))
	for i, l := range lines {
		items[i] = l.Contributor()
	}
	rows, err := pareto.Build(items)
	if err != nil {
		r.Pareto.Error = s.fail(r, classifierPareto, err)
		return
	}
	tiered, err := pareto.Assign(rows, s.tiers)
	if err != nil {
		r.Pareto.Error = s.fail(r, classifierPareto, err)
		return
	}

	var total float64
	for _, row := range rows {
		total += row.Contribution
	}
	r.Pareto.Total = total
	r.Pareto.CoreCount = pareto.CoreCount(rows, s.tiers.A)
	r.Pareto.Rows = make([]types.ParetoRow, len(tiered))
	for i, t := range tiered {
		r.Pareto.Rows[i] = types.ParetoRow{
			Rank:            i + 1,
			ID:              t.Item.ID,
			Name:            t.Item.Name,
			Revenue:         t.Contribution,
			Share:           t.Contribution / total * 100,
			CumulativeShare: t.CumulativeShare,
			Tier:            string(t.Tier),
		}
		metrics.RecordClassification(classifierPareto, string(t.Tier))
	}
	metrics.UpdateParetoCoreItems(r.Pareto.CoreCount)
}

func (s *Service) impact(r *types.Report, items []model.TechImpact) {
	r.Impact = make([]types.ImpactRow, 0, len(items))
	for _, it := range items {
		row := types.ImpactRow{Metric: it.Metric, Manual: it.Manual, Machine: it.Machine}
		imp, err := ratio.Improvement(it.Manual, it.Machine)
		if err != nil {
			row.Error = s.fail(r, classifierImpact, err)
			row.Trend = string(ratio.Flat)
			r.Impact = append(r.Impact, row)
			continue
		}
		row.Improvement = imp
		row.Trend = string(ratio.TrendOf(imp))
		metrics.RecordClassification(classifierImpact, row.Trend)
		r.Impact = append(r.Impact, row)
	}
}
