package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okian/opsboard/internal/domain/types"
)

const (
	minWidth = 0
	tabWidth = 8
	padding  = 2
	padChar  = ' '
)

func (w *Writer) writeTable(r *types.Report) error {
	tw := tabwriter.NewWriter(w.writer, minWidth, tabWidth, padding, padChar, 0)
	p := &printer{w: tw}

	p.line("Outlet:\t%s", r.Outlet)
	p.line("Period:\t%s (%d days)", r.Period.Range, r.Period.Days)
	if r.Period.Error != "" {
		p.line("Period error:\t%s", r.Period.Error)
	}
	p.line("Run:\t%s", r.RunID)

	if len(r.Waste) > 0 {
		p.section("SELL-THROUGH")
		p.line("ITEM\tCATEGORY\tPRODUCED\tSOLD\tWASTED\tSELL-THROUGH\tSTATUS")
		for _, row := range r.Waste {
			p.line("%s\t%s\t%g\t%g\t%g\t%s\t%s",
				row.Name, row.Category, row.Produced, row.Sold, row.Wasted,
				pct(row.SellThrough, row.Error), status(row.Status, row.Error))
		}
	}

	if len(r.Inventory) > 0 {
		p.section("INVENTORY")
		p.line("ITEM\tCURRENT\tPAR\tLEVEL\tSTATUS")
		for _, row := range r.Inventory {
			p.line("%s\t%g %s\t%g-%g\t%s\t%s",
				row.Name, row.Current, row.Unit, row.Min, row.Max,
				bar(row.Fill, row.MinMarker, row.Error), status(row.Status, row.Error))
		}
	}

	p.matrix("MENU ENGINEERING", "MARGIN", "VOLUME", r.Menu)
	p.matrix("STORE PORTFOLIO", "RENT", "REVENUE", r.Stores)

	if len(r.Pareto.Rows) > 0 || r.Pareto.Error != "" {
		p.section("REVENUE PARETO")
		if r.Pareto.Error != "" {
			p.line("error:\t%s", r.Pareto.Error)
		} else {
			p.line("#\tITEM\tREVENUE\tSHARE\tCUMULATIVE\tTIER")
			for _, row := range r.Pareto.Rows {
				p.line("%d\t%s\t%s\t%s%%\t%s%%\t%s",
					row.Rank, row.Name, fixed(row.Revenue, 0),
					fixed(row.Share, PercentPlaces), fixed(row.CumulativeShare, PercentPlaces), row.Tier)
			}
			p.line("core:\t%d of %d items", r.Pareto.CoreCount, len(r.Pareto.Rows))
		}
	}

	if len(r.Impact) > 0 {
		p.section("TECH IMPACT")
		p.line("METRIC\tMANUAL\tMACHINE\tIMPROVEMENT")
		for _, row := range r.Impact {
			p.line("%s\t%g\t%g\t%s", row.Metric, row.Manual, row.Machine, pct(row.Improvement, row.Error))
		}
	}

	if len(r.Alerts) > 0 {
		p.section("ALERTS")
		for _, a := range r.Alerts {
			p.line("%s\t%s\t%s", strings.ToUpper(a.Severity), a.Section, a.Message)
		}
	}

	p.section("SUMMARY")
	s := r.Summary
	p.line("entities\t%d", s.Entities)
	p.line("avg sell-through\t%s%%", fixed(s.AvgSellThrough, PercentPlaces))
	p.line("critical waste\t%d", s.CriticalWaste)
	p.line("low stock\t%d", s.LowStock)
	p.line("overstock\t%d", s.Overstock)
	p.line("stars\t%d", s.Stars)
	p.line("alerts\t%d", s.Alerts)
	p.line("errors\t%d", s.Errors)

	if p.err != nil {
		return fmt.Errorf("failed to write report: %w", p.err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// printer keeps the first write error so the layout code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) section(title string) {
	p.line("")
	p.line("%s", title)
}

func (p *printer) matrix(title, xName, yName string, rows []types.MatrixRow) {
	if len(rows) == 0 {
		return
	}
	p.section(title)
	p.line("ITEM\t%s\t%s\tQUADRANT\tLABEL", xName, yName)
	for _, row := range rows {
		label := row.Label
		if row.Error != "" {
			label = "error: " + row.Error
		}
		p.line("%s\t%g\t%g\t%s\t%s", row.Name, row.X, row.Y, row.Quadrant, label)
	}
}

func pct(v float64, errText string) string {
	if errText != "" {
		return "-"
	}
	return fixed(v, PercentPlaces) + "%"
}

func status(s, errText string) string {
	if errText != "" {
		return "error: " + errText
	}
	return s
}

const barWidth = 10

// bar draws the stock gauge: '#' for fill, '|' at the par minimum.
func bar(fill, marker float64, errText string) string {
	if errText != "" {
		return "-"
	}
	cells := []byte(strings.Repeat(".", barWidth))
	filled := int(fill*barWidth + 0.5)
	for i := 0; i < filled && i < barWidth; i++ {
		cells[i] = '#'
	}
	if m := int(marker*barWidth + 0.5); m >= 0 && m < barWidth {
		cells[m] = '|'
	}
	return "[" + string(cells) + "]"
}
