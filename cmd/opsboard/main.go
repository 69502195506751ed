// Command opsboard evaluates retail-operations datasets into classified
// reports.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	service "github.com/okian/opsboard/internal/app"
	"github.com/okian/opsboard/internal/config"
	"github.com/okian/opsboard/internal/domain/pareto"
	"github.com/okian/opsboard/internal/domain/period"
	"github.com/okian/opsboard/internal/domain/quadrant"
	"github.com/okian/opsboard/internal/domain/threshold"
	"github.com/okian/opsboard/pkg/logger"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// cli carries what every subcommand needs once the root has initialised.
type cli struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "opsboard",
		Short: "Classify retail-operations metrics into dashboard signals",
		Long: `opsboard turns per-item operational metrics (sell-through, stock levels,
menu margin and volume, store rent and revenue, revenue contribution) into
status labels, quadrant classifications, cumulative distributions and
period labels.

Configuration is read from OPSBOARD_CONFIG (YAML) and OPSBOARD_* env vars.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.Context(), logOut)
		},
	}

	root.AddCommand(c.reportCmd())
	root.AddCommand(c.periodCmd())
	root.AddCommand(c.classifyCmd())
	root.AddCommand(c.sampleCmd())

	return root
}

func (c *cli) init(ctx context.Context, logOut io.Writer) error {
	if err := logger.InitWithWriter(logOut); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}

	c.cfg = cfg
	c.log = logger.Get()
	return nil
}

// locale resolves an explicit flag value, falling back to the configured one.
func (c *cli) locale(flag string) (period.Locale, error) {
	if flag == "" {
		flag = c.cfg.Locale
	}
	return period.ParseLocale(flag)
}

func (c *cli) sellThroughTable() threshold.Table {
	return threshold.SellThroughTable(c.cfg.SellThroughOptimalMin, c.cfg.SellThroughWarningMin)
}

func (c *cli) menuScheme() quadrant.Scheme {
	return quadrant.MenuEngineering().At(quadrant.Splits{X: c.cfg.MenuSplitX, Y: c.cfg.MenuSplitY})
}

func (c *cli) storeScheme() quadrant.Scheme {
	return quadrant.StorePortfolio().At(quadrant.Splits{X: c.cfg.StoreRentSplit, Y: c.cfg.StoreRevenueSplit})
}

func (c *cli) service(loc period.Locale) *service.Service {
	return service.New(
		service.WithLogger(c.log.Named("service")),
		service.WithSellThroughTable(c.sellThroughTable()),
		service.WithMenuScheme(c.menuScheme()),
		service.WithStoreScheme(c.storeScheme()),
		service.WithTiers(pareto.Tiers{A: c.cfg.TierAMax, B: c.cfg.TierBMax}),
		service.WithLocale(loc),
		service.WithWasteAlertLimit(c.cfg.WasteAlertLimit),
	)
}
