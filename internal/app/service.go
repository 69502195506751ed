// Package service composes the classifiers into a report over one dataset.
package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/okian/opsboard/internal/domain/pareto"
	"github.com/okian/opsboard/internal/domain/period"
	"github.com/okian/opsboard/internal/domain/quadrant"
	"github.com/okian/opsboard/internal/domain/threshold"
	"github.com/okian/opsboard/pkg/logger"
)

// DefaultWasteAlertLimit is the waste share, in percent, above which a
// production line raises a critical alert.
const DefaultWasteAlertLimit = 35

// Service evaluates datasets. It holds only configuration, so Evaluate is
// safe for concurrent use.
type Service struct {
	sellThrough     threshold.Table
	menu            quadrant.Scheme
	stores          quadrant.Scheme
	tiers           pareto.Tiers
	locale          period.Locale
	wasteAlertLimit float64
	now             func() time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSellThroughTable replaces the sell-through bands.
func WithSellThroughTable(t threshold.Table) Option {
	return func(s *Service) {
		s.sellThrough = t
	}
}

// WithMenuScheme replaces the menu engineering scheme.
func WithMenuScheme(sc quadrant.Scheme) Option {
	return func(s *Service) {
		s.menu = sc
	}
}

// WithStoreScheme replaces the store portfolio scheme.
func WithStoreScheme(sc quadrant.Scheme) Option {
	return func(s *Service) {
		s.stores = sc
	}
}

// WithTiers replaces the ABC tier ceilings.
func WithTiers(t pareto.Tiers) Option {
	return func(s *Service) {
		s.tiers = t
	}
}

// WithLocale sets the locale used for period labels.
func WithLocale(l period.Locale) Option {
	return func(s *Service) {
		if l != "" {
			s.locale = l
		}
	}
}

// WithWasteAlertLimit sets the waste share alert limit in percent.
func WithWasteAlertLimit(limit float64) Option {
	return func(s *Service) {
		if limit > 0 {
			s.wasteAlertLimit = limit
		}
	}
}

// WithClock overrides the time source used for timestamps and default periods.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service with the dashboard defaults.
func New(opts ...Option) *Service {
	s := &Service{
		sellThrough:     threshold.DefaultSellThroughTable(),
		menu:            quadrant.MenuEngineering(),
		stores:          quadrant.StorePortfolio(),
		tiers:           pareto.DefaultTiers(),
		locale:          period.DefaultLocale,
		wasteAlertLimit: DefaultWasteAlertLimit,
		now:             time.Now,
		logger:          logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Validate reports the first configuration error. Evaluate calls it before
// touching any data.
func (s *Service) Validate() error {
	if err := s.sellThrough.Validate(); err != nil {
		return err
	}
	if err := s.menu.Validate(); err != nil {
		return err
	}
	if err := s.stores.Validate(); err != nil {
		return err
	}
	if err := s.tiers.Validate(); err != nil {
		return err
	}
	if !slices.Contains(period.Locales(), s.locale) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, s.locale)
	}
	return nil
}
