package executor

//go:generate mockgen -source=executor.go -destination=mocks/executor_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/cache"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/diagnostics"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/rs/zerolog"
)

// ReportValidator rejects malformed or oversized reports
type ReportValidator interface {
	Validate(entries []string) error
}

// PowerCalculator derives gamma and epsilon rates from a report
type PowerCalculator interface {
	Power(entries []string) (models.PowerConsumption, error)
}

// LifeSupportCalculator derives oxygen generator and CO2 scrubber ratings from a report
type LifeSupportCalculator interface {
	LifeSupport(entries []string) (models.LifeSupport, error)
}

// ResultCache keeps finished reports by fingerprint
type ResultCache interface {
	Get(ctx context.Context, fingerprint string) (models.DiagnosticReport, bool, error)
	Set(ctx context.Context, fingerprint string, report models.DiagnosticReport) error
}

type Executor struct {
	validator   ReportValidator
	power       PowerCalculator
	lifeSupport LifeSupportCalculator
	cache       ResultCache
	logger      *zerolog.Logger
}

func NewExecutor(
	validator ReportValidator,
	power PowerCalculator,
	lifeSupport LifeSupportCalculator,
	resultCache ResultCache,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		validator:   validator,
		power:       power,
		lifeSupport: lifeSupport,
		cache:       resultCache,
		logger:      logger,
	}
}

func (e *Executor) Execute(ctx context.Context, req models.DiagnosticRequest) (models.DiagnosticReport, error) {
	if len(req.Entries) == 0 {
		return models.DiagnosticReport{}, diagnostics.ErrEmptyReport
	}
	if err := ctx.Err(); err != nil {
		return models.DiagnosticReport{}, err
	}

	// Cached results are only trusted for reports that pass the current limits
	if err := e.validator.Validate(req.Entries); err != nil {
		return models.DiagnosticReport{}, fmt.Errorf("invalid report: %w", err)
	}

	fingerprint := cache.Fingerprint(req.Entries)
	id := req.ReportID
	if id == "" {
		id = fingerprint[:12]
	}
	e.logger.Info().Str("reportID", id).Int("entries", len(req.Entries)).Msg("starting diagnostics")

	cached, ok, err := e.cache.Get(ctx, fingerprint)
	if err != nil {
		e.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("result cache lookup failed")
	} else if ok {
		cached.ID = id
		cached.Cached = true
		e.logger.Info().Str("reportID", id).Msg("diagnostics served from cache")
		return cached, nil
	}

	power, err := e.power.Power(req.Entries)
	if err != nil {
		return models.DiagnosticReport{}, fmt.Errorf("power consumption: %w", err)
	}

	support, err := e.lifeSupport.LifeSupport(req.Entries)
	if err != nil {
		return models.DiagnosticReport{}, fmt.Errorf("life support: %w", err)
	}

	report := models.DiagnosticReport{
		ID:          id,
		Fingerprint: fingerprint,
		EntryCount:  len(req.Entries),
		Width:       len(req.Entries[0]),
		Power:       power,
		LifeSupport: support,
		CreatedAt:   time.Now(),
	}

	if err := e.cache.Set(ctx, fingerprint, report); err != nil {
		e.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("failed to cache diagnostics")
	}

	e.logger.
		Info().
		Str("reportID", id).
		Uint64("power", power.Product).
		Uint64("life_support", support.Product).
		Msg("diagnostics complete")
	return report, nil
}
