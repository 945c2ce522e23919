package diagnostics

import (
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/trie"
	"github.com/rs/zerolog"
)

// DefaultMaxWidth keeps the product of two decoded ratings inside a uint64.
const DefaultMaxWidth = 32

type Calculator struct {
	maxWidth int
	logger   *zerolog.Logger
}

func NewCalculator(maxWidth int, logger *zerolog.Logger) *Calculator {
	if maxWidth <= 0 || maxWidth > DefaultMaxWidth {
		maxWidth = DefaultMaxWidth
	}

	return &Calculator{
		maxWidth: maxWidth,
		logger:   logger,
	}
}

// Power derives the gamma rate from the bit set in more than half of the entries at each
// position; epsilon is its complement.
func (c *Calculator) Power(entries []string) (models.PowerConsumption, error) {
	counts, err := c.countOnes(entries)
	if err != nil {
		return models.PowerConsumption{}, err
	}

	half := len(entries) / 2
	gamma := make([]byte, len(counts))
	epsilon := make([]byte, len(counts))
	for i, ones := range counts {
		if ones > half {
			gamma[i], epsilon[i] = '1', '0'
		} else {
			gamma[i], epsilon[i] = '0', '1'
		}
	}

	power := models.PowerConsumption{
		Gamma:   string(gamma),
		Epsilon: string(epsilon),
	}
	if power.GammaRate, err = trie.Decode(power.Gamma); err != nil {
		return models.PowerConsumption{}, err
	}
	if power.EpsilonRate, err = trie.Decode(power.Epsilon); err != nil {
		return models.PowerConsumption{}, err
	}
	power.Product = power.GammaRate * power.EpsilonRate

	c.logger.Debug().
		Int("entries", len(entries)).
		Str("gamma", power.Gamma).
		Str("epsilon", power.Epsilon).
		Msg("power consumption computed")

	return power, nil
}

// LifeSupport builds the report trie and reads the oxygen generator rating from its most
// common descent and the CO2 scrubber rating from its least common descent.
func (c *Calculator) LifeSupport(entries []string) (models.LifeSupport, error) {
	if len(entries) == 0 {
		return models.LifeSupport{}, ErrEmptyReport
	}
	if err := c.checkWidth(len(entries[0])); err != nil {
		return models.LifeSupport{}, err
	}

	t, err := trie.Build(entries)
	if err != nil {
		return models.LifeSupport{}, err
	}

	var support models.LifeSupport
	if support.OxygenGenerator, err = t.MaxRating(); err != nil {
		return models.LifeSupport{}, fmt.Errorf("oxygen generator rating: %w", err)
	}
	if support.CO2Scrubber, err = t.MinRating(); err != nil {
		return models.LifeSupport{}, fmt.Errorf("co2 scrubber rating: %w", err)
	}
	if support.OxygenRating, err = trie.Decode(support.OxygenGenerator); err != nil {
		return models.LifeSupport{}, err
	}
	if support.CO2Rating, err = trie.Decode(support.CO2Scrubber); err != nil {
		return models.LifeSupport{}, err
	}
	support.Product = support.OxygenRating * support.CO2Rating

	c.logger.Debug().
		Int("entries", t.Len()).
		Int("width", t.Width()).
		Str("oxygen_generator", support.OxygenGenerator).
		Str("co2_scrubber", support.CO2Scrubber).
		Msg("life support computed")

	return support, nil
}

// Validate checks that every entry is a binary string of the report's width and that the
// width fits the configured limit.
func (c *Calculator) Validate(entries []string) error {
	_, err := c.countOnes(entries)
	return err
}

func (c *Calculator) countOnes(entries []string) ([]int, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyReport
	}

	var counts []int
	for i, entry := range entries {
		bits, err := trie.ParseBits(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		if counts == nil {
			if err := c.checkWidth(len(bits)); err != nil {
				return nil, err
			}
			counts = make([]int, len(bits))
		} else if len(bits) != len(counts) {
			return nil, fmt.Errorf("entry %d: %w: %q has %d bits, report holds %d",
				i, trie.ErrLengthMismatch, entry, len(bits), len(counts))
		}

		for pos, bit := range bits {
			counts[pos] += int(bit)
		}
	}

	return counts, nil
}

func (c *Calculator) checkWidth(width int) error {
	if width > c.maxWidth {
		return fmt.Errorf("%w: %d bits, at most %d allowed", ErrReportTooWide, width, c.maxWidth)
	}
	return nil
}

// IsInputError reports whether err was caused by the report content rather than by the
// service computing it.
func IsInputError(err error) bool {
	return errors.Is(err, trie.ErrMalformedEntry) ||
		errors.Is(err, trie.ErrLengthMismatch) ||
		errors.Is(err, trie.ErrEmptyTrie) ||
		errors.Is(err, ErrEmptyReport) ||
		errors.Is(err, ErrReportTooWide)
}
