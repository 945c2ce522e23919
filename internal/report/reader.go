package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/trie"
	"github.com/rs/zerolog"
)

// Record is one non-blank report line. Error is set when the line is not a binary entry.
type Record struct {
	LineNumber int
	Entry      string
	Error      error
}

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams the report line by line. The channel is closed when the input is
// exhausted or ctx is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan Record {
	records := make(chan Record)

	go func() {
		defer close(records)

		scanner := bufio.NewScanner(r.source)
		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := Record{LineNumber: lineNumber, Entry: line}
			if _, err := trie.ParseBits(line); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			}

			select {
			case records <- record:
			case <-ctx.Done():
				r.logger.Debug().Int("line", lineNumber).Msg("report reading cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber).Msg("failed to read report")
			select {
			case records <- Record{LineNumber: lineNumber + 1, Error: fmt.Errorf("read report: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return records
}

// Collect reads every entry of source and fails on the first bad line.
func Collect(ctx context.Context, source io.Reader, logger *zerolog.Logger) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var entries []string
	for record := range NewReader(source, logger).ReadAll(ctx) {
		if record.Error != nil {
			return nil, record.Error
		}
		entries = append(entries, record.Entry)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info().Int("entries", len(entries)).Msg("report parsed")
	return entries, nil
}
