package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/report"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/setup"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	startTime := time.Now()

	input := flag.String("input", "input.txt", "Relative path for the report file, '-' for stdin")
	format := flag.String("format", "text", "Output format. Supported formats: 'text', 'json'")
	reportID := flag.String("report-id", "", "Optional report identifier")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := setup.LoadConfig()
	log.Logger = logger.New(cfg.LogLevel)
	if err := validateFormat(*format); err != nil {
		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	var source io.Reader
	if *input == "-" {
		source = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		source = f
		log.Info().Str("file", *input).Msg("Reading input file")
	}

	entries, err := report.Collect(ctx, source, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse report")
	}

	result, err := deps.Executor.Execute(ctx, models.DiagnosticRequest{ReportID: *reportID, Entries: entries})
	if err != nil {
		log.Fatal().Err(err).Msg("Diagnostics failed")
	}

	if err := printReport(os.Stdout, *format, result); err != nil {
		log.Fatal().Err(err).Msg("Failed to write result")
	}

	log.Info().Dur("duration", time.Since(startTime)).Msg("Diagnostics complete")
}

func validateFormat(format string) error {
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[format] {
		return fmt.Errorf("invalid format %q, supported: text, json", format)
	}
	return nil
}

func printReport(w io.Writer, format string, result models.DiagnosticReport) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	_, err := fmt.Fprintf(w,
		"Day 3 part 1: %d (gamma %s = %d, epsilon %s = %d)\n"+
			"Day 3 part 2: %d (oxygen generator %s = %d, CO2 scrubber %s = %d)\n",
		result.Power.Product,
		result.Power.Gamma, result.Power.GammaRate,
		result.Power.Epsilon, result.Power.EpsilonRate,
		result.LifeSupport.Product,
		result.LifeSupport.OxygenGenerator, result.LifeSupport.OxygenRating,
		result.LifeSupport.CO2Scrubber, result.LifeSupport.CO2Rating,
	)
	return err
}
