package cache

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/redis/go-redis/v9"
)

// Custom flag for running integration tests against a live Redis
var runIntegration = flag.Bool("integration", false, "Run integration tests against REDIS_ADDR")

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]string{"0101", "1100"})
	b := Fingerprint([]string{"0101", "1100"})
	if a != b {
		t.Errorf("expected stable fingerprint, got %s and %s", a, b)
	}

	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}

	tests := []struct {
		name    string
		entries []string
	}{
		{name: "reordered", entries: []string{"1100", "0101"}},
		{name: "joined differently", entries: []string{"01011100"}},
		{name: "subset", entries: []string{"0101"}},
		{name: "separator inside entry", entries: []string{"0101\n1100"}},
		{name: "length digits inside entry", entries: []string{"0101", "4:1100"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Fingerprint(test.entries); got == a {
				t.Errorf("expected %v to fingerprint differently", test.entries)
			}
		})
	}
}

func TestNop(t *testing.T) {
	var c Nop
	ctx := context.Background()

	if err := c.Set(ctx, "key", models.DiagnosticReport{ID: "x"}); err != nil {
		t.Errorf("Set() returned %v", err)
	}
	if _, ok, err := c.Get(ctx, "key"); ok || err != nil {
		t.Errorf("expected miss without error, got ok=%v err=%v", ok, err)
	}
}

func TestRedisResultCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if !*runIntegration || addr == "" {
		t.Skip("Skipping integration test. Use -integration flag with REDIS_ADDR set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	c := NewRedisResultCache(client, "diagnostics-test:", time.Minute)
	fingerprint := Fingerprint([]string{"10", "11", "01"})
	defer client.Del(ctx, "diagnostics-test:"+fingerprint)

	if _, ok, err := c.Get(ctx, fingerprint); ok || err != nil {
		t.Fatalf("expected miss before Set, got ok=%v err=%v", ok, err)
	}

	report := models.DiagnosticReport{
		ID:          "it-1",
		Fingerprint: fingerprint,
		EntryCount:  3,
		Width:       2,
		LifeSupport: models.LifeSupport{OxygenGenerator: "11", CO2Scrubber: "01", Product: 3},
	}
	if err := c.Set(ctx, fingerprint, report); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, ok, err := c.Get(ctx, fingerprint)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.ID != "it-1" || got.LifeSupport.Product != 3 {
		t.Errorf("unexpected cached report: %+v", got)
	}
}
