package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
)

var sampleResult = models.DiagnosticReport{
	ID:          "sample",
	Fingerprint: "abc",
	EntryCount:  12,
	Width:       5,
	Power: models.PowerConsumption{
		Gamma: "10110", Epsilon: "01001", GammaRate: 22, EpsilonRate: 9, Product: 198,
	},
	LifeSupport: models.LifeSupport{
		OxygenGenerator: "10111", CO2Scrubber: "01010", OxygenRating: 23, CO2Rating: 10, Product: 230,
	},
	CreatedAt: time.Date(2021, 12, 3, 0, 0, 0, 0, time.UTC),
}

func TestPrintReport_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, "text", sampleResult); err != nil {
		t.Fatalf("printReport() failed: %v", err)
	}

	want := "Day 3 part 1: 198 (gamma 10110 = 22, epsilon 01001 = 9)\n" +
		"Day 3 part 2: 230 (oxygen generator 10111 = 23, CO2 scrubber 01010 = 10)\n"
	if buf.String() != want {
		t.Errorf("unexpected text output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, "json", sampleResult); err != nil {
		t.Fatalf("printReport() failed: %v", err)
	}

	var decoded models.DiagnosticReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Power.Product != 198 || decoded.LifeSupport.Product != 230 {
		t.Errorf("unexpected products %d / %d", decoded.Power.Product, decoded.LifeSupport.Product)
	}
	if decoded.LifeSupport.OxygenGenerator != "10111" || decoded.LifeSupport.CO2Scrubber != "01010" {
		t.Errorf("unexpected ratings %+v", decoded.LifeSupport)
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{format: "text", wantErr: false},
		{format: "json", wantErr: false},
		{format: "yaml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			err := validateFormat(test.format)
			if (err != nil) != test.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", test.format, err, test.wantErr)
			}
		})
	}
}
