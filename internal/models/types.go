package models

import "time"

// Input message

type DiagnosticRequest struct {
	ReportID string   `json:"report_id" description:"Caller supplied identifier of the report"`
	Entries  []string `json:"entries" description:"Equal-width binary strings, one per report line"`
}

// Gamma and epsilon rates, read from the per-position bit majority
type PowerConsumption struct {
	Gamma       string `json:"gamma" description:"Most common bit at every position"`
	Epsilon     string `json:"epsilon" description:"Least common bit at every position"`
	GammaRate   uint64 `json:"gamma_rate"`
	EpsilonRate uint64 `json:"epsilon_rate"`
	Product     uint64 `json:"product"`
}

// Oxygen generator and CO2 scrubber ratings, read from the report trie
type LifeSupport struct {
	OxygenGenerator string `json:"oxygen_generator" description:"Entry kept by following the most common bits"`
	CO2Scrubber     string `json:"co2_scrubber" description:"Entry kept by following the least common bits"`
	OxygenRating    uint64 `json:"oxygen_rating"`
	CO2Rating       uint64 `json:"co2_rating"`
	Product         uint64 `json:"product"`
}

// Final output
type DiagnosticReport struct {
	ID          string           `json:"id"`
	Fingerprint string           `json:"fingerprint"`
	EntryCount  int              `json:"entry_count"`
	Width       int              `json:"width"`
	Power       PowerConsumption `json:"power_consumption"`
	LifeSupport LifeSupport      `json:"life_support"`
	Cached      bool             `json:"cached"`
	CreatedAt   time.Time        `json:"created_at"`
}
