// Package feed fetches threat-intelligence pulses from an OTX-compatible
// vendor API and flattens them into indicator rows for reporting.
package feed

import "time"

// Config holds feed client configuration
type Config struct {
	BaseURL  string
	APIKey   string
	MaxPages int
	Lookback time.Duration
	Timeout  time.Duration
}

// Pulse is a single threat-intelligence pulse as returned by the vendor
type Pulse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Adversary         string           `json:"adversary"`
	Created           string           `json:"created"`
	Modified          string           `json:"modified"`
	Tags              []string         `json:"tags"`
	TargetedCountries []string         `json:"targeted_countries"`
	Indicators        []PulseIndicator `json:"indicators"`
}

// PulseIndicator is a raw indicator entry inside a pulse
type PulseIndicator struct {
	Indicator string `json:"indicator"`
	Type      string `json:"type"`
	Created   string `json:"created"`
}

// Indicator is a flattened row: one observed indicator with its pulse context
type Indicator struct {
	Value     string
	Type      string
	Pulse     string
	Adversary string
	Countries []string
}

// Flatten turns pulses into indicator rows. Pulses without indicators
// contribute nothing.
func Flatten(pulses []Pulse) []Indicator {
	var rows []Indicator
	for _, p := range pulses {
		adversary := p.Adversary
		if adversary == "" {
			adversary = "Unknown"
		}
		for _, ind := range p.Indicators {
			if ind.Indicator == "" {
				continue
			}
			rows = append(rows, Indicator{
				Value:     ind.Indicator,
				Type:      ind.Type,
				Pulse:     p.Name,
				Adversary: adversary,
				Countries: p.TargetedCountries,
			})
		}
	}
	return rows
}
