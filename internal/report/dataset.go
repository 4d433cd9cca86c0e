// Package report turns feed indicators into charts and a PDF document.
package report

import (
	"sort"
	"time"

	"briefkit/internal/feed"
)

// Count is a labeled tally used by charts and tables
type Count struct {
	Label string
	N     int
}

// Dataset holds the aggregations rendered into the report
type Dataset struct {
	GeneratedAt     time.Time
	Window          time.Duration
	TotalPulses     int
	TotalIndicators int

	TypeCounts      []Count // indicator count by type, count desc
	AdversaryCounts []Count // pulse count by adversary, top N plus "Other"
	CountryCounts   []Count // targeted-country mentions, count desc
}

// Options bounds how many rows each aggregation keeps
type Options struct {
	TopTypes       int
	TopAdversaries int
	TopCountries   int
	Window         time.Duration
}

// BuildDataset aggregates pulses into the report dataset. Ordering is
// deterministic: count descending, then label ascending.
func BuildDataset(pulses []feed.Pulse, opts Options) *Dataset {
	indicators := feed.Flatten(pulses)

	typeTally := make(map[string]int)
	for _, ind := range indicators {
		t := ind.Type
		if t == "" {
			t = "unknown"
		}
		typeTally[t]++
	}

	adversaryTally := make(map[string]int)
	countryTally := make(map[string]int)
	for _, p := range pulses {
		adversary := p.Adversary
		if adversary == "" {
			adversary = "Unknown"
		}
		adversaryTally[adversary]++

		for _, country := range p.TargetedCountries {
			if country != "" {
				countryTally[country]++
			}
		}
	}

	return &Dataset{
		GeneratedAt:     time.Now(),
		Window:          opts.Window,
		TotalPulses:     len(pulses),
		TotalIndicators: len(indicators),
		TypeCounts:      topCounts(typeTally, opts.TopTypes, ""),
		AdversaryCounts: topCounts(adversaryTally, opts.TopAdversaries, "Other"),
		CountryCounts:   topCounts(countryTally, opts.TopCountries, ""),
	}
}

// topCounts sorts a tally and keeps the top n entries. When otherLabel is
// non-empty the remainder is collapsed into a single labeled bucket instead
// of being dropped.
func topCounts(tally map[string]int, n int, otherLabel string) []Count {
	counts := make([]Count, 0, len(tally))
	for label, c := range tally {
		counts = append(counts, Count{Label: label, N: c})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})

	if n <= 0 || len(counts) <= n {
		return counts
	}

	if otherLabel == "" {
		return counts[:n]
	}

	other := 0
	for _, c := range counts[n:] {
		other += c.N
	}
	counts = counts[:n]
	return append(counts, Count{Label: otherLabel, N: other})
}
