package report

import (
	"testing"
	"time"

	"briefkit/internal/feed"
)

func testPulses() []feed.Pulse {
	return []feed.Pulse{
		{
			Name:              "campaign A",
			Adversary:         "APT-1",
			TargetedCountries: []string{"Germany", "France"},
			Indicators: []feed.PulseIndicator{
				{Indicator: "1.1.1.1", Type: "IPv4"},
				{Indicator: "2.2.2.2", Type: "IPv4"},
				{Indicator: "a.example.com", Type: "domain"},
			},
		},
		{
			Name:              "campaign B",
			Adversary:         "APT-1",
			TargetedCountries: []string{"Germany"},
			Indicators: []feed.PulseIndicator{
				{Indicator: "deadbeef", Type: "FileHash-MD5"},
			},
		},
		{
			Name:      "campaign C",
			Adversary: "APT-2",
			Indicators: []feed.PulseIndicator{
				{Indicator: "3.3.3.3", Type: "IPv4"},
			},
		},
	}
}

func TestBuildDataset(t *testing.T) {
	ds := BuildDataset(testPulses(), Options{
		TopTypes:       10,
		TopAdversaries: 10,
		TopCountries:   10,
		Window:         7 * 24 * time.Hour,
	})

	if ds.TotalPulses != 3 {
		t.Errorf("TotalPulses = %d, want 3", ds.TotalPulses)
	}
	if ds.TotalIndicators != 5 {
		t.Errorf("TotalIndicators = %d, want 5", ds.TotalIndicators)
	}

	// IPv4 (3) must sort first
	if len(ds.TypeCounts) == 0 || ds.TypeCounts[0].Label != "IPv4" || ds.TypeCounts[0].N != 3 {
		t.Errorf("TypeCounts[0] = %+v, want IPv4/3", ds.TypeCounts)
	}

	if len(ds.AdversaryCounts) == 0 || ds.AdversaryCounts[0].Label != "APT-1" || ds.AdversaryCounts[0].N != 2 {
		t.Errorf("AdversaryCounts[0] = %+v, want APT-1/2", ds.AdversaryCounts)
	}

	if len(ds.CountryCounts) == 0 || ds.CountryCounts[0].Label != "Germany" || ds.CountryCounts[0].N != 2 {
		t.Errorf("CountryCounts[0] = %+v, want Germany/2", ds.CountryCounts)
	}
}

func TestBuildDatasetDeterministicTies(t *testing.T) {
	// domain and FileHash-MD5 both have count 1; ties break by label
	ds := BuildDataset(testPulses(), Options{TopTypes: 10})

	var prev Count
	for i, c := range ds.TypeCounts {
		if i > 0 {
			if c.N > prev.N || (c.N == prev.N && c.Label < prev.Label) {
				t.Fatalf("TypeCounts not ordered at %d: %+v after %+v", i, c, prev)
			}
		}
		prev = c
	}
}

func TestTopCountsOtherBucket(t *testing.T) {
	tally := map[string]int{"a": 5, "b": 4, "c": 3, "d": 2, "e": 1}

	tests := []struct {
		name       string
		n          int
		otherLabel string
		wantLen    int
		wantLastN  int
	}{
		{name: "collapse into other", n: 2, otherLabel: "Other", wantLen: 3, wantLastN: 6},
		{name: "truncate without other", n: 2, otherLabel: "", wantLen: 2, wantLastN: 4},
		{name: "no limit", n: 0, otherLabel: "Other", wantLen: 5, wantLastN: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topCounts(tally, tt.n, tt.otherLabel)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[len(got)-1].N != tt.wantLastN {
				t.Errorf("last count = %d, want %d", got[len(got)-1].N, tt.wantLastN)
			}
		})
	}
}

func TestBuildDatasetEmpty(t *testing.T) {
	ds := BuildDataset(nil, Options{TopTypes: 5})

	if ds.TotalPulses != 0 || ds.TotalIndicators != 0 {
		t.Errorf("empty input should produce zero totals: %+v", ds)
	}
	if len(ds.TypeCounts) != 0 {
		t.Errorf("TypeCounts should be empty, got %v", ds.TypeCounts)
	}
}
