package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		pulses []Pulse
		want   int
	}{
		{
			name:   "no pulses",
			pulses: nil,
			want:   0,
		},
		{
			name: "pulse without indicators",
			pulses: []Pulse{
				{Name: "empty pulse"},
			},
			want: 0,
		},
		{
			name: "indicators flattened with pulse context",
			pulses: []Pulse{
				{
					Name:      "campaign A",
					Adversary: "APT-1",
					Indicators: []PulseIndicator{
						{Indicator: "1.2.3.4", Type: "IPv4"},
						{Indicator: "evil.example.com", Type: "domain"},
					},
				},
				{
					Name: "campaign B",
					Indicators: []PulseIndicator{
						{Indicator: "deadbeef", Type: "FileHash-MD5"},
					},
				},
			},
			want: 3,
		},
		{
			name: "blank indicator values skipped",
			pulses: []Pulse{
				{
					Name: "pulse",
					Indicators: []PulseIndicator{
						{Indicator: "", Type: "IPv4"},
						{Indicator: "5.6.7.8", Type: "IPv4"},
					},
				},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.pulses)
			if len(got) != tt.want {
				t.Fatalf("Flatten() returned %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFlattenDefaultsAdversary(t *testing.T) {
	rows := Flatten([]Pulse{
		{
			Name:       "no adversary",
			Indicators: []PulseIndicator{{Indicator: "x.example.com", Type: "domain"}},
		},
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Adversary != "Unknown" {
		t.Errorf("Adversary = %q, want Unknown", rows[0].Adversary)
	}
}

func TestClientFetchPulses(t *testing.T) {
	var gotKey string
	var pagesServed int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-OTX-API-KEY")
		pagesServed++

		page := r.URL.Query().Get("page")
		resp := pulsePage{
			Results: []Pulse{{ID: "p" + page, Name: "pulse " + page}},
		}
		if page == "1" {
			resp.Next = fmt.Sprintf("%s/api/v1/pulses/subscribed?page=2", r.Host)
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:  srv.URL,
		APIKey:   "test-key",
		MaxPages: 5,
		Lookback: 24 * time.Hour,
		Timeout:  5 * time.Second,
	})

	pulses, err := client.FetchPulses(context.Background())
	if err != nil {
		t.Fatalf("FetchPulses() error: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("API key header = %q, want test-key", gotKey)
	}
	if pagesServed != 2 {
		t.Errorf("pages served = %d, want 2 (stop when next is empty)", pagesServed)
	}
	if len(pulses) != 2 {
		t.Errorf("got %d pulses, want 2", len(pulses))
	}
}

func TestClientRespectsMaxPages(t *testing.T) {
	var pagesServed int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		// Always claim another page exists
		json.NewEncoder(w).Encode(pulsePage{
			Next:    "more",
			Results: []Pulse{{ID: "p", Name: "pulse"}},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:  srv.URL,
		APIKey:   "k",
		MaxPages: 3,
		Lookback: time.Hour,
	})

	if _, err := client.FetchPulses(context.Background()); err != nil {
		t.Fatalf("FetchPulses() error: %v", err)
	}
	if pagesServed != 3 {
		t.Errorf("pages served = %d, want 3", pagesServed)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "bad", MaxPages: 1, Lookback: time.Hour})

	_, err := client.FetchPulses(context.Background())
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error should mention status code, got: %v", err)
	}
}
