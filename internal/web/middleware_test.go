package web

import (
	"testing"
	"time"
)

func TestIPLimiterUpdateAppliesNewRate(t *testing.T) {
	l := newIPLimiter(600, 5)
	for i := 0; i < 5; i++ {
		if !l.allow("10.0.0.1") {
			t.Fatalf("request %d should pass under the generous rate", i)
		}
	}

	l.update(1, 1)

	if !l.allow("10.0.0.1") {
		t.Fatal("first request after the rate change should pass")
	}
	if l.allow("10.0.0.1") {
		t.Fatal("second request should be limited after tightening the rate")
	}
}

func TestIPLimiterUpdateUnchangedKeepsBuckets(t *testing.T) {
	l := newIPLimiter(1, 1)
	if !l.allow("10.0.0.2") {
		t.Fatal("first request should pass")
	}

	l.update(1, 1)

	if l.allow("10.0.0.2") {
		t.Fatal("unchanged rate should keep the spent bucket")
	}
}

func TestIPLimiterSweepsIdleEntries(t *testing.T) {
	l := newIPLimiter(60, 1)
	l.allow("10.0.0.3")
	l.allow("10.0.0.4")

	l.mu.Lock()
	for _, entry := range l.limiters {
		entry.lastSeen = time.Now().Add(-time.Hour)
	}
	l.lastSweep = time.Now().Add(-time.Hour)
	l.mu.Unlock()

	l.allow("10.0.0.5")

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.limiters) != 1 {
		t.Errorf("idle entries not swept, map has %d entries", len(l.limiters))
	}
}
