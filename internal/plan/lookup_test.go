package plan

import (
	"errors"
	"testing"
)

func TestLookupHappyPath(t *testing.T) {
	l := NewLookup()

	if state, _, _ := l.Snapshot(); state != LookupIdle {
		t.Fatalf("new lookup state %q, want %q", state, LookupIdle)
	}

	gen, err := l.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if state, _, _ := l.Snapshot(); state != LookupRequesting {
		t.Fatalf("state %q after Begin, want %q", state, LookupRequesting)
	}

	if !l.LocationAcquired(gen) {
		t.Fatal("LocationAcquired rejected a live generation")
	}
	if state, _, _ := l.Snapshot(); state != LookupFetching {
		t.Fatalf("state %q after LocationAcquired, want %q", state, LookupFetching)
	}

	records := []Counselor{{Name: "Dr. Asha Menon"}}
	if !l.Complete(gen, records) {
		t.Fatal("Complete rejected a live generation")
	}

	state, counselors, message := l.Snapshot()
	if state != LookupSuccess {
		t.Errorf("state %q, want %q", state, LookupSuccess)
	}
	if len(counselors) != 1 || counselors[0].Name != "Dr. Asha Menon" {
		t.Errorf("unexpected counselors %+v", counselors)
	}
	if message != "" {
		t.Errorf("unexpected message %q on success", message)
	}
}

func TestLookupRejectsConcurrentAttempts(t *testing.T) {
	l := NewLookup()

	gen, err := l.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if _, err := l.Begin(); !errors.Is(err, ErrLookupInFlight) {
		t.Errorf("expected ErrLookupInFlight while requesting, got %v", err)
	}

	l.LocationAcquired(gen)
	if _, err := l.Begin(); !errors.Is(err, ErrLookupInFlight) {
		t.Errorf("expected ErrLookupInFlight while fetching, got %v", err)
	}
}

func TestLookupFailureModes(t *testing.T) {
	t.Run("location denied", func(t *testing.T) {
		l := NewLookup()
		gen, _ := l.Begin()
		if !l.LocationDenied(gen) {
			t.Fatal("LocationDenied rejected a live generation")
		}
		state, _, message := l.Snapshot()
		if state != LookupError {
			t.Errorf("state %q, want %q", state, LookupError)
		}
		if message != LocationDeniedMessage {
			t.Errorf("message %q, want denial message", message)
		}
	})

	t.Run("fetch failed", func(t *testing.T) {
		l := NewLookup()
		gen, _ := l.Begin()
		l.LocationAcquired(gen)
		if !l.Fail(gen) {
			t.Fatal("Fail rejected a live generation")
		}
		state, _, message := l.Snapshot()
		if state != LookupError {
			t.Errorf("state %q, want %q", state, LookupError)
		}
		if message != LookupFailedMessage {
			t.Errorf("message %q, want failure message", message)
		}
	})

	t.Run("zero records is an error outcome", func(t *testing.T) {
		l := NewLookup()
		gen, _ := l.Begin()
		l.LocationAcquired(gen)
		if !l.Complete(gen, nil) {
			t.Fatal("Complete rejected a live generation")
		}
		state, counselors, message := l.Snapshot()
		if state != LookupError {
			t.Errorf("state %q, want %q", state, LookupError)
		}
		if len(counselors) != 0 {
			t.Errorf("unexpected counselors %+v", counselors)
		}
		if message != LookupFailedMessage {
			t.Errorf("message %q, want failure message", message)
		}
	})
}

func TestLookupIgnoresStaleCompletions(t *testing.T) {
	l := NewLookup()

	stale, _ := l.Begin()
	l.LocationAcquired(stale)
	l.Reset()

	// The in-flight attempt resolves after the reset; all outcomes are no-ops.
	if l.Complete(stale, []Counselor{{Name: "Late Arrival"}}) {
		t.Error("stale Complete was accepted after reset")
	}
	if l.Fail(stale) {
		t.Error("stale Fail was accepted after reset")
	}
	if state, counselors, _ := l.Snapshot(); state != LookupIdle || len(counselors) != 0 {
		t.Errorf("stale completion leaked state: %q %+v", state, counselors)
	}

	// A newer attempt must also shadow the old generation.
	fresh, err := l.Begin()
	if err != nil {
		t.Fatalf("Begin after reset failed: %v", err)
	}
	if l.Complete(stale, []Counselor{{Name: "Late Arrival"}}) {
		t.Error("stale Complete was accepted during a newer attempt")
	}
	l.LocationAcquired(fresh)
	if !l.Complete(fresh, []Counselor{{Name: "Current"}}) {
		t.Error("live Complete was rejected")
	}
	if _, counselors, _ := l.Snapshot(); len(counselors) != 1 || counselors[0].Name != "Current" {
		t.Errorf("expected only the fresh result, got %+v", counselors)
	}
}

func TestLookupRetryAfterErrorClearsState(t *testing.T) {
	l := NewLookup()
	gen, _ := l.Begin()
	l.LocationDenied(gen)

	retry, err := l.Begin()
	if err != nil {
		t.Fatalf("retry after error failed: %v", err)
	}
	if retry == gen {
		t.Error("retry reused the failed generation")
	}
	state, counselors, message := l.Snapshot()
	if state != LookupRequesting {
		t.Errorf("state %q, want %q", state, LookupRequesting)
	}
	if len(counselors) != 0 || message != "" {
		t.Errorf("stale results survived retry: %+v %q", counselors, message)
	}
}
