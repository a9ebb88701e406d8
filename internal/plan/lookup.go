package plan

import (
	"errors"
	"sync"
)

// LookupState is the phase of the counselor-lookup sub-operation.
type LookupState string

const (
	LookupIdle       LookupState = "idle"
	LookupRequesting LookupState = "requesting_location"
	LookupFetching   LookupState = "fetching_recommendations"
	LookupSuccess    LookupState = "success"
	LookupError      LookupState = "error"
)

// ErrLookupInFlight is returned when a new lookup is started while one is
// still pending. The caller should disable the trigger instead of queueing.
var ErrLookupInFlight = errors.New("a counselor lookup is already in flight")

// Lookup tracks one session's counselor-lookup state machine:
//
//	idle -> requesting_location -> fetching_recommendations -> success | error
//
// error is always recoverable by starting over. Every transition into a new
// attempt bumps a generation counter; completions carrying a stale generation
// are ignored, so a response that lands after a reset (or after a newer
// attempt started) can never overwrite current state.
type Lookup struct {
	mu         sync.Mutex
	state      LookupState
	generation uint64
	counselors []Counselor
	message    string
}

// NewLookup returns an idle lookup.
func NewLookup() *Lookup {
	return &Lookup{state: LookupIdle}
}

// Begin starts a new attempt and returns its generation token. Fails if an
// attempt is already pending. Prior results are cleared immediately: there is
// no partial-success state mixing fresh and stale records.
func (l *Lookup) Begin() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == LookupRequesting || l.state == LookupFetching {
		return 0, ErrLookupInFlight
	}
	l.generation++
	l.state = LookupRequesting
	l.counselors = nil
	l.message = ""
	return l.generation, nil
}

// LocationAcquired moves a live attempt from requesting to fetching.
func (l *Lookup) LocationAcquired(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation || l.state != LookupRequesting {
		return false
	}
	l.state = LookupFetching
	return true
}

// LocationDenied fails a live attempt with the denial message.
func (l *Lookup) LocationDenied(gen uint64) bool {
	return l.fail(gen, LocationDeniedMessage)
}

// Complete records the parsed counselors for a live attempt. Zero records is
// an error outcome: the user falls back to the static hotlines.
func (l *Lookup) Complete(gen uint64, counselors []Counselor) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation || l.state != LookupFetching {
		return false
	}
	if len(counselors) == 0 {
		l.state = LookupError
		l.message = LookupFailedMessage
		return true
	}
	l.state = LookupSuccess
	l.counselors = counselors
	return true
}

// Fail records a fetch failure for a live attempt.
func (l *Lookup) Fail(gen uint64) bool {
	return l.fail(gen, LookupFailedMessage)
}

func (l *Lookup) fail(gen uint64, message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation || (l.state != LookupRequesting && l.state != LookupFetching) {
		return false
	}
	l.state = LookupError
	l.message = message
	return true
}

// Reset returns the lookup to idle and invalidates every outstanding
// generation, so in-flight completions become no-ops.
func (l *Lookup) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.state = LookupIdle
	l.counselors = nil
	l.message = ""
}

// Snapshot returns the current state, results and error message.
func (l *Lookup) Snapshot() (LookupState, []Counselor, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Counselor, len(l.counselors))
	copy(out, l.counselors)
	return l.state, out, l.message
}
