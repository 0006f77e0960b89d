package tour

import (
	"sync"
	"time"

	"github.com/dorilab/dori/internal/model"
)

// Session state names surfaced by the status endpoint.
const (
	StateIdle         = "idle"
	StateNarrating    = "narrating"
	StateQALoop       = "qa_loop"
	StatePhoto        = "photo"
	StateAdvance      = "advance"
	StateTourComplete = "tour_complete"
)

// Session is the transient per-tour dialogue state: current spot pointer,
// visitor language, QA turn counter and the wake-interrupt cooldown stamp.
// One tour runs at a time; the mutex exists for the status endpoint reading
// while the controller mutates.
type Session struct {
	mu sync.Mutex

	language  string
	route     []*model.Spot
	spotIdx   int
	state     string
	qaTurns   int
	lastWake  time.Time
	startedAt time.Time
}

func NewSession(language string, route []*model.Spot) *Session {
	return &Session{
		language:  language,
		route:     route,
		spotIdx:   -1,
		state:     StateIdle,
		startedAt: time.Now(),
	}
}

func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// CurrentSpot returns the spot the tour is at, or nil before the first spot
// and after the last.
func (s *Session) CurrentSpot() *model.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spotIdx < 0 || s.spotIdx >= len(s.route) {
		return nil
	}
	return s.route[s.spotIdx]
}

// Advance moves the pointer to the next spot, resetting the QA turn counter.
// Returns the new spot, or nil when the route is exhausted.
func (s *Session) Advance() *model.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spotIdx++
	s.qaTurns = 0
	if s.spotIdx >= len(s.route) {
		return nil
	}
	return s.route[s.spotIdx]
}

func (s *Session) SetState(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NextQATurn increments and returns the per-spot turn counter.
func (s *Session) NextQATurn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qaTurns++
	return s.qaTurns
}

func (s *Session) QATurns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qaTurns
}

// AllowWakeInterrupt applies the cooldown guard: a wake interrupt is allowed
// only when at least cooldown has elapsed since the last accepted one. An
// accepted call stamps the clock.
func (s *Session) AllowWakeInterrupt(cooldown time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if !s.lastWake.IsZero() && now.Sub(s.lastWake) < cooldown {
		return false
	}
	s.lastWake = now
	return true
}

// Snapshot is a point-in-time view of the session for the debug API.
type Snapshot struct {
	Language  string    `json:"language"`
	State     string    `json:"state"`
	SpotCode  string    `json:"spot_code,omitempty"`
	SpotIndex int       `json:"spot_index"`
	SpotCount int       `json:"spot_count"`
	QATurns   int       `json:"qa_turns"`
	StartedAt time.Time `json:"started_at"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Language:  s.language,
		State:     s.state,
		SpotIndex: s.spotIdx,
		SpotCount: len(s.route),
		QATurns:   s.qaTurns,
		StartedAt: s.startedAt,
	}
	if s.spotIdx >= 0 && s.spotIdx < len(s.route) {
		snap.SpotCode = s.route[s.spotIdx].Code
	}
	return snap
}
