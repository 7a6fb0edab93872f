package breakout

// Status is the single game state tag.
type Status int

const (
	StatusReady   Status = iota // Ball on the paddle, waiting for a trigger
	StatusRunning               // Ball in play
	StatusOver                  // Lives exhausted
	StatusWin                   // Every brick cleared
)

// String returns the status tag reported to the platform.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	case StatusWin:
		return "win"
	default:
		return "unknown"
	}
}

// Session holds score, lives and status. It outlives arena rebuilds and
// remembers which caption runes have been knocked out.
type Session struct {
	Status Status
	Score  int
	Lives  int

	totalLives  int
	brickPoints int
	destroyed   map[int]bool // caption rune indices
}

// NewSession returns a ready session with full lives.
func NewSession(totalLives, brickPoints int) *Session {
	s := &Session{totalLives: totalLives, brickPoints: brickPoints}
	s.restart()
	return s
}

func (s *Session) restart() {
	s.Status = StatusReady
	s.Score = 0
	s.Lives = s.totalLives
	s.destroyed = make(map[int]bool)
}

// TotalLives returns the configured number of lives.
func (s *Session) TotalLives() int {
	return s.totalLives
}

// Start moves Ready to Running. It reports whether the transition happened.
func (s *Session) Start() bool {
	if s.Status != StatusReady {
		return false
	}
	s.Status = StatusRunning
	return true
}

// Reset moves Over or Win back to Ready with full lives, zero score and
// every brick restored. It reports whether the transition happened.
func (s *Session) Reset() bool {
	if s.Status != StatusOver && s.Status != StatusWin {
		return false
	}
	s.restart()
	return true
}

// RecordBrick scores a destroyed brick. A rune already recorded scores nothing.
func (s *Session) RecordBrick(captionIndex int) {
	if s.destroyed[captionIndex] {
		return
	}
	s.destroyed[captionIndex] = true
	s.Score += s.brickPoints
}

// Win marks the caption as cleared.
func (s *Session) Win() {
	if s.Status == StatusRunning {
		s.Status = StatusWin
	}
}

// LoseLife applies a bottom hit and returns the new status:
// Ready while lives remain, Over when the last one is gone.
func (s *Session) LoseLife() Status {
	if s.Status != StatusRunning {
		return s.Status
	}
	if s.Lives > 1 {
		s.Lives--
		s.Status = StatusReady
	} else {
		s.Lives = 0
		s.Status = StatusOver
	}
	return s.Status
}

// Destroyed returns the set of destroyed caption indices.
// Callers must not modify it.
func (s *Session) Destroyed() map[int]bool {
	return s.destroyed
}
