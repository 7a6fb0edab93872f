package breakout

import "testing"

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(3, 100)
	if s.Status != StatusReady || s.Lives != 3 || s.Score != 0 {
		t.Fatalf("new session = %+v, expected ready with 3 lives", s)
	}

	if s.Reset() {
		t.Error("Reset() from Ready should be a no-op")
	}
	if !s.Start() || s.Status != StatusRunning {
		t.Fatal("Start() from Ready should run")
	}
	if s.Start() {
		t.Error("Start() while Running should be a no-op")
	}

	s.RecordBrick(4)
	s.RecordBrick(4)
	s.RecordBrick(7)
	if s.Score != 200 || len(s.Destroyed()) != 2 {
		t.Errorf("Score = %d destroyed = %d, expected 200 and 2", s.Score, len(s.Destroyed()))
	}
}

func TestSessionLoseLife(t *testing.T) {
	s := NewSession(3, 100)
	s.Start()

	expected := []struct {
		lives  int
		status Status
	}{
		{2, StatusReady},
		{1, StatusReady},
		{0, StatusOver},
	}

	for i, exp := range expected {
		got := s.LoseLife()
		if got != exp.status || s.Lives != exp.lives {
			t.Fatalf("miss %d: status=%v lives=%d, expected %v and %d", i+1, got, s.Lives, exp.status, exp.lives)
		}
		s.Start()
	}

	// No more changes once over
	if s.LoseLife() != StatusOver || s.Lives != 0 {
		t.Errorf("LoseLife() after Over changed state: lives=%d", s.Lives)
	}
}

func TestSessionLoseLifeOnlyWhileRunning(t *testing.T) {
	s := NewSession(3, 100)
	if s.LoseLife() != StatusReady || s.Lives != 3 {
		t.Errorf("LoseLife() while Ready should not cost a life, lives=%d", s.Lives)
	}
}

func TestSessionResetFromOver(t *testing.T) {
	s := NewSession(1, 100)
	s.Start()
	s.RecordBrick(0)
	s.LoseLife()
	if s.Status != StatusOver {
		t.Fatalf("Status = %v, expected over", s.Status)
	}

	if !s.Reset() {
		t.Fatal("Reset() from Over should succeed")
	}
	if s.Status != StatusReady || s.Lives != 1 || s.Score != 0 || len(s.Destroyed()) != 0 {
		t.Errorf("after reset = %+v, expected ready, full lives, zero score, no destroyed bricks", s)
	}
}

func TestSessionWin(t *testing.T) {
	s := NewSession(3, 100)
	s.Win()
	if s.Status != StatusReady {
		t.Error("Win() outside Running should be ignored")
	}

	s.Start()
	s.RecordBrick(0)
	s.Win()
	if s.Status != StatusWin {
		t.Fatalf("Status = %v, expected win", s.Status)
	}
	if !s.Reset() || s.Score != 0 || s.Lives != 3 {
		t.Errorf("Reset() from Win = %+v, expected score 0 and 3 lives", s)
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusReady:   "ready",
		StatusRunning: "running",
		StatusOver:    "over",
		StatusWin:     "win",
		Status(99):    "unknown",
	}
	for s, expected := range tests {
		if s.String() != expected {
			t.Errorf("Status(%d).String() = %q, expected %q", int(s), s.String(), expected)
		}
	}
}
