package system

import (
	"testing"
	"time"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r *recorder) Phase() Phase { return r.phase }

func (r *recorder) Update(time.Duration) {
	*r.log = append(*r.log, r.name)
}

func TestRunnerOrdersByPhaseThenRegistration(t *testing.T) {
	var log []string
	runner := NewRunner()
	runner.Register(&recorder{name: "cleanup", phase: PhaseCleanup, log: &log})
	runner.Register(&recorder{name: "food", phase: PhasePostUpdate, log: &log})
	runner.Register(&recorder{name: "move", phase: PhaseUpdate, log: &log})
	runner.Register(&recorder{name: "input", phase: PhaseInput, log: &log})
	runner.Register(&recorder{name: "eat", phase: PhasePostUpdate, log: &log})

	runner.Tick(time.Millisecond)

	want := []string{"input", "move", "food", "eat", "cleanup"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("ran %v, want %v", log, want)
		}
	}
}
