package contagiongo

import "testing"

func TestNewAgentStartsSusceptible(t *testing.T) {
	rng := NewRNG(1)
	a := NewAgent(42, DefaultInterventionParams(), rng)
	if a.State != S {
		t.Errorf(UnequalStringParameterError, "initial state", S.String(), a.State.String())
	}
	if a.Infectious() {
		t.Errorf("a freshly constructed agent reports Infectious() = true")
	}
	if a.Damping != 1.0 {
		t.Errorf("initial damping = %f, want 1.0", a.Damping)
	}
}

func TestContactWindowEvictsOldEntries(t *testing.T) {
	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	a.recordContact(2, 0)
	a.recordContact(2, STEP)
	a.recordContact(2, 2*STEP)

	tracelength := STEP
	if count := a.peerContactCount(2, 2*STEP, tracelength); count != 2 {
		t.Errorf(UnequalIntParameterError, "retained contact count", 2, count)
	}
}

func TestPeerContactCountUnknownPeerIsZero(t *testing.T) {
	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	if count := a.peerContactCount(99, 1000, STEP); count != 0 {
		t.Errorf(UnequalIntParameterError, "contact count for an unknown peer", 0, count)
	}
}

func TestRecordContactIsLazy(t *testing.T) {
	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	if l := len(a.contacts); l != 0 {
		t.Errorf(UnequalIntParameterError, "pre-allocated contact windows", 0, l)
	}
	a.recordContact(2, 0)
	if l := len(a.contacts); l != 1 {
		t.Errorf(UnequalIntParameterError, "contact windows after one contact", 1, l)
	}
}
