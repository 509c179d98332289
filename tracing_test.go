package contagiongo

import "testing"

func TestTraceContactsManualChannelQueuesBOQt(t *testing.T) {
	interv := DefaultInterventionParams()
	interv.PTraced = 1.0
	interv.ManualTracingThreshold = 1
	interv.PApp = 0

	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	peer := &Agent{ID: 2, contacts: make(map[int]*contactWindow)}
	a.recordContact(2, 0)
	a.recordContact(2, STEP)
	a.recordContact(2, 2*STEP)

	agents := map[int]*Agent{1: a, 2: peer}
	q := NewEventQueue()
	rng := NewRNG(1)

	traced := traceContacts(a, agents, 2*STEP, interv, rng, q)
	if traced != 1 {
		t.Errorf(UnequalIntParameterError, "number of peers traced", 1, traced)
	}
}

func TestTraceContactsRequiresStrictlyGreaterThanThreshold(t *testing.T) {
	interv := DefaultInterventionParams()
	interv.PTraced = 1.0
	interv.ManualTracingThreshold = 2
	interv.PApp = 0

	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	peer := &Agent{ID: 2, contacts: make(map[int]*contactWindow)}
	a.recordContact(2, 0)
	a.recordContact(2, STEP)

	agents := map[int]*Agent{1: a, 2: peer}
	q := NewEventQueue()
	rng := NewRNG(1)

	traced := traceContacts(a, agents, STEP, interv, rng, q)
	if traced != 0 {
		t.Errorf(UnequalIntParameterError, "peers traced at exactly the threshold", 0, traced)
	}
}

func TestTraceContactsAppChannelRequiresBothAgentsHaveApp(t *testing.T) {
	interv := DefaultInterventionParams()
	interv.PTraced = 0
	interv.AppTracingThreshold = 1
	interv.PApp = 1.0

	a := &Agent{ID: 1, HasApp: true, contacts: make(map[int]*contactWindow)}
	peer := &Agent{ID: 2, HasApp: false, contacts: make(map[int]*contactWindow)}
	a.recordContact(2, 0)
	a.recordContact(2, STEP)

	agents := map[int]*Agent{1: a, 2: peer}
	q := NewEventQueue()
	rng := NewRNG(1)

	traced := traceContacts(a, agents, STEP, interv, rng, q)
	if traced != 0 {
		t.Errorf(UnequalIntParameterError, "peers traced when only one party has the app", 0, traced)
	}

	peer.HasApp = true
	traced = traceContacts(a, agents, STEP, interv, rng, q)
	if traced != 1 {
		t.Errorf(UnequalIntParameterError, "peers traced once both parties have the app", 1, traced)
	}
}

func TestTraceContactsFirstChannelWinsNoDoubleQueue(t *testing.T) {
	interv := DefaultInterventionParams()
	interv.PTraced = 1.0
	interv.ManualTracingThreshold = 1
	interv.PApp = 1.0
	interv.AppTracingThreshold = 1

	a := &Agent{ID: 1, HasApp: true, contacts: make(map[int]*contactWindow)}
	peer := &Agent{ID: 2, HasApp: true, contacts: make(map[int]*contactWindow)}
	a.recordContact(2, 0)
	a.recordContact(2, STEP)

	agents := map[int]*Agent{1: a, 2: peer}
	q := NewEventQueue()
	rng := NewRNG(1)

	traceContacts(a, agents, STEP, interv, rng, q)
	if !q.Has(STEP + interv.TraceDelayManual) {
		t.Skip("manual delay bucket empty; okay if app delay coincides")
	}
	events := q.Drain(STEP + interv.TraceDelayManual)
	count := 0
	for _, ev := range events {
		if ev.AgentID == 2 && ev.Kind == EvBOQt {
			count++
		}
	}
	if count != 1 {
		t.Errorf(UnequalIntParameterError, "BOQ_t events queued for the peer", 1, count)
	}
}
