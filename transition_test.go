package contagiongo

import "testing"

func TestExposeSetsStateAndSchedulesTimeline(t *testing.T) {
	disease := DefaultDiseaseParams()
	interv := DefaultInterventionParams()
	rng := NewRNG(1)
	q := NewEventQueue()

	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	expose(a, 0, disease, interv, rng, q)

	if a.State != E {
		t.Errorf(UnequalStringParameterError, "state immediately after exposure", E.String(), a.State.String())
	}

	// ipTime is a stochastic Normal(latency, latency/10) draw, not a
	// fixed mean (spec.md §4.2/§4.5): scan a wide window around the
	// mean for the scheduled Ip event instead of asserting an exact time.
	mean := disease.LatencyPeriod
	sigma := mean / 10
	found := false
	var foundAt int
	for t2 := quantize(float64(mean - 6*sigma)); t2 <= quantize(float64(mean+6*sigma)); t2 += STEP {
		for _, ev := range q.Drain(t2) {
			if ev.AgentID == a.ID && ev.Kind == EvIp {
				found = true
				foundAt = t2
			}
		}
	}
	if !found {
		t.Errorf("expose did not schedule an Ip event for the exposed agent near the expected latency window")
	}
	if found && foundAt%STEP != 0 {
		t.Errorf("Ip event time %d is not quantized to STEP", foundAt)
	}
}

func TestExposeNeverSchedulesTestingForAsymptomatic(t *testing.T) {
	disease := DefaultDiseaseParams()
	disease.PAsymptomatic = 1.0
	disease.PPaucisymptomatic = 0
	disease.PMildSymptoms = 0
	disease.PSevereSymptoms = 0
	interv := DefaultInterventionParams()
	interv.PTested = 1.0
	rng := NewRNG(1)
	q := NewEventQueue()

	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}
	expose(a, 0, disease, interv, rng, q)

	for t2 := 0; t2 <= disease.IncubationPeriod+interv.TestDelay+STEP; t2 += STEP {
		for _, ev := range q.Drain(t2) {
			if ev.Kind == EvBOQ {
				t.Errorf("an always-asymptomatic agent was scheduled for testing")
			}
		}
	}
}

func TestEnterAndExitQuarantine(t *testing.T) {
	interv := DefaultInterventionParams()
	q := NewEventQueue()
	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}

	enterQuarantine(a, 1000, interv, q)
	if !a.InQuarantine {
		t.Errorf("InQuarantine = false after enterQuarantine")
	}
	if a.LatestEOQ != 1000+interv.QuarantineLength {
		t.Errorf(UnequalIntParameterError, "LatestEOQ", 1000+interv.QuarantineLength, a.LatestEOQ)
	}

	exitQuarantine(a)
	if a.InQuarantine {
		t.Errorf("InQuarantine = true after exitQuarantine")
	}
}

func TestReenteringQuarantineExtendsLatestEOQ(t *testing.T) {
	interv := DefaultInterventionParams()
	q := NewEventQueue()
	a := &Agent{ID: 1, contacts: make(map[int]*contactWindow)}

	enterQuarantine(a, 0, interv, q)
	first := a.LatestEOQ
	enterQuarantine(a, STEP, interv, q)
	if a.LatestEOQ <= first {
		t.Errorf("LatestEOQ did not advance after a second quarantine trigger")
	}
}
