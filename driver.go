package contagiongo

// RunResult summarizes one completed replicate (spec.md §6 TSV columns
// I, q, fq).
type RunResult struct {
	TotalInfected    int
	Quarantines      int
	FalseQuarantines int
}

// maxPeriods bounds how many times the contact log is allowed to replay
// under the periodic-boundary rule before a run is abandoned as
// non-terminating. A well-formed epidemic always burns out long before
// this (spec.md §4.9 termination discussion); it exists only as a
// guard against a pathological parameter combination.
const maxPeriods = 5000

// RunSimulation drives one replicate to extinction: it seeds patient
// zero, then alternates replaying the (periodically repeated) contact
// log against the current agent population with draining whatever
// disease/quarantine/tracing events are due, until no agent is exposed
// or infectious (every agent in S or R), even if quarantine or tracing
// events are still queued (spec.md §2, §4.8-§4.9, C8).
func RunSimulation(log *ContactLog, disease DiseaseParams, interv InterventionParams, rng RNG) (RunResult, error) {
	ids := log.IDList()
	if len(ids) == 0 {
		return RunResult{}, errEmptyIDSet()
	}

	agents := make(map[int]*Agent, len(ids))
	for _, id := range ids {
		agents[id] = NewAgent(id, interv, rng)
	}

	patientZero := agents[rng.ChoiceInt(ids)]
	start := log.FirstAppearance[patientZero.ID]
	jitter := rng.Uniform() * float64(InitialPeriodInDays*Day)
	t0 := clampToNow(quantize(float64(start)+jitter), start)

	queue := NewEventQueue()
	var result RunResult

	expose(patientZero, t0, disease, interv, rng, queue)
	result.TotalInfected++

	period := log.Tmax + STEP

	currentTime := t0
	periodsElapsed := 0
	for {
		replayPos := currentTime % period
		if replayPos < 0 {
			replayPos += period
		}
		if replayPos == 0 && currentTime != t0 {
			periodsElapsed++
			if periodsElapsed > maxPeriods {
				break
			}
		}

		for _, pair := range log.ContactsAt[replayPos] {
			ai, aok := agents[pair.I]
			aj, bok := agents[pair.J]
			if !aok || !bok {
				continue
			}
			// Skip if both are susceptible, or if either is in
			// quarantine: the pair is not even recorded as a contact in
			// that case (spec.md §4.8 step 3, §3: a quarantined agent
			// "neither transmits nor is contacted").
			if (ai.State == S && aj.State == S) || ai.InQuarantine || aj.InQuarantine {
				continue
			}
			ai.recordContact(pair.J, currentTime)
			aj.recordContact(pair.I, currentTime)
			if tryTransmit(ai, aj, currentTime, disease, interv, rng, queue) {
				result.TotalInfected++
			}
			if tryTransmit(aj, ai, currentTime, disease, interv, rng, queue) {
				result.TotalInfected++
			}
		}

		for _, ev := range queue.Drain(currentTime) {
			a, ok := agents[ev.AgentID]
			if !ok {
				continue
			}
			applyEvent(a, ev.Kind, agents, currentTime, interv, rng, queue, &result)
		}

		if activeCount(agents) == 0 {
			break
		}

		currentTime += STEP
	}

	return result, nil
}

// tryTransmit evaluates a single directed exposure opportunity from src
// to tgt at currentTime, per spec.md §4.3: both parties must be present
// and unquarantined, tgt must be susceptible, and the per-STEP
// probability is the base rate dampened by src's infectiousness stage
// and both agents' mask factors.
func tryTransmit(src, tgt *Agent, currentTime int, disease DiseaseParams, interv InterventionParams, rng RNG, queue *EventQueue) bool {
	if !src.Infectious() || src.InQuarantine || tgt.InQuarantine || tgt.State != S {
		return false
	}
	prob := disease.PTransmission * src.Damping * src.MaskFactorOut * tgt.MaskFactorIn
	if !rng.Bernoulli(clamp01(prob)) {
		return false
	}
	expose(tgt, currentTime, disease, interv, rng, queue)
	return true
}

// applyEvent dispatches one drained event to the state, quarantine, or
// tracing logic it represents (spec.md §4.6).
func applyEvent(a *Agent, kind EventKind, agents map[int]*Agent, currentTime int, interv InterventionParams, rng RNG, queue *EventQueue, result *RunResult) {
	switch {
	case isDiseaseEvent(kind):
		applyDiseaseTransition(a, stateForIClassEvent(kind))
	case kind == EvBOQ:
		enterQuarantineTracked(a, currentTime, interv, queue, result, false)
	case kind == EvBOQt:
		enterQuarantineTracked(a, currentTime, interv, queue, result, true)
	case kind == EvCT:
		traceContacts(a, agents, currentTime, interv, rng, queue)
	case kind == EvEOQ:
		if currentTime >= a.LatestEOQ {
			exitQuarantine(a)
		}
	}
}

// enterQuarantineTracked wraps enterQuarantine with the bookkeeping
// spec.md §6 reports: a trigger that finds the agent not yet in
// quarantine counts toward q, and such a tracing trigger (fromTrace)
// that lands on an agent in S or R counts toward fq. A trigger on an
// agent already in quarantine only extends its stay and counts toward
// neither.
func enterQuarantineTracked(a *Agent, currentTime int, interv InterventionParams, q *EventQueue, result *RunResult, fromTrace bool) {
	wasQuarantined := a.InQuarantine
	enterQuarantine(a, currentTime, interv, q)
	if wasQuarantined {
		return
	}
	result.Quarantines++
	if fromTrace && (a.State == S || a.State == R) {
		result.FalseQuarantines++
	}
}

// activeCount returns the number of agents still exposed or infectious
// (state neither S nor R), the quantity spec.md §4.8 step 4 checks
// against zero to decide extinction.
func activeCount(agents map[int]*Agent) int {
	n := 0
	for _, a := range agents {
		if a.State != S && a.State != R {
			n++
		}
	}
	return n
}
