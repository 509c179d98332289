package contagiongo

// expose commits an agent's entire future disease/quarantine timeline at
// the moment it is infected, rather than rescheduling tick by tick: the
// presymptomatic onset, the sampled I-class (and its damping), removal,
// and — for agents who go on to test positive — the self-quarantine and
// contact-tracing scan that follow. currentTime is the time of exposure
// itself (already quantized by the caller).
func expose(a *Agent, currentTime int, disease DiseaseParams, interv InterventionParams, rng RNG, q *EventQueue) {
	a.State = E

	latency := float64(disease.LatencyPeriod)
	ipTime := clampToNow(rng.NormalTime(float64(currentTime)+latency, latency/10), currentTime)
	q.Push(ipTime, a.ID, EvIp)

	class := rng.Categorical(disease.IProbs())
	prodromal := float64(disease.ProdromalPeriod)
	classTime := clampToNow(rng.NormalTime(float64(ipTime)+prodromal, prodromal/10), ipTime)
	q.Push(classTime, a.ID, eventKindForIClass(class))

	infectiousPeriod := float64(disease.InfectiousPeriod)
	rTime := clampToNow(rng.NormalTime(float64(classTime)+infectiousPeriod, infectiousPeriod/10), classTime)
	q.Push(rTime, a.ID, EvR)

	// Asymptomatic carriers are never tested: a test requires a symptom
	// to present. Severe cases are always tested; every other
	// symptomatic class independently rolls for testing. A positive
	// test drives both self-quarantine and the contact-tracing scan of
	// its contacts.
	if class != Ias && (class == Iss || rng.Bernoulli(interv.PTested)) {
		testDelay := float64(interv.TestDelay)
		boqTime := clampToNow(rng.NormalTime(float64(classTime)+testDelay, testDelay/10), classTime)
		q.Push(boqTime, a.ID, EvBOQ)
		q.Push(boqTime+STEP, a.ID, EvCT)
	}
}

// applyDiseaseTransition moves an agent into st, setting the damping
// multiplier that governs its outgoing transmission probability from
// here on: 0.5 while presymptomatic and for Ias/Ips/Ims, 1.0 once
// severe (and after removal).
// Note this applies 0.5 to every Ip stretch uniformly, including agents
// who will later roll Iss; the original driver instead sets damping to
// 1.0 at exposure for eventual-Iss agents, so the presymptomatic
// transmission rate for that subgroup differs here. spec.md §3's
// Ip-damping parenthetical licenses this resolution.
func applyDiseaseTransition(a *Agent, st State) {
	a.State = st
	switch st {
	case Ip:
		a.Damping = 0.5
	case Ias, Ips, Ims:
		a.Damping = 0.5
	case Iss:
		a.Damping = 1.0
	case R:
		a.Damping = 1.0
	}
}

// enterQuarantine places an agent into quarantine and schedules its
// release. Re-entering quarantine while already in it pushes another EOQ
// and moves LatestEOQ to it; the driver ignores any EOQ that fires
// before LatestEOQ, so only the latest release takes effect.
func enterQuarantine(a *Agent, currentTime int, interv InterventionParams, q *EventQueue) {
	a.InQuarantine = true
	eoqTime := clampToNow(currentTime+interv.QuarantineLength, currentTime)
	a.LatestEOQ = eoqTime
	q.Push(eoqTime, a.ID, EvEOQ)
}

// exitQuarantine releases an agent from quarantine. The caller is
// responsible for ignoring a stale EOQ fired before a later BOQ_t
// extended the stay.
func exitQuarantine(a *Agent) {
	a.InQuarantine = false
}
