package contagiongo

import "testing"

func TestTryTransmitRequiresSusceptibleTarget(t *testing.T) {
	disease := DefaultDiseaseParams()
	disease.PTransmission = 1.0
	interv := DefaultInterventionParams()
	rng := NewRNG(1)
	q := NewEventQueue()

	src := &Agent{ID: 1, State: Ip, Damping: 1.0, MaskFactorOut: 1.0, contacts: make(map[int]*contactWindow)}
	tgt := &Agent{ID: 2, State: R, MaskFactorIn: 1.0, contacts: make(map[int]*contactWindow)}

	if tryTransmit(src, tgt, 0, disease, interv, rng, q) {
		t.Errorf("tryTransmit infected a recovered (non-susceptible) target")
	}
}

func TestTryTransmitSkipsWhenEitherPartyQuarantined(t *testing.T) {
	disease := DefaultDiseaseParams()
	disease.PTransmission = 1.0
	interv := DefaultInterventionParams()
	rng := NewRNG(1)
	q := NewEventQueue()

	src := &Agent{ID: 1, State: Ip, Damping: 1.0, MaskFactorOut: 1.0, InQuarantine: true, contacts: make(map[int]*contactWindow)}
	tgt := &Agent{ID: 2, State: S, MaskFactorIn: 1.0, contacts: make(map[int]*contactWindow)}

	if tryTransmit(src, tgt, 0, disease, interv, rng, q) {
		t.Errorf("tryTransmit infected a target via a quarantined source")
	}
}

func TestTryTransmitAlwaysInfectsAtProbabilityOne(t *testing.T) {
	disease := DefaultDiseaseParams()
	disease.PTransmission = 1.0
	interv := DefaultInterventionParams()
	rng := NewRNG(1)
	q := NewEventQueue()

	src := &Agent{ID: 1, State: Ip, Damping: 1.0, MaskFactorOut: 1.0, contacts: make(map[int]*contactWindow)}
	tgt := &Agent{ID: 2, State: S, MaskFactorIn: 1.0, contacts: make(map[int]*contactWindow)}

	if !tryTransmit(src, tgt, 0, disease, interv, rng, q) {
		t.Errorf("tryTransmit failed to infect a susceptible target at probability 1.0")
	}
	if tgt.State != E {
		t.Errorf(UnequalStringParameterError, "target state after a successful transmission", E.String(), tgt.State.String())
	}
}

func TestActiveCount(t *testing.T) {
	agents := map[int]*Agent{
		1: {State: S},
		2: {State: E},
		3: {State: Ip},
		4: {State: Ims},
		5: {State: R},
	}
	if got := activeCount(agents); got != 3 {
		t.Errorf(UnequalIntParameterError, "active (exposed+infectious) count", 3, got)
	}
}

func TestRunSimulationTerminatesOnASmallLog(t *testing.T) {
	log := &ContactLog{
		ContactsAt: map[int][]Pair{
			0: {{I: 1, J: 2}},
		},
		IDs:             map[int]bool{1: true, 2: true},
		FirstAppearance: map[int]int{1: 0, 2: 0},
		Tmax:            0,
	}
	disease := DefaultDiseaseParams()
	interv := DefaultInterventionParams()
	rng := NewRNG(1)

	result, err := RunSimulation(log, disease, interv, rng)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running a minimal simulation", err)
	}
	if result.TotalInfected < 1 {
		t.Errorf("total_infected = %d, want at least 1 (patient zero)", result.TotalInfected)
	}
}

func TestRunSimulationRejectsEmptyPopulation(t *testing.T) {
	log := &ContactLog{ContactsAt: map[int][]Pair{}, IDs: map[int]bool{}, FirstAppearance: map[int]int{}}
	if _, err := RunSimulation(log, DefaultDiseaseParams(), DefaultInterventionParams(), NewRNG(1)); err == nil {
		t.Errorf(ExpectedErrorWhileError, "running a simulation over an empty population")
	}
}
