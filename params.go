package contagiongo

// STEP is the discretization quantum of the simulation clock, in seconds.
// All event times are rounded to the nearest multiple of STEP.
const STEP = 300

// Day is the number of seconds in one day.
const Day = 24 * 60 * 60

// DiseaseParams holds the fixed SEIR timeline constants derived from
// Report #10 (epicx-lab.com/covid-19.html), the same source cited by
// original_source/contact_tracing.py.
type DiseaseParams struct {
	IncubationPeriod   int // seconds from transmission to symptoms
	ProdromalPeriod    int // infectiousness begins this many seconds before symptoms
	LatencyPeriod      int // IncubationPeriod - ProdromalPeriod
	InfectiousPeriod   int // seconds from symptom onset to removal

	PAsymptomatic     float64
	PPaucisymptomatic float64
	PMildSymptoms     float64
	PSevereSymptoms   float64

	// PTransmission is the per-STEP, per-contact-pair base transmission
	// probability from an infectious source to a susceptible target.
	PTransmission float64
}

// IClasses lists the four symptomatic/asymptomatic classes in the order
// their probabilities appear in IProbs, matching I_classes in
// original_source/contact_tracing.py.
var IClasses = [4]State{Ias, Ips, Ims, Iss}

// DefaultDiseaseParams returns the disease constants used throughout the
// reference study. Incubation/prodromal/infectious periods are expressed
// in days in the source material and converted to seconds here.
func DefaultDiseaseParams() DiseaseParams {
	incubation := int(5.2 * Day)
	prodromal := int(1.5 * Day)
	pAsymptomatic := 0.2
	p := DiseaseParams{
		IncubationPeriod:  incubation,
		ProdromalPeriod:   prodromal,
		LatencyPeriod:     incubation - prodromal,
		InfectiousPeriod:  int(7.5*Day) - incubation,
		PAsymptomatic:     pAsymptomatic,
		PPaucisymptomatic: 0.2 * (1 - pAsymptomatic),
		PMildSymptoms:     0.7 * (1 - pAsymptomatic),
		PSevereSymptoms:   0.1 * (1 - pAsymptomatic),
		PTransmission:     0.00625,
	}
	return p
}

// IProbs returns the categorical probabilities of the four I-classes in
// the same order as IClasses.
func (p DiseaseParams) IProbs() [4]float64 {
	return [4]float64{p.PAsymptomatic, p.PPaucisymptomatic, p.PMildSymptoms, p.PSevereSymptoms}
}

// InterventionParams holds the testing/quarantine/tracing knobs a sweep
// cell overrides. Field tags follow the teacher's toml-tagged config
// struct convention (see config.go).
type InterventionParams struct {
	PApp    float64 `toml:"p_app"`
	PTested float64 `toml:"p_tested"`
	PTraced float64 `toml:"p_traced"`
	PMask   float64 `toml:"p_mask"`

	TestDelay         int `toml:"-"` // seconds; derived from TestDelayDays
	TraceDelayManual  int `toml:"-"`
	TraceDelayApp     int `toml:"-"`
	Tracelength       int `toml:"-"`
	QuarantineLength  int `toml:"-"`

	TestDelayDays        float64 `toml:"test_delay_days"`
	TraceDelayManualDays float64 `toml:"trace_delay_manual_days"`
	TraceDelayAppDays    float64 `toml:"trace_delay_app_days"`
	TracelengthDays      float64 `toml:"tracelength_days"`
	QuarantineLengthDays float64 `toml:"quarantine_length_days"`

	ManualTracingThreshold int `toml:"manual_tracing_threshold"`
	AppTracingThreshold    int `toml:"app_tracing_threshold"`

	MaskReductionIn  float64 `toml:"mask_reduction_in"`
	MaskReductionOut float64 `toml:"mask_reduction_out"`

	// Oddweeks enables the alternating-presence interleaving intervention.
	// Retained for extensibility; the default driver never consults it
	// (spec.md §9 open question, resolved as "leave unwired").
	Oddweeks bool `toml:"oddweeks"`
}

// DefaultInterventionParams returns the parameter set used as the
// baseline for the reference sweep (spec.md §6).
func DefaultInterventionParams() InterventionParams {
	p := InterventionParams{
		PApp:                   0.0,
		PTested:                0.5,
		PTraced:                0.75,
		PMask:                  0.0,
		TestDelayDays:          0.5,
		TraceDelayManualDays:   1.0,
		TraceDelayAppDays:      0.0,
		ManualTracingThreshold: 2,
		AppTracingThreshold:    2,
		TracelengthDays:        2.0,
		QuarantineLengthDays:   14.0,
		MaskReductionIn:        0.9,
		MaskReductionOut:       0.6,
		Oddweeks:               false,
	}
	p.resolveDurations()
	return p
}

// resolveDurations converts the *Days fields into integer seconds. It
// must be called whenever a *Days field changes (the sweep driver calls
// it after overriding PTraced/PApp has no effect on durations, but a
// config load does).
func (p *InterventionParams) resolveDurations() {
	p.TestDelay = int(p.TestDelayDays * Day)
	p.TraceDelayManual = int(p.TraceDelayManualDays * Day)
	p.TraceDelayApp = int(p.TraceDelayAppDays * Day)
	p.Tracelength = int(p.TracelengthDays * Day)
	p.QuarantineLength = int(p.QuarantineLengthDays * Day)
}

// Validate checks that every probability lies in [0,1] and every delay
// is non-negative, per spec.md §7 ("parameter out of range ... fatal at
// config validation").
func (p *InterventionParams) Validate() error {
	p.resolveDurations()
	probs := map[string]float64{
		"p_app":    p.PApp,
		"p_tested": p.PTested,
		"p_traced": p.PTraced,
		"p_mask":   p.PMask,
	}
	for name, v := range probs {
		if v < 0 || v > 1 {
			return invalidFloatError(name, v, "must be within [0,1]")
		}
	}
	delays := map[string]int{
		"test_delay":          p.TestDelay,
		"trace_delay_manual":  p.TraceDelayManual,
		"trace_delay_app":     p.TraceDelayApp,
		"tracelength":         p.Tracelength,
		"quarantine_length":   p.QuarantineLength,
	}
	for name, v := range delays {
		if v < 0 {
			return invalidIntError(name, v, "must be non-negative")
		}
	}
	if p.ManualTracingThreshold < 0 {
		return invalidIntError("manual_tracing_threshold", p.ManualTracingThreshold, "must be non-negative")
	}
	if p.AppTracingThreshold < 0 {
		return invalidIntError("app_tracing_threshold", p.AppTracingThreshold, "must be non-negative")
	}
	return nil
}

// quantize rounds t to the nearest multiple of STEP, matching
// int(timestep_in_data*round(t/timestep_in_data)) in
// original_source/contact_tracing.py.
func quantize(t float64) int {
	return STEP * int(roundHalfAwayFromZero(t/STEP))
}

func roundHalfAwayFromZero(x float64) float64 {
	if x < 0 {
		return -roundHalfAwayFromZero(-x)
	}
	whole := float64(int(x))
	if x-whole >= 0.5 {
		return whole + 1
	}
	return whole
}

// clampToNow enforces the forward-only clock invariant of spec.md §7: an
// event scheduled strictly before currentTime is moved to currentTime.
func clampToNow(t, currentTime int) int {
	if t < currentTime {
		return currentTime
	}
	return t
}

// InitialPeriodInDays controls the random delay, relative to patient
// zero's first appearance in the contact log, at which exposure begins.
const InitialPeriodInDays = 7
