package contagiongo

// State is the disease compartment of an agent: a finite tagged variant
// over S, E, Ip, Ias, Ips, Ims, Iss, R.
type State uint8

// Disease states, in the order an agent may progress through them.
const (
	S State = iota
	E
	Ip
	Ias
	Ips
	Ims
	Iss
	R
)

// String implements fmt.Stringer for State.
func (s State) String() string {
	switch s {
	case S:
		return "S"
	case E:
		return "E"
	case Ip:
		return "Ip"
	case Ias:
		return "Ias"
	case Ips:
		return "Ips"
	case Ims:
		return "Ims"
	case Iss:
		return "Iss"
	case R:
		return "R"
	default:
		return "?"
	}
}

// Infectious reports whether an agent in this state transmits to others:
// true iff state is one of Ip, Ias, Ips, Ims, Iss.
func (s State) Infectious() bool {
	switch s {
	case Ip, Ias, Ips, Ims, Iss:
		return true
	default:
		return false
	}
}

// EventKind is the tagged variant of scheduled events (spec.md §3).
type EventKind uint8

const (
	EvIp EventKind = iota
	EvIas
	EvIps
	EvIms
	EvIss
	EvR
	EvBOQ
	EvBOQt
	EvCT
	EvEOQ
)

// String implements fmt.Stringer for EventKind.
func (k EventKind) String() string {
	switch k {
	case EvIp:
		return "Ip"
	case EvIas:
		return "Ias"
	case EvIps:
		return "Ips"
	case EvIms:
		return "Ims"
	case EvIss:
		return "Iss"
	case EvR:
		return "R"
	case EvBOQ:
		return "BOQ"
	case EvBOQt:
		return "BOQ_t"
	case EvCT:
		return "CT"
	case EvEOQ:
		return "EOQ"
	default:
		return "?"
	}
}

// stateForIClassEvent maps a disease EventKind (Ip, the four I-class
// assignments, or R) to the corresponding State. Panics on a quarantine
// or tracing kind; driver.go only calls it for kinds isDiseaseEvent
// accepts.
func stateForIClassEvent(k EventKind) State {
	switch k {
	case EvIp:
		return Ip
	case EvIas:
		return Ias
	case EvIps:
		return Ips
	case EvIms:
		return Ims
	case EvIss:
		return Iss
	case EvR:
		return R
	default:
		panic("stateForIClassEvent: not a disease event kind")
	}
}

// eventKindForIClass maps a sampled I-class State to its EventKind.
func eventKindForIClass(st State) EventKind {
	switch st {
	case Ias:
		return EvIas
	case Ips:
		return EvIps
	case Ims:
		return EvIms
	case Iss:
		return EvIss
	default:
		panic("eventKindForIClass: not an I-class state")
	}
}

// isDiseaseEvent reports whether kind directly sets an agent's disease
// state (as opposed to a quarantine/tracing bookkeeping event).
func isDiseaseEvent(k EventKind) bool {
	switch k {
	case EvIp, EvIas, EvIps, EvIms, EvIss, EvR:
		return true
	default:
		return false
	}
}
