package trace

import "time"

// Event classifies a published step.
type Event string

// Events published by the algorithm cores.
const (
	EventInit      Event = "init"      // initial state before the first decision
	EventVisit     Event = "visit"     // a node, cell or index is entered
	EventCompare   Event = "compare"   // two values are compared
	EventUpdate    Event = "update"    // a tracked value improved or a structure changed
	EventDiscard   Event = "discard"   // a stale or invalid candidate is dropped
	EventBacktrack Event = "backtrack" // a commitment is undone
	EventFound     Event = "found"     // a solution, match or component was found
	EventDone      Event = "done"      // terminal step carrying the Result
)

// Base delays, chosen per call site. Playback divides them by the session speed.
const (
	DelayCompare   = 150 * time.Millisecond
	DelayVisit     = 300 * time.Millisecond
	DelayUpdate    = 450 * time.Millisecond
	DelayBacktrack = 250 * time.Millisecond
	DelayFound     = 900 * time.Millisecond
	DelayDone      time.Duration = 0
)

// Outcome classifies how a run terminated.
type Outcome int

const (
	// OutcomeSuccess: the algorithm produced its result.
	OutcomeSuccess Outcome = iota
	// OutcomeNoSolution: unreachable target, unsatisfiable board, disconnected graph.
	OutcomeNoSolution
	// OutcomeCycleDetected: a cyclic graph was fed to an acyclic-only algorithm.
	OutcomeCycleDetected
	// OutcomeCancelled: the run was stopped cooperatively; the result is partial.
	OutcomeCancelled
)

// String returns a stable lower-case label.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNoSolution:
		return "no-solution"
	case OutcomeCycleDetected:
		return "cycle-detected"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Step is one immutable snapshot.
//
// State is algorithm specific (for example dijkstra.Snapshot) and is built
// from copies, so later mutations of the core's working state never leak into
// an already published step.
type Step struct {
	Seq     int           // position in the run, starting at 0
	Event   Event         // what happened
	Delay   time.Duration // base delay of the call site
	Message string        // human-readable status line
	Focus   []int         // highlighted nodes, indices or cells
	State   any           // full observable state at this instant
}

// Outcomer is implemented by every Result carried in an EventDone step.
type Outcomer interface {
	Status() Outcome
}
