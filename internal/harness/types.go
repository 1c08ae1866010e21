package harness

import "github.com/roach88/ontocore/internal/ir"

// Step outcomes recorded in the trace.
const (
	OutcomeInserted = "inserted"
	OutcomePresent  = "present"
	OutcomeRejected = "rejected"
)

// TraceEvent records one executed step.
//
// Term is the name-resolved rendering of the stored term. Error and Path
// are set only for rejected steps.
type TraceEvent struct {
	Seq     int64    `json:"seq"`
	Op      string   `json:"op"`
	Term    ir.Value `json:"term,omitempty"`
	Outcome string   `json:"outcome"`
	Error   string   `json:"error,omitempty"`
	Path    string   `json:"path,omitempty"`
	Foreign []string `json:"foreign,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every step behaved as expected and
	// every assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains step and assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Snapshot is the canonical JSON of the final ontology.
	Snapshot []byte `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
