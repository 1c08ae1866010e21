package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/ontocore/internal/ontology"
	"github.com/roach88/ontocore/internal/testutil"
)

// ErrUnknownName is returned when a step refers to a name that no earlier
// step bound.
var ErrUnknownName = errors.New("unknown name")

// Harness is the scenario execution engine.
//
// It owns two ontologies built from one sequential tag generator: the
// ontology under test and a scratch ontology that issues the IRIs for names
// a step marks as foreign. Tags and sequence numbers are deterministic, so
// traces compare byte for byte across runs.
type Harness struct {
	onto    *ontology.Ontology
	scratch *ontology.Ontology
	clock   *ontology.Counter
	logger  *slog.Logger
}

// Option configures a Harness.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the harness and its ontologies.
// Default: logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a harness for the given scenario configuration.
func New(scenario *Scenario, opts ...Option) *Harness {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	tags := testutil.NewSequentialTagGenerator()
	base := []ontology.Option{
		ontology.WithLogger(o.logger),
		ontology.WithInstanceTags(tags),
	}

	return &Harness{
		onto:    ontology.New(append(base, scenario.Config.Options()...)...),
		scratch: ontology.New(base...),
		clock:   ontology.NewCounter(),
		logger:  o.logger.With("scenario", scenario.Name),
	}
}

// Ontology returns the ontology under test.
func (h *Harness) Ontology() *ontology.Ontology {
	return h.onto
}

// Run executes a test scenario in a fresh harness and returns the result.
//
// Execution flow:
// 1. Create the ontology under test and the scratch ontology
// 2. Execute steps in order, recording one trace event per step
// 3. Evaluate assertions
// 4. Snapshot the final ontology
//
// Step and assertion failures are reported in the Result. The returned
// error is reserved for failures of the harness itself.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	return New(scenario, opts...).Run(scenario)
}

// Run executes scenario against h.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	result := NewResult()

	for i := range scenario.Steps {
		h.executeStep(i, &scenario.Steps[i], result)
	}

	for _, msg := range EvaluateAssertions(h.onto, scenario.Assertions) {
		result.AddError(msg)
	}

	snapshot, err := h.onto.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot ontology: %w", err)
	}
	result.Snapshot = snapshot

	h.logger.Debug("scenario finished",
		"pass", result.Pass,
		"steps", len(scenario.Steps),
		"errors", len(result.Errors))
	return result, nil
}

// executeStep applies one step and records it in the trace.
func (h *Harness) executeStep(index int, step *Step, result *Result) {
	event := TraceEvent{
		Seq:     int64(h.clock.Next()),
		Op:      step.Op(),
		Foreign: step.Foreign,
	}

	before := total(h.onto.Stats())
	r := h.resolver(step.Foreign)
	term, err := h.apply(step, r)

	switch {
	case err == nil:
		event.Outcome = OutcomePresent
		if total(h.onto.Stats()) > before {
			event.Outcome = OutcomeInserted
		}
		rendered, renderErr := h.onto.RenderValue(term)
		if renderErr != nil {
			result.AddError(fmt.Sprintf("steps[%d]: render: %v", index, renderErr))
		}
		event.Term = rendered
		if step.ExpectError != "" {
			result.AddError(fmt.Sprintf("steps[%d]: expected %s, step succeeded", index, step.ExpectError))
		}

	case ontology.IsForeignReference(err):
		var fe *ontology.ForeignReferenceError
		errors.As(err, &fe)
		event.Outcome = OutcomeRejected
		event.Error = ExpectForeignReference
		event.Path = fe.Path
		if step.ExpectError != ExpectForeignReference {
			result.AddError(fmt.Sprintf("steps[%d]: unexpected error: %v", index, err))
		}

	default:
		event.Outcome = OutcomeRejected
		event.Error = err.Error()
		result.AddError(fmt.Sprintf("steps[%d]: %v", index, err))
	}

	result.AddTrace(event)
}

// apply performs the step's operation on the ontology under test.
func (h *Harness) apply(step *Step, r *resolver) (ontology.Term, error) {
	switch step.Op() {
	case StepClass:
		return stored(h.onto.DefineClass(r.bind(step.Class)))
	case StepObjectProperty:
		return stored(h.onto.DefineObjectProperty(r.bind(step.ObjectProperty)))
	case StepSubClass:
		super, err := r.expr(step.SubClass.Super)
		if err != nil {
			return nil, err
		}
		sub, err := r.expr(step.SubClass.Sub)
		if err != nil {
			return nil, err
		}
		return stored(h.onto.AssertSubClassExpr(super, sub))
	case StepSome:
		p, err := r.property(step.Some.Property)
		if err != nil {
			return nil, err
		}
		filler, err := r.expr(step.Some.Filler)
		if err != nil {
			return nil, err
		}
		return stored(h.onto.DefineSomeExpr(p, filler))
	case StepAnd:
		ops, err := r.operands(step.And)
		if err != nil {
			return nil, err
		}
		return stored(h.onto.DefineAnd(ops...))
	case StepOr:
		ops, err := r.operands(step.Or)
		if err != nil {
			return nil, err
		}
		return stored(h.onto.DefineOr(ops...))
	case StepNot:
		op, err := r.expr(*step.Not)
		if err != nil {
			return nil, err
		}
		return stored(h.onto.DefineNot(op))
	default:
		return nil, fmt.Errorf("step has no single operation: %v", step.operations())
	}
}

func stored[T ontology.Term](v T, err error) (ontology.Term, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func total(s ontology.Stats) int {
	return s.Classes + s.ObjectProperties + s.SubClassAxioms + s.Some + s.And + s.Or + s.Not
}

// resolver turns scenario names into IRIs. Foreign names come from the
// scratch ontology; all others must already be bound in the ontology under
// test unless the step is defining them.
type resolver struct {
	onto    *ontology.Ontology
	scratch *ontology.Ontology
	foreign map[string]bool
}

func (h *Harness) resolver(foreign []string) *resolver {
	r := &resolver{onto: h.onto, scratch: h.scratch, foreign: make(map[string]bool, len(foreign))}
	for _, name := range foreign {
		r.foreign[name] = true
	}
	return r
}

// bind interns name for a defining step.
func (r *resolver) bind(name string) ontology.IRI {
	if r.foreign[name] {
		return r.scratch.Intern(name)
	}
	return r.onto.Intern(name)
}

// iri looks name up without binding it.
func (r *resolver) iri(name string) (ontology.IRI, error) {
	if r.foreign[name] {
		return r.scratch.Intern(name), nil
	}
	iri, ok := r.onto.Lookup(name)
	if !ok {
		return ontology.IRI{}, fmt.Errorf("%w %q", ErrUnknownName, name)
	}
	return iri, nil
}

func (r *resolver) property(name string) (ontology.ObjectProperty, error) {
	iri, err := r.iri(name)
	if err != nil {
		return ontology.ObjectProperty{}, err
	}
	return ontology.ObjectProperty{IRI: iri}, nil
}

func (r *resolver) expr(e Expr) (ontology.ClassExpression, error) {
	switch e.Op {
	case OpClass:
		iri, err := r.iri(e.Class)
		if err != nil {
			return nil, err
		}
		return ontology.Class{IRI: iri}, nil
	case OpSome:
		p, err := r.property(e.Some.Property)
		if err != nil {
			return nil, err
		}
		filler, err := r.expr(e.Some.Filler)
		if err != nil {
			return nil, err
		}
		return ontology.Some{Property: p, Filler: filler}, nil
	case OpAnd:
		ops, err := r.operands(e.Operands)
		if err != nil {
			return nil, err
		}
		return ontology.And{Operands: ops}, nil
	case OpOr:
		ops, err := r.operands(e.Operands)
		if err != nil {
			return nil, err
		}
		return ontology.Or{Operands: ops}, nil
	case OpNot:
		op, err := r.expr(*e.Operand)
		if err != nil {
			return nil, err
		}
		return ontology.Not{Operand: op}, nil
	default:
		return nil, fmt.Errorf("empty expression")
	}
}

func (r *resolver) operands(exprs []Expr) ([]ontology.ClassExpression, error) {
	ops := make([]ontology.ClassExpression, len(exprs))
	for i, e := range exprs {
		op, err := r.expr(e)
		if err != nil {
			return nil, fmt.Errorf("operands[%d]: %w", i, err)
		}
		ops[i] = op
	}
	return ops, nil
}
