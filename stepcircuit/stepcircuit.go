// Package stepcircuit is the augmentation layer a future IVC driver
// would use to wire an arbitrary per-step computation circuit into the
// ProtoGalaxy fold loop. These are documented extension points, not
// functionality to build out, so every hook here returns
// ErrNotImplemented until an IVC driver gives them real semantics.
package stepcircuit

import (
	"errors"

	"github.com/consensys/gnark/frontend"
)

// ErrNotImplemented is returned by every StepCircuit/StepCircuitExt
// hook left as a stub.
var ErrNotImplemented = errors.New("stepcircuit: not implemented")

// StepCircuit represents one step of incremental computation in an
// IVC loop: synthesize takes the arity-many inputs z_in and produces
// the arity-many outputs z_out. Arity is fixed per implementation
// rather than a type parameter.
type StepCircuit interface {
	// Arity returns the number of step inputs/outputs.
	Arity() int

	// Synthesize builds the step's constraints and returns z_out. A
	// concrete step circuit provides this; it is the one hook this
	// package does not stub.
	Synthesize(api frontend.API, zIn []frontend.Variable) ([]frontend.Variable, error)

	// Output runs the step's computation outside of a constraint
	// system, for witness generation. Wrapping Synthesize with a
	// throwaway constraint system is IVC-driver machinery this package
	// deliberately leaves unspecified, so the hook stays unimplemented.
	Output(zIn []interface{}) ([]interface{}, error)
}

// UnimplementedOutput is embeddable by a concrete StepCircuit to get
// an Output method that returns ErrNotImplemented.
type UnimplementedOutput struct{}

func (UnimplementedOutput) Output(zIn []interface{}) ([]interface{}, error) {
	return nil, ErrNotImplemented
}

// StepInputs bundles what StepCircuitExt's hooks receive: the running
// and incoming relaxed instances, the step counter, and the transcript
// constants. Every field is left as an opaque placeholder: this
// package does not invent a Go shape for a relaxed instance or a RO
// constants type, since nothing in this module constructs one.
type StepInputs struct {
	Step        interface{}
	Z0, ZIn     []frontend.Variable
	Accumulator interface{}
	Incoming    interface{}
	TCommitment interface{}
}

// StepCircuitExt extends a StepCircuit so it can be folded into an IVC
// loop, the augmented-circuit counterpart of StepCircuit. All three
// hooks are extension points that must not be given invented
// semantics here.
type StepCircuitExt interface {
	StepCircuit

	SynthesizeStep(api frontend.API, input StepInputs) ([]frontend.Variable, error)
	SynthesizeStepBaseCase(api frontend.API, input StepInputs) ([]frontend.Variable, error)
	SynthesizeStepNotBaseCase(api frontend.API, input StepInputs) ([]frontend.Variable, error)
}

// UnimplementedExt is embeddable by any StepCircuit to obtain a
// StepCircuitExt for free. Every hook below is left unimplemented,
// since this package carries no augmented-IVC-circuit semantics.
type UnimplementedExt struct{}

func (UnimplementedExt) SynthesizeStep(api frontend.API, input StepInputs) ([]frontend.Variable, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedExt) SynthesizeStepBaseCase(api frontend.API, input StepInputs) ([]frontend.Variable, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedExt) SynthesizeStepNotBaseCase(api frontend.API, input StepInputs) ([]frontend.Variable, error) {
	return nil, ErrNotImplemented
}
